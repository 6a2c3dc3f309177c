package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "SPATIAL_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
	enabled atomic.Bool
	envOnce sync.Once
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	setWriterLocked(f)
	return nil
}

// SetOutput routes debug logging to w. Passing nil disables logging.
// Used by tests and by callers that already own a log sink.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setWriterLocked(w)
}

func setWriterLocked(w io.Writer) {
	if w == nil {
		logger = nil
		enabled.Store(false)
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	enabled.Store(true)
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	enabled.Store(false)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug messages are being written anywhere.
func Enabled() bool {
	envOnce.Do(initFromEnv)
	return enabled.Load()
}

func initFromEnv() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return
	}
	if err := initLocked(path); err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", err)
	}
}

// Log writes a message to the debug log.
func Log(format string, args ...any) {
	if !Enabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
