// Package config loads engine and tool settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	spatial "github.com/grindlemire/go-spatial"
	"github.com/grindlemire/go-spatial/internal/layout"
	"gopkg.in/yaml.v3"
)

// Config is the full settings file.
type Config struct {
	Stack   StackConfig   `yaml:"stack"`
	Flex    FlexConfig    `yaml:"flex"`
	Debug   DebugConfig   `yaml:"debug"`
	Loop    LoopConfig    `yaml:"loop"`
	Scene   SceneConfig   `yaml:"scene"`
	Preview PreviewConfig `yaml:"preview"`
}

// StackConfig sets the default separation between Stack layers.
type StackConfig struct {
	Delta float32 `yaml:"delta"`
	Axis  string  `yaml:"axis"` // x, y or z
}

// FlexConfig holds Flex defaults.
type FlexConfig struct {
	VerticalReverse bool `yaml:"vertical_reverse"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	CheckCycles bool   `yaml:"check_cycles"`
	LogFile     string `yaml:"log_file"`
}

// LoopConfig configures the frame loop.
type LoopConfig struct {
	FrameRate int `yaml:"frame_rate"`
	QueueSize int `yaml:"queue_size"`
}

// SceneConfig bounds scene script evaluation.
type SceneConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// PreviewConfig controls mesh export.
type PreviewConfig struct {
	Cells        int     `yaml:"cells"`         // marching cubes cells on the longest axis
	MinThickness float32 `yaml:"min_thickness"` // flat boxes are thickened to this
	Workers      int     `yaml:"workers"`       // 0 means one per CPU
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Stack: StackConfig{Delta: layout.DefaultStackDelta, Axis: "z"},
		Flex:  FlexConfig{VerticalReverse: true},
		Debug: DebugConfig{CheckCycles: true},
		Loop:  LoopConfig{FrameRate: 60, QueueSize: 256},
		Scene: SceneConfig{Timeout: 5 * time.Second},
		Preview: PreviewConfig{
			Cells:        32,
			MinThickness: 0.05,
		},
	}
}

// Load reads a settings file. Keys missing from the file keep their
// defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteDefault writes the default settings to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Stack.Delta <= 0 || math.IsInf(float64(c.Stack.Delta), 0) || math.IsNaN(float64(c.Stack.Delta)) {
		errs = append(errs, fmt.Errorf("stack.delta must be a positive number, got %v", c.Stack.Delta))
	}
	if _, err := ParseAxis(c.Stack.Axis); err != nil {
		errs = append(errs, fmt.Errorf("stack.axis: %w", err))
	}
	if c.Loop.FrameRate < 1 || c.Loop.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("loop.frame_rate must be between 1 and 240, got %d", c.Loop.FrameRate))
	}
	if c.Loop.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("loop.queue_size must be at least 1, got %d", c.Loop.QueueSize))
	}
	if c.Scene.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("scene.timeout must be positive, got %v", c.Scene.Timeout))
	}
	if c.Preview.Cells < 2 {
		errs = append(errs, fmt.Errorf("preview.cells must be at least 2, got %d", c.Preview.Cells))
	}
	if c.Preview.MinThickness <= 0 {
		errs = append(errs, fmt.Errorf("preview.min_thickness must be positive, got %v", c.Preview.MinThickness))
	}
	if c.Preview.Workers < 0 {
		errs = append(errs, fmt.Errorf("preview.workers must not be negative, got %d", c.Preview.Workers))
	}
	return errors.Join(errs...)
}

// TreeOptions converts the layout settings to Tree options.
func (c Config) TreeOptions() []layout.Option {
	axis, _ := ParseAxis(c.Stack.Axis)
	return []layout.Option{
		layout.WithStackDelta(c.Stack.Delta),
		layout.WithStackAxis(axis),
		layout.WithVerticalReverse(c.Flex.VerticalReverse),
		layout.WithCycleCheck(c.Debug.CheckCycles),
	}
}

// LoopOptions converts the frame loop settings to Loop options.
func (c Config) LoopOptions() []spatial.LoopOption {
	return []spatial.LoopOption{
		spatial.WithFrameRate(c.Loop.FrameRate),
		spatial.WithQueueSize(c.Loop.QueueSize),
	}
}

// ParseAxis converts x, y or z to an Axis.
func ParseAxis(s string) (layout.Axis, error) {
	switch s {
	case "x", "X":
		return layout.AxisX, nil
	case "y", "Y":
		return layout.AxisY, nil
	case "z", "Z":
		return layout.AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}
