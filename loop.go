package spatial

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grindlemire/go-spatial/internal/debug"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loopTicks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spatial_loop_ticks_total",
	Help: "Total frame loop ticks by result",
}, []string{"result"})

// Loop drives a Root once per frame. Tree mutations from other goroutines
// must go through QueueUpdate so they run on the loop goroutine.
type Loop struct {
	root          *Root
	frameDuration time.Duration
	queueSize     int
	queue         chan func()
	onFrame       func(*Root)
	onPanic       func(any)
	batch         batch

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop for root with the given options applied.
func NewLoop(root *Root, opts ...LoopOption) (*Loop, error) {
	if root == nil {
		return nil, fmt.Errorf("loop requires a root")
	}
	l := &Loop{
		root:          root,
		frameDuration: time.Second / 60,
		queueSize:     256,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.queue = make(chan func(), l.queueSize)
	return l, nil
}

// Root returns the scheduler the loop drives.
func (l *Loop) Root() *Root {
	return l.root
}

// FrameDuration returns the target time per frame.
func (l *Loop) FrameDuration() time.Duration {
	return l.frameDuration
}

// Run processes queued updates and ticks the root until ctx is done or
// Stop is called. Layout runs only when something is pending.
// Returns ctx.Err() if the context ended the loop, nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		frameStart := time.Now()

		// Process queued updates for up to half the frame budget
		deadline := frameStart.Add(l.frameDuration / 2)
	drain:
		for time.Now().Before(deadline) {
			select {
			case fn := <-l.queue:
				fn()
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			default:
				break drain
			}
		}

		l.Tick()

		// Sleep for remaining frame time to maintain consistent framerate
		if elapsed := time.Since(frameStart); elapsed < l.frameDuration {
			select {
			case <-time.After(l.frameDuration - elapsed):
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Tick runs one update if work is pending and reports whether it did.
func (l *Loop) Tick() (updated bool) {
	if !l.root.HasPending() {
		loopTicks.WithLabelValues("idle").Inc()
		return false
	}
	if l.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				loopTicks.WithLabelValues("recovered").Inc()
				debug.Log("loop: recovered from update panic: %v", r)
				l.onPanic(r)
				updated = false
			}
		}()
	}
	l.root.Update()
	loopTicks.WithLabelValues("updated").Inc()
	if l.onFrame != nil {
		l.onFrame(l.root)
	}
	return true
}

// QueueUpdate enqueues a function to run on the loop goroutine.
// Safe to call from any goroutine. Returns false if the loop is stopped
// or the queue is full.
func (l *Loop) QueueUpdate(fn func()) bool {
	select {
	case <-l.stopCh:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	default:
		debug.Log("loop: update queue full, dropping update")
		return false
	}
}

// Stop signals Run to exit. Stop is idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}
