package spatial

import (
	"fmt"
	"time"
)

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithFrameRate sets the target frame rate for the update loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the update queue buffer.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// WithOnFrame sets a function called after every update that did work,
// typically the renderer reading the new frames.
func WithOnFrame(fn func(*Root)) LoopOption {
	return func(l *Loop) error {
		l.onFrame = fn
		return nil
	}
}

// WithRecover makes the loop recover a panic raised while updating and
// report it to fn instead of crashing. The pending work stays queued, so
// the next frame retries it.
func WithRecover(fn func(recovered any)) LoopOption {
	return func(l *Loop) error {
		l.onPanic = fn
		return nil
	}
}
