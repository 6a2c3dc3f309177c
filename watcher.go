package spatial

import (
	"time"

	"github.com/grindlemire/go-spatial/internal/debug"
)

// Watcher is an event source whose handler runs on the loop goroutine.
type Watcher interface {
	// Start launches the source. It delivers handlers on queue and
	// returns once stop is closed.
	Start(queue chan<- func(), stop <-chan struct{})
}

// Attach starts each watcher against the loop's update queue. Watchers stop
// with the loop. Unlike QueueUpdate, a watcher blocks while the queue is
// full instead of dropping events.
func (l *Loop) Attach(watchers ...Watcher) {
	for _, w := range watchers {
		w.Start(l.queue, l.stopCh)
	}
}

type channelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch returns a watcher that runs handler for every value received on ch,
// until ch is closed.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &channelWatcher[T]{ch: ch, handler: handler}
}

func (w *channelWatcher[T]) Start(queue chan<- func(), stop <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stop:
				return
			case v, ok := <-w.ch:
				if !ok {
					debug.Log("watcher: channel closed")
					return
				}
				select {
				case queue <- func() { w.handler(v) }:
				case <-stop:
					return
				}
			}
		}
	}()
}

type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer returns a watcher that runs handler every interval, typically to
// drive an animation by resizing leaves.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

func (w *timerWatcher) Start(queue chan<- func(), stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case queue <- w.handler:
				case <-stop:
					return
				}
			}
		}
	}()
}
