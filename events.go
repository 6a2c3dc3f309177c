package spatial

import "sync"

// Events is a simple event bus for cross-widget communication.
// It is generic over the event type T. Delivery happens on the loop
// goroutine, so listeners may mutate the tree.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
	loop      *Loop
}

// NewEvents creates an event bus delivering through loop.
func NewEvents[T any](loop *Loop) *Events[T] {
	if loop == nil {
		panic("spatial: nil loop in NewEvents")
	}
	return &Events[T]{loop: loop}
}

// Emit queues delivery of event to all current listeners.
// Safe to call from any goroutine. Returns false if the loop dropped it.
func (e *Events[T]) Emit(event T) bool {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	return e.loop.QueueUpdate(func() {
		for _, fn := range listeners {
			fn(event)
		}
	})
}

// Subscribe adds a listener for events.
func (e *Events[T]) Subscribe(fn func(T)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}
