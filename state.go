package spatial

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-spatial/internal/debug"
)

// State holds a value owned by a Loop and runs bindings when it changes.
// Bindings usually push the value into the tree, for example by calling
// Text.SetLines or Tree.SetSize, which marks the affected nodes dirty.
//
// Get is safe from any goroutine. Set and Update must run on the loop
// goroutine; from elsewhere wrap them in Loop.QueueUpdate.
//
//	title := spatial.NewState(loop, "Ready")
//	title.Bind(func(s string) { label.SetLines(s) })
//	loop.QueueUpdate(func() { title.Set("Saving") })
type State[T any] struct {
	loop *Loop

	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind removes the binding it was returned for.
type Unbind func()

var nextBindingID atomic.Uint64

// NewState creates a state owned by loop.
func NewState[T any](loop *Loop, initial T) *State[T] {
	if loop == nil {
		panic("spatial: nil loop in NewState")
	}
	return &State[T]{loop: loop, value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and runs the active bindings in registration order. Inside
// Loop.Batch the bindings run once, with the last value, when the
// outermost batch returns.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	run := make([]*binding[T], len(active))
	copy(run, active)
	s.mu.Unlock()

	bt := &s.loop.batch
	bt.mu.Lock()
	if bt.depth > 0 {
		if bt.pending == nil {
			bt.pending = make(map[uint64]func())
		}
		for _, b := range run {
			if _, seen := bt.pending[b.id]; !seen {
				bt.order = append(bt.order, b.id)
			}
			fn := b.fn
			bt.pending[b.id] = func() { fn(v) }
		}
		bt.mu.Unlock()
		debug.Log("state: deferred %d bindings", len(run))
		return
	}
	bt.mu.Unlock()

	for _, b := range run {
		b.fn(v)
	}
}

// Update sets the result of fn applied to the current value.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to run on every Set. It does not run for the
// current value.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: nextBindingID.Add(1), fn: fn, active: true}
	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// batch collects binding calls while a Loop.Batch is open.
type batch struct {
	mu      sync.Mutex
	depth   int
	pending map[uint64]func()
	order   []uint64
}

// Batch runs fn and holds every binding triggered inside it until fn
// returns. A binding triggered several times runs once with its last
// value. Bindings run in the order they were first triggered. Nested
// calls flush only when the outermost one returns, including when fn
// panics.
func (l *Loop) Batch(fn func()) {
	b := &l.batch
	b.mu.Lock()
	b.depth++
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.depth--
		var flush []func()
		if b.depth == 0 {
			for _, id := range b.order {
				flush = append(flush, b.pending[id])
			}
			b.pending = nil
			b.order = nil
		}
		b.mu.Unlock()
		for _, call := range flush {
			call()
		}
	}()

	fn()
}
