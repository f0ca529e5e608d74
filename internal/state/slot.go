// Package state holds the observable leaderboard state shared between the
// loading pipeline and its renderers.
package state

import "sync"

// Listener is invoked with the new value of a slot.
type Listener[T any] func(T)

// Slot is one observable value. Set notifies every listener synchronously on
// the calling goroutine, in registration order, after the value is stored.
// A listener must not Set the slot it observes.
type Slot[T any] struct {
	name string

	mu        sync.RWMutex
	value     T
	listeners []Listener[T]
	onNotify  func(slot string, listeners int)
}

func newSlot[T any](name string, initial T, onNotify func(string, int)) *Slot[T] {
	return &Slot[T]{name: name, value: initial, onNotify: onNotify}
}

// Name returns the slot name.
func (s *Slot[T]) Name() string { return s.name }

// Get returns the current value.
func (s *Slot[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Subscribe registers fn. Listeners are never removed.
func (s *Slot[T]) Subscribe(fn Listener[T]) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Set stores v and notifies listeners outside the lock.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	listeners := make([]Listener[T], len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
	if s.onNotify != nil {
		s.onNotify(s.name, len(listeners))
	}
}
