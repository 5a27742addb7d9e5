package crest

import (
	"slices"
	"sync"
)

// Signal is a synchronous broadcast point for registry changes.
// Subscribers run on the goroutine that completed the change, in
// subscription order, after the registry has released its lock: a
// subscriber may call back into the registry, subscribe or unsubscribe
// during delivery. Deliveries in flight when a subscriber leaves still
// reach it once.
type Signal[T any] struct {
	mu   sync.Mutex
	next int
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns its unsubscribe func. Unsubscribing
// more than once is a no-op.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = slices.Delete(s.subs, i, i+1)
				return
			}
		}
	}
}

// emit delivers v to a snapshot of the current subscribers.
func (s *Signal[T]) emit(v T) {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(v)
	}
}

// BindingEvent is the payload of the Bound and Updated signals.
type BindingEvent struct {
	Name       string
	DesktopKey Key
	AltKey     Key
}

// Events groups the registry's change signals. Obtain it from
// Registry.Events; the zero value of each signal is ready to use.
type Events struct {
	// Bound fires after a new action registers with the host.
	Bound Signal[BindingEvent]
	// Updated fires after a rebind completes. A rebind does not fire
	// Bound or Unbound.
	Updated Signal[BindingEvent]
	// Unbound fires after an explicit unbind, carrying the action name.
	Unbound Signal[string]
	// CallbackAdded fires once per AddCallback call on a known action,
	// whether or not the list changed.
	CallbackAdded Signal[string]
	// CallbackRemoved fires once per RemoveCallback call on a known
	// action, whether or not the list changed.
	CallbackRemoved Signal[string]
}
