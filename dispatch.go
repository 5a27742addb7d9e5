package crest

import (
	"slices"
	"time"
)

// handler builds the host-facing dispatch handler for one action. The
// host calls it on its own input goroutine; fan-out happens on fresh
// goroutines so a slow callback never stalls input handling.
func (r *Registry) handler(name string) Handler {
	return func(ev Event) Response {
		r.dispatch(name, ev)
		return Pass
	}
}

// dispatch fans one trigger event out to the action's callbacks. Each
// callback runs on its own goroutine with panic isolation; nothing is
// awaited and no result is collected. Cancelled events are dropped before
// the action lookup, so host-side deregistration noise never reaches
// callbacks.
func (r *Registry) dispatch(name string, ev Event) {
	if ev.State == StateCancelled {
		return
	}

	r.mu.RLock()
	a, ok := r.actions[name]
	var cbs []*Callback
	if ok {
		cbs = slices.Clone(a.callbacks)
	}
	r.mu.RUnlock()
	if !ok {
		r.log.Debug().Str("action", name).Msg("event for unbound action dropped")
		return
	}

	ev.Name = name
	for _, cb := range cbs {
		r.tasks.Go(name, func() {
			cb.invoke(ev)
		})
	}
	r.scheduleAppearance(name, ev.State)
}

// scheduleAppearance arms the deferred appearance update for an action.
// Another event for the same action within the window restarts the timer,
// collapsing rapid repeats into one update. Self-styled actions are
// skipped.
func (r *Registry) scheduleAppearance(name string, st State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actions[name]
	if !ok || !a.touch || a.lookOverride {
		return
	}
	if a.appearanceTimer != nil {
		a.appearanceTimer.Stop()
	}
	a.appearanceTimer = time.AfterFunc(r.appearanceDelay, func() {
		r.updateAppearance(name, st)
	})
}

// updateAppearance runs on the timer goroutine once the debounce window
// closes. The action may have been unbound in the meantime.
func (r *Registry) updateAppearance(name string, st State) {
	r.mu.RLock()
	_, ok := r.actions[name]
	r.mu.RUnlock()
	if !ok {
		return
	}
	if btn, ok := r.host.Button(name); ok {
		r.look.Update(btn, st)
	}
}
