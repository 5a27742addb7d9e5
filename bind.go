package crest

import (
	"fmt"
	"slices"
)

// BindOption adjusts a single Bind call.
type BindOption func(*bindSpec)

type bindSpec struct {
	slotHint int
}

// WithSlot requests a specific slot table index for the action's button
// instead of the first free one. The index is claimed without a free
// check, so hint only a slot this action held before, such as when
// recreating a binding torn down earlier. Out-of-range hints fall back to
// normal allocation.
func WithSlot(i int) BindOption {
	return func(s *bindSpec) { s.slotHint = i }
}

// Bind registers a new action under name with the given callback list and
// trigger keys. touch requests an on-screen button; pass an empty Key for
// a trigger the action does not use. On success the Bound signal fires.
//
// Binding a name that is already bound never replaces the existing entry.
// With additive actions on (the default) the callbacks are appended via
// AddCallback, unless the passed list is element-wise identical to the
// stored one, which is reported as a duplicate bind. With additive
// actions off any bind on a taken name is a duplicate. Duplicates degrade
// to a logged no-op.
//
// An empty callback list is a programming error and panics; use Unbind to
// remove an action.
func (r *Registry) Bind(name string, cbs Callbacks, touch bool, desktopKey, altKey Key, opts ...BindOption) {
	validateCallbacks(cbs)
	if len(cbs) == 0 {
		panic(fmt.Sprintf("crest: Bind %q with no callbacks", name))
	}
	spec := bindSpec{slotHint: noSlot}
	for _, o := range opts {
		o(&spec)
	}

	r.mu.Lock()
	if existing, ok := r.actions[name]; ok {
		additive := r.additive
		duplicate := slices.Equal(existing.callbacks, []*Callback(cbs))
		r.mu.Unlock()
		if additive && !duplicate {
			r.AddCallback(name, cbs)
			return
		}
		r.log.Warn().Str("action", name).Msg("bind for already-bound action ignored")
		return
	}
	ok := r.bindLocked(name, cbs, touch, desktopKey, altKey, spec.slotHint)
	r.mu.Unlock()
	if ok {
		r.events.Bound.emit(BindingEvent{Name: name, DesktopKey: desktopKey, AltKey: altKey})
	}
}

// AddCallback appends callbacks to a bound action. Entries already on the
// action's list are skipped with a warning. The CallbackAdded signal
// fires once per call, even when nothing changed; subscribers that care
// about the count can read it back via CallbackCount.
func (r *Registry) AddCallback(name string, cbs Callbacks) {
	validateCallbacks(cbs)

	r.mu.Lock()
	a, ok := r.actions[name]
	if !ok {
		r.mu.Unlock()
		r.warnUnknown("add callback", name)
		return
	}
	for _, cb := range cbs {
		if slices.Contains(a.callbacks, cb) {
			r.log.Warn().Str("action", name).Msg("callback already registered, skipped")
			continue
		}
		a.callbacks = append(a.callbacks, cb)
	}
	r.mu.Unlock()
	r.events.CallbackAdded.emit(name)
}

// RemoveCallback removes callbacks from a bound action, matching by
// wrapper identity. Entries not on the list are skipped with a warning.
// The CallbackRemoved signal fires once per call, even when nothing
// changed. Removing the last callback leaves the action bound with an
// empty list; its triggers keep dispatching to no one until Unbind.
func (r *Registry) RemoveCallback(name string, cbs Callbacks) {
	validateCallbacks(cbs)

	r.mu.Lock()
	a, ok := r.actions[name]
	if !ok {
		r.mu.Unlock()
		r.warnUnknown("remove callback", name)
		return
	}
	for _, cb := range cbs {
		i := slices.Index(a.callbacks, cb)
		if i < 0 {
			r.log.Warn().Str("action", name).Msg("callback not registered, nothing to remove")
			continue
		}
		a.callbacks = slices.Delete(a.callbacks, i, i+1)
	}
	r.mu.Unlock()
	r.events.CallbackRemoved.emit(name)
}

// RebindOption overrides one field of an existing binding during Rebind.
// Omitted fields keep their current values.
type RebindOption func(*rebindSpec)

type rebindSpec struct {
	callbacks    Callbacks
	hasCallbacks bool
	touch        *bool
	desktopKey   *Key
	altKey       *Key
}

// WithCallbacks replaces the action's entire callback list. There is no
// merge: pass the full list the action should end up with, including any
// previously added callbacks you want to keep.
func WithCallbacks(cbs Callbacks) RebindOption {
	return func(s *rebindSpec) {
		s.callbacks = cbs
		s.hasCallbacks = true
	}
}

// WithTouchButton overrides whether the action has a touch button.
func WithTouchButton(v bool) RebindOption {
	return func(s *rebindSpec) { s.touch = &v }
}

// WithDesktopKey overrides the desktop trigger key.
func WithDesktopKey(k Key) RebindOption {
	return func(s *rebindSpec) { s.desktopKey = &k }
}

// WithAltKey overrides the alternate trigger key.
func WithAltKey(k Key) RebindOption {
	return func(s *rebindSpec) { s.altKey = &k }
}

// Rebind atomically replaces the binding for name, keeping every field
// not overridden by an option. The action is deregistered from the host
// and registered again with the merged parameters; with KeepPosition on
// (the default) a touch action resumes its previous slot. Only the
// Updated signal fires, never Unbound or Bound.
//
// Resolving to an empty callback list is a programming error and panics:
// a rebind must leave the action dispatchable. Unknown names degrade to a
// logged no-op.
func (r *Registry) Rebind(name string, opts ...RebindOption) {
	var spec rebindSpec
	for _, o := range opts {
		o(&spec)
	}
	if spec.hasCallbacks {
		validateCallbacks(spec.callbacks)
	}

	r.mu.Lock()
	prev, ok := r.actions[name]
	if !ok {
		r.mu.Unlock()
		r.warnUnknown("rebind", name)
		return
	}

	cbs := slices.Clone(prev.callbacks)
	if spec.hasCallbacks {
		cbs = slices.Clone([]*Callback(spec.callbacks))
	}
	if len(cbs) == 0 {
		r.mu.Unlock()
		panic(fmt.Sprintf("crest: Rebind %q resolved to no callbacks", name))
	}
	touch := prev.touch
	if spec.touch != nil {
		touch = *spec.touch
	}
	desktopKey := prev.desktopKey
	if spec.desktopKey != nil {
		desktopKey = *spec.desktopKey
	}
	altKey := prev.altKey
	if spec.altKey != nil {
		altKey = *spec.altKey
	}
	hint := noSlot
	if r.keepPosition && prev.slot != noSlot {
		hint = prev.slot
	}

	r.unbindLocked(prev)
	ok = r.bindLocked(name, cbs, touch, desktopKey, altKey, hint)
	r.mu.Unlock()
	if ok {
		r.events.Updated.emit(BindingEvent{Name: name, DesktopKey: desktopKey, AltKey: altKey})
	}
}

// Unbind removes an action: the host deregisters it, its slot is
// released, its callbacks are dropped and the Unbound signal fires.
// Unknown names degrade to a logged no-op.
func (r *Registry) Unbind(name string) {
	r.mu.Lock()
	a, ok := r.actions[name]
	if !ok {
		r.mu.Unlock()
		r.warnUnknown("unbind", name)
		return
	}
	r.unbindLocked(a)
	r.mu.Unlock()
	r.events.Unbound.emit(name)
}

// bindLocked allocates a slot, registers with the host and inserts the
// action entry. A host registration failure rolls the slot back and
// leaves the registry unchanged. Caller holds r.mu and fires the
// appropriate signal after unlocking when true is returned.
func (r *Registry) bindLocked(name string, cbs []*Callback, touch bool, desktopKey, altKey Key, hint int) bool {
	a := &action{
		name:       name,
		callbacks:  slices.Clone(cbs),
		desktopKey: desktopKey,
		altKey:     altKey,
		touch:      touch,
		slot:       noSlot,
		pos:        Origin,
	}
	if touch {
		a.slot, a.pos = r.slots.allocate(hint)
		if a.slot == noSlot {
			r.log.Warn().Str("action", name).Int("capacity", r.slots.size()).Msg("slot table exhausted, button sent to origin")
		}
	}
	if err := r.host.Register(name, r.handler(name), touch, desktopKey, altKey); err != nil {
		r.slots.release(a.slot)
		r.log.Warn().Err(err).Str("action", name).Msg("host registration failed, binding dropped")
		return false
	}
	r.actions[name] = a
	if touch {
		if btn, ok := r.host.Button(name); ok {
			btn.SetPosition(a.pos)
			r.look.Update(btn, StateReleased)
		}
		if r.consistent {
			r.look.Normalize(r.buttonsLocked())
		}
	}
	return true
}

// unbindLocked removes an action entry without firing Unbound. Rebind
// goes through here so observers see a single Updated instead of an
// unbind/bind pair. Caller holds r.mu.
func (r *Registry) unbindLocked(a *action) {
	if a.appearanceTimer != nil {
		a.appearanceTimer.Stop()
		a.appearanceTimer = nil
	}
	if err := r.host.Deregister(a.name); err != nil {
		r.log.Warn().Err(err).Str("action", a.name).Msg("host deregistration failed")
	}
	r.slots.release(a.slot)
	delete(r.actions, a.name)
}

// SetTitle forwards a title change to the action's host button.
func (r *Registry) SetTitle(name, title string) {
	if btn, ok := r.button("set title", name); ok {
		btn.SetTitle(title)
	}
}

// SetImage forwards an image change to the action's host button.
func (r *Registry) SetImage(name string, img ImageRef) {
	if btn, ok := r.button("set image", name); ok {
		btn.SetImage(img)
	}
}

// SetPosition moves the action's button directly. The slot allocator is
// not consulted: the action keeps its slot, and a later rebind with
// KeepPosition restores the slot position, not the moved one.
func (r *Registry) SetPosition(name string, pos Position) {
	if btn, ok := r.button("set position", name); ok {
		btn.SetPosition(pos)
	}
}

// SetDescription forwards a description change to the action's host
// button.
func (r *Registry) SetDescription(name, desc string) {
	if btn, ok := r.button("set description", name); ok {
		btn.SetDescription(desc)
	}
}

// Button returns the host button handle for a bound touch action.
func (r *Registry) Button(name string) (Button, bool) {
	return r.button("button lookup", name)
}

// button resolves the host button for an operation, downgrading unknown
// names to a warning and buttonless actions to a debug line.
func (r *Registry) button(op, name string) (Button, bool) {
	r.mu.RLock()
	a, ok := r.actions[name]
	touch := ok && a.touch
	r.mu.RUnlock()
	if !ok {
		r.warnUnknown(op, name)
		return nil, false
	}
	if !touch {
		r.log.Debug().Str("action", name).Msg(op + " for action without touch button")
		return nil, false
	}
	btn, ok := r.host.Button(name)
	if !ok {
		r.log.Debug().Str("action", name).Msg(op + " but host reports no button")
		return nil, false
	}
	return btn, true
}

// validateCallbacks panics on nil entries. Nil wrappers cannot be built
// through NewCallback; one in a list means the caller lost track of its
// handles.
func validateCallbacks(cbs Callbacks) {
	for _, cb := range cbs {
		if cb == nil {
			panic("crest: nil callback in list")
		}
	}
}
