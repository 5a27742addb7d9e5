// Package crest manages input-action bindings for interactive
// applications: named actions with callback lists, desktop and alternate
// trigger keys, managed touch-button slots, and change signals, all
// layered over a pluggable input host.
package crest

import (
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/crest/internal/task"
)

// DefaultAppearanceDelay is the debounce window for post-dispatch
// appearance updates. Rapid repeats of the same action within the window
// collapse into a single update.
const DefaultAppearanceDelay = 150 * time.Millisecond

// Registry owns the mapping from action names to callback lists, trigger
// keys and touch-button slots, layered over a Host that does the physical
// input dispatch. All methods are safe for concurrent use.
//
// Misuse that a caller can detect locally (binding a taken name, touching
// an unknown action, removing a callback that was never added) degrades
// to a logged no-op rather than an error return. Contract violations that
// cannot be part of a working program (nil host, rebinding to an empty
// callback list) panic.
type Registry struct {
	mu      sync.RWMutex
	host    Host
	look    Appearance
	actions map[string]*action
	slots   *slotAllocator

	keepPosition bool
	additive     bool
	consistent   bool

	appearanceDelay time.Duration

	events Events
	tasks  *task.Runner
	log    zerolog.Logger
}

// action is one live binding.
type action struct {
	name       string
	callbacks  []*Callback
	desktopKey Key
	altKey     Key
	touch      bool
	slot       int
	pos        Position

	// lookOverride suppresses deferred appearance updates for this action
	// so other code can drive the button's look directly. Escape hatch,
	// reachable only from inside the package. Guarded by Registry.mu.
	lookOverride bool

	// appearanceTimer is the pending deferred appearance update, nil when
	// none is scheduled. Guarded by Registry.mu.
	appearanceTimer *time.Timer
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithKeepPosition controls whether a rebound touch action keeps its slot.
// Defaults to true.
func WithKeepPosition(v bool) Option {
	return func(r *Registry) { r.keepPosition = v }
}

// WithAdditiveActions controls whether binding an already-bound name with
// a different callback list appends the callbacks instead of reporting a
// duplicate. Defaults to true.
func WithAdditiveActions(v bool) Option {
	return func(r *Registry) { r.additive = v }
}

// WithConsistentAppearance controls whether every bind triggers an
// appearance consistency pass across all live buttons. Defaults to true.
func WithConsistentAppearance(v bool) Option {
	return func(r *Registry) { r.consistent = v }
}

// WithAppearance sets the button styler. Nil is ignored and leaves the
// no-op styler in place.
func WithAppearance(a Appearance) Option {
	return func(r *Registry) {
		if a != nil {
			r.look = a
		}
	}
}

// WithSlotTable replaces the default slot table. The table is copied; an
// empty table is legal and sends every touch action to Origin.
func WithSlotTable(table []Position) Option {
	return func(r *Registry) { r.slots = newSlotAllocator(table) }
}

// WithAppearanceDelay sets the debounce window for deferred appearance
// updates. Values below zero are clamped to zero, which still defers the
// update to a timer goroutine but without coalescing.
func WithAppearanceDelay(d time.Duration) Option {
	return func(r *Registry) {
		if d < 0 {
			d = 0
		}
		r.appearanceDelay = d
	}
}

// WithLogger replaces the registry's logger. The default logs warnings
// and above to stderr.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates a registry over host. The behavior flags default to on:
// slots are kept across rebinds, binds on taken names add callbacks, and
// every bind runs the appearance consistency pass.
func New(host Host, opts ...Option) *Registry {
	if host == nil {
		panic("crest: New with nil host")
	}
	r := &Registry{
		host:            host,
		look:            NopAppearance{},
		actions:         make(map[string]*action),
		slots:           newSlotAllocator(DefaultSlotTable()),
		keepPosition:    true,
		additive:        true,
		consistent:      true,
		appearanceDelay: DefaultAppearanceDelay,
		log:             zerolog.New(os.Stderr).With().Timestamp().Str("component", "crest").Logger().Level(zerolog.WarnLevel),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.tasks = task.NewRunner(r.log)
	return r
}

// Events exposes the registry's change signals for subscription.
func (r *Registry) Events() *Events {
	return &r.events
}

// SetKeepPosition toggles slot reuse across rebinds at runtime.
func (r *Registry) SetKeepPosition(v bool) {
	r.mu.Lock()
	r.keepPosition = v
	r.mu.Unlock()
}

// SetAdditiveActions toggles additive binding at runtime.
func (r *Registry) SetAdditiveActions(v bool) {
	r.mu.Lock()
	r.additive = v
	r.mu.Unlock()
}

// SetConsistentAppearance toggles the per-bind consistency pass at
// runtime.
func (r *Registry) SetConsistentAppearance(v bool) {
	r.mu.Lock()
	r.consistent = v
	r.mu.Unlock()
}

// setLookOverride marks an action as self-styled: dispatch stops
// scheduling deferred appearance updates for it. Unknown names are
// ignored. Deliberately unexported.
func (r *Registry) setLookOverride(name string, v bool) {
	r.mu.Lock()
	if a, ok := r.actions[name]; ok {
		a.lookOverride = v
	}
	r.mu.Unlock()
}

// Bound reports whether name is currently bound.
func (r *Registry) Bound(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.actions[name]
	return ok
}

// Names returns the bound action names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallbackCount returns the number of callbacks registered for name, zero
// when the name is not bound.
func (r *Registry) CallbackCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	if !ok {
		return 0
	}
	return len(a.callbacks)
}

// Wait blocks until all callback invocations launched so far have
// returned. Dispatch never waits on callbacks; Wait is for orderly
// shutdown and tests.
func (r *Registry) Wait() {
	r.tasks.Wait()
}

// buttonsLocked collects the host buttons of all touch actions in lexical
// name order, for the consistency pass. Caller holds r.mu.
func (r *Registry) buttonsLocked() []Button {
	var btns []Button
	for _, name := range r.namesLocked() {
		a := r.actions[name]
		if !a.touch {
			continue
		}
		if btn, ok := r.host.Button(name); ok {
			btns = append(btns, btn)
		}
	}
	return btns
}
