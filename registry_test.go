package crest

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRegistry(opts ...Option) (*Registry, *MockHost) {
	host := NewMockHost()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	return New(host, opts...), host
}

func noopCallback() *Callback {
	return NewCallback(func(Event) {})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNew_NilHostPanics(t *testing.T) {
	mustPanic(t, "New(nil)", func() { New(nil) })
}

func TestRegistry_BoundAndNames(t *testing.T) {
	r, _ := newTestRegistry()

	r.Bind("zoom", Callbacks{noopCallback()}, false, "z", "")
	r.Bind("attack", Callbacks{noopCallback()}, false, "a", "")

	if !r.Bound("zoom") || !r.Bound("attack") {
		t.Error("bound actions not reported")
	}
	if r.Bound("missing") {
		t.Error("unknown action reported as bound")
	}
	got := r.Names()
	if len(got) != 2 || got[0] != "attack" || got[1] != "zoom" {
		t.Errorf("Names() = %v, want [attack zoom]", got)
	}
}

// TestRegistry_JumpLifecycle walks one action through its whole life:
// bind, add a callback, remove one, unbind. Dispatch must track the list
// at every step and exactly one signal of each kind must fire, in order.
func TestRegistry_JumpLifecycle(t *testing.T) {
	r, host := newTestRegistry()

	var order []string
	ev := r.Events()
	ev.Bound.Subscribe(func(e BindingEvent) { order = append(order, "bound:"+e.Name) })
	ev.Updated.Subscribe(func(e BindingEvent) { order = append(order, "updated:"+e.Name) })
	ev.CallbackAdded.Subscribe(func(name string) { order = append(order, "added:"+name) })
	ev.CallbackRemoved.Subscribe(func(name string) { order = append(order, "removed:"+name) })
	ev.Unbound.Subscribe(func(name string) { order = append(order, "unbound:"+name) })

	var aRuns, bRuns atomic.Int32
	cbA := NewCallback(func(Event) { aRuns.Add(1) })
	cbB := NewCallback(func(Event) { bRuns.Add(1) })

	r.Bind("jump", Callbacks{cbA}, true, "space", "gamepad_a")

	reg, ok := host.Registration("jump")
	if !ok {
		t.Fatal("jump not registered with host")
	}
	if !reg.Touch || reg.DesktopKey != "space" || reg.AltKey != "gamepad_a" {
		t.Errorf("registration = touch %v keys %q/%q, want touch true space/gamepad_a",
			reg.Touch, reg.DesktopKey, reg.AltKey)
	}

	r.AddCallback("jump", Callbacks{cbB})
	if got := r.CallbackCount("jump"); got != 2 {
		t.Fatalf("CallbackCount after add = %d, want 2", got)
	}

	host.Deliver("jump", StatePressed, nil)
	r.Wait()
	if aRuns.Load() != 1 || bRuns.Load() != 1 {
		t.Errorf("runs after first press = %d/%d, want 1/1", aRuns.Load(), bRuns.Load())
	}

	r.RemoveCallback("jump", Callbacks{cbA})
	if got := r.CallbackCount("jump"); got != 1 {
		t.Fatalf("CallbackCount after remove = %d, want 1", got)
	}

	host.Deliver("jump", StatePressed, nil)
	r.Wait()
	if aRuns.Load() != 1 || bRuns.Load() != 2 {
		t.Errorf("runs after second press = %d/%d, want 1/2", aRuns.Load(), bRuns.Load())
	}

	r.Unbind("jump")
	if r.Bound("jump") {
		t.Error("jump still bound after unbind")
	}
	if host.Registered("jump") {
		t.Error("jump still registered with host after unbind")
	}

	want := []string{"bound:jump", "added:jump", "removed:jump", "unbound:jump"}
	if len(order) != len(want) {
		t.Fatalf("signal order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("signal order = %v, want %v", order, want)
		}
	}
}

func TestRegistry_SubscriberMayReenter(t *testing.T) {
	r, host := newTestRegistry()

	var unboundFired bool
	r.Events().Unbound.Subscribe(func(string) { unboundFired = true })
	r.Events().Bound.Subscribe(func(e BindingEvent) {
		// Reentrant call from signal delivery must not deadlock.
		r.Unbind(e.Name)
	})

	r.Bind("fleeting", Callbacks{noopCallback()}, false, "f", "")

	if r.Bound("fleeting") {
		t.Error("action survived reentrant unbind")
	}
	if host.Registered("fleeting") {
		t.Error("host kept registration after reentrant unbind")
	}
	if !unboundFired {
		t.Error("Unbound did not fire for reentrant unbind")
	}
}

func TestRegistry_CallbackCountUnknown(t *testing.T) {
	r, _ := newTestRegistry()
	if got := r.CallbackCount("ghost"); got != 0 {
		t.Errorf("CallbackCount(ghost) = %d, want 0", got)
	}
}

func TestRegistry_ConcurrentBinds(t *testing.T) {
	r, host := newTestRegistry(WithSlotTable(testTable(8)))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			name := fmt.Sprintf("action-%d", i)
			r.Bind(name, Callbacks{noopCallback()}, true, Key(fmt.Sprintf("f%d", i+1)), "")
		})
	}
	wg.Wait()

	if got := len(r.Names()); got != 8 {
		t.Fatalf("bound %d actions, want 8", got)
	}

	// Slot exclusivity: every action must have its own position.
	positions := make(map[Position]bool)
	for _, name := range r.Names() {
		btn, ok := host.Button(name)
		if !ok {
			t.Fatalf("no button for %s", name)
		}
		positions[btn.(*MockButton).Position()] = true
	}
	if len(positions) != 8 {
		t.Errorf("distinct positions = %d, want 8", len(positions))
	}
}
