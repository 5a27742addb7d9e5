// Package teahost hosts binding registry actions inside a Bubble Tea
// program: it matches key presses and button clicks to registered
// actions, renders touch buttons over the wrapped view and forwards
// trigger events to the registry's handlers.
package teahost

import (
	"fmt"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/crest"
)

// Host implements crest.Host over terminal input. Trigger keys use
// Bubble Tea key strings as reported by KeyMsg.String, "q" or "ctrl+k"
// or "f5"; desktop and alternate keys share one namespace, so an action
// can listen on two terminal keys.
type Host struct {
	mu    sync.RWMutex
	regs  map[string]*registration
	byKey map[crest.Key]string
	order []string
}

var _ crest.Host = (*Host)(nil)

type registration struct {
	name       string
	handler    crest.Handler
	desktopKey crest.Key
	altKey     crest.Key
	button     *Button
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		regs:  make(map[string]*registration),
		byKey: make(map[crest.Key]string),
	}
}

// Register implements crest.Host. It rejects duplicate names and trigger
// keys already routed to another action, leaving the host unchanged; the
// registry rolls the failed binding back.
func (h *Host) Register(name string, handler crest.Handler, touch bool, desktopKey, altKey crest.Key) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.regs[name]; ok {
		return fmt.Errorf("teahost: action %q already registered", name)
	}
	for _, k := range []crest.Key{desktopKey, altKey} {
		if k == "" {
			continue
		}
		if other, ok := h.byKey[k]; ok {
			return fmt.Errorf("teahost: key %q already routed to %q", k, other)
		}
	}

	reg := &registration{
		name:       name,
		handler:    handler,
		desktopKey: desktopKey,
		altKey:     altKey,
	}
	if touch {
		reg.button = newButton(name)
	}
	h.regs[name] = reg
	if desktopKey != "" {
		h.byKey[desktopKey] = name
	}
	if altKey != "" {
		h.byKey[altKey] = name
	}
	h.order = append(h.order, name)
	return nil
}

// Deregister implements crest.Host. The cancel event reaches the handler
// on its own goroutine after the registration is gone: handlers take
// registry locks, and the registry may be holding one while it calls
// here.
func (h *Host) Deregister(name string) error {
	h.mu.Lock()
	reg, ok := h.regs[name]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("teahost: action %q not registered", name)
	}
	delete(h.regs, name)
	if reg.desktopKey != "" && h.byKey[reg.desktopKey] == name {
		delete(h.byKey, reg.desktopKey)
	}
	if reg.altKey != "" && h.byKey[reg.altKey] == name {
		delete(h.byKey, reg.altKey)
	}
	h.order = slices.DeleteFunc(h.order, func(n string) bool { return n == name })
	h.mu.Unlock()

	go reg.handler(crest.Event{Name: name, State: crest.StateCancelled})
	return nil
}

// Button implements crest.Host.
func (h *Host) Button(name string) (crest.Button, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	reg, ok := h.regs[name]
	if !ok || reg.button == nil {
		return nil, false
	}
	return reg.button, true
}

// Buttons returns the live touch buttons in registration order, which is
// also their render z-order.
func (h *Host) Buttons() []*Button {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var btns []*Button
	for _, name := range h.order {
		if reg := h.regs[name]; reg != nil && reg.button != nil {
			btns = append(btns, reg.button)
		}
	}
	return btns
}

// RouteKey dispatches a key press to the action listening on it.
// Terminals report no key release or repeat phases, so every match is
// delivered as a press. handled is true only when a handler blocked the
// event; bound keys otherwise continue to the wrapped model.
func (h *Host) RouteKey(msg tea.KeyMsg) (handled bool) {
	h.mu.RLock()
	name, ok := h.byKey[crest.Key(msg.String())]
	var reg *registration
	if ok {
		reg = h.regs[name]
	}
	h.mu.RUnlock()
	if reg == nil {
		return false
	}

	if reg.button != nil {
		reg.button.setState(crest.StatePressed)
	}
	// Handler runs without h.mu held, it takes registry locks.
	resp := reg.handler(crest.Event{Name: name, State: crest.StatePressed, Data: msg})
	return resp == crest.Block
}

// RouteMouse dispatches left-button presses and releases on a rendered
// touch button to its action.
func (h *Host) RouteMouse(msg tea.MouseMsg) (handled bool) {
	if msg.Button != tea.MouseButtonLeft {
		return false
	}
	var st crest.State
	switch msg.Action {
	case tea.MouseActionPress:
		st = crest.StatePressed
	case tea.MouseActionRelease:
		st = crest.StateReleased
	default:
		return false
	}

	h.mu.RLock()
	var hit *registration
	for _, name := range h.order {
		reg := h.regs[name]
		if reg.button != nil && reg.button.hitTest(msg.X, msg.Y) {
			// Later registrations render on top, so the last hit wins.
			hit = reg
		}
	}
	h.mu.RUnlock()
	if hit == nil {
		return false
	}

	hit.button.setState(st)
	resp := hit.handler(crest.Event{Name: hit.name, State: st, Data: msg})
	return resp == crest.Block
}
