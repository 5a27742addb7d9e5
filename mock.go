package crest

import (
	"fmt"
	"sync"
)

// MockHost is a test double for Host. It records registrations and lets
// tests drive the dispatch path with Deliver. Safe for concurrent use,
// since registry appearance timers touch the host from their own
// goroutines.
type MockHost struct {
	mu          sync.Mutex
	regs        map[string]*MockRegistration
	registerErr error
	registers   []string
	deregisters []string
}

// MockRegistration is one recorded Register call, live until the matching
// Deregister.
type MockRegistration struct {
	Name       string
	Handler    Handler
	Touch      bool
	DesktopKey Key
	AltKey     Key
	Button     *MockButton
}

// NewMockHost creates a mock host with no registrations.
func NewMockHost() *MockHost {
	return &MockHost{
		regs: make(map[string]*MockRegistration),
	}
}

func (h *MockHost) Register(name string, handler Handler, touch bool, desktopKey, altKey Key) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.registerErr != nil {
		return h.registerErr
	}
	if _, ok := h.regs[name]; ok {
		return fmt.Errorf("mock host: %q already registered", name)
	}
	reg := &MockRegistration{
		Name:       name,
		Handler:    handler,
		Touch:      touch,
		DesktopKey: desktopKey,
		AltKey:     altKey,
	}
	if touch {
		reg.Button = &MockButton{}
	}
	h.regs[name] = reg
	h.registers = append(h.registers, name)
	return nil
}

func (h *MockHost) Deregister(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.regs[name]; !ok {
		return fmt.Errorf("mock host: %q not registered", name)
	}
	delete(h.regs, name)
	h.deregisters = append(h.deregisters, name)
	return nil
}

func (h *MockHost) Button(name string) (Button, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	reg, ok := h.regs[name]
	if !ok || reg.Button == nil {
		return nil, false
	}
	return reg.Button, true
}

// Test helpers

// SetRegisterError makes every following Register call fail with err.
func (h *MockHost) SetRegisterError(err error) {
	h.mu.Lock()
	h.registerErr = err
	h.mu.Unlock()
}

// Registration returns the live registration for name.
func (h *MockHost) Registration(name string) (*MockRegistration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	reg, ok := h.regs[name]
	return reg, ok
}

// Registered reports whether name is currently registered.
func (h *MockHost) Registered(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.regs[name]
	return ok
}

// RegisterCalls returns every name passed to a successful Register, in
// order.
func (h *MockHost) RegisterCalls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.registers...)
}

// DeregisterCalls returns every name passed to a successful Deregister,
// in order.
func (h *MockHost) DeregisterCalls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.deregisters...)
}

// Deliver simulates a host trigger for name, invoking its registered
// handler on the calling goroutine. ok is false when name is not
// registered.
func (h *MockHost) Deliver(name string, st State, data any) (resp Response, ok bool) {
	h.mu.Lock()
	reg, ok := h.regs[name]
	h.mu.Unlock()
	if !ok {
		return Block, false
	}
	return reg.Handler(Event{Name: name, State: st, Data: data}), true
}

// MockButton records every setter call for assertions.
type MockButton struct {
	mu          sync.Mutex
	title       string
	image       ImageRef
	position    Position
	positions   []Position
	description string
}

func (b *MockButton) SetTitle(title string) {
	b.mu.Lock()
	b.title = title
	b.mu.Unlock()
}

func (b *MockButton) SetImage(img ImageRef) {
	b.mu.Lock()
	b.image = img
	b.mu.Unlock()
}

func (b *MockButton) SetPosition(pos Position) {
	b.mu.Lock()
	b.position = pos
	b.positions = append(b.positions, pos)
	b.mu.Unlock()
}

func (b *MockButton) SetDescription(desc string) {
	b.mu.Lock()
	b.description = desc
	b.mu.Unlock()
}

// Test helpers

func (b *MockButton) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

func (b *MockButton) Image() ImageRef {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.image
}

func (b *MockButton) Position() Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

// Positions returns every position the button was given, in order.
func (b *MockButton) Positions() []Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Position(nil), b.positions...)
}

func (b *MockButton) Description() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.description
}

// Verify the mocks implement the host contract at compile time.
var (
	_ Host   = (*MockHost)(nil)
	_ Button = (*MockButton)(nil)
)
