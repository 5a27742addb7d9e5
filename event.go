package crest

// Key identifies a physical trigger in the host's own vocabulary. A
// terminal host uses Bubble Tea key strings ("q", "ctrl+k"); a gamepad
// host would use its own codes ("gamepad_a"). The registry never parses
// keys, it only stores and forwards them.
type Key string

// State is the phase of a trigger event.
type State int

const (
	StatePressed State = iota
	StateReleased
	StateRepeated
	// StateCancelled is emitted by hosts as a side effect of
	// deregistration. The dispatch path drops it before fan-out.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateReleased:
		return "released"
	case StateRepeated:
		return "repeated"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is a single trigger delivery from the host to an action.
type Event struct {
	// Name is the action the event is addressed to.
	Name string
	// State is the trigger phase.
	State State
	// Data carries the host's raw input value, opaque to the registry.
	// The terminal host puts the originating tea.KeyMsg or tea.MouseMsg
	// here.
	Data any
}

// Response tells the host what to do with an event after a handler ran.
type Response int

const (
	// Block consumes the event so it reaches no further host listeners.
	Block Response = iota
	// Pass lets the event continue through the host's input chain.
	Pass
)

// Handler is the host-facing receiver for one registered action. The
// registry installs exactly one handler per action and fans events out to
// the action's callbacks itself; handlers installed by the registry always
// return Pass.
type Handler func(Event) Response
