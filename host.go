package crest

// Host is the input-dispatch service a Registry drives. The host owns key
// matching and button widgets; the registry owns naming, callback lists
// and slot assignment. Implementations must not call handlers
// synchronously from Register or Deregister.
type Host interface {
	// Register binds handler to name and its trigger keys. When touch is
	// true the host creates an on-screen button for the action. Returning
	// an error leaves the host unchanged.
	Register(name string, handler Handler, touch bool, desktopKey, altKey Key) error

	// Deregister removes the named action from the host. Hosts may emit a
	// StateCancelled event for the action as a side effect.
	Deregister(name string) error

	// Button returns the button handle the host created for name. ok is
	// false when the action is unknown or was registered without touch.
	Button(name string) (Button, bool)
}

// Button is a host button handle. All setters are pure pass-throughs; the
// registry performs no validation on their arguments.
type Button interface {
	SetTitle(title string)
	SetImage(img ImageRef)
	SetPosition(pos Position)
	SetDescription(desc string)
}

// ImageRef names a button image in host vocabulary, an icon name for the
// terminal host.
type ImageRef string

// Appearance styles touch buttons in reaction to input. Hosts ship their
// own implementation; the registry only decides when to invoke it.
type Appearance interface {
	// Update refreshes one button for an input state.
	Update(btn Button, state State)

	// Normalize applies a consistency pass across all live buttons, for
	// example equalizing widths.
	Normalize(btns []Button)
}

// NopAppearance ignores all styling requests. It is the default when a
// Registry is built without WithAppearance.
type NopAppearance struct{}

var _ Appearance = NopAppearance{}

func (NopAppearance) Update(Button, State) {}
func (NopAppearance) Normalize([]Button)   {}
