package crest

// Callback wraps an action callback func so it has a stable identity. Two
// wrappers are the same registry entry only when they are the same
// pointer: keep the *Callback you registered if you intend to remove it
// later. Wrapping the same func twice yields two distinct entries.
type Callback struct {
	fn func(Event)
}

// NewCallback wraps fn for registration. A nil fn is a programming error
// and panics.
func NewCallback(fn func(Event)) *Callback {
	if fn == nil {
		panic("crest: NewCallback with nil func")
	}
	return &Callback{fn: fn}
}

func (c *Callback) invoke(ev Event) {
	c.fn(ev)
}

// Callbacks is the list form every binding operation accepts. A single
// callback is the one-element list.
type Callbacks []*Callback
