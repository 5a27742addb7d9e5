package teahost

import (
	"sync"
	"time"

	"github.com/llehouerou/crest"
)

// pressFlash is how long a routed press keeps a button rendered in its
// pressed style. Terminals report no key release, so the view decays the
// state itself when no appearance update settles it first.
const pressFlash = 250 * time.Millisecond

// Button is an on-screen touch button. The registry customizes it through
// the crest.Button interface while the host lays it out and renders it.
type Button struct {
	mu      sync.Mutex
	name    string
	title   string
	image   crest.ImageRef
	pos     crest.Position
	desc    string
	state   crest.State
	stateAt time.Time
	width   int  // normalized label width set by the consistency pass
	area    rect // last rendered cell area, for mouse hit tests
}

var _ crest.Button = (*Button)(nil)

// rect is a cell-coordinate rectangle.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func newButton(name string) *Button {
	return &Button{
		name:  name,
		title: name,
		state: crest.StateReleased,
	}
}

func (b *Button) SetTitle(title string) {
	b.mu.Lock()
	b.title = title
	b.mu.Unlock()
}

func (b *Button) SetImage(img crest.ImageRef) {
	b.mu.Lock()
	b.image = img
	b.mu.Unlock()
}

func (b *Button) SetPosition(pos crest.Position) {
	b.mu.Lock()
	b.pos = pos
	b.mu.Unlock()
}

func (b *Button) SetDescription(desc string) {
	b.mu.Lock()
	b.desc = desc
	b.mu.Unlock()
}

// Name returns the action the button belongs to.
func (b *Button) Name() string {
	return b.name
}

// Title returns the label text, which defaults to the action name.
func (b *Button) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

// Image returns the button's image name.
func (b *Button) Image() crest.ImageRef {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.image
}

// Position returns the normalized screen position.
func (b *Button) Position() crest.Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos
}

// Description returns the long description, shown in help views.
func (b *Button) Description() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.desc
}

// setState records an input state for rendering.
func (b *Button) setState(st crest.State) {
	b.mu.Lock()
	b.state = st
	b.stateAt = time.Now()
	b.mu.Unlock()
}

// visualState returns the state to render at now. Pressed and repeated
// decay to released once the flash window passes.
func (b *Button) visualState(now time.Time) crest.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == crest.StatePressed || b.state == crest.StateRepeated {
		if now.Sub(b.stateAt) > pressFlash {
			return crest.StateReleased
		}
	}
	return b.state
}

func (b *Button) setLabelWidth(w int) {
	b.mu.Lock()
	b.width = w
	b.mu.Unlock()
}

func (b *Button) labelWidth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

func (b *Button) setArea(r rect) {
	b.mu.Lock()
	b.area = r
	b.mu.Unlock()
}

func (b *Button) hitTest(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.area.contains(x, y)
}
