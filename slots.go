package crest

import "slices"

// Position is a normalized screen coordinate in [0,1] on both axes, with
// (0,0) the top-left corner. Hosts project it onto their own geometry.
type Position struct {
	X float64
	Y float64
}

// Origin is the fallback position handed out when the slot table is
// exhausted. Actions placed there share it and may overlap on screen.
var Origin = Position{}

// noSlot marks an action that holds no managed slot.
const noSlot = -1

// DefaultSlotTable returns the stock table: a six-slot column along the
// right edge, filled bottom to top.
func DefaultSlotTable() []Position {
	return []Position{
		{X: 0.92, Y: 0.86},
		{X: 0.92, Y: 0.72},
		{X: 0.92, Y: 0.58},
		{X: 0.92, Y: 0.44},
		{X: 0.92, Y: 0.30},
		{X: 0.92, Y: 0.16},
	}
}

// slotAllocator hands out indices into a fixed position table. It is not
// safe for concurrent use; the registry serializes access through its own
// lock.
type slotAllocator struct {
	table []Position
	taken []bool
}

func newSlotAllocator(table []Position) *slotAllocator {
	return &slotAllocator{
		table: slices.Clone(table),
		taken: make([]bool, len(table)),
	}
}

// allocate returns a free slot index and its position, marking it taken.
// A valid hint is honored without a free check: only the action that just
// vacated a slot passes it back, so the slot cannot be held by anyone
// else. When the table is exhausted it returns noSlot and Origin and
// marks nothing.
func (a *slotAllocator) allocate(hint int) (int, Position) {
	if hint >= 0 && hint < len(a.table) {
		a.taken[hint] = true
		return hint, a.table[hint]
	}
	for i := range a.table {
		if !a.taken[i] {
			a.taken[i] = true
			return i, a.table[i]
		}
	}
	return noSlot, Origin
}

// release frees a slot index. noSlot, out-of-range and already-free
// indices are all ignored, so releasing twice is harmless.
func (a *slotAllocator) release(i int) {
	if i >= 0 && i < len(a.taken) {
		a.taken[i] = false
	}
}

// size returns the table capacity.
func (a *slotAllocator) size() int {
	return len(a.table)
}
