package core

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleView is returned when a CellView outlives the engine it was taken from.
	ErrStaleView = errors.New("cell view belongs to a replaced engine")
	// ErrBufferSize is returned when an engine buffer does not match its dimensions.
	ErrBufferSize = errors.New("cell buffer length does not match grid size")
)

// Index returns the row-major linear index for (row, col) in a grid of the given width.
func Index(width, row, col int) int { return row*width + col }

// Coords is the inverse of Index.
func Coords(width, idx int) (row, col int) { return idx / width, idx % width }

// Slot owns the current engine handle. Every Replace advances the
// generation so views taken from the previous engine are rejected.
type Slot struct {
	engine Engine
	gen    uint64
}

// NewSlot wraps the initial engine.
func NewSlot(e Engine) *Slot {
	return &Slot{engine: e, gen: 1}
}

// Engine returns the engine currently held by the slot.
func (s *Slot) Engine() Engine { return s.engine }

// Generation reports how many engines the slot has held.
func (s *Slot) Generation() uint64 { return s.gen }

// Size returns the dimensions of the current engine.
func (s *Slot) Size() Size {
	return Size{W: s.engine.Width(), H: s.engine.Height()}
}

// Replace swaps in a new engine and invalidates outstanding views.
func (s *Slot) Replace(e Engine) {
	s.engine = e
	s.gen++
}

// Invalidate rejects outstanding views without swapping the engine, for
// operations that reallocate the engine's buffer in place.
func (s *Slot) Invalidate() {
	s.gen++
}

// View returns a capability for reading the current engine's cells.
func (s *Slot) View() CellView {
	return CellView{slot: s, gen: s.gen}
}

// CellView is a generation-tagged handle on an engine's cell buffer.
type CellView struct {
	slot *Slot
	gen  uint64
}

// Size returns the grid dimensions behind the view.
func (v CellView) Size() Size { return v.slot.Size() }

// Valid reports whether the engine the view was taken from is still current.
func (v CellView) Valid() bool { return v.slot != nil && v.slot.gen == v.gen }

// Cells re-reads the engine buffer. The returned slice must not be retained
// past the next engine replacement.
func (v CellView) Cells() ([]uint8, error) {
	if !v.Valid() {
		return nil, ErrStaleView
	}
	size := v.slot.Size()
	cells := v.slot.engine.Cells()
	if len(cells) != size.Cells() {
		return nil, fmt.Errorf("%w: got %d, want %dx%d", ErrBufferSize, len(cells), size.W, size.H)
	}
	return cells, nil
}

// Population counts live cells in the buffer.
func Population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != Dead {
			n++
		}
	}
	return n
}
