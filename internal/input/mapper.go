// Package input turns pointer events into grid cells and click actions.
package input

import (
	"math"

	"lifeview/internal/core"
)

// Rect is the on-screen bounding box the canvas is displayed in, which may
// be scaled relative to the canvas backing store.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Pointer is a click position in the same coordinate space as Rect.
type Pointer struct {
	X, Y float64
	Mods Modifiers
}

// Mapper converts pointer positions to (row, col) pairs.
type Mapper struct {
	Grid    core.Size
	CanvasW int
	CanvasH int
	Pitch   int
}

// Cell maps p to the grid cell under it. Positions outside the canvas
// clamp to the nearest edge cell.
func (m Mapper) Cell(p Pointer, rect Rect) (row, col int) {
	scaleX, scaleY := 1.0, 1.0
	if rect.Width > 0 {
		scaleX = float64(m.CanvasW) / rect.Width
	}
	if rect.Height > 0 {
		scaleY = float64(m.CanvasH) / rect.Height
	}

	x := (p.X - rect.Left) * scaleX
	y := (p.Y - rect.Top) * scaleY

	pitch := float64(m.Pitch)
	row = clamp(int(math.Floor(y/pitch)), m.Grid.H-1)
	col = clamp(int(math.Floor(x/pitch)), m.Grid.W-1)
	return row, col
}

func clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}
