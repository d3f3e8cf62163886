package render

import (
	"image/color"

	"lifeview/internal/core"
)

// Canvas is the drawing surface the grid renderer paints onto. Coordinates
// are in backing-store pixels with the origin at the top-left corner.
type Canvas interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

// Viewport fixes the on-canvas size of a single cell.
type Viewport struct {
	CellSize int
}

// Pitch is the distance in pixels between the starts of adjacent cells.
func (v Viewport) Pitch() int { return v.CellSize + 1 }

// Extent returns the canvas length needed for n cells plus their borders.
func (v Viewport) Extent(n int) int { return v.Pitch()*n + 1 }

// CanvasSize returns the canvas pixel dimensions for a grid.
func (v Viewport) CanvasSize(size core.Size) (w, h int) {
	return v.Extent(size.W), v.Extent(size.H)
}
