package render

import (
	"fmt"

	"lifeview/internal/core"
)

// GridRenderer paints grid lines and cell states onto a Canvas.
type GridRenderer struct {
	viewport Viewport
	palette  Palette
}

// NewGridRenderer returns a renderer using the given cell geometry and colors.
func NewGridRenderer(vp Viewport, p Palette) *GridRenderer {
	return &GridRenderer{viewport: vp, palette: p}
}

// Viewport returns the cell geometry used by the renderer.
func (r *GridRenderer) Viewport() Viewport { return r.viewport }

// Palette returns the renderer colors.
func (r *GridRenderer) Palette() Palette { return r.palette }

// Render re-acquires the cell buffer from view and repaints the whole grid.
func (r *GridRenderer) Render(dst Canvas, view core.CellView) error {
	cells, err := view.Cells()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	size := view.Size()
	r.DrawGrid(dst, size)
	r.DrawCells(dst, size, cells)
	return nil
}

// DrawGrid strokes the cell boundary lines in a single path. Lines sit on
// pixel centers so they stay one pixel wide.
func (r *GridRenderer) DrawGrid(dst Canvas, size core.Size) {
	pitch := float64(r.viewport.Pitch())
	w, h := r.viewport.CanvasSize(size)

	dst.BeginPath()
	for i := 0; i <= size.W; i++ {
		x := float64(i)*pitch + 0.5
		dst.MoveTo(x, 0)
		dst.LineTo(x, float64(h))
	}
	for j := 0; j <= size.H; j++ {
		y := float64(j)*pitch + 0.5
		dst.MoveTo(0, y)
		dst.LineTo(float64(w), y)
	}
	dst.Stroke(r.palette.Grid)
}

// DrawCells fills every cell inset by one pixel from its top-left border.
func (r *GridRenderer) DrawCells(dst Canvas, size core.Size, cells []uint8) {
	pitch := r.viewport.Pitch()
	cs := float64(r.viewport.CellSize)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			idx := core.Index(size.W, row, col)
			dst.FillRect(
				float64(col*pitch+1),
				float64(row*pitch+1),
				cs, cs,
				r.palette.Cell(cells[idx]),
			)
		}
	}
}
