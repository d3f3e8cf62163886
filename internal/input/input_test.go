package input

import (
	"testing"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// newMapper covers 64x64 cells of 10px, a 705x705 backing store.
func newMapper() Mapper {
	grid := core.Size{W: 64, H: 64}
	vp := render.Viewport{CellSize: 10}
	w, h := vp.CanvasSize(grid)
	return Mapper{Grid: grid, CanvasW: w, CanvasH: h, Pitch: vp.Pitch()}
}

func TestMapperUnscaled(t *testing.T) {
	m := newMapper()
	rect := Rect{Left: 20, Top: 30, Width: float64(m.CanvasW), Height: float64(m.CanvasH)}
	tests := []struct {
		x, y     float64
		row, col int
	}{
		{20, 30, 0, 0},
		{20 + 10.9, 30 + 10.9, 0, 0},
		{20 + 11, 30 + 22, 2, 1},
		{20 + 703, 30 + 703, 63, 63},
		{20 + 704, 30 + 704, 63, 63},
	}
	for _, tt := range tests {
		row, col := m.Cell(Pointer{X: tt.x, Y: tt.y}, rect)
		if row != tt.row || col != tt.col {
			t.Errorf("Cell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}

func TestMapperScaled(t *testing.T) {
	m := newMapper()
	// Displayed at half size: every CSS pixel covers two canvas pixels.
	rect := Rect{Left: 0, Top: 0, Width: float64(m.CanvasW) / 2, Height: float64(m.CanvasH) / 2}
	row, col := m.Cell(Pointer{X: 11, Y: 5.5}, rect)
	if row != 1 || col != 2 {
		t.Fatalf("scaled Cell = (%d,%d), want (1,2)", row, col)
	}
}

func TestMapperLastPixelClamps(t *testing.T) {
	m := newMapper()
	if m.CanvasW != 705 || m.CanvasH != 705 {
		t.Fatalf("canvas = %dx%d, want 705x705", m.CanvasW, m.CanvasH)
	}
	rect := Rect{Width: float64(m.CanvasW), Height: float64(m.CanvasH)}
	row, col := m.Cell(Pointer{X: 704, Y: 704}, rect)
	if row != 63 || col != 63 {
		t.Fatalf("far edge = (%d,%d), want (63,63)", row, col)
	}
}

func TestMapperOutOfBounds(t *testing.T) {
	m := newMapper()
	rect := Rect{Left: 100, Top: 100, Width: float64(m.CanvasW), Height: float64(m.CanvasH)}
	tests := []struct {
		x, y     float64
		row, col int
	}{
		{-50, -50, 0, 0},
		{99, 500, 36, 0},
		{5000, 101, 0, 63},
		{5000, 5000, 63, 63},
	}
	for _, tt := range tests {
		row, col := m.Cell(Pointer{X: tt.x, Y: tt.y}, rect)
		if row < 0 || row >= 64 || col < 0 || col >= 64 {
			t.Fatalf("Cell(%v,%v) = (%d,%d) out of range", tt.x, tt.y, row, col)
		}
		if row != tt.row || col != tt.col {
			t.Errorf("Cell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}

func TestDecidePrecedence(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want Action
	}{
		{Modifiers{}, ActionToggle},
		{Modifiers{Shift: true}, ActionPulsar},
		{Modifiers{Ctrl: true}, ActionGlider},
		{Modifiers{Ctrl: true, Shift: true}, ActionGlider},
	}
	for _, tt := range tests {
		if got := Decide(tt.mods); got != tt.want {
			t.Errorf("Decide(%+v) = %v, want %v", tt.mods, got, tt.want)
		}
	}
}
