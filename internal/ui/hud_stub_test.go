//go:build !ebiten

package ui

import "testing"

func TestHeadlessHUDLabels(t *testing.T) {
	h := NewHUD(100)
	h.SetLabel(ButtonPlayPause, "⏸")
	h.SetLabel(ButtonRandom, "🎲")
	if got := h.Label(ButtonPlayPause); got != "||" {
		t.Fatalf("play/pause label = %q", got)
	}
	if got := h.Label(ButtonRandom); got != "rand" {
		t.Fatalf("random label = %q", got)
	}
	if _, ok := h.Update(); ok {
		t.Fatal("headless HUD reported a click")
	}
}

func TestHUDContains(t *testing.T) {
	h := NewHUD(100)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{99, BarHeight - 1, true},
		{100, 0, false},
		{10, BarHeight, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := h.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
