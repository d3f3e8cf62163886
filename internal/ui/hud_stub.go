//go:build !ebiten

package ui

// HUD is a label store for headless builds.
type HUD struct {
	width  int
	labels map[Button]string
	status string
}

// NewHUD returns a HUD that only records labels.
func NewHUD(width int) *HUD { return &HUD{width: width, labels: map[Button]string{}} }

// SetLabel records the caption of a button.
func (h *HUD) SetLabel(id Button, label string) { h.labels[id] = label }

// Label returns the caption text the bar would draw.
func (h *HUD) Label(id Button) string { return asciiLabel(h.labels[id]) }

// SetStatus records the status text.
func (h *HUD) SetStatus(s string) { h.status = s }

// Contains reports whether (x, y) falls on the bar.
func (h *HUD) Contains(x, y int) bool {
	return x >= 0 && x < h.width && y >= 0 && y < BarHeight
}

// Update never reports clicks in the headless build.
func (h *HUD) Update() (Button, bool) { return 0, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
