package app

import (
	"strconv"

	"lifeview/internal/input"
	"lifeview/internal/ui"
)

// Control names one of the UI affordances the controller updates.
type Control int

const (
	ControlPlayPause Control = iota
	ControlSpeed
	ControlReset
	ControlRandom
)

func (c Control) String() string {
	switch c {
	case ControlPlayPause:
		return "play-pause"
	case ControlSpeed:
		return "speed"
	case ControlReset:
		return "reset"
	case ControlRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Button glyphs.
const (
	GlyphPlay   = "▶"
	GlyphPause  = "⏸"
	GlyphReset  = "🔁"
	GlyphRandom = "🎲"
)

// Surface is the set of visible controls a host exposes.
type Surface interface {
	SetLabel(c Control, label string)
}

// Labels is an in-memory Surface for hosts that render labels themselves.
type Labels map[Control]string

func (l Labels) SetLabel(c Control, label string) { l[c] = label }

// EchoGuard wraps a Surface so a control being edited by the user is not
// rewritten by the updates its own edits trigger.
type EchoGuard struct {
	Surface
	quiet map[Control]bool
}

// NewEchoGuard wraps s.
func NewEchoGuard(s Surface) *EchoGuard {
	return &EchoGuard{Surface: s, quiet: map[Control]bool{}}
}

func (g *EchoGuard) SetLabel(c Control, label string) {
	if g.quiet[c] {
		return
	}
	g.Surface.SetLabel(c, label)
}

// Quiet runs fn with label writes to c suppressed.
func (g *EchoGuard) Quiet(c Control, fn func() error) error {
	g.quiet[c] = true
	defer delete(g.quiet, c)
	return fn()
}

// FormatFPS renders a speed value for display.
func FormatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// DesktopCanvasRect is where the desktop window shows a w*h canvas: directly
// below the control bar, unscaled.
func DesktopCanvasRect(w, h int) input.Rect {
	return input.Rect{Top: ui.BarHeight, Width: float64(w), Height: float64(h)}
}
