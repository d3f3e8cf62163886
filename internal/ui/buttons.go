// Package ui draws the desktop control bar.
package ui

// BarHeight is the height in pixels of the control bar.
const BarHeight = 32

// Button identifies one control on the bar.
type Button int

const (
	ButtonPlayPause Button = iota
	ButtonSlower
	ButtonFaster
	ButtonReset
	ButtonRandom
)

var buttonOrder = []Button{ButtonPlayPause, ButtonSlower, ButtonFaster, ButtonReset, ButtonRandom}

func (b Button) String() string {
	switch b {
	case ButtonPlayPause:
		return "play"
	case ButtonSlower:
		return "-"
	case ButtonFaster:
		return "+"
	case ButtonReset:
		return "reset"
	case ButtonRandom:
		return "random"
	default:
		return "?"
	}
}

// basicfont only covers ASCII, so glyph labels get text stand-ins.
var asciiLabels = map[string]string{
	"▶":  ">",
	"⏸":  "||",
	"🔁": "reset",
	"🎲": "rand",
}

func asciiLabel(label string) string {
	if s, ok := asciiLabels[label]; ok {
		return s
	}
	return label
}
