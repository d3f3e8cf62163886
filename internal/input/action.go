package input

// Modifiers records which modifier keys were held during a click.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// Action is what a canvas click does to the cell under the pointer.
type Action int

const (
	// ActionToggle flips a single cell.
	ActionToggle Action = iota
	// ActionGlider stamps a glider anchored at the cell.
	ActionGlider
	// ActionPulsar stamps a pulsar anchored at the cell.
	ActionPulsar
)

func (a Action) String() string {
	switch a {
	case ActionGlider:
		return "glider"
	case ActionPulsar:
		return "pulsar"
	default:
		return "toggle"
	}
}

// Decide picks the click action. Ctrl wins over Shift.
func Decide(m Modifiers) Action {
	switch {
	case m.Ctrl:
		return ActionGlider
	case m.Shift:
		return ActionPulsar
	default:
		return ActionToggle
	}
}
