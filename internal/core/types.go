package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the grid.
func (s Size) Cells() int { return s.W * s.H }

// Cell is the value stored for a single grid position.
type Cell = uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// InitMode selects how a freshly created engine fills its grid.
type InitMode int

const (
	// InitEmpty starts with every cell dead.
	InitEmpty InitMode = iota
	// InitRandom fills cells alive with a configured density.
	InitRandom
	// InitPattern seeds a fixed striped pattern.
	InitPattern
)

// String returns the config spelling of the mode.
func (m InitMode) String() string {
	switch m {
	case InitEmpty:
		return "empty"
	case InitRandom:
		return "random"
	case InitPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// ParseInitMode converts a config string into an InitMode.
func ParseInitMode(s string) (InitMode, bool) {
	switch s {
	case "empty":
		return InitEmpty, true
	case "random":
		return InitRandom, true
	case "pattern":
		return InitPattern, true
	default:
		return InitEmpty, false
	}
}

// Engine is the contract the controller needs from a cellular automaton.
// Cells returns a borrowed row-major buffer of Width*Height bytes that stays
// valid only as long as the engine itself is in use.
type Engine interface {
	Width() int
	Height() int
	Tick()
	Cells() []uint8
	ToggleCell(row, col int)
	InsertGlider(row, col int)
	InsertPulsar(row, col int)
	SetWidth(w int)
}

// Factory constructs an Engine in the requested mode. Density only applies
// to InitRandom.
type Factory func(mode InitMode, density float64) Engine

// Builder produces a Factory bound to grid dimensions and a seed source.
type Builder func(size Size, seed func() int64) Factory

var engines = map[string]Builder{}

// Register adds an engine builder under the provided name.
func Register(name string, b Builder) {
	if name == "" || b == nil {
		return
	}
	engines[name] = b
}

// Engines exposes the registry of available engine builders.
func Engines() map[string]Builder {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
