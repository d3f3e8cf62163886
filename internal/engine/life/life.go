package life

import (
	"fmt"
	"strings"

	"lifeview/internal/core"
)

// Rule encodes a Life-like birth/survival rule as neighbor-count bitmasks.
type Rule struct {
	Birth   uint16
	Survive uint16
}

var (
	// Conway is the standard B3/S23 rule.
	Conway = MustParseRule("B3/S23")
	// HighLife is B36/S23, which adds a replicator.
	HighLife = MustParseRule("B36/S23")
)

// ParseRule reads a rule in B/S notation, e.g. "B3/S23".
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, fmt.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	var r Rule
	for _, ch := range parts[0][1:] {
		if ch < '0' || ch > '8' {
			return Rule{}, fmt.Errorf("rule %q: bad birth count %q", s, ch)
		}
		r.Birth |= 1 << (ch - '0')
	}
	for _, ch := range parts[1][1:] {
		if ch < '0' || ch > '8' {
			return Rule{}, fmt.Errorf("rule %q: bad survival count %q", s, ch)
		}
		r.Survive |= 1 << (ch - '0')
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level constants.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) next(alive bool, neighbors int) uint8 {
	mask := r.Birth
	if alive {
		mask = r.Survive
	}
	if mask&(1<<neighbors) != 0 {
		return core.Alive
	}
	return core.Dead
}

// Universe implements a Life-like automaton with toroidal wrapping.
type Universe struct {
	w, h int
	rule Rule
	cur  []uint8
	nxt  []uint8
}

// New returns an empty universe with the provided dimensions.
func New(w, h int, rule Rule) *Universe {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]uint8, w*h)
	return &Universe{w: w, h: h, rule: rule, cur: cells, nxt: make([]uint8, len(cells))}
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells exposes the current grid values.
func (u *Universe) Cells() []uint8 { return u.cur }

// Seed fills the grid according to mode.
func (u *Universe) Seed(mode core.InitMode, density float64, seed int64) {
	switch mode {
	case core.InitRandom:
		core.FillDensity(core.NewRNG(seed), u.cur, density)
	case core.InitPattern:
		for i := range u.cur {
			u.cur[i] = core.Dead
			if i%2 == 0 || i%7 == 0 {
				u.cur[i] = core.Alive
			}
		}
	default:
		clear(u.cur)
	}
}

// SetWidth resizes the grid horizontally and kills every cell.
func (u *Universe) SetWidth(w int) {
	if w <= 0 {
		w = 1
	}
	u.w = w
	u.cur = make([]uint8, u.w*u.h)
	u.nxt = make([]uint8, len(u.cur))
}

// ToggleCell flips a single cell.
func (u *Universe) ToggleCell(row, col int) {
	idx := u.index(row, col)
	if u.cur[idx] == core.Alive {
		u.cur[idx] = core.Dead
		return
	}
	u.cur[idx] = core.Alive
}

// Set marks the given cells alive, wrapping coordinates around the edges.
func (u *Universe) Set(cells [][2]int) {
	for _, rc := range cells {
		u.cur[u.index(rc[0], rc[1])] = core.Alive
	}
}

// Tick advances the simulation by one generation.
func (u *Universe) Tick() {
	w, h := u.w, u.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(u.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			u.nxt[idx] = u.rule.next(u.cur[idx] == core.Alive, neighbors)
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

func (u *Universe) index(row, col int) int {
	row = (row%u.h + u.h) % u.h
	col = (col%u.w + u.w) % u.w
	return core.Index(u.w, row, col)
}

func builder(rule Rule) core.Builder {
	return func(size core.Size, seed func() int64) core.Factory {
		return func(mode core.InitMode, density float64) core.Engine {
			u := New(size.W, size.H, rule)
			u.Seed(mode, density, seed())
			return u
		}
	}
}

func init() {
	core.Register("life", builder(Conway))
	core.Register("highlife", builder(HighLife))
}
