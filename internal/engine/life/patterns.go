package life

// Patterns are listed as (row, col) offsets from the anchor cell.
var (
	glider = [][2]int{
		{-1, 0},
		{0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	pulsar = buildPulsar()
)

// buildPulsar mirrors one quadrant of the period-3 pulsar around its center.
func buildPulsar() [][2]int {
	quadrant := [][2]int{
		{-6, -4}, {-6, -3}, {-6, -2},
		{-4, -6}, {-3, -6}, {-2, -6},
		{-4, -1}, {-3, -1}, {-2, -1},
		{-1, -4}, {-1, -3}, {-1, -2},
	}
	out := make([][2]int, 0, 4*len(quadrant))
	for _, sr := range []int{1, -1} {
		for _, sc := range []int{1, -1} {
			for _, rc := range quadrant {
				out = append(out, [2]int{rc[0] * sr, rc[1] * sc})
			}
		}
	}
	return out
}

// InsertGlider stamps a south-east travelling glider centered on (row, col).
func (u *Universe) InsertGlider(row, col int) {
	u.stamp(glider, row, col)
}

// InsertPulsar stamps a pulsar centered on (row, col).
func (u *Universe) InsertPulsar(row, col int) {
	u.stamp(pulsar, row, col)
}

func (u *Universe) stamp(pattern [][2]int, row, col int) {
	cells := make([][2]int, len(pattern))
	for i, rc := range pattern {
		cells[i] = [2]int{row + rc[0], col + rc[1]}
	}
	u.Set(cells)
}
