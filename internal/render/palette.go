package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lifeview/internal/core"
)

// Palette holds the colors used for grid lines and both cell states.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette draws black cells on white with light gray grid lines.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		Dead:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	}
}

// Cell returns the fill color for a cell value.
func (p Palette) Cell(c uint8) color.RGBA {
	if c == core.Dead {
		return p.Dead
	}
	return p.Alive
}

// ParseHex parses "#RGB" or "#RRGGBB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RGB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Hex formats a color as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
