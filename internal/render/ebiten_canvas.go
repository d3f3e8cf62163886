//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageCanvas adapts an offscreen ebiten image to the Canvas interface.
type ImageCanvas struct {
	Target *ebiten.Image

	path []segment
	penX float64
	penY float64
}

func (c *ImageCanvas) BeginPath() { c.path = c.path[:0] }

func (c *ImageCanvas) MoveTo(x, y float64) { c.penX, c.penY = x, y }

func (c *ImageCanvas) LineTo(x, y float64) {
	c.path = append(c.path, segment{c.penX, c.penY, x, y})
	c.penX, c.penY = x, y
}

func (c *ImageCanvas) Stroke(clr color.Color) {
	if c.Target == nil {
		return
	}
	for _, s := range c.path {
		vector.StrokeLine(c.Target,
			float32(s.x0), float32(s.y0),
			float32(s.x1), float32(s.y1),
			1, clr, false)
	}
}

func (c *ImageCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.Target == nil {
		return
	}
	vector.DrawFilledRect(c.Target, float32(x), float32(y), float32(w), float32(h), clr, false)
}
