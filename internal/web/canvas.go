//go:build js && wasm

package web

import (
	"image/color"
	"syscall/js"

	"lifeview/internal/render"
)

// Canvas draws through a CanvasRenderingContext2D.
type Canvas struct {
	ctx js.Value
}

// NewCanvas wraps the 2d context of el.
func NewCanvas(el js.Value) *Canvas {
	return &Canvas{ctx: el.Call("getContext", "2d")}
}

func (c *Canvas) BeginPath() { c.ctx.Call("beginPath") }

func (c *Canvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }

func (c *Canvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }

func (c *Canvas) Stroke(clr color.Color) {
	c.ctx.Set("strokeStyle", cssColor(clr))
	c.ctx.Call("stroke")
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.ctx.Set("fillStyle", cssColor(clr))
	c.ctx.Call("fillRect", x, y, w, h)
}

func cssColor(c color.Color) string {
	return render.Hex(color.RGBAModel.Convert(c).(color.RGBA))
}
