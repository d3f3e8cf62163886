package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// Raster is a Canvas backed by an in-memory RGBA image.
type Raster struct {
	img  *image.RGBA
	path []segment
	penX float64
	penY float64
}

// NewRaster allocates a raster canvas of w*h pixels.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) color.RGBA { return r.img.RGBAAt(x, y) }

func (r *Raster) BeginPath() { r.path = r.path[:0] }

func (r *Raster) MoveTo(x, y float64) { r.penX, r.penY = x, y }

func (r *Raster) LineTo(x, y float64) {
	r.path = append(r.path, segment{r.penX, r.penY, x, y})
	r.penX, r.penY = x, y
}

// Stroke draws every segment of the current path one pixel wide.
func (r *Raster) Stroke(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for _, s := range r.path {
		r.line(s, rgba)
	}
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	)
	draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// line walks the segment in unit steps, lighting the pixel that contains
// each sample point.
func (r *Raster) line(s segment, c color.RGBA) {
	dx, dy := s.x1-s.x0, s.y1-s.y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		r.plot(s.x0, s.y0, c)
		return
	}
	for i := 0; i < steps; i++ {
		t := (float64(i) + 0.5) / float64(steps)
		r.plot(s.x0+dx*t, s.y0+dy*t, c)
	}
}

func (r *Raster) plot(x, y float64, c color.RGBA) {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if image.Pt(px, py).In(r.img.Bounds()) {
		r.img.SetRGBA(px, py, c)
	}
}
