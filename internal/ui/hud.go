//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control bar above the grid and reports button clicks.
type HUD struct {
	width   int
	panel   *ebiten.Image
	pixel   *ebiten.Image
	buttons []hudButton
	status  string
}

type hudButton struct {
	id    Button
	label string
	rect  image.Rectangle
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, id := range buttonOrder {
		h.buttons = append(h.buttons, hudButton{id: id, label: id.String()})
	}
	h.layoutButtons()
	return h
}

// SetLabel replaces the caption of a button.
func (h *HUD) SetLabel(id Button, label string) {
	for i := range h.buttons {
		if h.buttons[i].id == id {
			h.buttons[i].label = label
			return
		}
	}
}

// SetStatus sets the text shown to the right of the buttons.
func (h *HUD) SetStatus(s string) { h.status = s }

// Update returns the button clicked this frame, if any.
func (h *HUD) Update() (Button, bool) {
	if h == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	mx, my := ebiten.CursorPosition()
	for _, b := range h.buttons {
		if pointInRect(mx, my, b.rect) {
			return b.id, true
		}
	}
	return 0, false
}

// Contains reports whether (x, y) falls on the bar.
func (h *HUD) Contains(x, y int) bool {
	return x >= 0 && x < h.width && y >= 0 && y < BarHeight
}

// Draw paints the bar at the top of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, BarHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, b := range h.buttons {
		h.drawButton(b.rect, asciiLabel(b.label))
	}
	if h.status != "" && len(h.buttons) > 0 {
		last := h.buttons[len(h.buttons)-1].rect
		text.Draw(h.panel, h.status, basicfont.Face7x13, last.Max.X+buttonGap*2, BarHeight/2+5, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutButtons() {
	x := buttonGap
	y := (BarHeight - buttonHeight) / 2
	for i := range h.buttons {
		w := buttonWidth
		if h.buttons[i].id == ButtonSlower || h.buttons[i].id == ButtonFaster {
			w = buttonHeight
		}
		h.buttons[i].rect = image.Rect(x, y, x+w, y+buttonHeight)
		x += w + buttonGap
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	buttonWidth  = 48
	buttonHeight = 22
	buttonGap    = 6
)
