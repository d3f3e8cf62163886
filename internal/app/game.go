//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"lifeview/internal/input"
	"lifeview/internal/log"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface. Ebiten's Update
// is the frame timer: each call fires the callback the scheduler requested.
type Game struct {
	ctrl   *Controller
	hud    *ui.HUD
	canvas *render.ImageCanvas

	pending FrameFunc
	handle  FrameHandle
	next    FrameHandle

	speed string
	title string
}

// NewGame builds the controller described by cfg on top of ebiten.
func NewGame(cfg *Config, logger *log.Logger) (*Game, error) {
	w, h := cfg.CanvasSize()
	g := &Game{
		hud:    ui.NewHUD(w),
		canvas: &render.ImageCanvas{Target: ebiten.NewImage(w, h)},
		title:  cfg.Engine,
	}
	ctrl, err := cfg.NewController(g, g.canvas, hudSurface{g}, logger)
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	return g, nil
}

// Run opens the window and blocks until it is closed. Playback starts
// immediately unless paused is set.
func (g *Game) Run(paused bool) error {
	if err := g.ctrl.Start(paused); err != nil {
		return err
	}
	w, h := g.WindowSize()
	ebiten.SetWindowTitle("lifeview: " + g.title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// WindowSize returns the logical size of the window content.
func (g *Game) WindowSize() (int, int) {
	w, h := g.ctrl.CanvasSize()
	return w, h + ui.BarHeight
}

func (g *Game) Now() time.Time { return time.Now() }

func (g *Game) RequestFrame(fn FrameFunc) FrameHandle {
	g.next++
	g.pending = fn
	g.handle = g.next
	return g.handle
}

func (g *Game) CancelFrame(h FrameHandle) {
	if h == g.handle {
		g.pending = nil
		g.handle = 0
	}
}

// Update handles input and fires the pending frame callback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.handleKeys(); err != nil {
		return err
	}
	if err := g.handleMouse(); err != nil {
		return err
	}
	if fn := g.pending; fn != nil {
		g.pending = nil
		g.handle = 0
		if err := fn(time.Now()); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
	}
	if st, err := g.ctrl.Stats(); err == nil {
		g.hud.SetStatus(fmt.Sprintf("%s fps  gen %d  pop %d", g.speed, st.Generation, st.Population))
	}
	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return g.ctrl.TogglePlayback()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.ctrl.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		return g.ctrl.Randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return g.nudgeSpeed(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return g.nudgeSpeed(-1)
	}
	return nil
}

func (g *Game) handleMouse() error {
	if id, ok := g.hud.Update(); ok {
		switch id {
		case ui.ButtonPlayPause:
			return g.ctrl.TogglePlayback()
		case ui.ButtonSlower:
			return g.nudgeSpeed(-1)
		case ui.ButtonFaster:
			return g.nudgeSpeed(1)
		case ui.ButtonReset:
			return g.ctrl.Reset()
		case ui.ButtonRandom:
			return g.ctrl.Randomize()
		}
		return nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return nil
	}
	w, h := g.ctrl.CanvasSize()
	p := input.Pointer{
		X: float64(mx),
		Y: float64(my),
		Mods: input.Modifiers{
			Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
			Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		},
	}
	return g.ctrl.Click(p, DesktopCanvasRect(w, h))
}

func (g *Game) nudgeSpeed(dir float64) error {
	fps := g.ctrl.Scheduler().FPS() + dir
	if fps < 1 {
		return nil
	}
	if fps > 60 {
		fps = 60
	}
	return g.ctrl.SetSpeed(fps)
}

// Draw presents the offscreen grid below the control bar. The grid image
// itself is only repainted by the controller after ticks and mutations.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	rect := DesktopCanvasRect(g.ctrl.CanvasSize())
	op.GeoM.Translate(rect.Left, rect.Top)
	screen.DrawImage(g.canvas.Target, op)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

type hudSurface struct{ g *Game }

func (s hudSurface) SetLabel(c Control, label string) {
	switch c {
	case ControlPlayPause:
		s.g.hud.SetLabel(ui.ButtonPlayPause, label)
	case ControlReset:
		s.g.hud.SetLabel(ui.ButtonReset, label)
	case ControlRandom:
		s.g.hud.SetLabel(ui.ButtonRandom, label)
	case ControlSpeed:
		s.g.speed = label
	}
}
