package app

import (
	"errors"
	"testing"
	"time"

	"lifeview/internal/core"
	_ "lifeview/internal/engine/life"
	"lifeview/internal/input"
	"lifeview/internal/render"
)

// countingCanvas wraps a raster and counts full renders, which each begin
// exactly one path for the grid lines.
type countingCanvas struct {
	*render.Raster
	renders int
}

func (c *countingCanvas) BeginPath() {
	c.renders++
	c.Raster.BeginPath()
}

type harness struct {
	ctrl   *Controller
	host   *ManualHost
	canvas *countingCanvas
	labels Labels
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height = 16, 12
	cfg.CellSize = 4
	cfg.Seed = 7
	cfg.InitMode = "empty"
	if mutate != nil {
		mutate(cfg)
	}
	w, h := cfg.CanvasSize()
	canvas := &countingCanvas{Raster: render.NewRaster(w, h)}
	host := NewManualHost(time.Unix(500, 0))
	labels := Labels{}
	ctrl, err := cfg.NewController(host, canvas, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	return &harness{ctrl: ctrl, host: host, canvas: canvas, labels: labels}
}

func (h *harness) cell(t *testing.T, row, col int) uint8 {
	t.Helper()
	cells, err := h.ctrl.View().Cells()
	if err != nil {
		t.Fatal(err)
	}
	return cells[core.Index(h.ctrl.Size().W, row, col)]
}

func TestStartPlaysAndLabels(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.Start(false); err != nil {
		t.Fatal(err)
	}
	if !h.ctrl.Scheduler().Running() {
		t.Fatal("Start(false) should begin playback")
	}
	if h.canvas.renders != 1 {
		t.Fatalf("renders = %d, want the initial frame", h.canvas.renders)
	}
	want := Labels{
		ControlPlayPause: GlyphPause,
		ControlReset:     GlyphReset,
		ControlRandom:    GlyphRandom,
		ControlSpeed:     "5",
	}
	for ctrl, label := range want {
		if h.labels[ctrl] != label {
			t.Errorf("%s label = %q, want %q", ctrl, h.labels[ctrl], label)
		}
	}
}

func TestStartPaused(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.Start(true); err != nil {
		t.Fatal(err)
	}
	if h.ctrl.Scheduler().Running() || h.host.Pending() {
		t.Fatal("Start(true) must not schedule frames")
	}
	if h.labels[ControlPlayPause] != GlyphPlay || h.canvas.renders != 1 {
		t.Fatalf("label=%q renders=%d", h.labels[ControlPlayPause], h.canvas.renders)
	}
}

func TestTogglePlaybackGlyphs(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.Start(false); err != nil {
		t.Fatal(err)
	}
	if err := h.ctrl.TogglePlayback(); err != nil {
		t.Fatal(err)
	}
	if h.labels[ControlPlayPause] != GlyphPlay || h.ctrl.Scheduler().Running() {
		t.Fatal("toggle from running should pause and show the play glyph")
	}
	if err := h.ctrl.TogglePlayback(); err != nil {
		t.Fatal(err)
	}
	if h.labels[ControlPlayPause] != GlyphPause || !h.ctrl.Scheduler().Running() {
		t.Fatal("toggle from paused should play and show the pause glyph")
	}
}

func TestPlainClickTogglesWithOneRedraw(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.Start(true); err != nil {
		t.Fatal(err)
	}
	before := h.canvas.renders

	if err := h.ctrl.ClickCell(3, 4, input.Modifiers{}); err != nil {
		t.Fatal(err)
	}
	if h.cell(t, 3, 4) != core.Alive {
		t.Fatal("plain click should revive a dead cell")
	}
	if h.canvas.renders != before+1 {
		t.Fatalf("renders = %d, want exactly one more", h.canvas.renders-before)
	}

	if err := h.ctrl.ClickCell(3, 4, input.Modifiers{}); err != nil {
		t.Fatal(err)
	}
	if h.cell(t, 3, 4) != core.Dead {
		t.Fatal("second click should restore the dead cell")
	}
}

func TestCtrlShiftClickStampsGliderOnly(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.ClickCell(5, 5, input.Modifiers{Ctrl: true, Shift: true}); err != nil {
		t.Fatal(err)
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Population != 5 {
		t.Fatalf("population = %d, want a lone glider", st.Population)
	}
}

func TestShiftClickStampsPulsar(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Width, c.Height = 20, 20 })
	if err := h.ctrl.ClickCell(10, 10, input.Modifiers{Shift: true}); err != nil {
		t.Fatal(err)
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Population != 48 {
		t.Fatalf("population = %d, want a pulsar", st.Population)
	}
}

func TestClickMapsPointer(t *testing.T) {
	h := newHarness(t, nil)
	w, hh := h.ctrl.CanvasSize()
	// Canvas shown at double size, offset by (10, 20).
	rect := input.Rect{Left: 10, Top: 20, Width: float64(2 * w), Height: float64(2 * hh)}
	// Cell (2, 3) starts at canvas pixel (16, 11); the pointer sits inside it.
	p := input.Pointer{X: 10 + 2*17, Y: 20 + 2*12}
	if err := h.ctrl.Click(p, rect); err != nil {
		t.Fatal(err)
	}
	if h.cell(t, 2, 3) != core.Alive {
		t.Fatal("click did not land on cell (2,3)")
	}
}

func TestFramesAdvanceGenerations(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.ClickCell(5, 5, input.Modifiers{Ctrl: true}); err != nil {
		t.Fatal(err)
	}
	if err := h.ctrl.Start(false); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := h.host.Advance(200 * time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Generation != 4 || st.Population != 5 || !st.Running {
		t.Fatalf("stats = %+v", st)
	}
}

func TestResetClearsAndInvalidatesViews(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.InitMode = "random" })
	old := h.ctrl.View()
	if err := h.ctrl.Reset(); err != nil {
		t.Fatal(err)
	}
	if _, err := old.Cells(); !errors.Is(err, core.ErrStaleView) {
		t.Fatalf("old view err = %v, want ErrStaleView", err)
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Population != 0 || st.Generation != 0 || st.Epoch != 2 {
		t.Fatalf("stats after reset = %+v", st)
	}
	if h.ctrl.Size() != (core.Size{W: 16, H: 12}) {
		t.Fatalf("size changed to %v", h.ctrl.Size())
	}
}

func TestRandomizeReplacesEngine(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Width, c.Height = 40, 40 })
	old := h.ctrl.View()
	before := h.canvas.renders
	if err := h.ctrl.Randomize(); err != nil {
		t.Fatal(err)
	}
	if old.Valid() {
		t.Fatal("view from the replaced engine is still valid")
	}
	if h.canvas.renders != before+1 {
		t.Fatal("randomize should redraw once")
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Epoch != 2 {
		t.Fatalf("epoch = %d after one reseed, want 2", st.Epoch)
	}
	// 30% of 1600 cells.
	if st.Population < 380 || st.Population > 580 {
		t.Fatalf("population %d far from reseed density", st.Population)
	}
}

func TestSetSpeed(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.ctrl.SetSpeed(12); err != nil {
		t.Fatal(err)
	}
	if h.ctrl.Scheduler().FPS() != 12 || h.labels[ControlSpeed] != "12" {
		t.Fatalf("fps=%v label=%q", h.ctrl.Scheduler().FPS(), h.labels[ControlSpeed])
	}
	if err := h.ctrl.SetSpeed(0); !errors.Is(err, core.ErrInvalidFPS) {
		t.Fatalf("SetSpeed(0) err = %v", err)
	}
	if h.ctrl.Scheduler().FPS() != 12 || h.labels[ControlSpeed] != "12" {
		t.Fatal("rejected speed must keep the previous value")
	}
}

func TestSetSpeedRejectsUnrepresentableIntervals(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.FPS = 5 })
	if err := h.ctrl.Start(false); err != nil {
		t.Fatal(err)
	}
	for _, fps := range []float64{2e9, 1e-300} {
		if err := h.ctrl.SetSpeed(fps); !errors.Is(err, core.ErrInvalidFPS) {
			t.Fatalf("SetSpeed(%v) err = %v", fps, err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := h.host.Advance(16 * time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}
	st, err := h.ctrl.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.FPS != 5 || st.Generation != 0 {
		t.Fatalf("fps=%v generation=%d after 80ms at 5 fps", st.FPS, st.Generation)
	}
}

func TestNewControllerRejectsBadBuffer(t *testing.T) {
	eng := &shortEngine{}
	_, err := NewController(Options{
		Engine:   eng,
		Host:     NewManualHost(time.Now()),
		Canvas:   render.NewRaster(1, 1),
		Viewport: render.Viewport{CellSize: 1},
		Palette:  render.DefaultPalette(),
		FPS:      5,
	})
	if !errors.Is(err, core.ErrBufferSize) {
		t.Fatalf("err = %v, want ErrBufferSize", err)
	}
}

type shortEngine struct{}

func (shortEngine) Width() int                { return 4 }
func (shortEngine) Height() int               { return 4 }
func (shortEngine) Tick()                     {}
func (shortEngine) Cells() []uint8            { return make([]uint8, 3) }
func (shortEngine) ToggleCell(row, col int)   {}
func (shortEngine) InsertGlider(row, col int) {}
func (shortEngine) InsertPulsar(row, col int) {}
func (shortEngine) SetWidth(w int)            {}
