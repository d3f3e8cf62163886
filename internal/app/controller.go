package app

import (
	"fmt"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/log"
	"lifeview/internal/render"
)

// Options wires a Controller to its engine, host and drawing surfaces.
type Options struct {
	Engine  core.Engine
	Factory core.Factory
	Host    FrameHost
	Canvas  render.Canvas
	Surface Surface
	Logger  *log.Logger

	Viewport      render.Viewport
	Palette       render.Palette
	FPS           float64
	ReseedDensity float64
}

// Stats is a snapshot of the running simulation for status displays.
type Stats struct {
	// Epoch counts engine buffers; it moves on every reset and reseed.
	Epoch      uint64
	Generation uint64
	Population int
	FPS        float64
	Running    bool
}

// Controller owns the engine handle, the frame scheduler and the renderer,
// and applies user commands to them. Every mutation is followed by a
// synchronous redraw.
type Controller struct {
	slot          *core.Slot
	factory       core.Factory
	reseedDensity float64

	sched    *Scheduler
	renderer *render.GridRenderer
	canvas   render.Canvas
	surface  Surface
	log      *log.Logger

	generation uint64
}

// NewController builds a stopped controller. Call Start to begin playback.
func NewController(opts Options) (*Controller, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("controller: engine is required")
	}
	if opts.Host == nil || opts.Canvas == nil {
		return nil, fmt.Errorf("controller: host and canvas are required")
	}
	if opts.Surface == nil {
		opts.Surface = Labels{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	c := &Controller{
		slot:          core.NewSlot(opts.Engine),
		factory:       opts.Factory,
		reseedDensity: opts.ReseedDensity,
		renderer:      render.NewGridRenderer(opts.Viewport, opts.Palette),
		canvas:        opts.Canvas,
		surface:       opts.Surface,
		log:           opts.Logger,
	}
	sched, err := NewScheduler(opts.Host, opts.FPS, c.advance, c.Redraw)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	sched.OnChange(c.playbackChanged)
	c.sched = sched
	if _, err := c.slot.View().Cells(); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	return c, nil
}

// Start labels the controls and either begins playback or draws a single
// paused frame.
func (c *Controller) Start(paused bool) error {
	c.surface.SetLabel(ControlReset, GlyphReset)
	c.surface.SetLabel(ControlRandom, GlyphRandom)
	c.surface.SetLabel(ControlSpeed, FormatFPS(c.sched.FPS()))
	if paused {
		c.playbackChanged(false)
		return c.Redraw()
	}
	return c.sched.Play()
}

// Scheduler exposes the frame scheduler.
func (c *Controller) Scheduler() *Scheduler { return c.sched }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.slot.Size() }

// CanvasSize returns the backing-store size the canvas must have.
func (c *Controller) CanvasSize() (int, int) {
	return c.renderer.Viewport().CanvasSize(c.slot.Size())
}

// Mapper returns a coordinate mapper for the current canvas geometry.
func (c *Controller) Mapper() input.Mapper {
	w, h := c.CanvasSize()
	return input.Mapper{
		Grid:    c.slot.Size(),
		CanvasW: w,
		CanvasH: h,
		Pitch:   c.renderer.Viewport().Pitch(),
	}
}

// View returns a fresh view of the current engine's cells.
func (c *Controller) View() core.CellView { return c.slot.View() }

// Renderer returns the grid renderer.
func (c *Controller) Renderer() *render.GridRenderer { return c.renderer }

// Stats reports the generation count, population and playback state.
func (c *Controller) Stats() (Stats, error) {
	cells, err := c.slot.View().Cells()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Epoch:      c.slot.Generation(),
		Generation: c.generation,
		Population: core.Population(cells),
		FPS:        c.sched.FPS(),
		Running:    c.sched.Running(),
	}, nil
}

// Redraw repaints the canvas from the current engine state.
func (c *Controller) Redraw() error {
	return c.renderer.Render(c.canvas, c.slot.View())
}

// TogglePlayback flips between playing and paused.
func (c *Controller) TogglePlayback() error {
	return c.sched.Toggle()
}

// SetSpeed changes the target FPS. Invalid values are rejected and the
// current speed is kept.
func (c *Controller) SetSpeed(fps float64) error {
	if err := c.sched.SetFPS(fps); err != nil {
		c.log.Warnf("ignoring speed %v: %v", fps, err)
		c.surface.SetLabel(ControlSpeed, FormatFPS(c.sched.FPS()))
		return err
	}
	c.log.Debugf("speed set to %v fps", fps)
	c.surface.SetLabel(ControlSpeed, FormatFPS(fps))
	return nil
}

// Click handles a pointer click on the canvas displayed inside rect.
func (c *Controller) Click(p input.Pointer, rect input.Rect) error {
	row, col := c.Mapper().Cell(p, rect)
	return c.ClickCell(row, col, p.Mods)
}

// ClickCell applies the modifier-selected action to (row, col) and redraws.
func (c *Controller) ClickCell(row, col int, mods input.Modifiers) error {
	eng := c.slot.Engine()
	action := input.Decide(mods)
	switch action {
	case input.ActionGlider:
		eng.InsertGlider(row, col)
	case input.ActionPulsar:
		eng.InsertPulsar(row, col)
	default:
		eng.ToggleCell(row, col)
	}
	c.log.Debugf("%s at (%d,%d)", action, row, col)
	return c.Redraw()
}

// Reset kills every cell, keeping the grid size, and redraws.
func (c *Controller) Reset() error {
	eng := c.slot.Engine()
	eng.SetWidth(eng.Width())
	// The engine reallocates its buffer, so earlier views must not be reused.
	c.slot.Invalidate()
	c.generation = 0
	c.log.Infof("reset %dx%d grid", eng.Width(), eng.Height())
	return c.Redraw()
}

// Randomize replaces the engine with a freshly seeded one and redraws.
func (c *Controller) Randomize() error {
	if c.factory == nil {
		return fmt.Errorf("randomize: no engine factory configured")
	}
	c.slot.Replace(c.factory(core.InitRandom, c.reseedDensity))
	c.generation = 0
	c.log.Infof("reseeded engine at density %v", c.reseedDensity)
	return c.Redraw()
}

func (c *Controller) advance() error {
	c.slot.Engine().Tick()
	c.generation++
	return c.Redraw()
}

func (c *Controller) playbackChanged(running bool) {
	if running {
		c.surface.SetLabel(ControlPlayPause, GlyphPause)
		return
	}
	c.surface.SetLabel(ControlPlayPause, GlyphPlay)
}
