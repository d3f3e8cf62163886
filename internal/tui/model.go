// Package tui runs the controller in a terminal with bubbletea.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lifeview/internal/app"
	"lifeview/internal/input"
	"lifeview/internal/log"
	"lifeview/internal/render"
)

// cellColumns is how many terminal columns one grid cell occupies, which
// keeps cells roughly square in most fonts.
const cellColumns = 2

// historyLen caps the population sparkline.
const historyLen = 60

// Model is the bubbletea model wrapping a Controller.
type Model struct {
	ctrl   *app.Controller
	host   *host
	raster *render.Raster
	labels app.Labels
	log    *log.Logger

	history []float64
	lastGen uint64
	width   int
	err     error
}

// NewModel builds the controller from cfg and starts it.
func NewModel(cfg *app.Config, logger *log.Logger) (*Model, error) {
	w, h := cfg.CanvasSize()
	m := &Model{
		host:   newHost(),
		raster: render.NewRaster(w, h),
		labels: app.Labels{},
		log:    logger,
	}
	ctrl, err := cfg.NewController(m.host, m.raster, m.labels, logger)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	if err := ctrl.Start(cfg.Paused); err != nil {
		return nil, err
	}
	m.record()
	return m, nil
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

// Controller exposes the wrapped controller.
func (m *Model) Controller() *app.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd {
	return m.host.cmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var err error
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "esc" {
			return m, tea.Quit
		}
		err = m.handleKey(msg.String())
	case tea.MouseMsg:
		err = m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case frameMsg:
		err = m.host.fire(msg)
	}
	if err != nil {
		m.err = err
		m.log.Errorf("stopping: %v", err)
		return m, tea.Quit
	}
	m.record()
	return m, m.host.cmd()
}

func (m *Model) handleKey(key string) error {
	switch key {
	case " ", "p":
		return m.ctrl.TogglePlayback()
	case "r":
		return m.ctrl.Reset()
	case "s":
		return m.ctrl.Randomize()
	case "+", "=", "up":
		return m.nudgeSpeed(1)
	case "-", "down":
		return m.nudgeSpeed(-1)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) error {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	size := m.ctrl.Size()
	if msg.Y >= size.H || msg.X >= size.W*cellColumns {
		return nil
	}
	// The grid fills the top-left of the terminal, one row per cell row
	// and cellColumns columns per cell, so terminal cells act as scaled
	// CSS pixels over the canvas backing store.
	rect := input.Rect{Width: float64(size.W * cellColumns), Height: float64(size.H)}
	p := input.Pointer{
		X:    float64(msg.X) + 0.5,
		Y:    float64(msg.Y) + 0.5,
		Mods: input.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift},
	}
	return m.ctrl.Click(p, rect)
}

func (m *Model) nudgeSpeed(dir float64) error {
	fps := m.ctrl.Scheduler().FPS() + dir
	if fps < 1 || fps > 60 {
		return nil
	}
	return m.ctrl.SetSpeed(fps)
}

// record tracks population per generation for the sparkline.
func (m *Model) record() {
	st, err := m.ctrl.Stats()
	if err != nil {
		return
	}
	if st.Generation < m.lastGen {
		m.history = m.history[:0]
	}
	if st.Generation == m.lastGen && len(m.history) > 0 {
		m.history[len(m.history)-1] = float64(st.Population)
		return
	}
	m.lastGen = st.Generation
	m.history = append(m.history, float64(st.Population))
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

func (m *Model) status() string {
	st, err := m.ctrl.Stats()
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s  %s fps  gen %d  pop %d",
		m.labels[app.ControlPlayPause], m.labels[app.ControlSpeed], st.Generation, st.Population)
}
