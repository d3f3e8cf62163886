package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifeview/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const helpText = "space play/pause  +/- speed  r reset  s random  click toggle  ctrl-click glider  shift-click pulsar  q quit"

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.grid())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(40),
			asciigraph.Caption("population"))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(chart))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

// grid samples the raster at the center of every cell and paints runs of
// equal color as background-colored blocks.
func (m *Model) grid() string {
	size := m.ctrl.Size()
	vp := m.ctrl.Renderer().Viewport()
	pitch := vp.Pitch()
	half := vp.CellSize / 2

	var b strings.Builder
	for row := 0; row < size.H; row++ {
		y := row*pitch + 1 + half
		run := 0
		var runColor color.RGBA
		for col := 0; col < size.W; col++ {
			c := m.raster.At(col*pitch+1+half, y)
			if run > 0 && c != runColor {
				b.WriteString(block(runColor, run))
				run = 0
			}
			runColor = c
			run++
		}
		if run > 0 {
			b.WriteString(block(runColor, run))
		}
		if row < size.H-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func block(c color.RGBA, cells int) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(render.Hex(c)))
	return style.Render(strings.Repeat(" ", cells*cellColumns))
}

// ColorAt reports the color shown for a grid cell. Used by tests.
func (m *Model) ColorAt(row, col int) color.RGBA {
	vp := m.ctrl.Renderer().Viewport()
	half := vp.CellSize / 2
	return m.raster.At(col*vp.Pitch()+1+half, row*vp.Pitch()+1+half)
}
