//go:build !ebiten

package app

import (
	"errors"

	"lifeview/internal/log"
)

// ErrNoGUI is returned by the desktop entry points in builds without ebiten.
var ErrNoGUI = errors.New("the desktop GUI requires building with the 'ebiten' tag; " +
	"re-run with `go run -tags ebiten ./cmd/lifeview gui`")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// NewGame reports that the ebiten build tag is required for GUI support.
func NewGame(*Config, *log.Logger) (*Game, error) {
	return nil, ErrNoGUI
}

// Run always reports that the GUI build tag is missing.
func (g *Game) Run(bool) error { return ErrNoGUI }
