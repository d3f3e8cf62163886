package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifeview/internal/app"
)

// frameDelay approximates a 60Hz display refresh.
const frameDelay = time.Second / 60

type frameMsg struct {
	at     time.Time
	handle app.FrameHandle
}

// host implements app.FrameHost on top of bubbletea tick commands. A
// requested frame becomes a tea.Tick the next time the model returns.
type host struct {
	pending app.FrameFunc
	handle  app.FrameHandle
	next    app.FrameHandle
	armed   app.FrameHandle
	now     func() time.Time
}

func newHost() *host {
	return &host{now: time.Now}
}

func (h *host) Now() time.Time { return h.now() }

func (h *host) RequestFrame(fn app.FrameFunc) app.FrameHandle {
	h.next++
	h.pending = fn
	h.handle = h.next
	return h.handle
}

func (h *host) CancelFrame(handle app.FrameHandle) {
	if handle == h.handle {
		h.pending = nil
		h.handle = 0
	}
}

// cmd returns a tick for the pending frame unless one is already in flight.
func (h *host) cmd() tea.Cmd {
	if h.pending == nil || h.armed == h.handle {
		return nil
	}
	handle := h.handle
	h.armed = handle
	return tea.Tick(frameDelay, func(t time.Time) tea.Msg {
		return frameMsg{at: t, handle: handle}
	})
}

// fire runs the callback a frame message was scheduled for. Messages for
// cancelled frames are dropped.
func (h *host) fire(msg frameMsg) error {
	if h.pending == nil || msg.handle != h.handle {
		return nil
	}
	fn := h.pending
	h.pending = nil
	h.handle = 0
	return fn(msg.at)
}
