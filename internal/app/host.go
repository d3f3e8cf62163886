package app

import (
	"time"
)

// FrameHandle identifies a pending frame callback.
type FrameHandle uint64

// FrameFunc runs once per presented frame with the host's timestamp.
type FrameFunc func(now time.Time) error

// FrameHost is the platform frame timer the scheduler yields to between
// frames: requestAnimationFrame in a browser, Update in ebiten, a tick
// message in the terminal.
type FrameHost interface {
	Now() time.Time
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// ManualHost is a FrameHost driven explicitly by the caller. At most one
// callback is pending at a time, matching how the scheduler uses its host.
type ManualHost struct {
	now      time.Time
	next     FrameHandle
	pending  FrameFunc
	handle   FrameHandle
	requests int
	cancels  int
}

// NewManualHost starts the clock at start.
func NewManualHost(start time.Time) *ManualHost {
	return &ManualHost{now: start}
}

func (h *ManualHost) Now() time.Time { return h.now }

func (h *ManualHost) RequestFrame(fn FrameFunc) FrameHandle {
	h.next++
	h.pending = fn
	h.handle = h.next
	h.requests++
	return h.handle
}

func (h *ManualHost) CancelFrame(handle FrameHandle) {
	h.cancels++
	if handle == h.handle {
		h.pending = nil
		h.handle = 0
	}
}

// Pending reports whether a callback is waiting to fire.
func (h *ManualHost) Pending() bool { return h.pending != nil }

// Requests returns how many callbacks have been scheduled.
func (h *ManualHost) Requests() int { return h.requests }

// Cancels returns how many CancelFrame calls the host received.
func (h *ManualHost) Cancels() int { return h.cancels }

// Advance moves the clock forward by d and fires the pending callback, if any.
func (h *ManualHost) Advance(d time.Duration) error {
	h.now = h.now.Add(d)
	return h.Fire()
}

// Fire runs the pending callback at the current time.
func (h *ManualHost) Fire() error {
	fn := h.pending
	if fn == nil {
		return nil
	}
	h.pending = nil
	h.handle = 0
	return fn(h.now)
}
