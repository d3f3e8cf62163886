package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidFPS is returned for frame rates that cannot produce an interval.
var ErrInvalidFPS = errors.New("fps must give a frame interval between 1ns and the maximum duration")

// ValidateFPS checks that fps can be turned into a positive, representable
// frame interval.
func ValidateFPS(fps float64) error {
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	ns := float64(time.Second) / fps
	if math.IsInf(ns, 0) || ns < 1 || ns >= math.MaxInt64 {
		return fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	return nil
}

// FrameInterval returns the target time between accepted frames.
func FrameInterval(fps float64) time.Duration {
	return time.Duration(float64(time.Second) / fps)
}

// Throttle gates frame callbacks to a target frames-per-second rate. The
// baseline is phase corrected on each accepted frame so callback jitter does
// not accumulate into drift.
type Throttle struct {
	last time.Time
}

// Reset sets the baseline to now.
func (t *Throttle) Reset(now time.Time) {
	t.last = now
}

// Baseline returns the timestamp of the last accepted frame after correction.
func (t *Throttle) Baseline() time.Time { return t.last }

// Accept reports whether a callback firing at now should advance a frame.
func (t *Throttle) Accept(now time.Time, fps float64) bool {
	if t.last.IsZero() {
		t.last = now
	}
	interval := FrameInterval(fps)
	if interval <= 0 {
		return false
	}
	elapsed := now.Sub(t.last)
	if elapsed < interval {
		return false
	}
	t.last = now.Add(-(elapsed % interval))
	return true
}
