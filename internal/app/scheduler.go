package app

import (
	"time"

	"lifeview/internal/core"
)

// playback is either stopped or running; only a running scheduler owns a
// pending frame callback.
type playback interface {
	isPlayback()
}

type stopped struct{}

type running struct {
	handle FrameHandle
}

func (stopped) isPlayback() {}
func (running) isPlayback() {}

// Scheduler paces simulation frames at a target FPS on top of a FrameHost.
type Scheduler struct {
	host     FrameHost
	fps      float64
	throttle core.Throttle
	state    playback

	advance  func() error
	render   func() error
	onChange func(running bool)
}

// NewScheduler returns a stopped scheduler. advance runs on every accepted
// frame; render runs once when playback starts.
func NewScheduler(host FrameHost, fps float64, advance, render func() error) (*Scheduler, error) {
	if err := core.ValidateFPS(fps); err != nil {
		return nil, err
	}
	return &Scheduler{
		host:    host,
		fps:     fps,
		state:   stopped{},
		advance: advance,
		render:  render,
	}, nil
}

// OnChange registers a hook that observes play/pause transitions.
func (s *Scheduler) OnChange(fn func(running bool)) { s.onChange = fn }

// Running reports whether frames are being scheduled.
func (s *Scheduler) Running() bool {
	_, ok := s.state.(running)
	return ok
}

// FPS returns the target frame rate.
func (s *Scheduler) FPS() float64 { return s.fps }

// Interval returns the target time between accepted frames.
func (s *Scheduler) Interval() time.Duration { return core.FrameInterval(s.fps) }

// SetFPS changes the target rate. A running loop picks it up on its next callback.
func (s *Scheduler) SetFPS(fps float64) error {
	if err := core.ValidateFPS(fps); err != nil {
		return err
	}
	s.fps = fps
	return nil
}

// Play starts the frame loop. It is a no-op when already running.
func (s *Scheduler) Play() error {
	if s.Running() {
		return nil
	}
	s.throttle.Reset(s.host.Now())
	s.state = running{}
	s.notify()
	if err := s.render(); err != nil {
		s.state = stopped{}
		s.notify()
		return err
	}
	if s.Running() {
		s.state = running{handle: s.host.RequestFrame(s.frame)}
	}
	return nil
}

// Pause cancels the pending frame. It is a no-op when already stopped.
func (s *Scheduler) Pause() {
	r, ok := s.state.(running)
	if !ok {
		return
	}
	s.host.CancelFrame(r.handle)
	s.state = stopped{}
	s.notify()
}

// Toggle flips between running and stopped.
func (s *Scheduler) Toggle() error {
	if s.Running() {
		s.Pause()
		return nil
	}
	return s.Play()
}

func (s *Scheduler) frame(now time.Time) error {
	if !s.Running() {
		return nil
	}
	if s.throttle.Accept(now, s.fps) {
		if err := s.advance(); err != nil {
			s.state = stopped{}
			s.notify()
			return err
		}
	}
	// advance may have paused us.
	if s.Running() {
		s.state = running{handle: s.host.RequestFrame(s.frame)}
	}
	return nil
}

func (s *Scheduler) notify() {
	if s.onChange != nil {
		s.onChange(s.Running())
	}
}
