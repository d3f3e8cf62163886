//go:build js && wasm

// Package web hosts the controller in a browser page.
package web

import (
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"lifeview/internal/app"
	"lifeview/internal/input"
	"lifeview/internal/log"
)

// Element ids the page must provide.
const (
	CanvasID    = "game-of-life-canvas"
	PlayPauseID = "play-pause"
	SpeedID     = "speed"
	ResetID     = "reset"
	RandomID    = "random"
)

// host schedules frames with requestAnimationFrame.
type host struct {
	window  js.Value
	funcs   map[app.FrameHandle]js.Func
	onError func(error)
}

func (h *host) Now() time.Time { return time.Now() }

func (h *host) RequestFrame(fn app.FrameFunc) app.FrameHandle {
	var cb js.Func
	var handle app.FrameHandle
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		delete(h.funcs, handle)
		if err := fn(time.Now()); err != nil {
			h.onError(err)
		}
		return nil
	})
	handle = app.FrameHandle(h.window.Call("requestAnimationFrame", cb).Int())
	h.funcs[handle] = cb
	return handle
}

func (h *host) CancelFrame(handle app.FrameHandle) {
	h.window.Call("cancelAnimationFrame", int(handle))
	if cb, ok := h.funcs[handle]; ok {
		cb.Release()
		delete(h.funcs, handle)
	}
}

// surface writes labels into the DOM controls.
type surface struct {
	doc js.Value
}

func (s surface) SetLabel(c app.Control, label string) {
	var id string
	switch c {
	case app.ControlPlayPause:
		id = PlayPauseID
	case app.ControlReset:
		id = ResetID
	case app.ControlRandom:
		id = RandomID
	case app.ControlSpeed:
		s.doc.Call("getElementById", SpeedID).Set("value", label)
		return
	default:
		return
	}
	s.doc.Call("getElementById", id).Set("textContent", label)
}

// Run binds the page's controls to a controller built from cfg and starts
// playback. It blocks until a fatal error stops the loop.
func Run(cfg *app.Config, logger *log.Logger) error {
	window := js.Global()
	doc := window.Get("document")
	el := doc.Call("getElementById", CanvasID)
	if el.IsNull() {
		return fmt.Errorf("web: no element #%s", CanvasID)
	}
	w, h := cfg.CanvasSize()
	el.Set("width", w)
	el.Set("height", h)

	fatal := make(chan error, 1)
	hst := &host{window: window, funcs: map[app.FrameHandle]js.Func{}}
	hst.onError = func(err error) {
		select {
		case fatal <- err:
		default:
		}
	}

	labels := app.NewEchoGuard(surface{doc: doc})
	ctrl, err := cfg.NewController(hst, NewCanvas(el), labels, logger)
	if err != nil {
		return err
	}

	listen := func(id, event string, fn func(js.Value) error) {
		doc.Call("getElementById", id).Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
			if err := fn(args[0]); err != nil {
				hst.onError(err)
			}
			return nil
		}))
	}

	listen(PlayPauseID, "click", func(js.Value) error { return ctrl.TogglePlayback() })
	listen(ResetID, "click", func(js.Value) error { return ctrl.Reset() })
	listen(RandomID, "click", func(js.Value) error { return ctrl.Randomize() })
	listen(SpeedID, "input", func(js.Value) error {
		raw := doc.Call("getElementById", SpeedID).Get("value").String()
		fps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Debugf("speed %q is not a number yet", raw)
			return nil
		}
		// Invalid speeds are logged by the controller and ignored. The
		// field is left alone while the user is typing into it.
		_ = labels.Quiet(app.ControlSpeed, func() error { return ctrl.SetSpeed(fps) })
		return nil
	})
	listen(SpeedID, "change", func(js.Value) error {
		labels.SetLabel(app.ControlSpeed, app.FormatFPS(ctrl.Scheduler().FPS()))
		return nil
	})
	listen(CanvasID, "click", func(ev js.Value) error {
		box := el.Call("getBoundingClientRect")
		rect := input.Rect{
			Left:   box.Get("left").Float(),
			Top:    box.Get("top").Float(),
			Width:  box.Get("width").Float(),
			Height: box.Get("height").Float(),
		}
		p := input.Pointer{
			X: ev.Get("clientX").Float(),
			Y: ev.Get("clientY").Float(),
			Mods: input.Modifiers{
				Ctrl:  ev.Get("ctrlKey").Bool(),
				Shift: ev.Get("shiftKey").Bool(),
			},
		}
		return ctrl.Click(p, rect)
	})

	if err := ctrl.Start(cfg.Paused); err != nil {
		return err
	}
	err = <-fatal
	ctrl.Scheduler().Pause()
	logger.Errorf("stopped: %v", err)
	return err
}
