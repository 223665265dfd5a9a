// Package render drives a shader across a display, one full frame per timer
// tick.
//
// A Session moves through Idle, Bound, Running and Closed. Everything runs on
// the caller's goroutine: a frame evaluates the shader for every pixel in
// row-major order, writes each pixel to the sink as soon as it is computed,
// and only then advances simulated time by one second.
package render

import (
	"fmt"

	"github.com/pkg/errors"

	"shaderbox/hal"
	"shaderbox/input"
	"shaderbox/shader"
	"shaderbox/vec"
)

// DefaultPeriodMs is the nominal time between frames.
const DefaultPeriodMs = 1000

// TimeStep is the simulated time added after every completed frame.
const TimeStep = 1.0

var ErrState = errors.New("render: invalid session state")

// State is the lifecycle state of a Session.
type State uint8

const (
	StateIdle State = iota
	StateBound
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBound:
		return "bound"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Timer schedules periodic callbacks.
type Timer interface {
	Periodic(periodMs uint64, fn func()) (stop func())
}

// Buttons registers button press handlers.
type Buttons interface {
	OnPress(b input.Button, fn func()) (remove func())
}

// CancelButtons close a running session.
var CancelButtons = []input.Button{input.ButtonCentre, input.ButtonA, input.ButtonB}

type Config struct {
	Sink     Sink
	Registry *shader.Registry
	Timer    Timer
	Buttons  Buttons
	Logger   hal.Logger

	// PeriodMs is the timer period; zero means DefaultPeriodMs.
	PeriodMs uint64

	// OnClose runs once the session reaches StateClosed, typically to pop
	// the view that hosts it.
	OnClose func()
	// OnError receives frame errors from timer-driven ticks. If nil they
	// are logged.
	OnError func(error)
}

// Session renders one shader until it is cancelled.
type Session struct {
	cfg Config

	state  State
	name   string
	shader shader.Shader
	res    vec.Vec
	time   float64
	frames uint64

	inFrame       bool
	cancelPending bool

	stopTimer func()
	unbind    []func()
}

func New(cfg Config) *Session {
	if cfg.PeriodMs == 0 {
		cfg.PeriodMs = DefaultPeriodMs
	}
	return &Session{cfg: cfg}
}

func (s *Session) State() State { return s.state }

// Name returns the bound shader name.
func (s *Session) Name() string { return s.name }

// Time returns the simulated time passed to the next frame.
func (s *Session) Time() float64 { return s.time }

// Resolution returns the display size captured by Select.
func (s *Session) Resolution() vec.Vec { return s.res }

// Frames returns the number of completed frames.
func (s *Session) Frames() uint64 { return s.frames }

// Select binds the named shader and captures the display resolution.
func (s *Session) Select(name string) error {
	if s.state != StateIdle {
		return errors.Wrapf(ErrState, "select in state %s", s.state)
	}
	if s.cfg.Sink == nil {
		return errors.New("render: no sink")
	}
	if s.cfg.Registry == nil {
		return errors.Wrapf(shader.ErrShaderNotFound, "%q: no registry", name)
	}

	fn, err := s.cfg.Registry.Resolve(name)
	if err != nil {
		s.logf("render: %v", err)
		return err
	}
	if canonical, ok := s.cfg.Registry.Canonical(name); ok {
		name = canonical
	}

	s.logf("render: loading shader %s", name)
	s.name = name
	s.shader = fn
	s.res = vec.Vec2(float64(s.cfg.Sink.Width()), float64(s.cfg.Sink.Height()))
	s.time = 0
	s.state = StateBound
	return nil
}

// Start registers the frame timer and the cancel buttons.
func (s *Session) Start() error {
	if s.state != StateBound {
		return errors.Wrapf(ErrState, "start in state %s", s.state)
	}
	if s.cfg.Timer != nil {
		s.stopTimer = s.cfg.Timer.Periodic(s.cfg.PeriodMs, s.onTimer)
	}
	if s.cfg.Buttons != nil {
		for _, b := range CancelButtons {
			s.unbind = append(s.unbind, s.cfg.Buttons.OnPress(b, s.Cancel))
		}
	}
	s.state = StateRunning
	return nil
}

func (s *Session) onTimer() {
	if s.state != StateRunning {
		return
	}
	if err := s.Tick(); err != nil {
		if s.cfg.OnError != nil {
			s.cfg.OnError(err)
			return
		}
		s.logf("%v", err)
	}
}

// Tick renders one frame and advances simulated time.
//
// If the shader fails for any pixel the frame is abandoned, time is left
// unchanged and the error is returned; the session keeps running. A sink
// that reports hal.ErrNotImplemented from Present has nowhere to show the
// frame, which is not an error.
func (s *Session) Tick() error {
	if s.state != StateRunning {
		return errors.Wrapf(ErrState, "tick in state %s", s.state)
	}
	if s.inFrame {
		return errors.Wrap(ErrState, "tick during frame")
	}

	err := s.renderFrame()
	if err == nil {
		if p, ok := s.cfg.Sink.(Presenter); ok {
			if perr := p.Present(); perr != nil && !errors.Is(perr, hal.ErrNotImplemented) {
				err = errors.Wrap(perr, "render: present")
			}
		}
		s.time += TimeStep
		s.frames++
	}

	if s.cancelPending {
		s.cancelPending = false
		s.close()
	}
	return err
}

func (s *Session) renderFrame() error {
	s.inFrame = true
	defer func() { s.inFrame = false }()
	return s.frame()
}

func (s *Session) frame() error {
	w, h := int(s.res.X()), int(s.res.Y())
	sink := s.cfg.Sink
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := s.eval(vec.Vec2(float64(x), float64(y)))
			if err != nil {
				return errors.Wrapf(err, "render: %s at (%d, %d) t=%g", s.name, x, y, s.time)
			}
			sink.SetPixel(x, y, sink.Encode(Quantize(c.X()), Quantize(c.Y()), Quantize(c.Z())))
		}
	}
	return nil
}

func (s *Session) eval(fragCoord vec.Vec) (c vec.Vec, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New(fmt.Sprint("shader panic: ", r))
		}
	}()

	c = s.shader(fragCoord, s.res, s.time)
	if c.Len() < 3 {
		return vec.Vec{}, errors.Wrapf(vec.ErrInvalidSwizzle, "shader returned vec%d, want vec3", c.Len())
	}
	return c, nil
}

// Cancel closes the session. While a frame is being rendered the request is
// held until the frame's last pixel has been written.
func (s *Session) Cancel() {
	switch s.state {
	case StateClosed:
		return
	case StateRunning:
		if s.inFrame {
			s.cancelPending = true
			return
		}
	}
	s.close()
}

func (s *Session) close() {
	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	for _, remove := range s.unbind {
		remove()
	}
	s.unbind = nil
	s.logf("render: closed %s after %d frames", s.name, s.frames)
	if s.cfg.OnClose != nil {
		s.cfg.OnClose()
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.cfg.Logger == nil {
		return
	}
	s.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
