// Package app wires the HAL, the timer and button services, the view stack
// and the shader catalog into a runnable program.
package app

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"shaderbox/hal"
	"shaderbox/input"
	"shaderbox/internal/buildinfo"
	"shaderbox/render"
	"shaderbox/sched"
	"shaderbox/shader"
	"shaderbox/shader/builtin"
	"shaderbox/ui"
)

// ErrQuit is returned by Step once the app has nothing left to show.
var ErrQuit = errors.New("app: quit")

type Config struct {
	// Shader is started immediately instead of waiting in the menu.
	Shader string
	// PeriodMs is the time between frames; zero means render.DefaultPeriodMs.
	PeriodMs uint64
	// QuitOnClose makes Step return ErrQuit when the autostarted shader
	// is closed instead of returning to the menu.
	QuitOnClose bool
	// Registry overrides the built-in catalog.
	Registry *shader.Registry
}

// App is a menu of shaders; choosing one renders it full screen until a
// cancel button is pressed.
type App struct {
	cfg    Config
	log    hal.Logger
	fb     hal.Framebuffer
	ticks  <-chan uint64
	timers *sched.Scheduler
	input  *input.Service
	reg    *shader.Registry
	sink   *render.FramebufferSink
	stack  ui.Stack
	menu   *ui.Menu
	active *shaderView
	quit   bool
}

func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil {
		return nil, errors.New("app: no hal")
	}
	log := h.Logger()
	if log == nil {
		log = discardLogger{}
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no display")
	}
	fb := disp.Framebuffer()
	sink, err := render.NewFramebufferSink(fb)
	if err != nil {
		return nil, err
	}

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}
	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}

	reg := cfg.Registry
	if reg == nil {
		reg = builtin.Registry()
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		fb:     fb,
		ticks:  ticks,
		timers: sched.New(),
		input:  input.New(kbd),
		reg:    reg,
		sink:   sink,
	}

	a.stack.Logger = log

	a.menu, err = ui.NewMenu(ui.MenuConfig{
		Title:       "shaderbox " + buildinfo.Short(),
		Items:       reg.Names(),
		Framebuffer: fb,
		Buttons:     a.input,
		Logger:      log,
		Launch:      a.Launch,
	})
	if err != nil {
		return nil, err
	}

	a.logf("app: %d shaders, %dx%d display", reg.Len(), fb.Width(), fb.Height())
	if err := a.stack.Push(a.menu); err != nil {
		return nil, errors.Wrap(err, "app: draw menu")
	}
	if cfg.Shader != "" {
		if err := a.Launch(cfg.Shader); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Step dispatches pending key presses and runs due timers. Host runners call
// it once per host frame.
func (a *App) Step() error {
	a.input.Poll()
	a.timers.Drain(a.ticks)
	if a.quit {
		return ErrQuit
	}
	return nil
}

// Launch pushes a full-screen view rendering the named shader.
func (a *App) Launch(name string) error {
	v := &shaderView{app: a, name: name}
	if err := a.stack.Push(v); err != nil {
		return errors.Wrapf(err, "app: launch %q", name)
	}
	return nil
}

// Session returns the running shader session, or nil while the menu is
// showing.
func (a *App) Session() *render.Session {
	if a.active == nil {
		return nil
	}
	return a.active.sess
}

// Views returns the depth of the view stack.
func (a *App) Views() int { return a.stack.Len() }

func (a *App) frameError(err error) {
	a.logf("app: frame error: %v", err)
}

func (a *App) logf(format string, args ...any) {
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Run builds the app and steps it forever (TinyGo entrypoint). A panic or a
// startup error is shown on the display.
func Run(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			showPanic(h, r)
			select {}
		}
	}()

	a, err := New(h, cfg)
	if err != nil {
		showPanic(h, err)
		select {}
	}
	for {
		if err := a.Step(); err != nil {
			if err == ErrQuit {
				return
			}
			showPanic(h, err)
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}
