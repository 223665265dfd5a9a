package app

import (
	"errors"
	"strings"
	"testing"

	"shaderbox/hal"
	"shaderbox/render"
	"shaderbox/shader"
	"shaderbox/vec"
)

type memFramebuffer struct {
	w, h       int
	buf        []byte
	presentErr error
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }

func (f *memFramebuffer) Present() error { return f.presentErr }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *memFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type fakeHAL struct {
	fb    *memFramebuffer
	keys  chan hal.KeyEvent
	ticks chan uint64
	lines []string
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)},
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h }
func (h *fakeHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.ticks }
func (h *fakeHAL) WriteLineString(s string)     { h.lines = append(h.lines, s) }
func (h *fakeHAL) WriteLineBytes(b []byte)      { h.lines = append(h.lines, string(b)) }

func (h *fakeHAL) press(code hal.KeyCode, r rune) {
	h.keys <- hal.KeyEvent{Code: code, Press: true, Rune: r}
	h.keys <- hal.KeyEvent{Code: code, Press: false, Rune: r}
}

func (h *fakeHAL) logged(substr string) bool {
	for _, l := range h.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func testRegistry() *shader.Registry {
	r := shader.NewRegistry()
	r.MustRegister("red", func(_, _ vec.Vec, _ float64) vec.Vec { return vec.Vec3(1, 0, 0) })
	r.MustRegister("blue", func(_, _ vec.Vec, _ float64) vec.Vec { return vec.Vec3(0, 0, 1) })
	r.MustRegister("bad", func(_, _ vec.Vec, _ float64) vec.Vec { return vec.Vec2(0, 0) })
	return r
}

func step(t *testing.T, a *App) {
	t.Helper()
	if err := a.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
}

func TestMenuLaunchAndReturn(t *testing.T) {
	h := newFakeHAL(16, 16)
	a, err := New(h, Config{Registry: testRegistry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Views() != 1 || a.Session() != nil {
		t.Fatalf("Views() = %d Session() = %v, want menu only", a.Views(), a.Session())
	}

	// Menu order is sorted: bad, blue, red.
	h.press(hal.KeyDown, 0)
	h.press(hal.KeyEnter, 0)
	step(t, a)

	sess := a.Session()
	if sess == nil || sess.Name() != "blue" || sess.State() != render.StateRunning {
		t.Fatalf("Session() = %+v, want running blue", sess)
	}
	if !h.logged("loading shader blue") {
		t.Fatalf("log = %q, want loading line", h.lines)
	}

	h.ticks <- render.DefaultPeriodMs
	step(t, a)
	if sess.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", sess.Frames())
	}
	if got, want := h.fb.pixel(15, 15), hal.RGB565(0, 0, 255); got != want {
		t.Fatalf("pixel = %#x, want %#x", got, want)
	}

	h.press(hal.KeyUnknown, 'b')
	step(t, a)
	if sess.State() != render.StateClosed {
		t.Fatalf("State() = %v, want closed", sess.State())
	}
	if a.Views() != 1 || a.Session() != nil {
		t.Fatalf("Views() = %d Session() = %v after cancel, want menu only", a.Views(), a.Session())
	}

	h.ticks <- 3 * render.DefaultPeriodMs
	step(t, a)
	if sess.Frames() != 1 {
		t.Fatalf("Frames() = %d after close, want 1", sess.Frames())
	}
}

func TestAutostart(t *testing.T) {
	h := newFakeHAL(4, 4)
	a, err := New(h, Config{Registry: testRegistry(), Shader: "red", PeriodMs: 10, QuitOnClose: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Views() != 2 {
		t.Fatalf("Views() = %d, want 2", a.Views())
	}

	h.ticks <- 10
	step(t, a)
	h.ticks <- 20
	step(t, a)
	if a.Session().Frames() != 2 || a.Session().Time() != 2 {
		t.Fatalf("Frames() = %d Time() = %v, want 2 and 2", a.Session().Frames(), a.Session().Time())
	}

	h.press(hal.KeyEnter, 0)
	if err := a.Step(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Step() error = %v, want ErrQuit", err)
	}
}

func TestAutostartMissingShader(t *testing.T) {
	h := newFakeHAL(4, 4)
	_, err := New(h, Config{Registry: testRegistry(), Shader: "nope"})
	if !errors.Is(err, shader.ErrShaderNotFound) {
		t.Fatalf("New() error = %v, want ErrShaderNotFound", err)
	}
}

func TestFrameErrorsAreLogged(t *testing.T) {
	h := newFakeHAL(2, 2)
	a, err := New(h, Config{Registry: testRegistry(), Shader: "bad"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.ticks <- render.DefaultPeriodMs
	step(t, a)
	if !h.logged("app: frame error") {
		t.Fatalf("log = %q, want a frame error", h.lines)
	}
	if a.Session().State() != render.StateRunning {
		t.Fatalf("State() = %v, want running", a.Session().State())
	}
}

func TestRunsWithoutPanel(t *testing.T) {
	h := newFakeHAL(4, 4)
	h.fb.presentErr = hal.ErrNotImplemented
	a, err := New(h, Config{Registry: testRegistry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	h.press(hal.KeyEnter, 0)
	step(t, a)
	h.ticks <- render.DefaultPeriodMs
	step(t, a)

	sess := a.Session()
	if sess == nil || sess.Name() != "bad" {
		t.Fatalf("Session() = %+v, want bad", sess)
	}
	h.press(hal.KeyUnknown, 'b')
	step(t, a)
	h.press(hal.KeyDown, 0)
	h.press(hal.KeyEnter, 0)
	step(t, a)
	h.ticks <- 3 * render.DefaultPeriodMs
	step(t, a)

	sess = a.Session()
	if sess == nil || sess.Name() != "blue" || sess.Frames() != 1 {
		t.Fatalf("Session() = %+v, want blue after one frame", sess)
	}
	if got, want := h.fb.pixel(3, 3), hal.RGB565(0, 0, 255); got != want {
		t.Fatalf("pixel = %#x, want %#x", got, want)
	}
	if h.logged("present") || h.logged("reactivate") {
		t.Fatalf("log = %q, want no present errors", h.lines)
	}
}

func TestBuiltinCatalogInMenu(t *testing.T) {
	h := newFakeHAL(8, 8)
	a, err := New(h, Config{Shader: "flompy"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.ticks <- render.DefaultPeriodMs
	step(t, a)
	if a.Session().Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", a.Session().Frames())
	}
}

func TestShowPanic(t *testing.T) {
	h := newFakeHAL(64, 32)
	showPanic(h, errors.New("boom"))

	if !h.logged("shaderbox panic: boom") {
		t.Fatalf("log = %q, want panic line", h.lines)
	}
	white := hal.RGB565(255, 255, 255)
	sawText := false
	for y := 0; y < h.fb.h; y++ {
		for x := 0; x < h.fb.w; x++ {
			if h.fb.pixel(x, y) != white {
				sawText = true
			}
		}
	}
	if !sawText {
		t.Fatalf("panic screen has no text")
	}
}

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("héllo", 2)
	if prefix != "hé" || rest != "llo" {
		t.Fatalf("takeRunes() = %q, %q, want %q, %q", prefix, rest, "hé", "llo")
	}
	prefix, rest = takeRunes("ab", 5)
	if prefix != "ab" || rest != "" {
		t.Fatalf("takeRunes() = %q, %q, want %q, %q", prefix, rest, "ab", "")
	}
}
