package ui

import (
	"testing"

	"github.com/pkg/errors"

	"shaderbox/hal"
	"shaderbox/input"
)

type memFramebuffer struct {
	w, h       int
	buf        []byte
	presents   int
	presentErr error
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}

func (f *memFramebuffer) Present() error {
	f.presents++
	return f.presentErr
}

func (f *memFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type recView struct {
	name string
	log  *[]string
	err  error
}

func (v *recView) Activate() error {
	*v.log = append(*v.log, "activate "+v.name)
	return v.err
}

func (v *recView) Deactivate() {
	*v.log = append(*v.log, "deactivate "+v.name)
}

func TestStackPushPop(t *testing.T) {
	var log []string
	a := &recView{name: "a", log: &log}
	b := &recView{name: "b", log: &log}

	var s Stack
	if err := s.Push(a); err != nil {
		t.Fatalf("Push(a) error = %v", err)
	}
	if err := s.Push(b); err != nil {
		t.Fatalf("Push(b) error = %v", err)
	}
	if s.Top() != View(b) || s.Len() != 2 {
		t.Fatalf("Top() = %v Len() = %d, want b and 2", s.Top(), s.Len())
	}
	if got := s.Pop(); got != View(b) {
		t.Fatalf("Pop() = %v, want b", got)
	}
	if s.Top() != View(a) {
		t.Fatalf("Top() after Pop = %v, want a", s.Top())
	}

	want := []string{"activate a", "deactivate a", "activate b", "deactivate b", "activate a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}

	s.Pop()
	if s.Pop() != nil {
		t.Fatalf("Pop() on empty stack returned a view")
	}
}

func TestStackPushFailure(t *testing.T) {
	var log []string
	a := &recView{name: "a", log: &log}
	bad := &recView{name: "bad", log: &log, err: errors.New("no")}

	var s Stack
	s.Push(a)
	if err := s.Push(bad); err == nil {
		t.Fatalf("Push(bad) error = nil")
	}
	if s.Top() != View(a) || s.Len() != 1 {
		t.Fatalf("Top() = %v Len() = %d, want a and 1", s.Top(), s.Len())
	}
	if log[len(log)-1] != "activate a" {
		t.Fatalf("log = %v, want a reactivated last", log)
	}
}

type lineLogger struct {
	lines []string
}

func (l *lineLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestStackLogsReactivateError(t *testing.T) {
	var log []string
	a := &recView{name: "a", log: &log}
	b := &recView{name: "b", log: &log}
	logger := &lineLogger{}

	s := Stack{Logger: logger}
	s.Push(a)
	s.Push(b)
	a.err = errors.New("redraw failed")
	s.Pop()

	if s.Top() != View(a) {
		t.Fatalf("Top() = %v, want a", s.Top())
	}
	if len(logger.lines) != 1 || logger.lines[0] != "ui: reactivate: redraw failed" {
		t.Fatalf("log = %q, want one reactivate error", logger.lines)
	}
}

func newTestMenu(t *testing.T, items []string, launched *[]string) (*Menu, *input.Service, *memFramebuffer) {
	t.Helper()
	fb := newMemFramebuffer(96, 64)
	btn := input.New(nil)
	m, err := NewMenu(MenuConfig{
		Title:       "shaders",
		Items:       items,
		Framebuffer: fb,
		Buttons:     btn,
		Launch: func(name string) error {
			*launched = append(*launched, name)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewMenu() error = %v", err)
	}
	return m, btn, fb
}

func TestMenuNavigation(t *testing.T) {
	var launched []string
	m, btn, fb := newTestMenu(t, []string{"breathe", "flompy", "gradient"}, &launched)

	if err := m.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
	if m.Selected() != "breathe" {
		t.Fatalf("Selected() = %q, want %q", m.Selected(), "breathe")
	}

	btn.Press(input.ButtonDown)
	btn.Press(input.ButtonDown)
	if m.Selected() != "gradient" {
		t.Fatalf("Selected() = %q, want %q", m.Selected(), "gradient")
	}
	btn.Press(input.ButtonDown)
	if m.Selected() != "breathe" {
		t.Fatalf("Selected() after wrap = %q, want %q", m.Selected(), "breathe")
	}
	btn.Press(input.ButtonUp)
	if m.Selected() != "gradient" {
		t.Fatalf("Selected() after Up = %q, want %q", m.Selected(), "gradient")
	}

	btn.Press(input.ButtonCentre)
	if len(launched) != 1 || launched[0] != "gradient" {
		t.Fatalf("launched = %v, want [gradient]", launched)
	}

	m.Deactivate()
	if btn.Press(input.ButtonCentre) || btn.Press(input.ButtonUp) {
		t.Fatalf("menu handlers still registered after Deactivate")
	}
}

func TestMenuDraws(t *testing.T) {
	var launched []string
	m, _, fb := newTestMenu(t, []string{"a", "b"}, &launched)
	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	cyan := hal.RGB565(0, 0xFF, 0xFF)
	magenta := hal.RGB565(0xFF, 0, 0xFF)
	if got := fb.pixel(fb.w-1, fb.h-1); got != magenta {
		t.Fatalf("background = %#x, want magenta %#x", got, magenta)
	}
	var sawCyan, sawMagenta bool
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			switch fb.pixel(x, y) {
			case cyan:
				sawCyan = true
			case magenta:
				sawMagenta = true
			}
		}
	}
	if !sawCyan || !sawMagenta {
		t.Fatalf("menu colours drawn: cyan=%v magenta=%v, want both", sawCyan, sawMagenta)
	}
}

func TestMenuScrollsToSelection(t *testing.T) {
	items := make([]string, 40)
	for i := range items {
		items[i] = string(rune('a' + i%26))
	}
	var launched []string
	m, btn, _ := newTestMenu(t, items, &launched)
	m.Activate()

	for i := 0; i < 30; i++ {
		btn.Press(input.ButtonDown)
	}
	rows := m.rows()
	if m.selected < m.scroll || m.selected >= m.scroll+rows {
		t.Fatalf("selected %d outside visible rows [%d, %d)", m.selected, m.scroll, m.scroll+rows)
	}
}

func TestFBDisplayFill(t *testing.T) {
	fb := newMemFramebuffer(4, 4)
	d := NewFramebufferDisplay(fb)
	d.FillRectangle(2, 2, 10, 10, colorItem)

	want := hal.RGB565(0, 0xFF, 0xFF)
	if fb.pixel(3, 3) != want || fb.pixel(2, 2) != want {
		t.Fatalf("filled pixels = %#x %#x, want %#x", fb.pixel(2, 2), fb.pixel(3, 3), want)
	}
	if fb.pixel(1, 1) != 0 {
		t.Fatalf("pixel outside rectangle = %#x, want 0", fb.pixel(1, 1))
	}
}

func TestMenuActivateFailureUnbinds(t *testing.T) {
	var launched []string
	m, btn, fb := newTestMenu(t, []string{"a"}, &launched)
	fb.presentErr = errors.New("bus fault")

	if err := m.Activate(); err == nil {
		t.Fatalf("Activate() error = nil, want present error")
	}
	if btn.Press(input.ButtonUp) || btn.Press(input.ButtonCentre) {
		t.Fatalf("menu handlers still registered after failed Activate")
	}
}

func TestMenuWithoutPanel(t *testing.T) {
	var launched []string
	m, btn, fb := newTestMenu(t, []string{"a", "b"}, &launched)
	fb.presentErr = hal.ErrNotImplemented

	if err := m.Activate(); err != nil {
		t.Fatalf("Activate() error = %v, want nil", err)
	}
	btn.Press(input.ButtonDown)
	if m.Selected() != "b" {
		t.Fatalf("Selected() = %q, want %q", m.Selected(), "b")
	}
}
