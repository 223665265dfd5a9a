// Package hal is the boundary between shaderbox and the machine it runs on:
// a line logger, an RGB565 framebuffer, a key event stream and a millisecond
// tick stream.
//
// Backends are selected by build tags: an ebiten window or headless runner on
// desktop hosts (optionally presenting to a Linux fbdev device), and TinyGo
// targets such as the PicoCalc.
package hal

import "github.com/pkg/errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("hal: not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyF1
	KeyF2
)

// KeyEvent is a keyboard event. Text keys carry a Rune and KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream of 1 ms sequence numbers.
//
// Ticks may be dropped when the consumer falls behind; consumers should use
// the newest sequence number they observe.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between shaderbox and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
