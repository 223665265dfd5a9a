//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// HostConfig selects the desktop backends.
type HostConfig struct {
	// Width and Height of the framebuffer. Zero means 320x320, the PicoCalc
	// panel size.
	Width  int
	Height int

	// FBDev, if set, mirrors every presented frame onto a Linux framebuffer
	// device such as /dev/fb0.
	FBDev string
	// Evdev, if set, reads keys from Linux input event devices matching this
	// glob, for example /dev/input/event*.
	Evdev string

	// Log receives log lines. Nil means stdout.
	Log io.Writer
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime

	closers []io.Closer
}

// New returns a host HAL with the default configuration.
func New() HAL {
	h, err := NewHost(HostConfig{})
	if err != nil {
		panic(err)
	}
	return h
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) (HAL, error) {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) (*hostHAL, error) {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := &hostHAL{
		logger: &hostLogger{w: cfg.Log},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}

	if cfg.FBDev != "" {
		out, err := openFBDev(cfg.FBDev)
		if err != nil {
			return nil, errors.Wrapf(err, "hal: open framebuffer %s", cfg.FBDev)
		}
		h.fb.mirror = out
		h.closers = append(h.closers, out)
		h.logger.WriteLineString(fmt.Sprintf("hal: mirroring to %s (%dx%d)", cfg.FBDev, out.width(), out.height()))
	}
	if cfg.Evdev != "" {
		n, err := watchEvdev(cfg.Evdev, h.kbd.ch)
		if err != nil {
			h.Close()
			return nil, errors.Wrapf(err, "hal: open input %s", cfg.Evdev)
		}
		h.closers = append(h.closers, n)
	}
	return h, nil
}

// Close releases host devices opened by NewHost.
func (h *hostHAL) Close() error {
	var first error
	for _, c := range h.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	h.closers = nil
	return first
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
