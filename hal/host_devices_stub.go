//go:build !tinygo && !linux

package hal

import (
	"io"

	"github.com/pkg/errors"
)

type fbdevMirror struct{}

func openFBDev(path string) (*fbdevMirror, error) {
	return nil, errors.Wrap(ErrNotImplemented, "fbdev requires linux")
}

func (m *fbdevMirror) width() int  { return 0 }
func (m *fbdevMirror) height() int { return 0 }

func (m *fbdevMirror) blitRGB565(buf []byte, w, h, stride int) error {
	return ErrNotImplemented
}

func (m *fbdevMirror) Close() error { return nil }

func watchEvdev(pattern string, ch chan<- KeyEvent) (io.Closer, error) {
	return nil, errors.Wrap(ErrNotImplemented, "evdev requires linux")
}
