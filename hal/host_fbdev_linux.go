//go:build !tinygo && linux

package hal

import (
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

type fbdevMirror struct {
	dev *fb.Device
}

func openFBDev(path string) (*fbdevMirror, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return &fbdevMirror{dev: dev}, nil
}

func (m *fbdevMirror) width() int  { return m.dev.Bounds().Dx() }
func (m *fbdevMirror) height() int { return m.dev.Bounds().Dy() }

// blitRGB565 scales the frame to the whole device with nearest-neighbour
// sampling.
func (m *fbdevMirror) blitRGB565(buf []byte, w, h, stride int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	bounds := m.dev.Bounds()
	dw := bounds.Dx()
	dh := bounds.Dy()
	for y := 0; y < dh; y++ {
		sy := (y * h) / dh
		row := sy * stride
		for x := 0; x < dw; x++ {
			sx := (x * w) / dw
			off := row + sx*2
			if off+1 >= len(buf) {
				continue
			}
			r, g, b := RGB888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
			m.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return nil
}

func (m *fbdevMirror) Close() error {
	m.dev.Close()
	return nil
}
