package render

import (
	"image/color"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"

	"shaderbox/hal"
)

// Pixel is a color in the sink's native encoding.
type Pixel uint32

// Sink is the display a session renders into.
type Sink interface {
	Width() int
	Height() int
	// Encode packs 8-bit channels into the device pixel format.
	Encode(r, g, b uint8) Pixel
	// SetPixel writes one encoded pixel.
	SetPixel(x, y int, p Pixel)
}

// Presenter is implemented by sinks that need an explicit flush after a
// frame has been written.
type Presenter interface {
	Present() error
}

// FramebufferSink writes RGB565 pixels straight into a HAL framebuffer.
type FramebufferSink struct {
	fb hal.Framebuffer
}

func NewFramebufferSink(fb hal.Framebuffer) (*FramebufferSink, error) {
	if fb == nil {
		return nil, errors.New("render: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.Errorf("render: unsupported pixel format %d", fb.Format())
	}
	return &FramebufferSink{fb: fb}, nil
}

func (s *FramebufferSink) Width() int  { return s.fb.Width() }
func (s *FramebufferSink) Height() int { return s.fb.Height() }

func (s *FramebufferSink) Encode(r, g, b uint8) Pixel {
	return Pixel(hal.RGB565(r, g, b))
}

func (s *FramebufferSink) SetPixel(x, y int, p Pixel) {
	buf := s.fb.Buffer()
	if buf == nil {
		return
	}
	hal.PutRGB565(buf, s.fb.StrideBytes(), s.fb.Width(), s.fb.Height(), x, y, uint16(p))
}

func (s *FramebufferSink) Present() error { return s.fb.Present() }

// DisplayerSink renders into any TinyGo display driver (st7789, ili9341, ...).
type DisplayerSink struct {
	d drivers.Displayer
	w int
	h int
}

func NewDisplayerSink(d drivers.Displayer) *DisplayerSink {
	w, h := d.Size()
	return &DisplayerSink{d: d, w: int(w), h: int(h)}
}

func (s *DisplayerSink) Width() int  { return s.w }
func (s *DisplayerSink) Height() int { return s.h }

func (s *DisplayerSink) Encode(r, g, b uint8) Pixel {
	return Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

func (s *DisplayerSink) SetPixel(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.d.SetPixel(int16(x), int16(y), color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF})
}

func (s *DisplayerSink) Present() error { return s.d.Display() }
