//go:build !tinygo

package hal

import "sync"

// frameMirror receives every presented frame.
type frameMirror interface {
	blitRGB565(buf []byte, w, h, stride int) error
}

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	mirror frameMirror
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fillRGB565(f.buf, RGB565(r, g, b))
}

func (f *hostFramebuffer) Present() error {
	if f.mirror == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mirror.blitRGB565(f.buf, f.width, f.height, f.stride)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
