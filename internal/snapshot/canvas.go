package snapshot

import (
	"image"
	"image/color"
)

// Canvas is an in-memory display for rendering without hardware. It
// satisfies tinygo.org/x/drivers.Displayer.
type Canvas struct {
	img      *image.RGBA
	Presents int
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	c.Presents++
	return nil
}

// Image returns the canvas contents. The image is live: later writes show
// through.
func (c *Canvas) Image() *image.RGBA { return c.img }
