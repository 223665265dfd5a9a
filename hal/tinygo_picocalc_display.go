//go:build tinygo && baremetal && picocalc

package hal

import (
	"image/color"
	"machine"
	"time"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

// ILI9488 command bytes used by the PicoCalc panel.
const (
	ili9488SleepOut    = 0x11
	ili9488InvertOn    = 0x21
	ili9488DisplayOn   = 0x29
	ili9488ColumnAddr  = 0x2A
	ili9488PageAddr    = 0x2B
	ili9488MemoryWrite = 0x2C
	ili9488MemoryCtl   = 0x36
	ili9488PixelFormat = 0x3A
	ili9488FrameRate   = 0xB1
	ili9488DisplayFunc = 0xB6
	ili9488Power1      = 0xC0
	ili9488Power2      = 0xC1
	ili9488VCOM        = 0xC5
)

type ili9488Step struct {
	cmd   byte
	data  []byte
	sleep time.Duration
}

// ili9488Setup puts the panel in 16bpp mode, mirrored for the PicoCalc
// carrier with BGR subpixel order.
var ili9488Setup = []ili9488Step{
	{cmd: ili9488Power1, data: []byte{0x17, 0x15}},
	{cmd: ili9488Power2, data: []byte{0x41}},
	{cmd: ili9488VCOM, data: []byte{0x00, 0x12, 0x80, 0x40}},
	{cmd: ili9488PixelFormat, data: []byte{0x55}},
	{cmd: ili9488FrameRate, data: []byte{0xA0, 0x11}},
	{cmd: ili9488DisplayFunc, data: []byte{0x02, 0x22, 0x27}},
	{cmd: ili9488InvertOn},
	{cmd: ili9488MemoryCtl, data: []byte{0x40 | 0x04 | 0x08}},
	{cmd: ili9488SleepOut, sleep: 120 * time.Millisecond},
	{cmd: ili9488DisplayOn},
}

// ili9488 drives the panel from a RAM framebuffer. It is a drivers.Displayer:
// SetPixel writes into the framebuffer and Display streams it to the glass
// one row at a time.
type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	fb  *memFramebuffer
	row []byte
}

var _ drivers.Displayer = (*ili9488)(nil)

func newILI9488(fb *memFramebuffer) (*ili9488, error) {
	if fb == nil || fb.w <= 0 || fb.h <= 0 {
		return nil, errors.New("ili9488: no framebuffer")
	}
	if machine.SPI1 == nil {
		return nil, errors.New("ili9488: SPI1 unavailable")
	}
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	d := &ili9488{
		spi: *machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		fb:  fb,
		row: make([]byte, fb.w*2),
	}
	for _, pin := range []machine.Pin{d.cs, d.dc, d.rst} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.High()
	}

	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, step := range ili9488Setup {
		d.command(step.cmd, step.data...)
		if step.sleep > 0 {
			time.Sleep(step.sleep)
		}
	}
	return d, nil
}

func (d *ili9488) Size() (x, y int16) { return int16(d.fb.w), int16(d.fb.h) }

func (d *ili9488) SetPixel(x, y int16, c color.RGBA) {
	PutRGB565(d.fb.buf, d.fb.stride, d.fb.w, d.fb.h, int(x), int(y), RGB565(c.R, c.G, c.B))
}

// Display sends the whole framebuffer to the panel.
func (d *ili9488) Display() error {
	w, h := d.fb.w, d.fb.h
	if len(d.fb.buf) < d.fb.stride*(h-1)+w*2 {
		return errors.Errorf("ili9488: framebuffer too small for %dx%d", w, h)
	}
	d.window(0, 0, uint16(w-1), uint16(h-1))

	d.cs.Low()
	d.dc.High()
	for y := 0; y < h; y++ {
		off := y * d.fb.stride
		n := RGB565BigEndian(d.row, d.fb.buf[off:off+w*2])
		d.spi.Tx(d.row[:n*2], nil)
	}
	d.cs.High()
	return nil
}

func (d *ili9488) command(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) window(x0, y0, x1, y1 uint16) {
	d.command(ili9488ColumnAddr, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	d.command(ili9488PageAddr, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	d.command(ili9488MemoryWrite)
}
