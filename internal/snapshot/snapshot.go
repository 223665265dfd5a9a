// Package snapshot saves rendered frames as image files.
package snapshot

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"shaderbox/hal"
)

// Format is an output image encoding.
type Format uint8

const (
	FormatPNG Format = iota + 1
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, errors.Errorf("snapshot: unsupported image type %q", filepath.Ext(path))
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("snapshot: unknown format %d", f)
	}
	return errors.Wrapf(err, "snapshot: encode %s", f)
}

// WriteFile encodes img into path, choosing the format from its extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "snapshot")
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "snapshot")
}

// FromFramebuffer copies an RGB565 framebuffer into a new RGBA image.
func FromFramebuffer(fb hal.Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, errors.New("snapshot: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		start := y * stride
		end := start + w*2
		if end > len(buf) {
			break
		}
		hal.RGB565ToRGBA(img.Pix[y*img.Stride:(y+1)*img.Stride], buf[start:end])
	}
	return img, nil
}
