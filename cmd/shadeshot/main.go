// Command shadeshot renders frames of a built-in shader without a display and
// saves the last one as an image.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"shaderbox/internal/snapshot"
	"shaderbox/render"
	"shaderbox/shader"
	"shaderbox/shader/builtin"
)

type options struct {
	shader string
	width  int
	height int
	frames int
	out    string
}

func main() {
	var (
		opts options
		list bool
	)
	flag.StringVar(&opts.shader, "shader", "", "Shader name.")
	flag.IntVar(&opts.width, "width", 320, "Image width in pixels.")
	flag.IntVar(&opts.height, "height", 320, "Image height in pixels.")
	flag.IntVar(&opts.frames, "frames", 1, "Frames to render; the image shows the last one (time = frames-1).")
	flag.StringVar(&opts.out, "out", "", "Output file (.png, .bmp or .tiff).")
	flag.BoolVar(&list, "list", false, "List shader names and exit.")
	flag.Parse()

	reg := builtin.Registry()
	if list {
		fmt.Println(strings.Join(reg.Names(), "\n"))
		return
	}
	if opts.shader == "" || opts.out == "" {
		fatalf("usage: shadeshot -shader name -out frame.png [-width 320] [-height 320] [-frames 1]")
	}

	img, err := shoot(reg, opts, os.Stdout)
	if err != nil {
		fatalf("shadeshot: %v", err)
	}
	if err := snapshot.WriteFile(opts.out, img); err != nil {
		fatalf("shadeshot: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type lineWriter struct {
	w io.Writer
}

func (l lineWriter) WriteLineString(s string) { fmt.Fprintln(l.w, s) }
func (l lineWriter) WriteLineBytes(b []byte)  { fmt.Fprintln(l.w, string(b)) }

// shoot renders opts.frames frames into an in-memory canvas.
func shoot(reg *shader.Registry, opts options, log io.Writer) (*image.RGBA, error) {
	if opts.width <= 0 || opts.height <= 0 || opts.width > 4096 || opts.height > 4096 {
		return nil, errors.Errorf("size out of range: %dx%d", opts.width, opts.height)
	}
	if opts.frames <= 0 {
		return nil, errors.Errorf("frames out of range: %d", opts.frames)
	}

	canvas := snapshot.NewCanvas(opts.width, opts.height)
	sess := render.New(render.Config{
		Sink:     render.NewDisplayerSink(canvas),
		Registry: reg,
		Logger:   lineWriter{w: log},
	})
	if err := sess.Select(opts.shader); err != nil {
		return nil, err
	}
	if err := sess.Start(); err != nil {
		return nil, err
	}
	for i := 0; i < opts.frames; i++ {
		if err := sess.Tick(); err != nil {
			return nil, err
		}
	}
	sess.Cancel()
	return canvas.Image(), nil
}
