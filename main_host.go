//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"shaderbox/app"
	"shaderbox/hal"
	"shaderbox/internal/snapshot"
	"shaderbox/render"
	"shaderbox/shader/builtin"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var headless, list bool
	var snapshotPath string
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Host steps per second in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Simulated, "simulated", false, "Headless: advance time by 1/hz per step without sleeping.")
	flag.IntVar(&cfg.Host.Width, "width", 320, "Framebuffer width.")
	flag.IntVar(&cfg.Host.Height, "height", 320, "Framebuffer height.")
	flag.StringVar(&cfg.Host.FBDev, "fbdev", "", "Also present frames on this Linux framebuffer device (e.g. /dev/fb0).")
	flag.StringVar(&cfg.Host.Evdev, "evdev", "", "Read keys from Linux input devices matching this glob (e.g. /dev/input/event*).")
	flag.StringVar(&appCfg.Shader, "shader", "", "Start this shader instead of the menu.")
	flag.Uint64Var(&appCfg.PeriodMs, "period", render.DefaultPeriodMs, "Milliseconds between frames.")
	flag.BoolVar(&appCfg.QuitOnClose, "quit-on-close", false, "Exit when the -shader view is closed.")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write the framebuffer to this image file on exit (.png, .bmp, .tiff).")
	flag.BoolVar(&list, "list", false, "List shader names and exit.")
	flag.Parse()

	if list {
		fmt.Println(strings.Join(builtin.Registry().Names(), "\n"))
		return
	}

	var fb hal.Framebuffer
	newApp := func(h hal.HAL) func() error {
		fb = h.Display().Framebuffer()
		a, err := app.New(h, appCfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}

	var err error
	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(newApp, cfg.Host)
	}
	if err == context.Canceled || err == app.ErrQuit {
		err = nil
	}

	if snapshotPath != "" && fb != nil {
		img, serr := snapshot.FromFramebuffer(fb)
		if serr == nil {
			serr = snapshot.WriteFile(snapshotPath, img)
		}
		if serr != nil {
			fmt.Fprintln(os.Stderr, serr)
			os.Exit(1)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
