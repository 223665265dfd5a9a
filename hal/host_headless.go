//go:build !tinygo

package hal

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig

	// Hz is the number of host steps per second.
	Hz int
	// Ticks stops the runner after this many steps. Zero runs until ctx is
	// done or the app returns an error.
	Ticks uint64
	// Simulated advances time by exactly 1/Hz per step without sleeping, so
	// runs are deterministic and finish as fast as the app can render.
	Simulated bool
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return errors.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHostHAL(cfg.Host)
	if err != nil {
		return err
	}
	defer h.Close()

	step := newApp(h)

	if cfg.Simulated {
		return runSimulated(ctx, h, step, d, cfg.Ticks)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func runSimulated(ctx context.Context, h *hostHAL, step func() error, d time.Duration, ticks uint64) error {
	for tick := uint64(0); ticks == 0 || tick < ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.t.advance(d)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
	}
	return nil
}
