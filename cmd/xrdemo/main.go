// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command xrdemo runs the XR frame loop against the simulated runtime and
// draws a simple stereo scene into every eye.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/app"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
	"github.com/gogpu/xrframe/xr/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		frames     = flag.Int("frames", 90, "number of frames to submit, 0 runs until interrupted")
		output     = flag.String("out", "", "directory for the last frame's per-eye PNGs")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if err := run(*configPath, *frames, *output, *verbose); err != nil {
		log.Fatalf("xrdemo: %v", err)
	}
}

func run(configPath string, frames int, output string, verbose bool) error {
	if err := loadDotEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := app.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	xrframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// The simulated runtime expects a real-looking binding; any non-zero
	// display and context handles will do.
	binding, err := graphics.NewBinding(
		xr.GraphicsBinding{Display: 1, Config: 1, Context: 1},
		cfg.GraphicsVersion(),
		graphics.WithAPIName(cfg.Graphics.API),
	)
	if err != nil {
		return err
	}

	scene := newScene()
	xc, err := app.New(cfg, binding, scene,
		app.WithRuntime(sim.New()),
		app.WithMaxFrames(frames),
	)
	if err != nil {
		return err
	}
	defer scene.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := xc.Run(ctx, app.Headless{}); err != nil && ctx.Err() == nil {
		return err
	}

	st := xc.Stats()
	log.Printf("frames=%d submitted=%d tracking_lost=%d render_errors=%d restarts=%d",
		st.Frames, st.Submitted, st.TrackingLost, st.RenderErrors, st.Restarts)

	if output != "" {
		if err := scene.SaveEyes(output); err != nil {
			return err
		}
		log.Printf("eyes saved to %s", output)
	}
	return nil
}
