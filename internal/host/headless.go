// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package host runs the bouncing-ball scene without a window, writing every
// frame as an SVG file.
package host

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/render"
	"github.com/2dChan/r2voronoi/internal/scene"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Width, Height float64
	Hz            int
	// Frames stops the run after N frames. Zero runs until ctx is done.
	Frames int
	// OutDir receives frame-NNNN.svg files. Empty discards frames.
	OutDir string
	Seed   int64

	DiagramOptions []r2voronoi.DiagramOption
	Logger         *log.Logger
}

// FrameName returns the file name of frame n.
func FrameName(n int) string {
	return fmt.Sprintf("frame-%04d.svg", n)
}

// RunHeadless renders frames at cfg.Hz and returns the number of frames
// rendered.
func RunHeadless(ctx context.Context, cfg HeadlessConfig) (int, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = config.TPS
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return 0, fmt.Errorf("host: invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()
	return runFrames(ctx, cfg, t.C)
}

func runFrames(ctx context.Context, cfg HeadlessConfig, ticks <-chan time.Time) (int, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("host: invalid viewport %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return 0, fmt.Errorf("host: %w", err)
		}
	}

	//nolint:gosec
	sim := scene.NewSimulation(rand.New(rand.NewSource(cfg.Seed)), cfg.Width, cfg.Height)
	canvas := render.NewSVG(config.Background)
	sched := &scene.FrameScheduler{}
	loop := scene.NewLoop(sim, canvas, sched,
		scene.WithLogger(cfg.Logger),
		scene.WithDiagramOptions(cfg.DiagramOptions...))
	if err := loop.Start(); err != nil {
		return 0, err
	}
	defer loop.Stop()

	for {
		select {
		case <-ctx.Done():
			return loop.Frames(), ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return loop.Frames(), nil
			}
			if sched.RunPending() == 0 {
				continue
			}
			n := loop.Frames() - 1
			if cfg.OutDir != "" {
				if err := WriteFrame(cfg.OutDir, n, canvas); err != nil {
					return loop.Frames(), err
				}
			}
			if cfg.Frames > 0 && loop.Frames() >= cfg.Frames {
				return loop.Frames(), nil
			}
		}
	}
}

// WriteFrame writes frame n of canvas to dir/FrameName(n).
func WriteFrame(dir string, n int, canvas io.WriterTo) (err error) {
	path := filepath.Join(dir, FrameName(n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("host: %w", cerr)
		}
	}()
	if _, err := canvas.WriteTo(f); err != nil {
		return fmt.Errorf("host: write %s: %w", path, err)
	}
	return nil
}
