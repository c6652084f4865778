// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command balls animates the Voronoi diagram of bouncing balls, in a window
// or headless as a sequence of SVG frames.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/host"
	"github.com/2dChan/r2voronoi/internal/window"
)

func main() {
	var (
		cfg      host.HeadlessConfig
		headless bool
		width    int
		height   int
		method   string
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window, writing SVG frames.")
	flag.IntVar(&width, "width", config.WindowWidth, "Viewport width in pixels.")
	flag.IntVar(&height, "height", config.WindowHeight, "Viewport height in pixels.")
	flag.IntVar(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.IntVar(&cfg.Hz, "hz", config.TPS, "Frame rate in headless mode.")
	flag.StringVar(&cfg.OutDir, "out", "frames", "Output directory for headless frames (empty = discard).")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed.")
	flag.StringVar(&method, "method", r2voronoi.MethodDelaunay.String(), "Tessellation method: delaunay, bruteforce or fortune.")
	flag.Parse()

	m, err := r2voronoi.ParseMethod(method)
	if err != nil {
		log.Fatal(err)
	}
	opts := []r2voronoi.DiagramOption{r2voronoi.WithMethod(m)}

	if !headless {
		err := window.Run(window.Config{
			Width:          width,
			Height:         height,
			Seed:           cfg.Seed,
			DiagramOptions: opts,
		})
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Width, cfg.Height = float64(width), float64(height)
	cfg.DiagramOptions = opts
	n, err := host.RunHeadless(ctx, cfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("balls: rendered %d frames", n)
}
