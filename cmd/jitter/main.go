// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command jitter perturbs a fixed point set with wraparound noise and writes
// its Voronoi diagram as one SVG file per tick.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/host"
	"github.com/2dChan/r2voronoi/internal/jitter"
	"github.com/2dChan/r2voronoi/internal/render"
)

func main() {
	var (
		width    = flag.Float64("width", config.JitterWidth, "Viewport width in pixels.")
		height   = flag.Float64("height", config.JitterHeight, "Viewport height in pixels.")
		points   = flag.Int("points", config.JitterNumPoints, "Number of points.")
		interval = flag.Duration("interval", config.JitterInterval, "Tick interval.")
		out      = flag.String("out", "jitter", "Output directory for frames (empty = discard).")
		seed     = flag.Int64("seed", 0, "Random seed.")
		method   = flag.String("method", r2voronoi.MethodDelaunay.String(), "Tessellation method: delaunay, bruteforce or fortune.")
	)
	flag.Parse()

	if *interval <= 0 {
		log.Fatalf("jitter: invalid interval %v", *interval)
	}
	m, err := r2voronoi.ParseMethod(*method)
	if err != nil {
		log.Fatal(err)
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	//nolint:gosec
	rng := rand.New(rand.NewSource(*seed))
	canvas := render.NewSVG(config.Background)
	emit := func(frame int) error {
		if *out == "" {
			return nil
		}
		return host.WriteFrame(*out, frame, canvas)
	}
	r := jitter.NewRunner(rng, jitter.NewPointSet(rng, *points, *width, *height), canvas, emit,
		jitter.WithInterval(*interval),
		jitter.WithDiagramOptions(r2voronoi.WithMethod(m)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := time.NewTicker(*interval)
	defer t.Stop()
	n, err := r.Run(ctx, time.Now(), t.C)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("jitter: rendered %d frames in %v budget", n, r.Budget())
}
