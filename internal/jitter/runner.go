// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package jitter

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/scene"
	"github.com/2dChan/r2voronoi/utils"
)

// EmitFunc is called after frame has been drawn onto the canvas.
type EmitFunc func(frame int) error

// Runner redraws a PointSet once per tick until its time budget runs out.
type Runner struct {
	points *PointSet
	canvas scene.Canvas
	emit   EmitFunc
	rng    *rand.Rand

	interval    time.Duration
	diagramOpts []r2voronoi.DiagramOption
	logger      *log.Logger
}

type Option func(*Runner)

// WithInterval sets the tick interval used for the budget. The default is
// config.JitterInterval.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.interval = d
	}
}

func WithDiagramOptions(opts ...r2voronoi.DiagramOption) Option {
	return func(r *Runner) {
		r.diagramOpts = opts
	}
}

func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner returns a Runner drawing points onto canvas. A nil emit is
// allowed.
func NewRunner(rng *rand.Rand, points *PointSet, canvas scene.Canvas, emit EmitFunc, setters ...Option) *Runner {
	r := &Runner{
		points:   points,
		canvas:   canvas,
		emit:     emit,
		rng:      rng,
		interval: config.JitterInterval,
		logger:   log.Default(),
	}
	for _, set := range setters {
		set(r)
	}
	return r
}

// Budget returns how long the runner keeps going: one interval per point.
func (r *Runner) Budget() time.Duration {
	return r.interval * time.Duration(len(r.points.Points))
}

// Run draws and emits the initial frame, then steps, draws and emits one
// frame per tick. It returns the number of emitted frames once a tick arrives
// later than start plus Budget, once ticks is closed, or when ctx is done.
func (r *Runner) Run(ctx context.Context, start time.Time, ticks <-chan time.Time) (int, error) {
	if r.canvas == nil {
		return 0, scene.ErrNoCanvas
	}
	frames := 0
	if err := r.frame(frames); err != nil {
		return frames, err
	}
	frames++

	budget := r.Budget()
	for {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case t, ok := <-ticks:
			if !ok || t.Sub(start) > budget {
				return frames, nil
			}
			r.points.Step(r.rng)
			if err := r.frame(frames); err != nil {
				return frames, err
			}
			frames++
		}
	}
}

func (r *Runner) frame(n int) error {
	r.Draw()
	if r.emit == nil {
		return nil
	}
	if err := r.emit(n); err != nil {
		return fmt.Errorf("jitter: emit frame %d: %w", n, err)
	}
	return nil
}

// Draw renders the current diagram with unfilled black cells and red point
// markers.
func (r *Runner) Draw() {
	ps := r.points
	r.canvas.Clear(ps.Width, ps.Height)

	d, err := r2voronoi.NewDiagram(ps.Points, utils.Rect(ps.Width, ps.Height), r.diagramOpts...)
	if err != nil {
		r.logger.Printf("jitter: voronoi: %v", err)
	} else {
		for i := range d.NumCells() {
			cell, err := d.Cell(i)
			if err != nil || cell.NumVertices() == 0 {
				continue
			}
			r.canvas.DrawPolygon(cell.Polygon(), nil, config.JitterStroke, config.CellStrokeWidth)
		}
	}
	for _, p := range ps.Points {
		r.canvas.FillCircle(p, config.JitterPointSize, config.JitterPoint)
	}
}
