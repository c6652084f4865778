// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package jitter animates a fixed set of points under random noise with
// toroidal wraparound and redraws their Voronoi diagram on every tick.
package jitter

import (
	"math"
	"math/rand"

	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/golang/geo/r2"
)

// PointSet is a fixed number of points inside a width x height torus.
type PointSet struct {
	Points        []r2.Point
	Width, Height float64
}

// NewPointSet returns n points placed uniformly in [0,width)x[0,height).
func NewPointSet(rng *rand.Rand, n int, width, height float64) *PointSet {
	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = r2.Point{X: rng.Float64() * width, Y: rng.Float64() * height}
	}
	return &PointSet{Points: pts, Width: width, Height: height}
}

// Step moves every coordinate by independent noise in
// [-JitterAmplitude, JitterAmplitude).
func (ps *PointSet) Step(rng *rand.Rand) {
	for i := range ps.Points {
		ps.Perturb(i, r2.Point{X: noise(rng), Y: noise(rng)})
	}
}

// Perturb moves point i by d and wraps it back onto the torus.
func (ps *PointSet) Perturb(i int, d r2.Point) {
	p := ps.Points[i].Add(d)
	ps.Points[i] = r2.Point{X: Wrap(p.X, ps.Width), Y: Wrap(p.Y, ps.Height)}
}

// Wrap maps v into [0, dim).
func Wrap(v, dim float64) float64 {
	w := math.Mod(math.Mod(v, dim)+dim, dim)
	if w >= dim {
		return 0
	}
	return w
}

func noise(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * config.JitterAmplitude
}
