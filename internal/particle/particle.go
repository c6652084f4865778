// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package particle models the bouncing balls.
package particle

import (
	"math"
	"math/rand"

	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/golang/geo/r2"
)

// BallsPerArea is the density of the reference calibration.
const BallsPerArea = float64(config.ReferenceNumBalls) / (config.ReferenceWidth * config.ReferenceHeight)

// Count returns the number of balls for a viewport of the given size.
func Count(width, height float64) int {
	return int(math.Round(width*height*BallsPerArea)) + config.MinExtraBalls
}

// Ball is a disc moving at constant velocity and reflecting off the viewport
// edges.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Pos returns the ball center.
func (b *Ball) Pos() r2.Point {
	return r2.Point{X: b.X, Y: b.Y}
}

// Update advances the ball by one step. An axis whose extent crosses the
// viewport edge has its velocity negated before the move. There is no
// clamping, so a ball may overshoot by up to one step.
func (b *Ball) Update(width, height float64) {
	if b.X+b.Radius > width || b.X-b.Radius < 0 {
		b.DX = -b.DX
	}
	if b.Y+b.Radius > height || b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}

	b.X += b.DX
	b.Y += b.DY
}

// NewBalls returns n balls placed uniformly inside the viewport inset by the
// ball radius.
func NewBalls(rng *rand.Rand, n int, width, height float64) []Ball {
	const r = config.BallRadius
	balls := make([]Ball, n)
	for i := range balls {
		balls[i] = Ball{
			X:      rng.Float64()*(width-2*r) + r,
			Y:      rng.Float64()*(height-2*r) + r,
			DX:     (rng.Float64() - 0.5) * 2 * config.MaxBallSpeed,
			DY:     (rng.Float64() - 0.5) * 2 * config.MaxBallSpeed,
			Radius: r,
		}
	}
	return balls
}

// Positions returns the centers of balls in order.
func Positions(balls []Ball) []r2.Point {
	out := make([]r2.Point, len(balls))
	for i := range balls {
		out[i] = balls[i].Pos()
	}
	return out
}
