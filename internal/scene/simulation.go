// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package scene drives the bouncing-ball Voronoi animation: the simulation
// state, the per-frame loop and the drawing of one frame.
package scene

import (
	"math/rand"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/palette"
	"github.com/2dChan/r2voronoi/internal/particle"
	"github.com/2dChan/r2voronoi/utils"
)

// Simulation is the mutable state of the animation. It is owned by a single
// Loop and must only be touched from the loop's callbacks or between them.
type Simulation struct {
	Width, Height float64
	Balls         []particle.Ball
	Palette       palette.Palette
	// BallsOnTop draws balls after the cells instead of before them.
	BallsOnTop bool

	rng *rand.Rand
}

// NewSimulation returns a simulation sized to the viewport with the default
// palette.
func NewSimulation(rng *rand.Rand, width, height float64) *Simulation {
	s := &Simulation{
		Palette: palette.Default(),
		rng:     rng,
	}
	s.Resize(width, height)
	return s
}

// Resize sets the viewport size and replaces every ball with a fresh set
// sized for the new area. Previous balls are discarded, not rescaled.
func (s *Simulation) Resize(width, height float64) {
	s.Width, s.Height = width, height
	s.Balls = particle.NewBalls(s.rng, particle.Count(width, height), width, height)
}

// ToggleDrawOrder flips BallsOnTop.
func (s *Simulation) ToggleDrawOrder() {
	s.BallsOnTop = !s.BallsOnTop
}

// RegeneratePalette replaces the palette with random colors.
func (s *Simulation) RegeneratePalette() {
	s.Palette = palette.Random(s.rng)
}

// HandleKey applies the action bound to r and reports whether there was one.
// 'o' toggles the draw order and 'p' regenerates the palette, in either case.
func (s *Simulation) HandleKey(r rune) bool {
	switch r {
	case 'o', 'O':
		s.ToggleDrawOrder()
	case 'p', 'P':
		s.RegeneratePalette()
	default:
		return false
	}
	return true
}

// Advance moves every ball by one step.
func (s *Simulation) Advance() {
	for i := range s.Balls {
		s.Balls[i].Update(s.Width, s.Height)
	}
}

// Diagram builds the Voronoi diagram of the current ball positions over the
// viewport. Cell i belongs to ball i.
func (s *Simulation) Diagram(opts ...r2voronoi.DiagramOption) (*r2voronoi.Diagram, error) {
	return r2voronoi.NewDiagram(particle.Positions(s.Balls), utils.Rect(s.Width, s.Height), opts...)
}
