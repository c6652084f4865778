// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

import (
	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/config"
)

// Draw renders one frame of sim onto c. A nil diagram draws the balls only.
func Draw(c Canvas, sim *Simulation, d *r2voronoi.Diagram) {
	c.Clear(sim.Width, sim.Height)
	if sim.BallsOnTop {
		drawCells(c, sim, d)
		drawBalls(c, sim)
		return
	}
	drawBalls(c, sim)
	drawCells(c, sim, d)
}

func drawBalls(c Canvas, sim *Simulation) {
	for i := range sim.Balls {
		b := &sim.Balls[i]
		c.FillCircle(b.Pos(), b.Radius, config.BallColor)
	}
}

func drawCells(c Canvas, sim *Simulation, d *r2voronoi.Diagram) {
	if d == nil {
		return
	}
	for i := range d.NumCells() {
		cell, err := d.Cell(i)
		if err != nil || cell.NumVertices() == 0 {
			continue
		}
		c.DrawPolygon(cell.Polygon(), sim.Palette.At(i), config.CellStrokeColor, config.CellStrokeWidth)
	}
}
