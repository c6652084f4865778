// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi implements planar Voronoi diagrams clipped to a rectangle,
// built on Delaunay triangulation.
package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// NumVertices returns the number of vertices in the cell.
// An empty cell has none.
func (c Cell) NumVertices() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// Polygon returns the vertices of the cell, sorted in counter-clockwise order
// with the y axis pointing up. The slice aliases the Diagram's storage.
func (c Cell) Polygon() []r2.Point {
	return c.d.Vertices[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.d.Vertices[start+i], nil
}

// NumNeighbors returns the number of neighboring cells.
func (c Cell) NumNeighbors() int {
	return len(c.NeighborIndices())
}

// NeighborIndices returns the site indices of the neighboring cells in the
// order their shared edges appear around the cell. Edges on the bounding
// rectangle are skipped.
func (c Cell) NeighborIndices() []int {
	edges := c.d.EdgeNeighbors[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
	out := make([]int, 0, len(edges))
	for _, n := range edges {
		if n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	neighbors := c.NeighborIndices()
	if i < 0 || i >= len(neighbors) {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(neighbors))
	}
	return c.d.Cell(neighbors[i])
}

// Area returns the area of the cell.
func (c Cell) Area() float64 {
	poly := c.Polygon()
	var sum float64
	for i := range poly {
		sum += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return sum / 2
}

// Centroid returns the centroid of the cell polygon, or the site for an empty
// cell.
func (c Cell) Centroid() r2.Point {
	poly := c.Polygon()
	area := c.Area()
	if len(poly) < 3 || area == 0 {
		return c.Site()
	}
	var cx, cy float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		w := p.Cross(q)
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
	}
	return r2.Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Contains reports whether p lies inside the cell or on its boundary.
func (c Cell) Contains(p r2.Point) bool {
	poly := c.Polygon()
	if len(poly) < 3 {
		return false
	}
	for i := range poly {
		e := poly[(i+1)%len(poly)].Sub(poly[i])
		if e.Cross(p.Sub(poly[i])) < -1e-9*e.Norm() {
			return false
		}
	}
	return true
}
