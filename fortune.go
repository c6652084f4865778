// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pzsz/voronoi"
)

// fortuneCells builds the cells of distinct sites with Fortune's algorithm and
// relabels them by site index.
func fortuneCells(sites []r2.Point, bounds r2.Rect) []polygon {
	index := make(map[r2.Point]int, len(sites))
	vsites := make([]voronoi.Vertex, len(sites))
	for i, s := range sites {
		index[s] = i
		vsites[i] = voronoi.Vertex{X: s.X, Y: s.Y}
	}

	cells := make([]polygon, len(sites))
	if len(sites) == 1 {
		cells[0] = rectPolygon(bounds)
		return cells
	}

	bb := voronoi.NewBBox(bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi)
	diagram := voronoi.ComputeDiagram(vsites, bb, true)
	for _, vc := range diagram.Cells {
		i, ok := index[r2.Point{X: vc.Site.X, Y: vc.Site.Y}]
		if !ok {
			continue
		}
		var cell polygon
		for _, he := range vc.Halfedges {
			start := he.GetStartpoint()
			neighbor := -1
			if other := otherCell(he.Edge, vc); other != nil {
				if j, ok := index[r2.Point{X: other.Site.X, Y: other.Site.Y}]; ok {
					neighbor = j
				}
			}
			cell = append(cell, polyVertex{p: r2.Point{X: start.X, Y: start.Y}, neighbor: neighbor})
		}
		cells[i] = orientCCW(cell)
	}
	return cells
}

func otherCell(e *voronoi.Edge, c *voronoi.Cell) *voronoi.Cell {
	if e == nil {
		return nil
	}
	if e.LeftCell == c {
		return e.RightCell
	}
	return e.LeftCell
}

// orientCCW reverses a clockwise polygon. Edge labels move with their edges.
func orientCCW(p polygon) polygon {
	if len(p) < 3 {
		return nil
	}
	if p.area() >= 0 {
		return p
	}
	n := len(p)
	out := make(polygon, n)
	for i := range n {
		// out[i] -> out[i+1] is input edge n-i-1 walked backwards.
		out[i] = polyVertex{p: p[(n-i)%n].p, neighbor: p[(n-i-1+n)%n].neighbor}
	}
	return out
}
