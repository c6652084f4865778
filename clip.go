// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/golang/geo/r2"
)

// polyVertex is a polygon vertex together with the label of the edge that
// starts at it.
type polyVertex struct {
	p        r2.Point
	neighbor int
}

type polygon []polyVertex

// rectPolygon returns the rectangle as a CCW polygon with boundary labels.
func rectPolygon(r r2.Rect) polygon {
	vs := r.Vertices()
	out := make(polygon, len(vs))
	for i, v := range vs {
		out[i] = polyVertex{p: v, neighbor: -1}
	}
	return out
}

// clipCells builds the cell of every site by clipping bounds against the
// bisectors of the sites returned by candidates.
func clipCells(sites []r2.Point, bounds r2.Rect, candidates func(int) []int) []polygon {
	cells := make([]polygon, len(sites))
	for i, s := range sites {
		cell := rectPolygon(bounds)
		for _, j := range candidates(i) {
			cell = clipBisector(cell, s, sites[j], j)
			if len(cell) == 0 {
				break
			}
		}
		cells[i] = cell
	}
	return cells
}

// clipBisector keeps the part of the convex polygon poly that is at least as
// close to s as to o. The new edge along the bisector is labeled with label.
func clipBisector(poly polygon, s, o r2.Point, label int) polygon {
	normal := o.Sub(s)
	mid := s.Add(o).Mul(0.5)
	side := func(p r2.Point) float64 {
		return p.Sub(mid).Dot(normal)
	}

	n := len(poly)
	out := make(polygon, 0, n+1)
	for i := range n {
		cur, nxt := poly[i], poly[(i+1)%n]
		dc, dn := side(cur.p), side(nxt.p)
		switch {
		case dc <= 0 && dn <= 0:
			out = append(out, cur)
		case dc <= 0 && dn > 0:
			out = append(out, cur)
			if dc < 0 {
				out = append(out, polyVertex{p: intersect(cur.p, nxt.p, dc, dn), neighbor: label})
			} else {
				out[len(out)-1].neighbor = label
			}
		case dc > 0 && dn <= 0:
			if dn < 0 {
				out = append(out, polyVertex{p: intersect(cur.p, nxt.p, dc, dn), neighbor: cur.neighbor})
			}
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func intersect(a, b r2.Point, da, db float64) r2.Point {
	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t))
}

func (p polygon) area() float64 {
	var sum float64
	n := len(p)
	for i := range n {
		sum += p[i].p.Cross(p[(i+1)%n].p)
	}
	return sum / 2
}
