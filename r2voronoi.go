// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = 1e-12
)

// Method selects the algorithm used to build a Diagram.
type Method int

const (
	// MethodDelaunay clips each cell against its Delaunay neighbors. Inputs the
	// triangulation rejects are built with MethodBruteForce instead.
	MethodDelaunay Method = iota
	// MethodBruteForce clips each cell against every other site.
	MethodBruteForce
	// MethodFortune runs Fortune's sweep line.
	MethodFortune
)

var methodNames = map[Method]string{
	MethodDelaunay:   "delaunay",
	MethodBruteForce: "bruteforce",
	MethodFortune:    "fortune",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method with the given name.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("r2voronoi: unknown method %q", name)
}

var (
	ErrNoSites     = errors.New("r2voronoi: no sites")
	ErrEmptyBounds = errors.New("r2voronoi: empty bounds")
)

// Diagram is a planar Voronoi diagram clipped to a rectangle.
//
// Cell i belongs to Sites[i]. Its polygon is
// Vertices[CellOffsets[i]:CellOffsets[i+1]] in CCW order (y axis up), and
// EdgeNeighbors holds, for the edge starting at each vertex, the index of the
// site across that edge or -1 for the bounding rectangle.
type Diagram struct {
	Sites  []r2.Point
	Bounds r2.Rect
	Method Method

	Vertices      []r2.Point
	EdgeNeighbors []int
	CellOffsets   []int
}

type DiagramOptions struct {
	Eps    float64
	Method Method
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance passed to the triangulation.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("r2voronoi: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithMethod selects the construction algorithm.
func WithMethod(m Method) DiagramOption {
	return func(o *DiagramOptions) error {
		if _, ok := methodNames[m]; !ok {
			return fmt.Errorf("r2voronoi: unknown method %v", m)
		}
		o.Method = m
		return nil
	}
}

// NumCells returns the number of cells, which equals the number of sites.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell of site i.
// It returns an error if the index is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(d.Sites) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(d.Sites))
	}
	return Cell{idx: i, d: d}, nil
}

// NewDiagram computes the Voronoi diagram of sites clipped to bounds.
//
// Coincident sites share one cell: each of them gets a copy of the polygon of
// their common position. Sites outside bounds may get an empty cell.
func NewDiagram(sites []r2.Point, bounds r2.Rect, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps:    defaultEps,
		Method: MethodDelaunay,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	if bounds.IsEmpty() || bounds.X.Length() == 0 || bounds.Y.Length() == 0 {
		return nil, ErrEmptyBounds
	}

	unique, rep := dedupSites(sites)

	var cells []polygon
	method := opts.Method
	switch method {
	case MethodFortune:
		cells = fortuneCells(unique, bounds)
	case MethodDelaunay:
		dt, err := r2delaunay.NewTriangulation(unique, r2delaunay.WithEps(opts.Eps))
		if err != nil {
			method = MethodBruteForce
			cells = clipCells(unique, bounds, allOthers(len(unique)))
			break
		}
		cells = clipCells(unique, bounds, dt.Neighbors)
	default:
		cells = clipCells(unique, bounds, allOthers(len(unique)))
	}

	// Neighbor labels refer to unique positions; map them back to the first
	// input site at that position.
	first := make([]int, len(unique))
	for i := len(sites) - 1; i >= 0; i-- {
		first[rep[i]] = i
	}

	d := &Diagram{
		Sites:       sites,
		Bounds:      bounds,
		Method:      method,
		CellOffsets: make([]int, len(sites)+1),
	}
	for i := range sites {
		cell := cells[rep[i]]
		for _, v := range cell {
			n := v.neighbor
			if n >= 0 {
				n = first[n]
			}
			d.Vertices = append(d.Vertices, v.p)
			d.EdgeNeighbors = append(d.EdgeNeighbors, n)
		}
		d.CellOffsets[i+1] = len(d.Vertices)
	}

	return d, nil
}

// dedupSites returns the distinct sites in first-seen order and, for every
// input site, the index of its position in that list.
func dedupSites(sites []r2.Point) ([]r2.Point, []int) {
	index := make(map[r2.Point]int, len(sites))
	unique := make([]r2.Point, 0, len(sites))
	rep := make([]int, len(sites))
	for i, s := range sites {
		u, ok := index[s]
		if !ok {
			u = len(unique)
			index[s] = u
			unique = append(unique, s)
		}
		rep[i] = u
	}
	return unique, rep
}

func allOthers(n int) func(int) []int {
	return func(i int) []int {
		out := make([]int, 0, n-1)
		for j := range n {
			if j != i {
				out = append(out, j)
			}
		}
		return out
	}
}
