// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements planar Delaunay triangulation by lifting the
// vertices onto a paraboloid and taking the lower convex hull.
package r2delaunay

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
	maxEps     = 1e-1
)

var (
	ErrInsufficientVertices = errors.New("r2delaunay: insufficient vertices for triangulation (minimum 3 required)")
	ErrDuplicateVertices    = errors.New("r2delaunay: duplicate vertices")
	ErrCollinear            = errors.New("r2delaunay: all vertices are collinear")
	ErrCocircular           = errors.New("r2delaunay: all vertices are cocircular")
	ErrDegenerateHull       = errors.New("r2delaunay: degenerate convex hull")
)

// Triangulation is a planar Delaunay triangulation.
type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Sort in CCW per triangle (y axis up).
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex (y axis up).
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles sharing vertex vIdx.
// It panics if vIdx is out of range.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the three vertices of triangle tIdx.
// It panics if tIdx is out of range.
func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Neighbors returns the vertices connected to vIdx by a triangulation edge,
// in ascending order.
func (dt *Triangulation) Neighbors(vIdx int) []int {
	seen := make(map[int]struct{})
	for _, tIdx := range dt.IncidentTriangles(vIdx) {
		t := dt.Triangles[tIdx]
		seen[NextVertex(t, vIdx)] = struct{}{}
		seen[PrevVertex(t, vIdx)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the tolerance used by the convex hull and the degeneracy checks.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 || eps > maxEps {
			return fmt.Errorf("r2delaunay: eps must be in (0, %v], got %v", maxEps, eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of vertices.
// Vertices must be distinct, and neither all collinear nor all cocircular.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 3 {
		return nil, ErrInsufficientVertices
	}

	seen := make(map[r2.Point]struct{}, numVertices)
	for _, v := range vertices {
		if _, ok := seen[v]; ok {
			return nil, ErrDuplicateVertices
		}
		seen[v] = struct{}{}
	}

	lifted := liftVertices(vertices)
	if allCollinear(lifted, opts.Eps) {
		return nil, ErrCollinear
	}

	var indices []int
	if numVertices == 3 {
		// Three points are always cocircular; the hull is the triangle itself.
		indices = []int{0, 1, 2}
	} else {
		if allCoplanar(lifted, opts.Eps) {
			return nil, ErrCocircular
		}
		var err error
		if indices, err = convexHullIndices(lifted, opts.Eps); err != nil {
			return nil, err
		}
	}

	var centroid r3.Vector
	for _, p := range lifted {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	dt := &Triangulation{
		Vertices:                vertices,
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}
	for i := 0; i+2 < len(indices); i += 3 {
		t := [3]int{indices[i], indices[i+1], indices[i+2]}
		if numVertices > 3 && !isLowerFace(t, lifted, centroid, opts.Eps) {
			continue
		}
		if !sortTriangleVerticesCCW(&t, vertices) {
			continue
		}
		dt.Triangles = append(dt.Triangles, t)
	}

	numTriangles := len(dt.Triangles)
	if numTriangles == 0 {
		return nil, ErrDegenerateHull
	}
	for _, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		if dt.IncidentTriangleOffsets[i+1] == 0 {
			return nil, fmt.Errorf("%w: vertex %d has no incident triangle", ErrDegenerateHull, i)
		}
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Triangles, vertices)
	}

	return dt, nil
}

// liftVertices maps vertices into [-1,1]^2 and lifts them onto z = x^2 + y^2.
func liftVertices(vertices []r2.Point) []r3.Vector {
	bounds := r2.RectFromPoints(vertices...)
	center := bounds.Center()
	scale := math.Max(bounds.X.Length(), bounds.Y.Length()) / 2
	if scale == 0 {
		scale = 1
	}

	lifted := make([]r3.Vector, len(vertices))
	for i, v := range vertices {
		q := v.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
	}
	return lifted
}

func allCollinear(lifted []r3.Vector, eps float64) bool {
	a := r2.Point{X: lifted[0].X, Y: lifted[0].Y}
	var dir r2.Point
	for _, p := range lifted[1:] {
		d := r2.Point{X: p.X, Y: p.Y}.Sub(a)
		if dir == (r2.Point{}) {
			if d.Norm() > eps {
				dir = d.Normalize()
			}
			continue
		}
		if math.Abs(dir.Cross(d)) > eps {
			return false
		}
	}
	return true
}

// allCoplanar reports whether every lifted vertex lies on a single plane, which
// happens exactly when the planar vertices share a circle.
func allCoplanar(lifted []r3.Vector, eps float64) bool {
	a := lifted[0]
	var normal r3.Vector
	for i := 1; i < len(lifted) && normal.Norm() == 0; i++ {
		for j := i + 1; j < len(lifted); j++ {
			n := lifted[i].Sub(a).Cross(lifted[j].Sub(a))
			if n.Norm() > eps {
				normal = n.Normalize()
				break
			}
		}
	}
	if normal.Norm() == 0 {
		return true
	}
	for _, p := range lifted {
		if math.Abs(p.Sub(a).Dot(normal)) > eps {
			return false
		}
	}
	return true
}

// convexHullIndices runs quickhull and returns the hull faces as index triples.
// Numerical failures inside the hull routine are reported as ErrDegenerateHull.
func convexHullIndices(lifted []r3.Vector, eps float64) (indices []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			indices, err = nil, fmt.Errorf("%w: %v", ErrDegenerateHull, r)
		}
	}()

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d hull indices", ErrDegenerateHull, len(ch.Indices))
	}
	return ch.Indices, nil
}

// isLowerFace reports whether the hull face t faces down. Its normal is first
// oriented away from the hull centroid.
func isLowerFace(t [3]int, lifted []r3.Vector, centroid r3.Vector, eps float64) bool {
	a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm <= eps {
		return false
	}
	if n.Dot(a.Sub(centroid)) < 0 {
		n = n.Mul(-1)
	}
	return n.Z/norm < -eps
}

// sortTriangleVerticesCCW orders t counter-clockwise and reports whether the
// triangle has a non-zero area.
func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) bool {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	cross := p1.Sub(p0).Cross(p2.Sub(p0))
	if cross == 0 {
		return false
	}
	if cross < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return true
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int, v []r2.Point) {
	origin := v[vIdx]
	angle := func(tIdx int) float64 {
		t := tris[tIdx]
		c := v[t[0]].Add(v[t[1]]).Add(v[t[2]]).Mul(1.0 / 3).Sub(origin)
		return math.Atan2(c.Y, c.X)
	}
	sort.Slice(incidentTris, func(i, j int) bool {
		return angle(incidentTris[i]) < angle(incidentTris[j])
	})

	// Rotate an open fan so it starts right after the gap, which is the
	// only pair of consecutive triangles that share no edge.
	n := len(incidentTris)
	for i := range n {
		prev := tris[incidentTris[(i+n-1)%n]]
		cur := tris[incidentTris[i]]
		if PrevVertex(prev, vIdx) != NextVertex(cur, vIdx) {
			rotated := append(append([]int(nil), incidentTris[i:]...), incidentTris[:i]...)
			copy(incidentTris, rotated)
			return
		}
	}
}

// PrevVertex returns the vertex preceding vIdx in triangle t.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the vertex following vIdx in triangle t.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
