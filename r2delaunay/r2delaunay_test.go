// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"errors"
	"fmt"
	"testing"

	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/markus-wa/quickhull-go/v2"
)

// TriangulationOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.05, false},
		{"eps max", maxEps, false},
		{"eps large", 1, true},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TriangulationOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("WithEps(%v) error = %v, want %v", tt.eps, err, errValMsg)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Triangulation

func TestNewTriangulation_WithEps(t *testing.T) {
	points := utils.GenerateRandomPoints(10, utils.Rect(100, 100), 0)
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps default", defaultEps, false},
		{"eps positive", 1e-9, false},
		{"eps large", 1, true},
		{"eps zero", 0, true},
		{"eps negative", -0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(points, WithEps(tt.eps))
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("NewTriangulation(..., WithEps(%v)) error = %v, want %s", tt.eps, err, errValMsg)
			}
		})
	}
}

func TestNewTriangulation_DegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		vertices []r2.Point
		want     error
	}{
		{"empty", nil, ErrInsufficientVertices},
		{"two points", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, ErrInsufficientVertices},
		{"duplicate", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, ErrDuplicateVertices},
		{"collinear", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 5, Y: 5}}, ErrCollinear},
		{
			"cocircular square",
			[]r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			ErrCocircular,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(tt.vertices)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewTriangulation(%v) error = %v, want %v", tt.vertices, err, tt.want)
			}
		})
	}
}

func TestNewTriangulation_Triangle(t *testing.T) {
	vertices := []r2.Point{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 3, Y: 0}}
	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(%v) error = %v, want nil", vertices, err)
	}
	if len(dt.Triangles) != 1 {
		t.Fatalf("len(dt.Triangles) = %v, want 1", len(dt.Triangles))
	}
	if !cyclicEqual(dt.Triangles[0][:], []int{0, 2, 1}) {
		t.Errorf("dt.Triangles[0] = %v, want CCW order of [0 2 1]", dt.Triangles[0])
	}
}

func TestNewTriangulation_EulerCount(t *testing.T) {
	// A square with its centre: four triangles around the centre.
	vertices := []r2.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5},
	}
	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	if got := len(dt.Triangles); got != 4 {
		t.Errorf("len(dt.Triangles) = %v, want 4", got)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, dt.Neighbors(4)); diff != "" {
		t.Errorf("dt.Neighbors(4) mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTriangulation_VerifyTrianglesCCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i, tri := range dt.Triangles {
		a, b, c := dt.Vertices[tri[0]], dt.Vertices[tri[1]], dt.Vertices[tri[2]]
		if cross := b.Sub(a).Cross(c.Sub(a)); cross <= 0 {
			t.Errorf("dt.Triangles[%d] vertices are not sorted in CCW", i)
		}
	}
}

func TestNewTriangulation_EmptyCircumcircle(t *testing.T) {
	dt := mustNewTriangulation(t, 200)

	for i, tri := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		for vIdx, p := range dt.Vertices {
			if vIdx == tri[0] || vIdx == tri[1] || vIdx == tri[2] {
				continue
			}
			if inCircle(a, b, c, p) > 1e-6 {
				t.Errorf("dt.Triangles[%d] circumcircle contains vertex %d", i, vIdx)
			}
		}
	}
}

func TestNewTriangulation_VerifyIncidentTrianglesSorted(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for vIdx := range len(dt.Vertices) {
		incidentTris := dt.IncidentTriangles(vIdx)
		gaps := 0
		for i := range incidentTris {
			ct := dt.Triangles[incidentTris[i]]
			nt := dt.Triangles[incidentTris[(i+1)%len(incidentTris)]]
			if PrevVertex(ct, vIdx) != NextVertex(nt, vIdx) {
				gaps++
			}
		}
		// Hull vertices have an open fan with exactly one gap.
		if gaps > 1 {
			t.Errorf("dt.IncidentTriangles(%d) has %d gaps, want at most 1", vIdx, gaps)
		}
	}
}

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		Vertices:                nil,
		Triangles:               nil,
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if cmp.Equal(tt.want, got) == false {
				t.Errorf("dt.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.IncidentTriangleOffsets))
}

func TestTriangulation_TriangleVertices(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.TriangleVertices(%d) did not panic, want panic", in)
			}
		}()
		dt.TriangleVertices(in)
	}

	points := utils.GenerateRandomPoints(3, utils.Rect(1, 1), 0)
	dt := &Triangulation{
		Vertices: points,
		Triangles: [][3]int{
			{0, 1, 2},
		},
	}

	want := [3]r2.Point{points[0], points[1], points[2]}
	a, b, c := dt.TriangleVertices(0)
	got := [3]r2.Point{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dt.TriangleVertices(0) mismatch (-want +got):\n%s", diff)
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.Triangles))
}

func TestSortTriangleVerticesCCW(t *testing.T) {
	verts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}}

	tests := []struct {
		name   string
		in     [3]int
		want   [3]int
		wantOK bool
	}{
		{"already ccw", [3]int{0, 1, 2}, [3]int{0, 1, 2}, true},
		{"clockwise", [3]int{0, 2, 1}, [3]int{0, 1, 2}, true},
		{"flat", [3]int{0, 1, 3}, [3]int{0, 1, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := tt.in
			ok := sortTriangleVerticesCCW(&tri, verts)
			if ok != tt.wantOK {
				t.Errorf("sortTriangleVerticesCCW(%v, verts) = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, tri); diff != "" {
				t.Errorf("sortTriangleVerticesCCW(%v, verts) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSortIncidentTriangleIndicesCCW(t *testing.T) {
	// Vertex 0 at the origin surrounded by 1..4 on the axes.
	verts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	tris := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
	}

	closed := []int{1, 3, 2, 0}
	sortIncidentTriangleIndicesCCW(0, closed, tris, verts)
	if !cyclicEqual(closed, []int{0, 1, 2, 3}) {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) closed fan = %v, want cyclic [0 1 2 3]", closed)
	}

	open := []int{2, 0, 1}
	sortIncidentTriangleIndicesCCW(0, open, tris, verts)
	if diff := cmp.Diff([]int{0, 1, 2}, open); diff != "" {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) open fan mismatch (-want +got):\n%s", diff)
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Benchmarks

func BenchmarkConvexHull(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, utils.Rect(1, 1), 0)
			v3 := liftVertices(points)

			qh := new(quickhull.QuickHull)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				qh.ConvexHull(v3, true, true, 0)
			}
		})
	}
}

func BenchmarkNewTriangulation(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, utils.Rect(1500, 892), 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := NewTriangulation(points)
				if err != nil {
					b.Fatalf("NewTriangulation(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNewTriangulation(t *testing.T, n int) *Triangulation {
	t.Helper()
	vertices := utils.GenerateRandomPoints(n, utils.Rect(1500, 892), 0)

	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	return dt
}

// inCircle is positive when d lies strictly inside the circumcircle of the
// CCW triangle abc. The result is scaled by the triangle size.
func inCircle(a, b, c, d r2.Point) float64 {
	lift := func(p r2.Point) r3.Vector {
		q := p.Sub(d)
		return r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
	}
	det := lift(a).Dot(lift(b).Cross(lift(c)))
	scale := b.Sub(a).Norm() * c.Sub(a).Norm() * c.Sub(b).Norm()
	if scale == 0 {
		return 0
	}
	return det / (scale * (b.Sub(a).Norm() + c.Sub(a).Norm()))
}

func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	n := len(a)
	for i := range n {
		if b[0] != a[i] {
			continue
		}

		equal := true
		for j := range n {
			if a[(i+j)%n] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}

	return false
}
