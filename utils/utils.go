// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar points for Voronoi diagrams.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt points distributed uniformly inside bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bounds r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := range cnt {
		sites[i] = r2.Point{
			X: bounds.X.Lo + random.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + random.Float64()*bounds.Y.Length(),
		}
	}

	return sites
}

// Rect returns the rectangle [0,width]x[0,height].
func Rect(width, height float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: width, Y: height})
}
