// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Canvas is an immediate-mode drawing surface. Coordinates are in viewport
// pixels with the y axis pointing down.
type Canvas interface {
	// Clear starts a new frame of the given size.
	Clear(width, height float64)
	FillCircle(center r2.Point, radius float64, clr color.Color)
	// DrawPolygon fills and then strokes a closed polygon. A nil fill or
	// stroke is skipped.
	DrawPolygon(pts []r2.Point, fill, stroke color.Color, strokeWidth float64)
}
