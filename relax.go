// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Relax applies steps rounds of Lloyd relaxation: every site moves to the
// centroid of its cell and the diagram is rebuilt. Sites is replaced with a
// new slice; the caller's input slice is left untouched.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: negative steps %d", steps)
	}
	for range steps {
		sites := make([]r2.Point, d.NumCells())
		for i := range sites {
			c, err := d.Cell(i)
			if err != nil {
				return err
			}
			sites[i] = c.Centroid()
		}
		nd, err := NewDiagram(sites, d.Bounds, WithMethod(d.Method))
		if err != nil {
			return err
		}
		*d = *nd
	}
	return nil
}
