// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package palette holds the cell colors.
package palette

import (
	"math/rand"

	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHex is the palette used until the user asks for a new one.
var DefaultHex = [config.PaletteSize]string{
	"#FF5733", "#FFBD33", "#DBFF33", "#75FF33", "#33FF57",
	"#33FFDB", "#3380FF", "#8233FF", "#FF33F9", "#FF3361",
}

// Palette is an ordered list of colors assigned to cells by index.
type Palette []colorful.Color

// Default returns a fresh copy of the default palette.
func Default() Palette {
	p := make(Palette, len(DefaultHex))
	for i, hex := range DefaultHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic("palette: bad default color " + hex)
		}
		p[i] = c
	}
	return p
}

// Random returns a palette of uniformly random hues and saturations with
// lightness kept in [config.MinLightness, config.MaxLightness).
func Random(rng *rand.Rand) Palette {
	p := make(Palette, config.PaletteSize)
	for i := range p {
		h := rng.Float64() * 360
		s := rng.Float64()
		l := config.MinLightness + rng.Float64()*(config.MaxLightness-config.MinLightness)
		p[i] = colorful.Hsl(h, s, l).Clamped()
	}
	return p
}

// At returns the color for index i, wrapping around the palette.
func (p Palette) At(i int) colorful.Color {
	return p[i%len(p)]
}

// Hex returns the palette as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
