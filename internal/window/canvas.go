// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

//go:build cgo

package window

import (
	"image"
	"image/color"

	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is a 1x1 white source for DrawTriangles. The border pixels
// keep linear filtering from sampling outside the image.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws scene shapes onto an ebiten image. The target must be set
// before every frame.
type Canvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(width, height float64) {
	c.dst.Fill(config.Background)
}

func (c *Canvas) FillCircle(center r2.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// DrawPolygon fills pts as a triangle fan, so the polygon must be convex.
func (c *Canvas) DrawPolygon(pts []r2.Point, fill, stroke color.Color, strokeWidth float64) {
	if len(pts) < 2 {
		return
	}
	if fill != nil && len(pts) >= 3 {
		r, g, b, a := straight(fill)
		c.vertices = c.vertices[:0]
		c.indices = c.indices[:0]
		for _, p := range pts {
			c.vertices = append(c.vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		for i := 1; i+1 < len(pts); i++ {
			c.indices = append(c.indices, 0, uint16(i), uint16(i+1))
		}
		c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	if stroke != nil {
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			vector.StrokeLine(c.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
				float32(strokeWidth), stroke, true)
		}
	}
}

// straight returns the non-premultiplied components of clr in [0,1].
func straight(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
