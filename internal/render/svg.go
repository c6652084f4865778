// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render implements scene canvases that do not need a display.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

type shapeKind int

const (
	shapeCircle shapeKind = iota
	shapePolygon
)

type shape struct {
	kind   shapeKind
	xs, ys []int
	r      int
	style  string
}

// SVG records one frame of drawing calls and writes it as an SVG document.
// Coordinates are rounded to whole pixels.
type SVG struct {
	width, height int
	background    color.Color
	shapes        []shape
}

// NewSVG returns an SVG canvas that paints background under every frame. A
// nil background leaves the document transparent.
func NewSVG(background color.Color) *SVG {
	return &SVG{background: background}
}

func (s *SVG) Clear(width, height float64) {
	s.width = int(math.Round(width))
	s.height = int(math.Round(height))
	s.shapes = s.shapes[:0]
}

func (s *SVG) FillCircle(center r2.Point, radius float64, clr color.Color) {
	s.shapes = append(s.shapes, shape{
		kind:  shapeCircle,
		xs:    []int{round(center.X)},
		ys:    []int{round(center.Y)},
		r:     round(radius),
		style: Style(clr, nil, 0),
	})
}

func (s *SVG) DrawPolygon(pts []r2.Point, fill, stroke color.Color, strokeWidth float64) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	s.shapes = append(s.shapes, shape{
		kind:  shapePolygon,
		xs:    xs,
		ys:    ys,
		style: Style(fill, stroke, strokeWidth),
	})
}

// Len returns the number of shapes recorded since the last Clear.
func (s *SVG) Len() int {
	return len(s.shapes)
}

// WriteTo writes the current frame as a complete SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(s.width, s.height)
	if s.background != nil {
		canvas.Rect(0, 0, s.width, s.height, Style(s.background, nil, 0))
	}
	for _, sh := range s.shapes {
		switch sh.kind {
		case shapeCircle:
			canvas.Circle(sh.xs[0], sh.ys[0], sh.r, sh.style)
		case shapePolygon:
			canvas.Polygon(sh.xs, sh.ys, sh.style)
		}
	}
	canvas.End()
	return cw.n, cw.err
}

// Style returns an SVG style attribute for the given paint. A nil fill or
// stroke is rendered as none.
func Style(fill, stroke color.Color, strokeWidth float64) string {
	var b strings.Builder
	b.WriteString(paint("fill", fill))
	b.WriteByte(';')
	b.WriteString(paint("stroke", stroke))
	if stroke != nil {
		fmt.Fprintf(&b, ";stroke-width:%g", strokeWidth)
	}
	return b.String()
}

func paint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, n.R, n.G, n.B)
	if n.A != 0xff {
		out += fmt.Sprintf(";%s-opacity:%.3g", prop, float64(n.A)/0xff)
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}

// countWriter counts written bytes and keeps the first error, since svgo
// does not report write failures.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return len(p), nil
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil {
		c.err = err
	}
	return len(p), nil
}
