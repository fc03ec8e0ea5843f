// seehuhn.de/go/nodeshape - polygon shaped nodes for graph renderings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrNoPath is returned by [Canvas.Fill] and [Canvas.Stroke] if there is
// no current path.
var ErrNoPath = errors.New("no current path")

// Canvas is a [Surface] which paints into an RGBA image.
//
// Path coordinates are mapped to pixel coordinates using CTM.  Painting
// uses the Over operator, so that semi-transparent nodes blend with what
// is already in the image.
type Canvas struct {
	Image *image.RGBA

	// CTM maps path coordinates to pixel coordinates.
	CTM matrix.Matrix

	fill      color.Color
	stroke    color.Color
	lineWidth float64

	path path.Data
	r    *Rasteriser
	mask image.Alpha
}

// NewCanvas returns a canvas which paints into img.  Initially, the fill
// and stroke colour are black and the line width is 1.
func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{
		Image:     img,
		CTM:       matrix.Identity,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		r:         NewRasteriser(rect.Rect{}),
	}
}

// SetFillColor implements the [Surface] interface.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = col
}

// SetStrokeColor implements the [Surface] interface.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.stroke = col
}

// SetLineWidth implements the [Surface] interface.  The width is given in
// path coordinates.
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// MoveTo implements the [Surface] interface.
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo implements the [Surface] interface.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path.Cmds) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

// ClosePath implements the [Surface] interface.
func (c *Canvas) ClosePath() {
	if len(c.path.Cmds) == 0 {
		return
	}
	c.path.Close()
}

// Fill paints the interior of the current path, using the nonzero
// winding rule, and clears the path.
func (c *Canvas) Fill() error {
	if len(c.path.Cmds) == 0 {
		return ErrNoPath
	}
	c.prepare()
	c.r.FillNonZero(&c.path, c.painter(c.fill))
	c.clearPath()
	return nil
}

// Stroke paints the outline of the current path and clears the path.
func (c *Canvas) Stroke() error {
	if len(c.path.Cmds) == 0 {
		return ErrNoPath
	}
	c.prepare()
	c.r.Stroke(&c.path, c.lineWidth, c.painter(c.stroke))
	c.clearPath()
	return nil
}

func (c *Canvas) prepare() {
	b := c.Image.Bounds()
	c.r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	c.r.CTM = c.CTM
}

func (c *Canvas) clearPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// painter returns an emit callback which composites one row of coverage
// values in the colour col.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	src := image.NewUniform(col)
	return func(y, xMin int, coverage []float32) {
		n := len(coverage)
		if cap(c.mask.Pix) < n {
			c.mask.Pix = make([]uint8, n)
		}
		c.mask.Pix = c.mask.Pix[:n]
		for i, v := range coverage {
			c.mask.Pix[i] = coverageByte(v)
		}
		c.mask.Stride = n
		c.mask.Rect = image.Rect(xMin, y, xMin+n, y+1)
		draw.DrawMask(c.Image, c.mask.Rect, src, image.Point{}, &c.mask, c.mask.Rect.Min, draw.Over)
	}
}

// coverageByte converts a coverage value in [0, 1] to an 8-bit alpha
// value.
func coverageByte(v float32) uint8 {
	a := int(v * 256)
	switch {
	case a < 0:
		return 0
	case a > 255:
		return 255
	default:
		return uint8(a)
	}
}
