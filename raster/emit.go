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

// Package raster draws node outlines onto pixel surfaces.
//
// [Emit] writes one outline to a [Surface].  Two surfaces are provided:
// [Canvas], which uses the anti-aliasing rasteriser of this package, and
// [GraphicContext], an adapter for draw2d.
package raster

import (
	"image/color"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/style"
)

// Surface is a raster drawing sink with a current path.
//
// Fill and Stroke paint the current path and then discard it.
type Surface interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	Stroke() error
}

// Emit draws the outline p onto s.  The polygon is filled first; if the
// style has a border, the outline is then stroked on top of the fill.
//
// The style must already be clamped.
func Emit(s Surface, p geometry.Path, st style.Style) error {
	s.SetFillColor(st.FillColor())
	trace(s, p)
	if err := s.Fill(); err != nil {
		return err
	}

	if !st.HasBorder() {
		return nil
	}
	s.SetStrokeColor(st.BorderColor())
	s.SetLineWidth(st.BorderWidth)
	trace(s, p)
	return s.Stroke()
}

func trace(s Surface, p geometry.Path) {
	if len(p) == 0 {
		return
	}
	s.MoveTo(p[0].X, p[0].Y)
	for _, v := range p[1:] {
		s.LineTo(v.X, v.Y)
	}
	s.ClosePath()
}
