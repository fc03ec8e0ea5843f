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

// Package pdfpage writes node outlines into PDF content streams.
//
// Node coordinates have the y axis pointing down.  The owner of the page
// is expected to install a suitable transformation, for example
// matrix.Matrix{1, 0, 0, -1, 0, height}, before calling [Emit].
package pdfpage

import (
	stdcolor "image/color"

	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/style"
)

// Stream is the subset of the content stream builder operations used by
// [Emit].
type Stream interface {
	SetExtGState(gs *extgstate.ExtGState)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
	FillAndStroke()
}

var _ Stream = (*builder.Builder)(nil)

// Emit draws the outline p into s.
//
// The opacity of the style is set through a single-use graphics state
// parameter dictionary.  If the style has a border, the path is filled
// and stroked in one operation, otherwise it is only filled.
//
// The style must already be clamped.
func Emit(s Stream, p geometry.Path, st style.Style) {
	if len(p) == 0 {
		return
	}

	s.SetExtGState(&extgstate.ExtGState{
		Set:         graphics.StateStrokeAlpha | graphics.StateFillAlpha,
		StrokeAlpha: st.Opacity,
		FillAlpha:   st.Opacity,
		SingleUse:   true,
	})

	bordered := st.HasBorder()
	if bordered {
		s.SetLineWidth(st.BorderWidth)
		s.SetStrokeColor(Color(st.Border))
	}
	s.SetFillColor(Color(st.Fill))

	s.MoveTo(p[0].X, p[0].Y)
	for _, v := range p[1:] {
		s.LineTo(v.X, v.Y)
	}
	s.ClosePath()

	if bordered {
		s.FillAndStroke()
	} else {
		s.Fill()
	}
}

// Color converts c to a DeviceRGB colour.  The alpha channel is ignored.
func Color(c stdcolor.Color) color.Color {
	n := style.Opaque(c)
	return color.DeviceRGB{
		float64(n.R) / 255,
		float64(n.G) / 255,
		float64(n.B) / 255,
	}
}
