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
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
)

// GraphicContext adapts a draw2d graphic context to the [Surface]
// interface.
type GraphicContext struct {
	GC *draw2dimg.GraphicContext
}

// NewGraphicContext returns a surface which draws into img using draw2d.
// Lines use miter joins, matching [Canvas].
func NewGraphicContext(img draw.Image) *GraphicContext {
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineJoin(draw2d.MiterJoin)
	gc.SetLineCap(draw2d.ButtCap)
	gc.SetFillRule(draw2d.FillRuleWinding)
	return &GraphicContext{GC: gc}
}

// SetFillColor implements the [Surface] interface.
func (g *GraphicContext) SetFillColor(c color.Color) { g.GC.SetFillColor(c) }

// SetStrokeColor implements the [Surface] interface.
func (g *GraphicContext) SetStrokeColor(c color.Color) { g.GC.SetStrokeColor(c) }

// SetLineWidth implements the [Surface] interface.
func (g *GraphicContext) SetLineWidth(w float64) { g.GC.SetLineWidth(w) }

// MoveTo implements the [Surface] interface.
func (g *GraphicContext) MoveTo(x, y float64) { g.GC.MoveTo(x, y) }

// LineTo implements the [Surface] interface.
func (g *GraphicContext) LineTo(x, y float64) { g.GC.LineTo(x, y) }

// ClosePath implements the [Surface] interface.
func (g *GraphicContext) ClosePath() { g.GC.Close() }

// Fill implements the [Surface] interface.  draw2d clears the current path
// after painting.
func (g *GraphicContext) Fill() error {
	g.GC.Fill()
	return nil
}

// Stroke implements the [Surface] interface.
func (g *GraphicContext) Stroke() error {
	g.GC.Stroke()
	return nil
}
