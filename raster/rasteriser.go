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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser computes anti-aliased pixel coverage for polygons: the
// fraction of each pixel's area which lies inside the polygon, between 0
// and 1.  Overlapping polygons are combined using the nonzero winding
// rule.
//
// Internal buffers are kept between calls, so that a single Rasteriser
// can be reused for many nodes.  A Rasteriser is not safe for concurrent
// use.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip restricts output to this rectangle in device space.  The
	// coordinates must be integers.
	Clip rect.Rect

	// MiterLimit limits the length of miter joins when stroking, relative
	// to half the line width.  Longer joins are bevelled.
	MiterLimit float64

	edges   []edge
	cover   []float32 // change of winding coverage, per pixel
	area    []float32 // covered area within the pixel, per pixel
	rowUsed []bool

	// polygons built by the stroker, stored back to back
	outline     []vec.Vec2
	outlineEnds []int

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset changes the clip rectangle and restores the default parameters,
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills the path using the nonzero winding rule.  Curves are
// replaced by their chords.  Coverage is reported row by row through the
// emit callback; its slice argument is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// Filling closes open subpaths implicitly.
	if current != start {
		r.addEdge(current, start)
	}

	r.fillEdges(emit)
}

// fillPolygons fills the polygons stored in r.outline.
func (r *Rasteriser) fillPolygons(emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	begin := 0
	for _, end := range r.outlineEnds {
		poly := r.outline[begin:end]
		for i := range poly {
			r.addEdge(poly[i], poly[(i+1)%len(poly)])
		}
		begin = end
	}
	r.fillEdges(emit)
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.devXMin = math.Inf(1)
	r.devXMax = math.Inf(-1)
	r.devYMin = math.Inf(1)
	r.devYMax = math.Inf(-1)
}

// addEdge transforms a user space segment to device space and records it.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// fillEdges accumulates the coverage of all recorded edges inside their
// bounding box and emits the non-zero part of every row.
func (r *Rasteriser) fillEdges(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bottom := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bottom; y++ {
			row := y - yMin
			off := row * width
			accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, skip := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// Each edge crossing a pixel adds two numbers to the pixel:
//
//	cover: the signed height of the part of the edge inside the pixel row
//	area:  cover times the fraction of the pixel to the right of the edge
//
// Summing cover from the left edge of the row gives the winding coverage
// for all pixels right of an edge, and area corrects the coverage of the
// pixel which contains the edge.

// accumulate adds the contribution of e within scanline y to a row of
// the cover and area buffers.  Index 0 of the buffers corresponds to
// device x coordinate x0.  Parts of the edge left of the buffer are folded
// into the first pixel, parts right of the buffer are ignored.
func accumulate(e *edge, y int, cover, area []float32, x0 int) {
	top := max(float64(y), min(e.y0, e.y1))
	bottom := min(float64(y+1), max(e.y0, e.y1))
	if bottom <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	n := len(cover)
	add := func(pix int, yLo, yHi float64) {
		c := sign * float32(yHi-yLo)
		switch {
		case pix < x0:
			cover[0] += c
			area[0] += c
		case pix < x0+n:
			xMid := e.x0 + e.dxdy*((yLo+yHi)/2-e.y0)
			frac := xMid - float64(pix)
			cover[pix-x0] += c
			area[pix-x0] += c * float32(1-frac)
		}
	}

	if left == right || right < x0 {
		add(left, top, bottom)
		return
	}

	// The edge crosses several pixel columns.  Split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	start := left
	if left < x0 {
		// The part left of the buffer only changes the winding number.
		yEdge := e.y0 + dydx*(float64(x0)-e.x0)
		yFar := bottom
		if xTop < xBottom {
			yFar = top
		}
		lo := max(min(yEdge, yFar), top)
		hi := min(max(yEdge, yFar), bottom)
		if hi > lo {
			add(x0-1, lo, hi)
		}
		start = x0
	}
	for pix := start; pix <= right && pix < x0+n; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bottom)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
}

// integrateNonZero turns a row of cover and area values into coverage
// values, using the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros removes leading and trailing zeros from a row of coverage
// values and returns the remaining slice together with the number of
// leading values skipped.  If all values are zero, nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimum vertical extent of an edge in
	// device space.  Flatter edges are skipped.
	horizontalEdgeThreshold = 1e-10

	// collinearityThreshold is the sine of the smallest angle at which a
	// corner gets a join.
	collinearityThreshold = 1e-6

	// zeroLengthThreshold is the length below which stroke segments are
	// dropped.
	zeroLengthThreshold = 1e-10
)
