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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape/geometry"
)

// Stroke renders the outline of p with the given line width, using miter
// joins which are bevelled beyond MiterLimit.  Closed subpaths are stroked
// as rings.  Open subpaths are stroked segment by segment with butt ends
// and no joins; node outlines are always closed.
//
// The emit callback receives coverage row by row; its slice argument is
// only valid during the call.
func (r *Rasteriser) Stroke(p *path.Data, width float64, emit func(y, xMin int, coverage []float32)) {
	if !(width > 0) {
		return
	}
	d := width / 2

	r.outline = r.outline[:0]
	r.outlineEnds = r.outlineEnds[:0]

	var pts []vec.Vec2
	flush := func(closed bool) {
		pts = dropDuplicates(pts, closed)
		if closed && len(pts) >= 3 {
			r.addRing(pts, d)
		} else {
			r.addSegments(pts, d, closed)
		}
		pts = pts[:0]
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(pts) > 0 {
				flush(false)
			}
			pts = append(pts, p.Coords[k])
			k++
		case path.CmdLineTo:
			pts = append(pts, p.Coords[k])
			k++
		case path.CmdQuadTo:
			pts = append(pts, p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			pts = append(pts, p.Coords[k+2])
			k += 3
		case path.CmdClose:
			if len(pts) > 0 {
				start := pts[0]
				flush(true)
				// drawing continues from the start of the closed subpath
				pts = append(pts, start)
			}
		}
	}
	if len(pts) > 1 {
		flush(false)
	}

	r.fillPolygons(emit)
}

// addRing adds the two offset loops of a closed polygon: the loop on the
// inner side in path direction, and the loop on the outer side in reverse
// direction.  Filled together these cover the band of half-width d around
// the polygon.
func (r *Rasteriser) addRing(pts []vec.Vec2, d float64) {
	if geometry.Path(pts).SignedArea() < 0 {
		slices.Reverse(pts)
	}
	n := len(pts)

	for i := range n {
		r.addCorner(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], d)
	}
	r.endPolygon()

	// Walking backwards swaps the sides, so the same corner construction
	// gives the other loop.
	for i := n - 1; i >= 0; i-- {
		r.addCorner(pts[(i+1)%n], pts[i], pts[(i+n-1)%n], d)
	}
	r.endPolygon()
}

// addCorner adds the offset points for the corner a→p→b, on the side of
// the +N normal (90° counter-clockwise from the tangent).
func (r *Rasteriser) addCorner(a, p, b vec.Vec2, d float64) {
	in := p.Sub(a)
	out := b.Sub(p)
	lenIn := in.Length()
	lenOut := out.Length()
	t1 := in.Mul(1 / lenIn)
	t2 := out.Mul(1 / lenOut)
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}

	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)

	switch {
	case math.Abs(sin) < collinearityThreshold && cos > 0:
		r.outline = append(r.outline, p.Add(n2.Mul(d)))

	case sin > 0:
		// +N is the inner side.  Use the intersection of the two offset
		// lines, unless it lies beyond one of the segments.
		reach := d * sin / (1 + cos)
		if reach <= lenIn && reach <= lenOut {
			r.outline = append(r.outline, p.Add(n1.Add(n2).Mul(d/(1+cos))))
		} else {
			r.outline = append(r.outline, p.Add(n1.Mul(d)), p.Add(n2.Mul(d)))
		}

	default:
		// +N is the outer side: miter join, or bevel if the miter is too long
		r.outline = append(r.outline, p.Add(n1.Mul(d)))
		if 1+cos > collinearityThreshold {
			sinHalf := math.Sqrt((1 + cos) / 2)
			if 1/sinHalf <= r.MiterLimit {
				r.outline = append(r.outline, p.Add(n1.Add(n2).Mul(d/(1+cos))))
			}
		}
		r.outline = append(r.outline, p.Add(n2.Mul(d)))
	}
}

// addSegments adds one rectangle per segment.  All rectangles have the
// same orientation as the outer loops built by addRing, so that
// overlapping parts do not cancel.
func (r *Rasteriser) addSegments(pts []vec.Vec2, d float64, closed bool) {
	n := len(pts) - 1
	if closed && len(pts) > 2 {
		n++
	}
	for i := range n {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dir := b.Sub(a)
		l := dir.Length()
		if l < zeroLengthThreshold {
			continue
		}
		off := vec.Vec2{X: -dir.Y, Y: dir.X}.Mul(d / l)
		r.outline = append(r.outline, a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
		r.endPolygon()
	}
}

// endPolygon terminates the polygon currently being built in r.outline.
// Polygons with fewer than three vertices are discarded.
func (r *Rasteriser) endPolygon() {
	begin := 0
	if k := len(r.outlineEnds); k > 0 {
		begin = r.outlineEnds[k-1]
	}
	if len(r.outline)-begin < 3 {
		r.outline = r.outline[:begin]
		return
	}
	r.outlineEnds = append(r.outlineEnds, len(r.outline))
}

// dropDuplicates removes consecutive points which are closer than
// zeroLengthThreshold.  For closed subpaths, a final point equal to the
// first one is removed as well.
func dropDuplicates(pts []vec.Vec2, closed bool) []vec.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	res := pts[:1]
	for _, v := range pts[1:] {
		if v.Sub(res[len(res)-1]).Length() >= zeroLengthThreshold {
			res = append(res, v)
		}
	}
	if closed {
		for len(res) > 1 && res[len(res)-1].Sub(res[0]).Length() < zeroLengthThreshold {
			res = res[:len(res)-1]
		}
	}
	return res
}
