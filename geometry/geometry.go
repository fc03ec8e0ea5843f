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

// Package geometry computes the outlines of shaped nodes.
//
// All coordinates use the coordinate system of the node positions, where
// the y axis points down.  Outlines are returned as a [Path], a closed
// polygon given by its vertices.
package geometry

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape/shape"
)

// PolygonScale is the ratio between the circumradius of regular polygons
// and the nominal node size.  This makes polygons look similar in size to
// the default circular nodes.
const PolygonScale = 0.6

// StarInnerRatio is the ratio between the inner and outer radius of stars.
const StarInnerRatio = 0.5

// ErrDegenerate is returned by [Build] if the shape cannot be drawn as a
// polygon with at least three vertices.
var ErrDegenerate = errors.New("degenerate shape")

// Path is a closed polygon.  The last vertex is implicitly connected to
// the first one.
type Path []vec.Vec2

// Build computes the outline of a node of the given nominal size
// (radius), centred at center.
//
// Circle cannot be represented by a Path, and Build returns ErrDegenerate
// for it, as well as for polygons with fewer than three sides and stars
// with fewer than three points.
func Build(r shape.Resolved, center vec.Vec2, radius float64) (Path, error) {
	switch r.Kind {
	case shape.Triangle, shape.Square, shape.Pentagon,
		shape.Hexagon, shape.Heptagon, shape.Octagon:
		n := r.Kind.Sides()
		phase := -math.Pi / 2
		if n%2 == 0 {
			phase = math.Pi / float64(n)
		}
		return RegularPolygon(n, center, PolygonScale*radius, phase), nil

	case shape.Polygon:
		if r.Sides < 3 {
			return nil, ErrDegenerate
		}
		return sidesPolygon(r.Sides, center, radius), nil

	case shape.Diamond:
		return Path{
			{X: center.X, Y: center.Y - radius},
			{X: center.X + radius, Y: center.Y},
			{X: center.X, Y: center.Y + radius},
			{X: center.X - radius, Y: center.Y},
		}, nil

	case shape.Star:
		if r.StarPoints < 3 {
			return nil, ErrDegenerate
		}
		return Star(r.StarPoints, center, radius, StarInnerRatio*radius), nil

	default:
		return nil, ErrDegenerate
	}
}

// RegularPolygon returns the regular n-gon with circumradius R.  Vertex i
// is at angle 2πi/n + phase, measured clockwise on screen because the y
// axis points down.
func RegularPolygon(n int, center vec.Vec2, R, phase float64) Path {
	p := make(Path, n)
	for i := range n {
		theta := 2*math.Pi*float64(i)/float64(n) + phase
		p[i] = vec.Vec2{
			X: center.X + R*math.Cos(theta),
			Y: center.Y + R*math.Sin(theta),
		}
	}
	return p
}

// sidesPolygon gives the outline used for a bare side count taken from the
// polygon column.  This keeps the orientation of the legacy renderer:
// the angle is measured counter-clockwise on screen, starting at the
// positive x axis, and polygons with an even number of sides are rotated
// by a further 45 degrees clockwise.
func sidesPolygon(n int, center vec.Vec2, radius float64) Path {
	R := PolygonScale * radius
	rot := 0.0
	if n%2 == 0 {
		rot = math.Pi / 4
	}
	step := 2 * math.Pi / float64(n)
	p := make(Path, n)
	for i := range n {
		theta := float64(i)*step - rot
		p[i] = vec.Vec2{
			X: center.X + R*math.Cos(theta),
			Y: center.Y - R*math.Sin(theta),
		}
	}
	return p
}

// Star returns a star with the given number of points.  Vertices alternate
// between the outer and the inner radius, starting with the outer point
// straight above the centre.
func Star(points int, center vec.Vec2, outer, inner float64) Path {
	n := 2 * points
	p := make(Path, n)
	for i := range n {
		theta := math.Pi*float64(i)/float64(points) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		p[i] = vec.Vec2{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		}
	}
	return p
}

// Bounds returns the smallest axis-aligned rectangle containing all
// vertices.  The zero rectangle is returned for an empty path.
func (p Path) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// SignedArea returns the area enclosed by p.  The sign is positive if the
// vertices run clockwise on screen (counter-clockwise in a y-up system).
func (p Path) SignedArea() float64 {
	var a float64
	for i, v := range p {
		w := p[(i+1)%len(p)]
		a += v.X*w.Y - w.X*v.Y
	}
	return a / 2
}
