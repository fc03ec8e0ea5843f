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

package testcases

import "seehuhn.de/go/nodeshape/shape"

// shapeCases contain one node of every named shape.
var shapeCases = []TestCase{
	named(shape.Triangle, 3),
	named(shape.Square, 4),
	named(shape.Diamond, 4),
	named(shape.Pentagon, 5),
	named(shape.Hexagon, 6),
	named(shape.Heptagon, 7),
	named(shape.Octagon, 8),
	{
		Name:     "star",
		Attrs:    shape.Attributes{"shape": "star"},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Star, StarPoints: 5},
		Vertices: 10,
	},
	{
		Name:     "polygon_4",
		Attrs:    shape.Attributes{"shape": "polygon", "polygon": 4},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Polygon, Sides: 4},
		Vertices: 4,
	},
	{
		Name:   "circle",
		Attrs:  shape.Attributes{"shape": "circle"},
		Config: config(nil),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
}

func named(k shape.Kind, vertices int) TestCase {
	return TestCase{
		Name:     k.String(),
		Attrs:    shape.Attributes{"shape": k.String()},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: k},
		Vertices: vertices,
	}
}
