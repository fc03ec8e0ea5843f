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

// scenarioCases walks through the main paths of the renderer.
var scenarioCases = []TestCase{
	{
		Name:     "star_configured_points",
		Attrs:    shape.Attributes{"shape": "star"},
		Config:   config(func(c *shape.Config) { c.StarPoints = 6 }),
		Want:     shape.Resolved{Kind: shape.Star, StarPoints: 6},
		Vertices: 12,
	},
	{
		Name:     "polygon_column_only",
		Attrs:    shape.Attributes{"polygon": 7},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Polygon, Sides: 7},
		Vertices: 7,
	},
	{
		Name:   "polygon_too_few_sides",
		Attrs:  shape.Attributes{"polygon": 2},
		Config: config(nil),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
	{
		Name:     "disabled",
		Attrs:    shape.Attributes{"shape": "hexagon", "polygon": 9},
		Config:   config(func(c *shape.Config) { c.Enabled = false }),
		Disabled: true,
	},
}
