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

// fallbackCases exercise the order in which attribute values are
// consulted.
var fallbackCases = []TestCase{
	{
		Name:     "shape_beats_polygon",
		Attrs:    shape.Attributes{"shape": "Diamond", "polygon": 9},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Diamond},
		Vertices: 4,
	},
	{
		Name:     "unknown_shape_uses_polygon",
		Attrs:    shape.Attributes{"shape": "blob", "polygon": "12"},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Polygon, Sides: 12},
		Vertices: 12,
	},
	{
		Name:     "legacy_polygon_column",
		Attrs:    shape.Attributes{"Polygon": int64(5)},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Polygon, Sides: 5},
		Vertices: 5,
	},
	{
		Name:     "float_side_count",
		Attrs:    shape.Attributes{"polygon": 8.0},
		Config:   config(nil),
		Want:     shape.Resolved{Kind: shape.Polygon, Sides: 8},
		Vertices: 8,
	},
	{
		Name:   "fractional_side_count",
		Attrs:  shape.Attributes{"polygon": 5.5},
		Config: config(nil),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
	{
		Name:   "huge_side_count",
		Attrs:  shape.Attributes{"polygon": shape.MaxSides + 1},
		Config: config(nil),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
	{
		Name:   "no_attributes",
		Config: config(nil),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
	{
		Name:     "default_shape",
		Attrs:    shape.Attributes{"shape": 42},
		Config:   config(func(c *shape.Config) { c.DefaultShape = "triangle" }),
		Want:     shape.Resolved{Kind: shape.Triangle},
		Vertices: 3,
	},
	{
		Name:     "default_shape_with_polygon",
		Attrs:    shape.Attributes{"polygon": 6},
		Config:   config(func(c *shape.Config) { c.DefaultShape = "octagon" }),
		Want:     shape.Resolved{Kind: shape.Octagon},
		Vertices: 8,
	},
	{
		Name:   "default_polygon_without_sides",
		Config: config(func(c *shape.Config) { c.DefaultShape = "polygon" }),
		Want:   shape.Resolved{Kind: shape.Circle},
	},
	{
		Name:     "star_points_too_small",
		Attrs:    shape.Attributes{"shape": "star"},
		Config:   config(func(c *shape.Config) { c.StarPoints = 2 }),
		Want:     shape.Resolved{Kind: shape.Star, StarPoints: 5},
		Vertices: 10,
	},
	{
		Name:  "custom_columns",
		Attrs: shape.Attributes{"form": "pentagon", "shape": "square"},
		Config: config(func(c *shape.Config) {
			c.ShapeColumn = "form"
			c.PolygonColumn = "corners"
		}),
		Want:     shape.Resolved{Kind: shape.Pentagon},
		Vertices: 5,
	},
}
