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

package shape

import (
	"github.com/charmbracelet/log"
)

// MaxSides is the largest side count accepted from the polygon column.
// Larger values are treated like a missing value.
const MaxSides = 1024

// defaultStarPoints is used when the configured number of star points
// is less than 3.
const defaultStarPoints = 5

// Config holds the session settings which control shape resolution.
// A Config is created once per preview or export session and is not
// modified while nodes are rendered.
type Config struct {
	// Enabled switches polygon shaped nodes on or off.  If Enabled is false,
	// all nodes are drawn by the default renderer.
	Enabled bool `toml:"enabled"`

	// ShapeColumn is the attribute column holding a shape name.
	ShapeColumn string `toml:"shape_column"`

	// PolygonColumn is the attribute column holding a number of sides.
	PolygonColumn string `toml:"polygon_column"`

	// DefaultShape is the name of the shape used for nodes without a
	// usable attribute value.
	DefaultShape string `toml:"default_shape"`

	// StarPoints is the number of points of star shaped nodes.
	StarPoints int `toml:"star_points"`
}

// DefaultConfig returns the settings used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		ShapeColumn:   "shape",
		PolygonColumn: "polygon",
		DefaultShape:  "circle",
		StarPoints:    defaultStarPoints,
	}
}

// Resolved describes the outline chosen for a node.
type Resolved struct {
	Kind Kind

	// Sides is the number of sides for Kind == Polygon.  It is at least 3
	// whenever Kind is Polygon.
	Sides int

	// StarPoints is the number of points for Kind == Star.  It is at least
	// 3 whenever Kind is Star.
	StarPoints int
}

// IsDefault reports whether the node should be left to the default
// renderer.
func (r Resolved) IsDefault() bool {
	return r.Kind == Circle
}

// Resolve determines the outline for one node.
//
// If cfg.Enabled is false, Resolve returns false and the caller must use
// the default renderer.  Otherwise the result is always a valid Resolved
// value; Kind is Circle if no custom shape applies.
//
// The node may be nil.  Missing, unreadable and ill-typed attribute values
// are treated as absent.
func Resolve(node AttributeSource, cfg Config) (Resolved, bool) {
	return Resolver{Config: cfg}.Resolve(node)
}

// Resolver applies a fixed Config to many nodes.  A Resolver is safe for
// concurrent use.
type Resolver struct {
	Config Config

	// Logger, if not nil, receives debug messages about fallbacks.
	Logger *log.Logger
}

// Resolve determines the outline for one node, see [Resolve].
func (r Resolver) Resolve(node AttributeSource) (Resolved, bool) {
	cfg := r.Config
	if !cfg.Enabled {
		return Resolved{}, false
	}

	kind, ok := ParseKind(cfg.DefaultShape)
	if !ok && cfg.DefaultShape != "" {
		r.debug("unknown default shape", "name", cfg.DefaultShape)
	}

	if node != nil {
		raw, name, isString := lookup(node, cfg.ShapeColumn, asString)
		if k, known := ParseKind(name); isString && known {
			kind = k
		} else if raw != nil {
			r.debug("ignoring shape value", "column", cfg.ShapeColumn, "value", raw)
		}
	}

	res := Resolved{}
	if kind == Polygon || kind == Circle {
		if n, ok := r.sides(node); ok {
			kind = Polygon
			res.Sides = n
		} else if kind == Polygon {
			r.debug("polygon without side count")
			kind = Circle
		}
	}
	res.Kind = kind

	if kind == Star {
		res.StarPoints = cfg.StarPoints
		if res.StarPoints < 3 {
			res.StarPoints = defaultStarPoints
		}
	}

	return res, true
}

// sides reads the polygon column of node.
func (r Resolver) sides(node AttributeSource) (int, bool) {
	if node == nil {
		return 0, false
	}
	raw, n, ok := lookup(node, r.Config.PolygonColumn, asInt)
	if raw == nil {
		return 0, false
	}
	if !ok || n < 3 || n > MaxSides {
		r.debug("ignoring side count", "column", r.Config.PolygonColumn, "value", raw)
		return 0, false
	}
	return n, true
}

func (r Resolver) debug(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}
