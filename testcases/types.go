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

// Package testcases holds named node rendering scenarios.  The scenarios
// are shared by the tests of several packages and by the "cases" command
// of the command line tool.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape/shape"
)

// Every scenario draws a single node at Center with nominal radius
// Radius on a square canvas of size CanvasSize.
const (
	CanvasSize = 64
	Radius     = 20.0
)

// Center is the position of the node in every scenario.
var Center = vec.Vec2{X: 32, Y: 32}

// TestCase is a single scenario.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Attrs  shape.Attributes // node attributes (nil for none)
	Config shape.Config     // resolver settings

	// Disabled is true if the resolver must report that polygon shaped
	// nodes are switched off.
	Disabled bool

	// Want is the expected resolution.  Want.Kind == shape.Circle means
	// that the node is left to the default renderer.
	Want shape.Resolved

	// Vertices is the expected number of outline vertices, or 0 if no
	// outline is drawn.
	Vertices int
}

// Deferred reports whether the node is left to the default renderer.
func (tc TestCase) Deferred() bool {
	return tc.Disabled || tc.Want.IsDefault()
}

// config returns the default resolver settings, modified by fn.
func config(fn func(*shape.Config)) shape.Config {
	c := shape.DefaultConfig()
	if fn != nil {
		fn(&c)
	}
	return c
}
