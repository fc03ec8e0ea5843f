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

// Package shape decides which outline a graph node is drawn with.
//
// The decision is made by [Resolve], from the attribute values of the
// node and a session [Config].  The result is a [Resolved] value, which
// the geometry package turns into vertices.
package shape

import "strings"

// Kind is the category of outline used for a node.
//
// The zero value is [Circle], which means that the node is drawn by the
// default renderer of the host application.
type Kind int

// These are the supported shape kinds.
const (
	Circle Kind = iota
	Triangle
	Square
	Diamond
	Polygon
	Pentagon
	Hexagon
	Heptagon
	Octagon
	Star
	numKinds
)

var kindNames = [numKinds]string{
	Circle:   "circle",
	Triangle: "triangle",
	Square:   "square",
	Diamond:  "diamond",
	Polygon:  "polygon",
	Pentagon: "pentagon",
	Hexagon:  "hexagon",
	Heptagon: "heptagon",
	Octagon:  "octagon",
	Star:     "star",
}

// String returns the lower-case name of the kind, as accepted by
// [ParseKind].
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= 0 && k < numKinds
}

// Sides returns the number of vertices of a named regular shape.
// For Circle, Polygon and Star the vertex count is not fixed by the kind,
// and 0 is returned.
func (k Kind) Sides() int {
	switch k {
	case Triangle:
		return 3
	case Square, Diamond:
		return 4
	case Pentagon:
		return 5
	case Hexagon:
		return 6
	case Heptagon:
		return 7
	case Octagon:
		return 8
	default:
		return 0
	}
}

// ParseKind maps a shape name to a Kind.  Matching ignores case and
// surrounding white space.  The second return value is false if the name
// is blank or unknown.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Circle, false
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Circle, false
}

// Kinds returns all shape kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}
