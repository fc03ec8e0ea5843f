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

package nodeshape

import (
	"image/color"

	"seehuhn.de/go/nodeshape/shape"
)

// Node is a graph node to be drawn.
type Node struct {
	ID string

	// X and Y give the centre of the node.  The y axis points down.
	X, Y float64

	// Size is the nominal size of the node.  Regular polygons get a
	// circumradius of 0.6·Size, diamonds and stars reach out to Size from the
	// centre.  Default renderers usually draw a circle of diameter Size.
	Size float64

	// Color is the fill colour.  The alpha channel is ignored; nil means
	// black.
	Color color.Color

	// Attrs gives access to the node's attribute columns.  It may be nil.
	Attrs shape.AttributeSource
}
