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

import "fmt"

// Property describes a user-tunable setting, for display by the host.
type Property struct {
	Key         string
	Name        string
	Description string
	Category    string
	Default     any
}

// CategoryNodes is the property category of all node settings.
const CategoryNodes = "Nodes"

// PropertyEnable is the key of the property which switches polygon shaped
// nodes on or off.
const PropertyEnable = "PolygonNodes.property.enable"

// Properties lists the settings of the renderer together with their
// default values.
func Properties() []Property {
	d := DefaultSettings()
	return []Property{
		{
			Key:         PropertyEnable,
			Name:        "Polygon shaped nodes",
			Description: "Draw nodes with a shape or polygon attribute as polygons, diamonds or stars.",
			Category:    CategoryNodes,
			Default:     d.Shape.Enabled,
		},
		{
			Key:         "PolygonNodes.property.shapeColumn",
			Name:        "Shape column",
			Description: "Attribute column holding a shape name.",
			Category:    CategoryNodes,
			Default:     d.Shape.ShapeColumn,
		},
		{
			Key:         "PolygonNodes.property.polygonColumn",
			Name:        "Polygon column",
			Description: "Attribute column holding the number of sides.",
			Category:    CategoryNodes,
			Default:     d.Shape.PolygonColumn,
		},
		{
			Key:         "PolygonNodes.property.defaultShape",
			Name:        "Default shape",
			Description: "Shape of nodes without a usable attribute value.",
			Category:    CategoryNodes,
			Default:     d.Shape.DefaultShape,
		},
		{
			Key:         "PolygonNodes.property.starPoints",
			Name:        "Star points",
			Description: "Number of points of star shaped nodes.",
			Category:    CategoryNodes,
			Default:     d.Shape.StarPoints,
		},
		{
			Key:         "Node.border.width",
			Name:        "Border width",
			Description: "Width of the node border; 0 disables borders.",
			Category:    CategoryNodes,
			Default:     d.BorderWidth,
		},
		{
			Key:         "Node.border.color",
			Name:        "Border colour",
			Description: "Colour of the node border; empty for a darker version of the node colour.",
			Category:    CategoryNodes,
			Default:     d.BorderColor,
		},
		{
			Key:         "Node.opacity",
			Name:        "Opacity",
			Description: "Node opacity in percent.",
			Category:    CategoryNodes,
			Default:     d.Opacity,
		},
	}
}

// String formats the property as "key = default".
func (p Property) String() string {
	return fmt.Sprintf("%s = %v", p.Key, p.Default)
}
