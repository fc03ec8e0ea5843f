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

package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape"
	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/pdfpage"
	"seehuhn.de/go/nodeshape/raster"
	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/style"
	"seehuhn.de/go/nodeshape/svg"
)

// nodesFile is the TOML format of node lists:
//
//	[[node]]
//	id = "a"
//	x = 40
//	y = 40
//	size = 12
//	color = "steelblue"
//	[node.attrs]
//	shape = "star"
type nodesFile struct {
	Nodes []nodeEntry `toml:"node"`
}

type nodeEntry struct {
	ID    string         `toml:"id"`
	X     float64        `toml:"x"`
	Y     float64        `toml:"y"`
	Size  float64        `toml:"size"`
	Color string         `toml:"color"`
	Attrs map[string]any `toml:"attrs"`
}

var errNoNodes = errors.New("no nodes")

func parseNodes(data string) ([]nodeshape.Node, error) {
	var f nodesFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("unknown key %q", keys[0].String())
	}
	if len(f.Nodes) == 0 {
		return nil, errNoNodes
	}

	nodes := make([]nodeshape.Node, len(f.Nodes))
	for i, e := range f.Nodes {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("node%d", i+1)
		}
		if !(e.Size > 0) {
			return nil, fmt.Errorf("node %q: invalid size %g", id, e.Size)
		}
		n := nodeshape.Node{ID: id, X: e.X, Y: e.Y, Size: e.Size}
		if e.Color != "" {
			c, err := style.ParseColor(e.Color)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", id, err)
			}
			n.Color = c
		}
		if e.Attrs != nil {
			n.Attrs = shape.Attributes(e.Attrs)
		}
		nodes[i] = n
	}
	return nodes, nil
}

// circleSegments is the number of vertices used to approximate circles.
const circleSegments = 64

// circles draws the nodes without a custom shape as discs.
type circles struct {
	r *nodeshape.Renderer
}

func (c *circles) RenderDefault(n nodeshape.Node, t nodeshape.Target) error {
	if !(n.Size > 0) {
		return nil
	}
	p := geometry.RegularPolygon(circleSegments, vec.Vec2{X: n.X, Y: n.Y}, n.Size/2, 0)
	st := c.r.Style(n)
	switch t.Backend {
	case nodeshape.Raster:
		return raster.Emit(t.Surface, p, st)
	case nodeshape.Vector:
		svg.Emit(t.Parent, p, st)
	case nodeshape.ContentStream:
		pdfpage.Emit(t.Stream, p, st)
	}
	return nil
}

// newRenderer returns a renderer which draws default nodes as circles.
func newRenderer(settings nodeshape.Settings, opts ...nodeshape.Option) *nodeshape.Renderer {
	c := &circles{}
	c.r = nodeshape.New(settings, append(opts, nodeshape.WithDefault(c))...)
	return c.r
}
