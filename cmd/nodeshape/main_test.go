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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/nodeshape/shape"
)

const exampleNodes = `
[[node]]
id = "star"
x = 30
y = 30
size = 20
color = "#ff0000"
[node.attrs]
shape = "star"

[[node]]
id = "hex"
x = 90
y = 30
size = 20
[node.attrs]
polygon = 6

[[node]]
x = 60
y = 80
size = 15
color = "steelblue"
`

func TestParseNodes(t *testing.T) {
	nodes, err := parseNodes(exampleNodes)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if nodes[0].ID != "star" || nodes[0].Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("node 0: %+v", nodes[0])
	}
	res, ok := shape.Resolve(nodes[1].Attrs, shape.DefaultConfig())
	if !ok || res.Kind != shape.Polygon || res.Sides != 6 {
		t.Errorf("node 1 resolves to %+v", res)
	}
	if nodes[2].ID != "node3" || nodes[2].Attrs != nil {
		t.Errorf("node 2: %+v", nodes[2])
	}
}

func TestParseNodesErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"no size":   "[[node]]\nx = 1\n",
		"bad color": "[[node]]\nsize = 1\ncolor = \"#zzz\"\n",
		"unknown":   "[[node]]\nsize = 1\nradius = 3\n",
		"syntax":    "[[node]\n",
	}
	for name, data := range cases {
		if _, err := parseNodes(data); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
	if _, err := parseNodes(""); !errors.Is(err, errNoNodes) {
		t.Errorf("empty file: got %v", err)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "nodes.toml")
	if err := os.WriteFile(input, []byte(exampleNodes), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newCLI(io.Discard, log.InfoLevel)
	for _, name := range []string{"out.png", "out2.png", "out.svg", "out.pdf"} {
		t.Run(name, func(t *testing.T) {
			opts := renderOptions{
				output: filepath.Join(dir, name),
				width:  120,
				height: 100,
				engine: "canvas",
			}
			if name == "out2.png" {
				opts.engine = "draw2d"
			}
			if err := c.render(context.Background(), input, opts); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(opts.output)
			if err != nil {
				t.Fatal(err)
			}

			switch filepath.Ext(name) {
			case ".png":
				img, err := png.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatal(err)
				}
				// the centre of the star is red, the background white
				if r, g, b, _ := img.At(30, 30).RGBA(); r>>8 != 255 || g>>8 > 2 || b>>8 > 2 {
					t.Errorf("star centre has colour %v", img.At(30, 30))
				}
				if r, g, b, _ := img.At(1, 99).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
					t.Errorf("background has colour %v", img.At(1, 99))
				}
			case ".svg":
				if n := strings.Count(string(data), "<path"); n != 3 {
					t.Errorf("found %d path elements", n)
				}
			case ".pdf":
				if !bytes.HasPrefix(data, []byte("%PDF-")) {
					t.Error("not a PDF file")
				}
			}
		})
	}

	err := c.render(context.Background(), input, renderOptions{output: filepath.Join(dir, "out.gif"), width: 10, height: 10})
	if err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestListings(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := listShapes(buf); err != nil {
		t.Fatal(err)
	}
	for _, k := range shape.Kinds() {
		if !strings.Contains(buf.String(), k.String()) {
			t.Errorf("shape %s not listed", k)
		}
	}

	buf.Reset()
	if err := listProperties(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "PolygonNodes.property.enable") {
		t.Error("enable property not listed")
	}
}

func TestWriteCases(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeCases(buf); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Cases []struct {
			Name     string       `json:"name"`
			Kind     string       `json:"kind"`
			Vertices [][2]float64 `json:"vertices"`
		} `json:"testcases"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, c := range out.Cases {
		if c.Name == "scenario_star_configured_points" {
			found = true
			if c.Kind != "star" || len(c.Vertices) != 12 {
				t.Errorf("star scenario: %+v", c)
			}
		}
	}
	if !found {
		t.Error("star scenario missing")
	}
}

func TestOverlaps(t *testing.T) {
	area := rect.Rect{URx: 100, URy: 50}
	cases := []struct {
		r    rect.Rect
		want bool
	}{
		{rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}, true},
		{rect.Rect{LLx: -5, LLy: 40, URx: 5, URy: 60}, true},
		{rect.Rect{LLx: 100, LLy: 10, URx: 120, URy: 20}, false},
		{rect.Rect{LLx: 10, LLy: -30, URx: 20, URy: -1}, false},
	}
	for _, tc := range cases {
		if got := overlaps(tc.r, area); got != tc.want {
			t.Errorf("overlaps(%v) = %t, want %t", tc.r, got, tc.want)
		}
	}
}
