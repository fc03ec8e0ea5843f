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

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/shape"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate name %q", name)
			}
			seen[name] = true
		}
	}
}

func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				res, ok := shape.Resolve(tc.Attrs, tc.Config)
				if ok == tc.Disabled {
					t.Fatalf("enabled=%t, want %t", ok, !tc.Disabled)
				}
				if res != tc.Want {
					t.Errorf("resolved %+v, want %+v", res, tc.Want)
				}

				if tc.Deferred() {
					if tc.Vertices != 0 {
						t.Errorf("deferred case with %d vertices", tc.Vertices)
					}
					return
				}
				p, err := geometry.Build(res, Center, Radius)
				if err != nil {
					t.Fatal(err)
				}
				if len(p) != tc.Vertices {
					t.Errorf("got %d vertices, want %d", len(p), tc.Vertices)
				}
				b := p.Bounds()
				if b.LLx < 0 || b.LLy < 0 || b.URx > CanvasSize || b.URy > CanvasSize {
					t.Errorf("outline %v leaves the canvas", b)
				}
			})
		}
	}
}
