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
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"strings"
	"testing"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/nodeshape/raster"
	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/style"
	"seehuhn.de/go/nodeshape/svg"
	"seehuhn.de/go/nodeshape/testcases"
)

// surface is a raster.Surface which records the vertices it receives.
type surface struct {
	vertices [][2]float64
	fills    int
	strokes  int
	fill     color.Color
	fillErr  error
}

func (s *surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *surface) SetStrokeColor(c color.Color) {}
func (s *surface) SetLineWidth(w float64)       {}
func (s *surface) MoveTo(x, y float64)          { s.add(x, y) }
func (s *surface) LineTo(x, y float64)          { s.add(x, y) }
func (s *surface) ClosePath()                   {}

func (s *surface) add(x, y float64) {
	if s.fills == 0 {
		s.vertices = append(s.vertices, [2]float64{x, y})
	}
}

func (s *surface) Fill() error {
	s.fills++
	return s.fillErr
}

func (s *surface) Stroke() error {
	s.strokes++
	return nil
}

// stream is a pdfpage.Stream which records the vertices it receives.
type stream struct {
	vertices [][2]float64
	gs       []*extgstate.ExtGState
	ops      []string
}

func (s *stream) SetExtGState(gs *extgstate.ExtGState) { s.gs = append(s.gs, gs) }
func (s *stream) SetFillColor(c pdfcolor.Color)        {}
func (s *stream) SetStrokeColor(c pdfcolor.Color)      {}
func (s *stream) SetLineWidth(w float64)               {}
func (s *stream) MoveTo(x, y float64)                  { s.vertices = append(s.vertices, [2]float64{x, y}) }
func (s *stream) LineTo(x, y float64)                  { s.vertices = append(s.vertices, [2]float64{x, y}) }
func (s *stream) ClosePath()                           { s.ops = append(s.ops, "h") }
func (s *stream) Fill()                                { s.ops = append(s.ops, "f") }
func (s *stream) FillAndStroke()                       { s.ops = append(s.ops, "B") }

// fallback records the nodes passed to the default renderer.
type fallback struct {
	ids []string
	err error
}

func (f *fallback) RenderDefault(n Node, t Target) error {
	f.ids = append(f.ids, n.ID)
	return f.err
}

func caseNode(tc testcases.TestCase) Node {
	return Node{
		ID:    tc.Name,
		X:     testcases.Center.X,
		Y:     testcases.Center.Y,
		Size:  testcases.Radius,
		Color: color.NRGBA{R: 70, G: 130, B: 180, A: 255},
		Attrs: tc.Attrs,
	}
}

func caseSettings(tc testcases.TestCase) Settings {
	s := DefaultSettings()
	s.Shape = tc.Config
	return s
}

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fb := &fallback{}
				r := New(caseSettings(tc), WithDefault(fb))
				s := &surface{}

				outcome, err := r.Render(caseNode(tc), RasterTarget(s))
				if err != nil {
					t.Fatal(err)
				}

				if tc.Deferred() {
					if outcome != Deferred {
						t.Errorf("outcome %v, want %v", outcome, Deferred)
					}
					if len(fb.ids) != 1 || fb.ids[0] != tc.Name {
						t.Errorf("default renderer calls: %q", fb.ids)
					}
					if s.fills+s.strokes != 0 || len(s.vertices) != 0 {
						t.Error("surface was used for a deferred node")
					}
					return
				}

				if outcome != Drawn {
					t.Errorf("outcome %v, want %v", outcome, Drawn)
				}
				if len(fb.ids) != 0 {
					t.Errorf("default renderer called for %q", fb.ids)
				}
				if s.fills != 1 || s.strokes != 1 {
					t.Errorf("%d fills and %d strokes", s.fills, s.strokes)
				}
				if len(s.vertices) != tc.Vertices {
					t.Errorf("got %d vertices, want %d", len(s.vertices), tc.Vertices)
				}
			})
		}
	}
}

// TestPolygonScenario checks the vertex positions for a node with a
// side count and no shape name.
func TestPolygonScenario(t *testing.T) {
	n := Node{ID: "seven", X: 100, Y: 50, Size: 10, Attrs: shape.Attributes{"polygon": 7}}
	r := New(DefaultSettings())
	s := &surface{}
	if _, err := r.Render(n, RasterTarget(s)); err != nil {
		t.Fatal(err)
	}
	if len(s.vertices) != 7 {
		t.Fatalf("got %d vertices", len(s.vertices))
	}
	for i, v := range s.vertices {
		dx, dy := v[0]-n.X, v[1]-n.Y
		if d := dx*dx + dy*dy; d < 35.999 || d > 36.001 {
			t.Errorf("vertex %d at squared distance %g", i, d)
		}
	}
	// odd side counts start on the positive x axis
	if v := s.vertices[0]; v[0] != 106 || v[1] != 50 {
		t.Errorf("first vertex %v", v)
	}
}

// TestBackendsAgree draws the same node to all three backends and checks
// that they receive the same vertices.
func TestBackendsAgree(t *testing.T) {
	n := Node{ID: "star", X: 40, Y: 30, Size: 25, Color: color.White, Attrs: shape.Attributes{"shape": "star"}}
	r := New(DefaultSettings())

	plan, err := r.Plan(context.Background(), []Node{n})
	if err != nil {
		t.Fatal(err)
	}
	want := plan[0].Path
	if len(want) != 10 {
		t.Fatalf("star has %d vertices", len(want))
	}

	s := &surface{}
	doc := svg.NewDocument(80, 60)
	st := &stream{}
	for _, target := range []Target{RasterTarget(s), VectorTarget(doc.Root), StreamTarget(st)} {
		outcome, err := r.Render(n, target)
		if err != nil {
			t.Fatalf("%s: %v", target.Backend, err)
		}
		if outcome != Drawn {
			t.Errorf("%s: outcome %v", target.Backend, outcome)
		}
	}

	for name, got := range map[string][][2]float64{"raster": s.vertices, "content-stream": st.vertices} {
		if len(got) != len(want) {
			t.Errorf("%s: got %d vertices, want %d", name, len(got), len(want))
			continue
		}
		for i, v := range want {
			if got[i] != [2]float64{v.X, v.Y} {
				t.Errorf("%s: vertex %d is %v, want %v", name, i, got[i], v)
			}
		}
	}

	if len(doc.Root.Children) != 1 {
		t.Fatalf("svg root has %d children", len(doc.Root.Children))
	}
	if d, _ := doc.Root.Children[0].Attr("d"); d != svg.PathData(want) {
		t.Errorf("svg path %q, want %q", d, svg.PathData(want))
	}

	if len(st.gs) != 1 || st.gs[0].FillAlpha != 1 {
		t.Errorf("graphics state %v", st.gs)
	}
	if strings.Join(st.ops, " ") != "h B" {
		t.Errorf("pdf operators %q", st.ops)
	}
}

func TestDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.Shape.Enabled = false
	fb := &fallback{}
	r := New(settings, WithDefault(fb))

	doc := svg.NewDocument(10, 10)
	for i, attrs := range []shape.Attributes{nil, {"shape": "star"}, {"polygon": 5}} {
		n := Node{ID: fmt.Sprint(i), Size: 5, Attrs: attrs}
		if _, ok := r.Resolve(n); ok {
			t.Errorf("node %d resolved while disabled", i)
		}
		outcome, err := r.Render(n, VectorTarget(doc.Root))
		if err != nil || outcome != Deferred {
			t.Errorf("node %d: %v %v", i, outcome, err)
		}
	}
	if len(doc.Root.Children) != 0 {
		t.Error("disabled renderer appended elements")
	}
	if len(fb.ids) != 3 {
		t.Errorf("default renderer called %d times", len(fb.ids))
	}
}

func TestBackendUnavailable(t *testing.T) {
	r := New(DefaultSettings())
	n := Node{ID: "n1", Size: 5, Attrs: shape.Attributes{"shape": "square"}}

	for _, target := range []Target{
		RasterTarget(nil),
		VectorTarget(nil),
		StreamTarget(nil),
		RasterTarget((*raster.Canvas)(nil)),
		RasterTarget((*surface)(nil)),
		StreamTarget((*stream)(nil)),
		{Backend: Raster, Parent: svg.NewElement("g")},
	} {
		_, err := r.Render(n, target)
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("%s: got %v", target.Backend, err)
			continue
		}
		var be *BackendError
		if !errors.As(err, &be) || be.Backend != target.Backend || be.NodeID != "n1" {
			t.Errorf("%s: unexpected error %#v", target.Backend, err)
		}

		plan, err := r.Plan(context.Background(), []Node{n})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.Draw(plan[0], target); !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("Draw %s: got %v", target.Backend, err)
		}
	}
}

func TestUnknownBackend(t *testing.T) {
	fb := &fallback{}
	r := New(DefaultSettings(), WithDefault(fb))
	n := Node{ID: "x", Size: 5, Attrs: shape.Attributes{"shape": "hexagon"}}

	outcome, err := r.Render(n, Target{Backend: Backend(17), Surface: &surface{}})
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Deferred || len(fb.ids) != 1 {
		t.Errorf("outcome %v, %d default calls", outcome, len(fb.ids))
	}
}

func TestErrors(t *testing.T) {
	errTest := errors.New("test error")
	n := Node{ID: "n7", Size: 5, Attrs: shape.Attributes{"shape": "diamond"}}

	r := New(DefaultSettings())
	_, err := r.Render(n, RasterTarget(&surface{fillErr: errTest}))
	if !errors.Is(err, errTest) || !strings.Contains(err.Error(), `"n7"`) {
		t.Errorf("surface error: got %v", err)
	}

	r = New(DefaultSettings(), WithDefault(&fallback{err: errTest}))
	n.Attrs = nil
	outcome, err := r.Render(n, RasterTarget(&surface{}))
	if !errors.Is(err, errTest) || outcome != Deferred {
		t.Errorf("default renderer error: got %v %v", outcome, err)
	}
}

func TestStyle(t *testing.T) {
	nodeColor := color.NRGBA{R: 100, G: 200, B: 50, A: 7}
	cases := []struct {
		name        string
		opacity     float64
		borderColor string
		width       float64
		want        style.Style
	}{
		{
			name:    "defaults",
			opacity: 100,
			width:   1,
			want: style.Style{
				Fill:        color.NRGBA{R: 100, G: 200, B: 50, A: 255},
				Border:      color.NRGBA{R: 70, G: 140, B: 35, A: 255},
				BorderWidth: 1,
				Opacity:     1,
			},
		},
		{
			name:        "explicit border",
			opacity:     50,
			borderColor: "#ff0000",
			width:       3,
			want: style.Style{
				Fill:        color.NRGBA{R: 100, G: 200, B: 50, A: 255},
				Border:      color.NRGBA{R: 255, A: 255},
				BorderWidth: 3,
				Opacity:     0.5,
			},
		},
		{
			name:        "clamped",
			opacity:     250,
			borderColor: "not a colour",
			width:       -2,
			want: style.Style{
				Fill:    color.NRGBA{R: 100, G: 200, B: 50, A: 255},
				Border:  color.NRGBA{R: 70, G: 140, B: 35, A: 255},
				Opacity: 1,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			s.Opacity = tc.opacity
			s.BorderColor = tc.borderColor
			s.BorderWidth = tc.width
			got := New(s).Style(Node{Color: nodeColor})
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPlanOrder(t *testing.T) {
	kinds := shape.Kinds()
	nodes := make([]Node, 500)
	for i := range nodes {
		nodes[i] = Node{
			ID:    fmt.Sprintf("n%d", i),
			X:     float64(i % 37),
			Y:     float64(i / 37),
			Size:  3,
			Attrs: shape.Attributes{"shape": kinds[i%len(kinds)].String(), "polygon": i % 20},
		}
	}

	r := New(DefaultSettings())
	plans, err := r.Plan(context.Background(), nodes)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != len(nodes) {
		t.Fatalf("got %d plans", len(plans))
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 16))
	target := RasterTarget(raster.NewCanvas(img))
	for i, p := range plans {
		if p.Node.ID != nodes[i].ID {
			t.Fatalf("plan %d is for node %s", i, p.Node.ID)
		}
		want, err := r.plan(nodes[i])
		if err != nil {
			t.Fatal(err)
		}
		if p.Shape != want.Shape || len(p.Path) != len(want.Path) {
			t.Errorf("node %d: plan %+v, want %+v", i, p.Shape, want.Shape)
		}
		outcome, err := r.Draw(p, target)
		if err != nil {
			t.Fatal(err)
		}
		if (outcome == Drawn) != p.Custom() {
			t.Errorf("node %d: outcome %v for custom=%t", i, outcome, p.Custom())
		}
	}
}

// TestPlanBadAttributes checks that attribute values which panic when
// read or converted only affect their own node.
func TestPlanBadAttributes(t *testing.T) {
	nodes := []Node{
		{ID: "a", Size: 5, Attrs: shape.Attributes{"shape": brokenName{}}},
		{ID: "b", Size: 5, Attrs: shape.Attributes{"shape": "star"}},
		{ID: "c", Size: 5, Attrs: shape.Attributes{"shape": brokenName{}, "polygon": 7}},
	}
	r := New(DefaultSettings())
	plans, err := r.Plan(context.Background(), nodes)
	if err != nil {
		t.Fatal(err)
	}
	want := []shape.Kind{shape.Circle, shape.Star, shape.Polygon}
	for i, p := range plans {
		if p.Custom() != (want[i] != shape.Circle) || (p.Custom() && p.Shape.Kind != want[i]) {
			t.Errorf("node %s: got %+v, want %v", p.Node.ID, p.Shape, want[i])
		}
	}
}

type brokenName struct{}

func (brokenName) String() string {
	panic("attribute value cannot be formatted")
}

func TestPlanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(DefaultSettings())
	_, err := r.Plan(ctx, []Node{{ID: "a"}, {ID: "b"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}
