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

// Package nodeshape draws graph nodes as regular polygons, diamonds and
// stars instead of circles.
//
// For every node, a [Renderer] reads the desired shape from the node's
// attributes, computes the outline and draws it onto one of three kinds of
// output: a raster surface, an SVG document or a PDF content stream.  Nodes
// without a custom shape are left to a [DefaultRenderer] supplied by the
// host.
package nodeshape

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/pdfpage"
	"seehuhn.de/go/nodeshape/raster"
	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/style"
	"seehuhn.de/go/nodeshape/svg"
)

// Outcome tells what happened to a node.
type Outcome int

const (
	// Deferred means that the node was left to the default renderer.
	Deferred Outcome = iota

	// Drawn means that the outline was drawn onto the target.
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case Deferred:
		return "deferred"
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// DefaultRenderer draws the nodes which do not get a custom shape.
type DefaultRenderer interface {
	RenderDefault(n Node, t Target) error
}

// DefaultRendererFunc adapts a function to the [DefaultRenderer]
// interface.
type DefaultRendererFunc func(n Node, t Target) error

// RenderDefault calls f(n, t).
func (f DefaultRendererFunc) RenderDefault(n Node, t Target) error {
	return f(n, t)
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithLogger sets the logger for debug messages.  By default, messages are
// discarded.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithDefault sets the renderer used for nodes without a custom shape.
// Without a default renderer, such nodes are skipped.
func WithDefault(d DefaultRenderer) Option {
	return func(r *Renderer) {
		r.fallback = d
	}
}

// Renderer draws nodes using the shapes given by their attributes.
//
// A Renderer only holds read-only state and is safe for concurrent use.
// Targets are not: calls which draw onto the same target must not run
// concurrently.
type Renderer struct {
	settings Settings
	resolver shape.Resolver

	border    color.NRGBA
	hasBorder bool

	logger   *log.Logger
	fallback DefaultRenderer
}

// New returns a Renderer for the given settings.
func New(settings Settings, opts ...Option) *Renderer {
	r := &Renderer{
		settings: settings,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	r.resolver = shape.Resolver{Config: settings.Shape, Logger: r.logger}

	if settings.BorderColor != "" {
		c, err := style.ParseColor(settings.BorderColor)
		if err != nil {
			r.logger.Warn("using darker node colour for borders", "err", err)
		} else {
			r.border = c
			r.hasBorder = true
		}
	}

	return r
}

// Name returns the display name of the renderer.
func (r *Renderer) Name() string {
	return "Polygon Nodes"
}

// Settings returns the settings of the renderer.
func (r *Renderer) Settings() Settings {
	return r.settings
}

// Resolve determines the outline of n.  The second return value is false
// if polygon shaped nodes are disabled.
func (r *Renderer) Resolve(n Node) (shape.Resolved, bool) {
	return r.resolver.Resolve(n.Attrs)
}

// Style returns the paint parameters for n.  The result is clamped.
func (r *Renderer) Style(n Node) style.Style {
	fill := style.Opaque(n.Color)
	border := style.Darker(fill)
	if r.hasBorder {
		border = r.border
	}
	return style.Style{
		Fill:        fill,
		Border:      border,
		BorderWidth: r.settings.BorderWidth,
		Opacity:     r.settings.Opacity / 100,
	}.Clamped()
}

// Render draws n onto t.
//
// If n has no custom shape, if polygon shaped nodes are disabled, or if
// the target uses a backend which is not supported, the node is passed to
// the default renderer and Deferred is returned.  Otherwise exactly one
// outline is drawn and the result is Drawn.
//
// If the target has no sink for its backend, an error wrapping
// [ErrBackendUnavailable] is returned.
func (r *Renderer) Render(n Node, t Target) (Outcome, error) {
	if err := t.check(n.ID); err != nil {
		return Deferred, err
	}
	p, err := r.plan(n)
	if err != nil {
		return Deferred, err
	}
	return r.draw(p, t)
}

// Plan is the precomputed outline and style of a node.
type Plan struct {
	Node  Node
	Shape shape.Resolved

	// Path is nil if the node is left to the default renderer.
	Path  geometry.Path
	Style style.Style
}

// Custom reports whether the plan draws a custom outline.
func (p *Plan) Custom() bool {
	return p.Path != nil
}

// Plan resolves the shapes and computes the outlines of many nodes
// concurrently.  The result has one entry per node, in the order of the
// input.
func (r *Renderer) Plan(ctx context.Context, nodes []Node) ([]Plan, error) {
	plans := make([]Plan, len(nodes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range nodes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := r.plan(nodes[i])
			if err != nil {
				return err
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// Draw draws a node previously prepared by [Renderer.Plan].  The result
// is the same as for [Renderer.Render].
func (r *Renderer) Draw(p Plan, t Target) (Outcome, error) {
	if err := t.check(p.Node.ID); err != nil {
		return Deferred, err
	}
	return r.draw(p, t)
}

func (r *Renderer) plan(n Node) (Plan, error) {
	p := Plan{Node: n}

	res, ok := r.Resolve(n)
	if !ok || res.IsDefault() {
		return p, nil
	}
	p.Shape = res

	path, err := geometry.Build(res, vec.Vec2{X: n.X, Y: n.Y}, n.Size)
	if err != nil {
		return p, fmt.Errorf("node %q: %w", n.ID, err)
	}
	p.Path = path
	p.Style = r.Style(n)
	return p, nil
}

func (r *Renderer) draw(p Plan, t Target) (Outcome, error) {
	if !p.Custom() || !t.Backend.IsValid() {
		return Deferred, r.deferNode(p.Node, t)
	}

	switch t.Backend {
	case Raster:
		if err := raster.Emit(t.Surface, p.Path, p.Style); err != nil {
			return Drawn, fmt.Errorf("node %q: %w", p.Node.ID, err)
		}
	case Vector:
		svg.Emit(t.Parent, p.Path, p.Style)
	case ContentStream:
		pdfpage.Emit(t.Stream, p.Path, p.Style)
	}
	r.logger.Debug("node drawn", "id", p.Node.ID, "shape", p.Shape.Kind, "backend", t.Backend)
	return Drawn, nil
}

func (r *Renderer) deferNode(n Node, t Target) error {
	if r.fallback == nil {
		return nil
	}
	if err := r.fallback.RenderDefault(n, t); err != nil {
		return fmt.Errorf("node %q: default renderer: %w", n.ID, err)
	}
	return nil
}
