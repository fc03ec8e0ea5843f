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

// Package svg builds SVG documents containing node outlines.
//
// A [Document] is a small tree of [Element] values which the host can
// extend before the document is written.  [Emit] appends one node
// outline to an element of the tree.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// Namespace is the XML namespace of SVG elements.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is an attribute of an SVG element.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of an SVG document tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// NewElement returns a new element without children.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Group appends a new "g" element to e.  If id is not empty, it is used
// as the id attribute of the group.
func (e *Element) Group(id string) *Element {
	g := NewElement("g")
	if id != "" {
		g.SetAttr("id", id)
	}
	return e.Append(g)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any previous value.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Document is an SVG document of a fixed size.
type Document struct {
	Width, Height int

	// Root is the svg element.  Its namespace is [Namespace].
	Root *Element
}

// NewDocument returns an empty document.
func NewDocument(width, height int) *Document {
	return &Document{
		Width:  width,
		Height: height,
		Root:   NewElement("svg", Attr{Name: "xmlns", Value: Namespace}),
	}
}

// WriteTo writes the document as an SVG file.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	canvas := svgo.New(cw)

	var extra []string
	for _, a := range d.Root.Attrs {
		switch a.Name {
		case "xmlns", "xmlns:xlink", "width", "height":
			// written by svgo
		default:
			extra = append(extra, formatAttr(a))
		}
	}
	canvas.Start(d.Width, d.Height, extra...)
	for _, child := range d.Root.Children {
		writeElement(canvas, child)
	}
	canvas.End()

	return cw.n, cw.err
}

func writeElement(canvas *svgo.SVG, e *Element) {
	attrs := make([]string, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		if e.Tag == "path" && a.Name == "d" {
			continue
		}
		attrs = append(attrs, formatAttr(a))
	}

	switch e.Tag {
	case "g":
		canvas.Group(attrs...)
		for _, child := range e.Children {
			writeElement(canvas, child)
		}
		canvas.Gend()
	case "path":
		if len(e.Children) == 0 {
			d, _ := e.Attr("d")
			canvas.Path(d, attrs...)
			return
		}
		fallthrough
	default:
		if len(e.Children) == 0 {
			fmt.Fprintf(canvas.Writer, "<%s %s/>\n", e.Tag, joinAttrs(attrs))
			return
		}
		fmt.Fprintf(canvas.Writer, "<%s %s>\n", e.Tag, joinAttrs(attrs))
		for _, child := range e.Children {
			writeElement(canvas, child)
		}
		fmt.Fprintf(canvas.Writer, "</%s>\n", e.Tag)
	}
}

// formatAttr formats a as name="value", in the form expected by svgo.
func formatAttr(a Attr) string {
	buf := &bytes.Buffer{}
	buf.WriteString(a.Name)
	buf.WriteString(`="`)
	xml.EscapeText(buf, []byte(a.Value))
	buf.WriteByte('"')
	return buf.String()
}

func joinAttrs(attrs []string) string {
	var buf bytes.Buffer
	for i, a := range attrs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(a)
	}
	return buf.String()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
