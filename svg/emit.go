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

package svg

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/style"
)

// Emit appends a path element for the outline p to parent and returns the
// new element.
//
// The style must already be clamped.
func Emit(parent *Element, p geometry.Path, st style.Style) *Element {
	e := NewElement("path", Attr{Name: "d", Value: PathData(p)})

	opacity := formatNumber(st.Opacity)
	e.SetAttr("fill", style.Hex(st.Fill))
	e.SetAttr("fill-opacity", opacity)
	if st.HasBorder() {
		e.SetAttr("stroke", style.Hex(st.Border))
		e.SetAttr("stroke-width", formatNumber(st.BorderWidth))
		e.SetAttr("stroke-opacity", opacity)
	} else {
		e.SetAttr("stroke", "none")
	}

	return parent.Append(e)
}

// PathData formats p as the value of a "d" attribute: an absolute move to
// the first vertex, line segments to the others, and a close command.
func PathData(p geometry.Path) string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range p {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatNumber(v.X))
		b.WriteByte(' ')
		b.WriteString(formatNumber(v.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// formatNumber formats x with at most three decimal places.
func formatNumber(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
