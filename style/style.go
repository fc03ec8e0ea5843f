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

// Package style describes how node outlines are painted.
package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style holds the paint parameters of one node.
//
// Fill and Border are opaque colours; their alpha channel is ignored.
// Transparency is controlled by Opacity alone, which applies to both the
// fill and the border.
type Style struct {
	Fill        color.NRGBA
	Border      color.NRGBA
	BorderWidth float64 // no border is drawn if this is 0
	Opacity     float64 // in the range [0, 1]
}

// Clamped returns a copy of s with Opacity restricted to [0, 1] and a
// non-negative BorderWidth.  NaN values give an opaque node without
// border.
func (s Style) Clamped() Style {
	switch {
	case math.IsNaN(s.Opacity):
		s.Opacity = 1
	case s.Opacity < 0:
		s.Opacity = 0
	case s.Opacity > 1:
		s.Opacity = 1
	}
	if !(s.BorderWidth > 0) || math.IsInf(s.BorderWidth, 1) {
		s.BorderWidth = 0
	}
	return s
}

// HasBorder reports whether the outline is stroked.
func (s Style) HasBorder() bool {
	return s.BorderWidth > 0
}

// Alpha returns the opacity as an 8-bit alpha value.
func (s Style) Alpha() uint8 {
	return uint8(math.Round(s.Opacity * 255))
}

// FillColor returns the fill colour with the opacity applied.
func (s Style) FillColor() color.NRGBA {
	c := s.Fill
	c.A = s.Alpha()
	return c
}

// BorderColor returns the border colour with the opacity applied.
func (s Style) BorderColor() color.NRGBA {
	c := s.Border
	c.A = s.Alpha()
	return c
}

// Opaque converts any colour to an opaque NRGBA value.
func Opaque(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}

// Darker returns c with every channel scaled by 0.7, the way borders are
// derived from the node colour by default.
func Darker(c color.Color) color.NRGBA {
	n := Opaque(c)
	n.R = uint8(float64(n.R) * 0.7)
	n.G = uint8(float64(n.G) * 0.7)
	n.B = uint8(float64(n.B) * 0.7)
	return n
}

// Hex formats c as "#rrggbb".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor understands "#rgb", "#rrggbb" and the SVG colour keywords
// (for example "steelblue").
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Opaque(c), nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
}
