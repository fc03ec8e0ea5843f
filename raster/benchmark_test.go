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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/style"
)

var benchSizes = []int{20, 200, 2000}

func benchStar(size int) geometry.Path {
	c := float64(size) / 2
	p, err := geometry.Build(shape.Resolved{Kind: shape.Star, StarPoints: 7},
		vec.Vec2{X: c, Y: c}, 0.45*float64(size))
	if err != nil {
		panic(err)
	}
	return p
}

// BenchmarkRasteriserStar measures filling a star with a reused
// Rasteriser.
func BenchmarkRasteriserStar(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			star := pathData(benchStar(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(star, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = coverageByte(c)
					}
				})
			}
		})
	}
}

// BenchmarkVectorStar is the same as BenchmarkRasteriserStar, using
// x/image/vector.
func BenchmarkVectorStar(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			star := benchStar(size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(star[0].X), float32(star[0].Y))
				for _, v := range star[1:] {
					z.LineTo(float32(v.X), float32(v.Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkCanvasNodes draws a bordered node of every shape onto a
// canvas.
func BenchmarkCanvasNodes(b *testing.B) {
	const size = 256
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := NewCanvas(img)
	st := style.Style{
		Fill:        color.NRGBA{R: 70, G: 130, B: 180, A: 255},
		Border:      style.Darker(color.NRGBA{R: 70, G: 130, B: 180, A: 255}),
		BorderWidth: 2,
		Opacity:     0.8,
	}

	var paths []geometry.Path
	for i, k := range shape.Kinds() {
		r := shape.Resolved{Kind: k, Sides: 9, StarPoints: 5}
		center := vec.Vec2{X: float64(40 + 60*(i%4)), Y: float64(40 + 60*(i/4))}
		p, err := geometry.Build(r, center, 25)
		if err != nil {
			continue
		}
		paths = append(paths, p)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, p := range paths {
			if err := Emit(c, p, st); err != nil {
				b.Fatal(err)
			}
		}
	}
}
