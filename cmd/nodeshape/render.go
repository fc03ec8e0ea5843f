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
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/nodeshape"
	"seehuhn.de/go/nodeshape/raster"
	"seehuhn.de/go/nodeshape/svg"
)

type renderOptions struct {
	output   string
	settings string
	width    int
	height   int
	engine   string
}

func (c *cli) renderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the nodes of a TOML file into a PNG, SVG or PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.png, .svg or .pdf)")
	cmd.Flags().StringVarP(&opts.settings, "settings", "s", "", "TOML settings file")
	cmd.Flags().IntVar(&opts.width, "width", 512, "output width")
	cmd.Flags().IntVar(&opts.height, "height", 512, "output height")
	cmd.Flags().StringVar(&opts.engine, "engine", "canvas", "PNG rasteriser: canvas or draw2d")
	cmd.MarkFlagRequired("output")

	return cmd
}

func (c *cli) render(ctx context.Context, input string, opts renderOptions) error {
	start := time.Now()

	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", opts.width, opts.height)
	}

	settings := nodeshape.DefaultSettings()
	if opts.settings != "" {
		var err error
		settings, err = nodeshape.LoadSettings(opts.settings)
		if err != nil {
			return err
		}
	}
	if err := settings.Validate(); err != nil {
		c.logger.Warn("questionable settings", "err", err)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	nodes, err := parseNodes(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	c.logger.Debug("nodes loaded", "file", input, "count", len(nodes))

	r := newRenderer(settings, nodeshape.WithLogger(c.logger))
	plans, err := r.Plan(ctx, nodes)
	if err != nil {
		return err
	}
	area := rect.Rect{URx: float64(opts.width), URy: float64(opts.height)}
	for _, p := range plans {
		if p.Custom() && !overlaps(p.Path.Bounds(), area) {
			c.logger.Warn("node outside the output area", "id", p.Node.ID)
		}
	}

	drawn := 0
	drawAll := func(t nodeshape.Target) error {
		for _, p := range plans {
			outcome, err := r.Draw(p, t)
			if err != nil {
				return err
			}
			if outcome == nodeshape.Drawn {
				drawn++
			}
		}
		return nil
	}

	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".png":
		err = writePNG(opts.output, opts.width, opts.height, opts.engine, drawAll)
	case ".svg":
		err = writeSVG(opts.output, opts.width, opts.height, drawAll)
	case ".pdf":
		err = writePDF(opts.output, opts.width, opts.height, drawAll)
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}

	c.logger.Info("wrote "+opts.output,
		"nodes", len(nodes),
		"shaped", drawn,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

func writePNG(fname string, w, h int, engine string, drawAll func(nodeshape.Target) error) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	var surface raster.Surface
	switch engine {
	case "canvas":
		surface = raster.NewCanvas(img)
	case "draw2d":
		surface = raster.NewGraphicContext(img)
	default:
		return fmt.Errorf("unknown rasteriser %q", engine)
	}
	if err := drawAll(nodeshape.RasterTarget(surface)); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeSVG(fname string, w, h int, drawAll func(nodeshape.Target) error) error {
	doc := svg.NewDocument(w, h)
	nodes := doc.Root.Group("nodes")
	if err := drawAll(nodeshape.VectorTarget(nodes)); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writePDF(fname string, w, h int, drawAll func(nodeshape.Target) error) error {
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; node coordinates assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	if err := drawAll(nodeshape.StreamTarget(page)); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}
