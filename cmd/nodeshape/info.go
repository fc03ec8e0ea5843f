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
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/nodeshape"
	"seehuhn.de/go/nodeshape/geometry"
	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/testcases"
)

func (c *cli) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available node shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listShapes(cmd.OutOrStdout())
		},
	}
}

func listShapes(w io.Writer) error {
	fmt.Fprintln(w, styleTitle.Render("Shapes"))
	for _, k := range shape.Kinds() {
		var vertices string
		switch k {
		case shape.Circle:
			vertices = "default renderer"
		case shape.Polygon:
			vertices = "n vertices, from the polygon column"
		case shape.Star:
			vertices = "2×points vertices"
		default:
			vertices = fmt.Sprintf("%d vertices", k.Sides())
		}
		_, err := fmt.Fprintf(w, "  %-10s %s\n", styleValue.Render(k.String()), styleDim.Render(vertices))
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) propertiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the renderer properties and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProperties(cmd.OutOrStdout())
		},
	}
}

func listProperties(w io.Writer) error {
	fmt.Fprintln(w, styleTitle.Render(nodeshape.New(nodeshape.DefaultSettings()).Name()))
	for _, p := range nodeshape.Properties() {
		_, err := fmt.Fprintf(w, "  %s = %s\n      %s\n",
			p.Key, styleValue.Render(fmt.Sprintf("%#v", p.Default)), styleDim.Render(p.Description))
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) casesCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Write the built-in test scenarios as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := writeCases(f); err != nil {
					f.Close()
					return err
				}
				c.logger.Info("wrote " + output)
				return f.Close()
			}
			return writeCases(w)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

type jsonCase struct {
	Name       string         `json:"name"`
	Attrs      map[string]any `json:"attrs,omitempty"`
	Config     shape.Config   `json:"config"`
	Enabled    bool           `json:"enabled"`
	Kind       string         `json:"kind"`
	Sides      int            `json:"sides,omitempty"`
	StarPoints int            `json:"star_points,omitempty"`
	Vertices   [][2]float64   `json:"vertices,omitempty"`
}

func writeCases(w io.Writer) error {
	var out struct {
		Center [2]float64 `json:"center"`
		Radius float64    `json:"radius"`
		Cases  []jsonCase `json:"testcases"`
	}
	out.Center = [2]float64{testcases.Center.X, testcases.Center.Y}
	out.Radius = testcases.Radius

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			res, ok := shape.Resolve(tc.Attrs, tc.Config)
			jc := jsonCase{
				Name:       category + "_" + tc.Name,
				Attrs:      tc.Attrs,
				Config:     tc.Config,
				Enabled:    ok,
				Kind:       res.Kind.String(),
				Sides:      res.Sides,
				StarPoints: res.StarPoints,
			}
			if ok && !res.IsDefault() {
				p, err := geometry.Build(res, testcases.Center, testcases.Radius)
				if err != nil {
					return fmt.Errorf("%s: %w", jc.Name, err)
				}
				for _, v := range p {
					jc.Vertices = append(jc.Vertices, [2]float64{v.X, v.Y})
				}
			}
			out.Cases = append(out.Cases, jc)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
