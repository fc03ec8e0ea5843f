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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// cli holds the state shared by all commands.
type cli struct {
	logger *log.Logger
}

func newCLI(w io.Writer, level log.Level) *cli {
	return &cli{logger: newLogger(w, level)}
}

// newLogger creates a logger with timestamps of the form "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nodeshape",
		Short:         "Draw graph nodes as polygons, diamonds and stars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.propertiesCommand())
	root.AddCommand(c.casesCommand())
	return root
}
