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
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/nodeshape/shape"
	"seehuhn.de/go/nodeshape/style"
)

// Settings holds the preview properties which affect polygon shaped
// nodes.
type Settings struct {
	Shape shape.Config `toml:"shape"`

	// BorderWidth is the width of node borders.  No border is drawn if the
	// width is 0.
	BorderWidth float64 `toml:"border_width"`

	// BorderColor is the colour of node borders, as accepted by
	// [style.ParseColor].  If BorderColor is empty, borders use a darker
	// version of the node colour.
	BorderColor string `toml:"border_color"`

	// Opacity is the node opacity in percent, between 0 and 100.
	Opacity float64 `toml:"opacity"`
}

// DefaultSettings returns the settings used when the host supplies none.
func DefaultSettings() Settings {
	return Settings{
		Shape:       shape.DefaultConfig(),
		BorderWidth: 1,
		Opacity:     100,
	}
}

// ErrInvalidSettings is wrapped by the errors returned by
// [Settings.Validate].
var ErrInvalidSettings = errors.New("invalid settings")

// ParseSettings reads settings in TOML format.  Keys which are missing
// from data keep their default values; unknown keys are an error.
func ParseSettings(data string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, err
	}
	if err := checkUndecoded(md); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads a TOML settings file.  See [ParseSettings].
func LoadSettings(fname string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.DecodeFile(fname, &s)
	if err != nil {
		return Settings{}, err
	}
	if err := checkUndecoded(md); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown settings: %s", strings.Join(keys, ", "))
}

// Validate checks that all fields have meaningful values.  The renderer
// copes with invalid settings by falling back to defaults, so calling
// Validate is optional.
func (s Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...))
	}

	if s.Shape.ShapeColumn == "" {
		bad("empty shape column name")
	}
	if s.Shape.PolygonColumn == "" {
		bad("empty polygon column name")
	}
	if _, ok := shape.ParseKind(s.Shape.DefaultShape); !ok {
		bad("unknown default shape %q", s.Shape.DefaultShape)
	}
	if s.Shape.StarPoints < 3 {
		bad("star points %d < 3", s.Shape.StarPoints)
	}
	if !(s.BorderWidth >= 0) || math.IsInf(s.BorderWidth, 1) {
		bad("border width %g", s.BorderWidth)
	}
	if s.BorderColor != "" {
		if _, err := style.ParseColor(s.BorderColor); err != nil {
			bad("border colour: %v", err)
		}
	}
	if !(s.Opacity >= 0 && s.Opacity <= 100) {
		bad("opacity %g not in [0, 100]", s.Opacity)
	}

	return errors.Join(errs...)
}
