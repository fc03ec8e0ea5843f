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

package shape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AttributeSource gives read-only access to the attribute values of a
// single node.
//
// TryGet returns the value stored in the named column.  If the column does
// not exist, has no value for this node, or cannot be read, TryGet returns
// (nil, false).  Values may have any type; the resolver copes with values
// of unexpected type.
type AttributeSource interface {
	TryGet(column string) (any, bool)
}

// Attributes is an AttributeSource backed by a map.
//
// Column names are matched exactly first.  If there is no exact match, a
// case-insensitive match is tried, so that a column called "Polygon" is
// found when looking up "polygon".
type Attributes map[string]any

// TryGet implements the [AttributeSource] interface.  If several columns
// match case-insensitively, the lexicographically smallest name is used.
func (a Attributes) TryGet(column string) (any, bool) {
	if v, ok := a[column]; ok {
		return v, v != nil
	}
	var (
		best  string
		found bool
	)
	for k := range a {
		if strings.EqualFold(k, column) && (!found || k < best) {
			best, found = k, true
		}
	}
	if !found {
		return nil, false
	}
	v := a[best]
	return v, v != nil
}

// lookup reads a column of src and converts its value with conv.  A panic
// in either step counts as a missing value.  If the column has a value
// which conv rejects, raw is that value and ok is false.
func lookup[T any](src AttributeSource, column string, conv func(any) (T, bool)) (raw any, val T, ok bool) {
	if src == nil || column == "" {
		return nil, val, false
	}
	defer func() {
		if recover() != nil {
			var zero T
			raw, val, ok = nil, zero, false
		}
	}()

	raw, ok = src.TryGet(column)
	if !ok {
		return nil, val, false
	}
	val, ok = conv(raw)
	return raw, val, ok
}

// asString converts an attribute value to a string.
func asString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// asInt converts an attribute value to an integer.  Floating point values
// are only accepted if they are integral.
func asInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return clampInt64(v), true
	case uint:
		return clampUint64(uint64(v)), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return clampUint64(uint64(v)), true
	case uint64:
		return clampUint64(v), true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func floatToInt(x float64) (int, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, false
	}
	if x > math.MaxInt32 || x < math.MinInt32 {
		return 0, false
	}
	return int(x), true
}

func clampInt64(x int64) int {
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}
	return int(x)
}

func clampUint64(x uint64) int {
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(x)
}
