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
	"fmt"
	"reflect"

	"seehuhn.de/go/nodeshape/pdfpage"
	"seehuhn.de/go/nodeshape/raster"
	"seehuhn.de/go/nodeshape/svg"
)

// Backend identifies the kind of output a [Target] writes to.
type Backend int

// The supported backends.  The zero value is not a valid backend; nodes
// rendered onto a target without a valid backend are deferred.
const (
	Raster Backend = iota + 1
	Vector
	ContentStream
)

// IsValid reports whether b is one of the supported backends.
func (b Backend) IsValid() bool {
	return b >= Raster && b <= ContentStream
}

func (b Backend) String() string {
	switch b {
	case Raster:
		return "raster"
	case Vector:
		return "vector"
	case ContentStream:
		return "content-stream"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Target is the output of a render call.  Backend selects which of the
// sink fields is used.
type Target struct {
	Backend Backend

	Surface raster.Surface // for Raster
	Parent  *svg.Element   // for Vector
	Stream  pdfpage.Stream // for ContentStream
}

// RasterTarget returns a target which draws onto s.
func RasterTarget(s raster.Surface) Target {
	return Target{Backend: Raster, Surface: s}
}

// VectorTarget returns a target which appends path elements to parent.
func VectorTarget(parent *svg.Element) Target {
	return Target{Backend: Vector, Parent: parent}
}

// StreamTarget returns a target which writes to a PDF content stream.
func StreamTarget(s pdfpage.Stream) Target {
	return Target{Backend: ContentStream, Stream: s}
}

// check verifies that the sink for the target's backend is present.  A
// nil pointer stored in a sink interface counts as missing.
func (t Target) check(nodeID string) error {
	var ok bool
	switch t.Backend {
	case Raster:
		ok = !isNil(t.Surface)
	case Vector:
		ok = t.Parent != nil
	case ContentStream:
		ok = !isNil(t.Stream)
	default:
		return nil
	}
	if !ok {
		return &BackendError{Backend: t.Backend, NodeID: nodeID}
	}
	return nil
}

func isNil(sink any) bool {
	if sink == nil {
		return true
	}
	v := reflect.ValueOf(sink)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
