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
)

// ErrBackendUnavailable indicates that a target does not provide a sink
// for its backend.  This is a configuration error of the host and is
// reported for every node.
var ErrBackendUnavailable = errors.New("backend sink unavailable")

// BackendError is returned by [Renderer.Render] and [Renderer.Draw] if the
// target has no sink.  It wraps [ErrBackendUnavailable].
type BackendError struct {
	Backend Backend
	NodeID  string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("node %q: %s backend: %v", e.NodeID, e.Backend, ErrBackendUnavailable)
}

func (e *BackendError) Unwrap() error {
	return ErrBackendUnavailable
}
