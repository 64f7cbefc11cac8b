// seehuhn.de/go/tessellate - a planar-sweep geometry engine
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

package tessellate

import "errors"

// ErrOutOfMemory is the only error Tessellate, Reduce and Intersect return
// (StrokeToPolygon can also return ErrSingularCTM): the event heap or edge
// arena would need to grow past a configured capacity limit. The sweep is
// aborted and all partial output and temporary state are discarded; the
// caller may retry with a larger limit or smaller input.
//
// Degenerate input (top >= bottom, dir == 0) is never an error: it is
// silently dropped by Polygon.AddEdge.
var ErrOutOfMemory = errors.New("tessellate: out of memory")

// ErrSingularCTM is returned by StrokeToPolygon when ctmInverse is not
// actually the inverse of ctm (detected via a round-trip sanity check),
// since the stroker needs both directions to move between
// user and device space.
var ErrSingularCTM = errors.New("tessellate: ctm is not invertible")
