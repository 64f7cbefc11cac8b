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

package sweep

import "seehuhn.de/go/tessellate/plane"

// noIndex marks an arena-index field as absent, the arena-based replacement
// for a nil pointer.
const noIndex = -1

// edge is the sweep-line's working record for one input edge, arena-indexed
// rather than heap-allocated (spec §9's redesign note: replace the
// intrusive pointer-linked active edge with an arena-index doubly linked
// list, "the same memoization, no pointer tagging"). prev/next are indices
// into the same edge arena, or noIndex.
type edge struct {
	line plane.Line
	top  int32 // first y at which this edge is active
	bot  int32 // last y at which this edge is active

	// windingDelta is the signed contribution this edge makes to the
	// running winding count as the sweep crosses it left-to-right: +1 or
	// -1. Single-winding operations (tessellate, reduce) add it to one
	// running count; the dual winding used by polygon intersection (§4.9)
	// adds it to the running count of the edge's own source (see source).
	windingDelta int8

	// source distinguishes which input polygon an edge in the dual sweep
	// came from (§4.9: "Source tag A/B per edge"). Single-winding sweeps
	// leave this at sourceNone.
	source source

	prev, next int32 // active-list neighbors, arena indices, or noIndex

	// deferred trapezoid state (§4.6 "Deferred trapezoid coalescing"): while
	// this edge and its active-list neighbor bound a region whose left and
	// right sides have not changed since topY, no trapezoid is emitted;
	// open marks whether a pending trapezoid is being accumulated.
	open  bool
	topY  int32
	rightEdge int32 // arena index of the edge bounding the region on the right

	// collinearity hint (§9 redesign note: "(peer_index: u32, result: bool)
	// in the edge record — the same memoization, no pointer tagging").
	// peer is the arena index this edge was last compared against for exact
	// slope equality; collinear caches that comparison's result. peer ==
	// noIndex means no cached comparison.
	peer      int32
	collinear bool
}

// source tags which operand polygon an edge in a dual sweep belongs to.
type source int8

const (
	sourceNone source = iota
	sourceA
	sourceB
)

// newEdge initializes an edge record for insertion into an arena slot,
// leaving the active-list links and deferred-trapezoid state empty.
func newEdge(line plane.Line, top, bot int32, dir int8, src source) edge {
	return edge{
		line:         line,
		top:          top,
		bot:          bot,
		windingDelta: dir,
		source:       src,
		prev:         noIndex,
		next:         noIndex,
		rightEdge:    noIndex,
		peer:         noIndex,
	}
}

// xAt returns this edge's x coordinate at height y (spec §4.3).
func (e *edge) xAt(y int32) int32 { return xAtY(e.line, y) }

// clearCollinearHint invalidates the cached collinearity comparison, used
// whenever the edge's active-list neighbor changes (the old cached peer no
// longer applies).
func (e *edge) clearCollinearHint() {
	e.peer = noIndex
	e.collinear = false
}

// collinearWith reports whether e and other lie on the same infinite line
// (equal slope, and other's own point lies on e's line), caching the result
// against otherIdx so a repeated comparison of the same pair within a sweep
// never costs more than O(1) after the first (§9 redesign note: "(peer_index:
// u32, result: bool) in the edge record — the same memoization, no pointer
// tagging"). Used by the trapezoid-extraction right-continuation check
// (spec §4.7) and the stopped-list left-continuation lookup (spec §4.6).
func (e *edge) collinearWith(otherIdx int32, other *edge) bool {
	if e.peer == otherIdx {
		return e.collinear
	}
	result := slopeCompare(e.line, other.line) == 0 && xAtY(e.line, other.line.P1.Y) == other.line.P1.X
	e.peer = otherIdx
	e.collinear = result
	return result
}
