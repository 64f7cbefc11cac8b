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

import "seehuhn.de/go/tessellate/internal/arena"

// activeList is the sweep line proper: the edges currently crossing the
// sweep's horizontal scan position, kept in left-to-right x order as a
// doubly linked list threaded through arena indices (spec §4.5; §9's
// redesign note replaces the teacher's intrusive pointer-linked active
// edge list with this arena-index version so the list can be rebuilt and
// walked without per-node heap traffic).
//
// head and tail are noIndex when the list is empty.
type activeList struct {
	edges      *arena.Arena[edge]
	head, tail int32
}

// newActiveList creates an empty active list backed by edges.
func newActiveList(edges *arena.Arena[edge]) *activeList {
	return &activeList{edges: edges, head: noIndex, tail: noIndex}
}

// Empty reports whether the active list currently holds no edges.
func (l *activeList) Empty() bool { return l.head == noIndex }

// Head returns the leftmost edge's arena index, or noIndex if empty.
func (l *activeList) Head() int32 { return l.head }

// Next returns the arena index of the edge immediately to the right of idx,
// or noIndex if idx is the rightmost edge.
func (l *activeList) Next(idx int32) int32 { return l.edges.Get(idx).next }

// Prev returns the arena index of the edge immediately to the left of idx,
// or noIndex if idx is the leftmost edge.
func (l *activeList) Prev(idx int32) int32 { return l.edges.Get(idx).prev }

// InsertAfter splices idx into the list immediately to the right of after.
// Passing after == noIndex inserts idx at the head (used for the very
// first edge of the sweep). The splice itself is O(1); the caller locates
// the neighbor (engine.insertEdge does so with xAtYCompare, scanning from
// the head of the list).
func (l *activeList) InsertAfter(after, idx int32) {
	e := l.edges.Get(idx)
	e.prev = after
	if after == noIndex {
		e.next = l.head
		if l.head != noIndex {
			l.edges.Get(l.head).prev = idx
		}
		l.head = idx
		if l.tail == noIndex {
			l.tail = idx
		}
		return
	}
	a := l.edges.Get(after)
	e.next = a.next
	if a.next != noIndex {
		l.edges.Get(a.next).prev = idx
	} else {
		l.tail = idx
	}
	a.next = idx
}

// InsertBefore splices idx into the list immediately to the left of
// before. Passing before == noIndex inserts idx at the tail.
func (l *activeList) InsertBefore(before, idx int32) {
	if before == noIndex {
		l.InsertAfter(l.tail, idx)
		return
	}
	b := l.edges.Get(before)
	l.InsertAfter(b.prev, idx)
}

// Remove unlinks idx from the list (the caller already knows idx's
// position, so removal is O(1) with no search). idx's own prev/next are left stale; callers must not reuse
// idx as a list node after removal without re-inserting it.
func (l *activeList) Remove(idx int32) {
	e := l.edges.Get(idx)
	if e.prev != noIndex {
		l.edges.Get(e.prev).next = e.next
	} else {
		l.head = e.next
	}
	if e.next != noIndex {
		l.edges.Get(e.next).prev = e.prev
	} else {
		l.tail = e.prev
	}
}

// SwapWithNext exchanges idx and its immediate right neighbor in O(1),
// used when two adjacent edges cross and must change relative order
// without touching the rest of the list (spec §4.5 "O(1) adjacent swap").
// idx must have a next neighbor.
func (l *activeList) SwapWithNext(idx int32) {
	a := l.edges.Get(idx)
	bIdx := a.next
	b := l.edges.Get(bIdx)

	beforeA := a.prev
	afterB := b.next

	b.prev = beforeA
	if beforeA != noIndex {
		l.edges.Get(beforeA).next = bIdx
	} else {
		l.head = bIdx
	}

	a.next = afterB
	if afterB != noIndex {
		l.edges.Get(afterB).prev = idx
	} else {
		l.tail = idx
	}

	a.prev = bIdx
	b.next = idx

	a.clearCollinearHint()
	b.clearCollinearHint()
}
