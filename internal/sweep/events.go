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

import (
	"sort"

	"seehuhn.de/go/tessellate/internal/pqueue"
	"seehuhn.de/go/tessellate/plane"
)

// kind distinguishes the three event types the sweep processes at a given
// point (spec §4.2). Order matters: at equal points, Stop events must be
// handled before Intersection events, which in turn precede Start events,
// so that an edge that ends and a crossing edge that begins at the same
// point never appear simultaneously active in the wrong order.
type kind uint8

const (
	kindStop kind = iota
	kindIntersection
	kindStart
)

// event is one entry in the sweep's worklist. seq is a monotonically
// increasing sequence number assigned at creation time, used as the final
// tie-break when point and kind both compare equal (spec §9's redesign
// note: replace pointer-identity tie-breaks with an explicit sequence
// counter, since arena indices are reused across different logical objects
// over a sweep's lifetime and are not a valid substitute for identity).
type event struct {
	pt   plane.Point
	k    kind
	seq  uint64
	edge int32 // primary edge arena index
	// other is the second edge arena index for an Intersection event (the
	// edge edge crosses), unused for Start/Stop.
	other int32

	// xTag and yTag carry intersectLines' three-valued rounding-direction
	// tag for an Intersection event (spec §4.9: "Intersection points use a
	// three-valued approximation tag ... so that the event-ordering
	// tie-break respects rounding direction and pass-through order remains
	// stable even when multiple intersections round to the same integer
	// point"). Both are approxExact (the zero value) for Start/Stop events,
	// which carry no rounding.
	xTag, yTag approxTag
}

// compareEvents orders events by point (§4.3 "Point compare"), then by
// kind (Stop < Intersection < Start), then — for two Intersection events
// that round to the very same grid point — by which one's true,
// unrounded crossing came first: an approxExcess tag means the true value
// sits below the rounded one, approxDefault means it sits above, so
// Excess orders before Exact orders before Default (spec §4.9). Finally
// falls back to the sequence number, matching the total order the sweep
// requires to dequeue deterministically (spec §4.2).
func compareEvents(a, b *event) bool {
	if c := a.pt.Compare(b.pt); c != 0 {
		return c < 0
	}
	if a.k != b.k {
		return a.k < b.k
	}
	if a.k == kindIntersection && b.k == kindIntersection {
		if a.yTag != b.yTag {
			return a.yTag > b.yTag
		}
		if a.xTag != b.xTag {
			return a.xTag > b.xTag
		}
	}
	return a.seq < b.seq
}

// queue is the sweep's combined worklist: a presorted slice of Start events
// (known in full before the sweep begins, since every input edge
// contributes exactly one) merged against a binary heap of Intersection and
// Stop events discovered as the sweep progresses (spec §4.2, "merge a
// presorted Start array against a heap of discovered events").
type queue struct {
	starts    []event
	startNext int
	heap      *pqueue.Heap[event]
	nextSeq   uint64
}

// newQueue builds a queue from a complete, unsorted slice of Start events.
// The slice is sorted in place by compareEvents and owned by the queue
// afterward.
func newQueue(starts []event) *queue {
	sort.Slice(starts, func(i, j int) bool { return compareEvents(&starts[i], &starts[j]) })
	q := &queue{starts: starts, heap: pqueue.New[event](compareEvents)}
	var maxSeq uint64
	for i := range starts {
		if starts[i].seq >= maxSeq {
			maxSeq = starts[i].seq + 1
		}
	}
	q.nextSeq = maxSeq
	return q
}

// nextSeqNum returns a fresh, strictly increasing sequence number for a
// newly discovered (Intersection or Stop) event.
func (q *queue) nextSeqNum() uint64 {
	s := q.nextSeq
	q.nextSeq++
	return s
}

// Len reports how many events remain to be processed, across both the
// presorted array and the discovery heap.
func (q *queue) Len() int {
	return (len(q.starts) - q.startNext) + q.heap.Len()
}

// PushDiscovered inserts a newly discovered Intersection or Stop event.
func (q *queue) PushDiscovered(e event) error {
	return q.heap.Push(&e)
}

// Peek returns the least event under compareEvents without removing it,
// and false if the queue is empty.
func (q *queue) Peek() (event, bool) {
	haveStart := q.startNext < len(q.starts)
	haveHeap := q.heap.Len() > 0

	switch {
	case haveStart && haveHeap:
		s := &q.starts[q.startNext]
		h := q.heap.Peek()
		if compareEvents(s, h) {
			return *s, true
		}
		return *h, true
	case haveStart:
		return q.starts[q.startNext], true
	case haveHeap:
		return *q.heap.Peek(), true
	default:
		return event{}, false
	}
}

// Pop removes and returns the least event under compareEvents, choosing
// between the next unconsumed Start and the heap's minimum.
func (q *queue) Pop() event {
	haveStart := q.startNext < len(q.starts)
	haveHeap := q.heap.Len() > 0

	switch {
	case haveStart && haveHeap:
		s := &q.starts[q.startNext]
		h := q.heap.Peek()
		if compareEvents(s, h) {
			q.startNext++
			return *s
		}
		return *q.heap.Pop()
	case haveStart:
		s := q.starts[q.startNext]
		q.startNext++
		return s
	case haveHeap:
		return *q.heap.Pop()
	default:
		panic("sweep: Pop on empty queue")
	}
}
