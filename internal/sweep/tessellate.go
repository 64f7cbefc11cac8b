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
	"fmt"

	"seehuhn.de/go/tessellate/internal/arena"
	"seehuhn.de/go/tessellate/plane"
)

// engine holds the state shared by every sweep-based operation: the arena
// of edge records, the active list, and the discovery queue. tessellate,
// reduce and the dual-winding intersector all drive the same engine loop
// (spec §4.8: "identical event/sweep loop as §4.6 but the emission step
// differs"); only the per-batch emission logic differs between them.
type engine struct {
	edges  *arena.Arena[edge]
	active *activeList
	q      *queue
	rule   plane.FillRule

	// stopped holds arena indices of edges that ended in the current batch
	// with an open deferred trapezoid, which a fresh collinear edge starting
	// in the same batch may adopt (spec §3 "Sweep Line", §4.6 Stop/Start
	// dispatch). Entries not adopted are emitted and cleared by flushStopped
	// at the start of the next batch.
	stopped []int32

	// trace, when non-nil, is called once per processed batch with a
	// one-line diagnostic. It never affects output.
	trace func(string)
}

// flushStopped emits the deferred trapezoid of every edge still in stopped,
// down to that edge's own bottom — none of them was claimed by a collinear
// continuation at their stop point — and empties the list (spec §4.6 step
// 1, "For each edge in stopped with a pending deferred trapezoid, emit it
// down to its bottom; clear stopped", reused verbatim for the exhaustion
// step).
func (eng *engine) flushStopped(out *[]plane.Trapezoid) {
	for _, idx := range eng.stopped {
		e := eng.edges.Get(idx)
		if e.open {
			right := eng.edges.Get(e.rightEdge)
			*out = append(*out, plane.Trapezoid{Top: e.topY, Bottom: e.bot, Left: e.line, Right: right.line})
			e.open = false
		}
	}
	eng.stopped = eng.stopped[:0]
}

// adoptStoppedContinuation looks up the stopped list for an edge collinear
// with idx that ended at or before idx's top, adopts its deferred
// trapezoid onto idx, and unlinks the stopped entry (spec §4.6 Start: "Look
// up the stopped list for a collinear continuation (top ≤ stopped.bottom
// and collinear); if found, adopt its deferred trapezoid and unlink the
// stopped entry").
func (eng *engine) adoptStoppedContinuation(idx int32) {
	rec := eng.edges.Get(idx)
	for i, sidx := range eng.stopped {
		se := eng.edges.Get(sidx)
		if se.open && rec.top <= se.bot && rec.collinearWith(sidx, se) {
			rec.open = true
			rec.topY = se.topY
			rec.rightEdge = se.rightEdge
			se.open = false
			eng.stopped = append(eng.stopped[:i], eng.stopped[i+1:]...)
			return
		}
	}
}

// traceBatch reports one line of diagnostic text for a processed batch, if
// a trace callback was installed.
func (eng *engine) traceBatch(batch []event) {
	if eng.trace == nil || len(batch) == 0 {
		return
	}
	eng.trace(fmt.Sprintf("sweep: y=%d events=%d", batch[0].pt.Y, len(batch)))
}

// openEntry records one currently-open deferred trapezoid, keyed by its
// left-bounding edge (spec §4.6 "deferred trapezoid coalescing").
type openEntry struct {
	left, right int32
	topY        int32
}

// buildEdges allocates arena-backed edge records for every edge of p and
// returns the arena together with the (as yet unsorted) Start events they
// generate. src tags the edges for the dual sweep (§4.9); single-winding
// operations pass sourceNone.
func buildEdges(p *plane.Polygon, src source, maxCapacity int) (*arena.Arena[edge], []event, error) {
	ar := arena.New[edge]()
	ar.MaxCapacity = int32(maxCapacity)
	starts := make([]event, 0, len(p.Edges))
	var seq uint64
	for _, in := range p.Edges {
		idx, rec, err := ar.Alloc()
		if err != nil {
			return nil, nil, err
		}
		*rec = newEdge(in.Line, in.Top, in.Bottom, in.Dir, src)
		pt := plane.Point{X: xAtY(in.Line, in.Top), Y: in.Top}
		starts = append(starts, event{pt: pt, k: kindStart, seq: seq, edge: idx})
		seq++
	}
	return ar, starts, nil
}

// insideUnderRule applies the fill rule to a running winding count (spec
// §4.7).
func insideUnderRule(rule plane.FillRule, count int) bool {
	if rule == plane.EvenOdd {
		return count%2 != 0
	}
	return count != 0
}

// insertEdge splices idx into the active list at the position consistent
// with x order at idx's top y, scanning from the head of the list. This
// reference engine always starts the scan from the head rather than from
// a caller-supplied locality hint; activeList's InsertBefore/InsertAfter
// still expose the hint-based O(1) splice for a caller that has one.
func (eng *engine) insertEdge(idx int32) {
	if eng.active.Empty() {
		eng.active.InsertAfter(noIndex, idx)
		return
	}
	line := eng.edges.Get(idx).line
	y := eng.edges.Get(idx).top
	cur := eng.active.Head()
	for {
		curLine := eng.edges.Get(cur).line
		if xAtYCompare(line, curLine, y) < 0 {
			eng.active.InsertBefore(cur, idx)
			return
		}
		n := eng.active.Next(cur)
		if n == noIndex {
			eng.active.InsertAfter(cur, idx)
			return
		}
		cur = n
	}
}

// scheduleIntersection checks whether edges a and b (now adjacent in the
// active list) cross at a point strictly below y and within both edges'
// own active y-ranges, pushing a discovered Intersection event if so (spec
// §4.4, §4.6). intersectLines already rejects crossings outside either
// edge's [top, bot] clamp, so a stale or out-of-range crossing is silently
// ignored, as is a crossing already passed.
func (eng *engine) scheduleIntersection(a, b int32, y int32) error {
	ea, eb := eng.edges.Get(a), eng.edges.Get(b)
	pt, xTag, yTag, err := intersectLines(ea, eb)
	if err != nil || pt.Y <= y {
		return nil
	}
	return eng.q.PushDiscovered(event{pt: pt, k: kindIntersection, seq: eng.q.nextSeqNum(), edge: a, other: b, xTag: xTag, yTag: yTag})
}

// popBatch drains every event sharing the queue's next point, since all
// topology changes at one sweep point must be applied together before the
// active list is rescanned (spec §4.2: events "at the same point" form one
// atomic step). Returns a nil batch when the queue is empty.
func (eng *engine) popBatch() ([]event, bool) {
	first, ok := eng.q.Peek()
	if !ok {
		return nil, false
	}
	pt := first.pt
	var batch []event
	for {
		e, ok := eng.q.Peek()
		if !ok || e.pt != pt {
			break
		}
		batch = append(batch, eng.q.Pop())
	}
	return batch, true
}

// processBatch applies one sweep point's Stop, Intersection and Start
// events (in that priority order) to the active list, then rescans the
// whole list to close deferred trapezoids whose bounding edges or
// inside/outside state changed and open new ones, appending finished
// trapezoids to *out. Gaps whose left/right edge pair and winding state
// persist unchanged across the batch stay open (spec §4.6 coalescing).
func (eng *engine) processBatch(batch []event, out *[]plane.Trapezoid) error {
	y := batch[0].pt.Y

	eng.flushStopped(out)

	var oldOpen []openEntry
	for cur := eng.active.Head(); cur != noIndex; cur = eng.active.Next(cur) {
		e := eng.edges.Get(cur)
		if e.open {
			oldOpen = append(oldOpen, openEntry{left: cur, right: e.rightEdge, topY: e.topY})
		}
	}

	for _, ev := range batch {
		if ev.k != kindStop {
			continue
		}
		e := eng.edges.Get(ev.edge)
		eng.active.Remove(ev.edge)
		if e.open {
			eng.stopped = append(eng.stopped, ev.edge)
		}
	}
	for _, ev := range batch {
		if ev.k != kindIntersection {
			continue
		}
		a, b := ev.edge, ev.other
		switch {
		case eng.active.Next(a) == b:
			eng.active.SwapWithNext(a)
		case eng.active.Next(b) == a:
			eng.active.SwapWithNext(b)
		}
	}
	for _, ev := range batch {
		if ev.k != kindStart {
			continue
		}
		eng.insertEdge(ev.edge)
		eng.adoptStoppedContinuation(ev.edge)
		rec := eng.edges.Get(ev.edge)
		if rec.open {
			oldOpen = append(oldOpen, openEntry{left: ev.edge, right: rec.rightEdge, topY: rec.topY})
		}
		stopPt := plane.Point{X: xAtY(rec.line, rec.bot), Y: rec.bot}
		if err := eng.q.PushDiscovered(event{pt: stopPt, k: kindStop, seq: eng.q.nextSeqNum(), edge: ev.edge}); err != nil {
			return err
		}
	}

	oldSet := make(map[int32]int32, len(oldOpen))
	for _, o := range oldOpen {
		oldSet[o.left] = o.right
	}
	matched := make(map[int32]bool, len(oldOpen))
	var newOpen []openEntry

	count := 0
	for cur := eng.active.Head(); cur != noIndex; {
		e := eng.edges.Get(cur)
		next := eng.active.Next(cur)
		count += int(e.windingDelta)
		if next != noIndex {
			if insideUnderRule(eng.rule, count) {
				newOpen = append(newOpen, openEntry{left: cur, right: next})
				if r, ok := oldSet[cur]; ok {
					switch {
					case r == next:
						matched[cur] = true
					case eng.edges.Get(r).collinearWith(next, eng.edges.Get(next)):
						// §4.7: right differs but is collinear with the
						// previous right — swap it in without emitting.
						matched[cur] = true
						e.rightEdge = next
					}
				}
			}
			if err := eng.scheduleIntersection(cur, next, y); err != nil {
				return err
			}
		}
		cur = next
	}

	for _, o := range oldOpen {
		if matched[o.left] {
			continue
		}
		left := eng.edges.Get(o.left)
		if !left.open {
			// already closed out by a collinear continuation adopted via
			// the stopped list.
			continue
		}
		if o.topY < y {
			right := eng.edges.Get(o.right)
			*out = append(*out, plane.Trapezoid{Top: o.topY, Bottom: y, Left: left.line, Right: right.line})
		}
		left.open = false
	}
	for _, n := range newOpen {
		if matched[n.left] {
			continue
		}
		e := eng.edges.Get(n.left)
		if e.open {
			// adopted a stopped edge's deferred trapezoid; keep its topY.
			e.rightEdge = n.right
			continue
		}
		e.open = true
		e.topY = y
		e.rightEdge = n.right
	}
	return nil
}

// Tessellate sweeps p's edges under rule and returns the maximal
// vertically-monotone trapezoids covering the filled region (spec §4.6).
// A polygon with no edges yields an empty, non-nil-error result. maxCapacity
// bounds the event heap and edge arena (0 means unbounded); exceeding it
// surfaces as the arena/heap packages' own out-of-memory error. trace, if
// non-nil, receives one diagnostic line per processed sweep batch.
func Tessellate(p *plane.Polygon, rule plane.FillRule, maxCapacity int, trace func(string)) ([]plane.Trapezoid, error) {
	if len(p.Edges) == 0 {
		return nil, nil
	}

	ar, starts, err := buildEdges(p, sourceNone, maxCapacity)
	if err != nil {
		return nil, err
	}
	eng := &engine{
		edges:  ar,
		active: newActiveList(ar),
		q:      newQueue(starts),
		rule:   rule,
		trace:  trace,
	}
	eng.q.heap.MaxCapacity = maxCapacity

	var out []plane.Trapezoid
	for {
		batch, ok := eng.popBatch()
		if !ok {
			break
		}
		eng.traceBatch(batch)
		if err := eng.processBatch(batch, &out); err != nil {
			return nil, err
		}
	}
	eng.flushStopped(&out)
	return out, nil
}
