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
	"seehuhn.de/go/tessellate/internal/arena"
	"seehuhn.de/go/tessellate/plane"
)

// dualEngine sweeps the combined edge set of two already-reduced polygons,
// keeping a two-slot winding vector per spec §4.9: each edge only perturbs
// the counter for its own source (A or B), and a point is inside the
// intersection iff w[A] ≠ 0 AND w[B] ≠ 0 — a plain nonzero test on both
// sides, since both inputs have already been brought to winding-rule form
// by Reduce before the dual sweep ever sees them. It reuses the single
// engine's arena, active list and queue machinery verbatim (§4.9: "reuses
// the tessellator's event/sweep loop").
type dualEngine struct {
	engine
}

// buildDualEdges merges a's and b's edges into one arena, tagging each
// with its source polygon, and returns the combined, as yet unsorted,
// Start events. a and b must already be in winding-rule (Reduce) form.
func buildDualEdges(a, b *plane.Polygon, maxCapacity int) (*arena.Arena[edge], []event, error) {
	ar := arena.New[edge]()
	ar.MaxCapacity = int32(maxCapacity)
	starts := make([]event, 0, len(a.Edges)+len(b.Edges))
	var seq uint64
	var buildErr error
	add := func(p *plane.Polygon, src source) {
		for _, in := range p.Edges {
			if buildErr != nil {
				return
			}
			idx, rec, err := ar.Alloc()
			if err != nil {
				buildErr = err
				return
			}
			*rec = newEdge(in.Line, in.Top, in.Bottom, in.Dir, src)
			pt := plane.Point{X: xAtY(in.Line, in.Top), Y: in.Top}
			starts = append(starts, event{pt: pt, k: kindStart, seq: seq, edge: idx})
			seq++
		}
	}
	add(a, sourceA)
	add(b, sourceB)
	if buildErr != nil {
		return nil, nil, buildErr
	}
	return ar, starts, nil
}

// processBatch applies one sweep point's events exactly as engine.processBatch
// does, but computes inside/outside using the two independent per-source
// winding counts instead of a single combined one, and labels emitted
// trapezoids' sides generically (the caller only needs the Left/Right
// Lines and Top/Bottom, not which source contributed them).
func (eng *dualEngine) processBatch(batch []event, out *[]plane.Trapezoid) error {
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

	countA, countB := 0, 0
	for cur := eng.active.Head(); cur != noIndex; {
		e := eng.edges.Get(cur)
		next := eng.active.Next(cur)
		switch e.source {
		case sourceA:
			countA += int(e.windingDelta)
		case sourceB:
			countB += int(e.windingDelta)
		}
		if next != noIndex {
			inside := countA != 0 && countB != 0
			if inside {
				newOpen = append(newOpen, openEntry{left: cur, right: next})
				if r, ok := oldSet[cur]; ok {
					switch {
					case r == next:
						matched[cur] = true
					case eng.edges.Get(r).collinearWith(next, eng.edges.Get(next)):
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
			e.rightEdge = n.right
			continue
		}
		e.open = true
		e.topY = y
		e.rightEdge = n.right
	}
	return nil
}

// Intersect sweeps a (under ruleA) and b (under ruleB) together and
// returns the edge soup of their intersection's boundary, in the same
// nonzero-winding form Reduce produces (spec §4.9). Each input is first
// reduced to winding-rule form under its own fill rule, so the dual sweep
// itself only ever needs a plain nonzero test on each side. Either input
// may be empty, in which case the result is empty with no error.
// maxCapacity bounds each reduction and the combined event heap and edge
// arena (0 means unbounded).
func Intersect(a *plane.Polygon, ruleA plane.FillRule, b *plane.Polygon, ruleB plane.FillRule, maxCapacity int, trace func(string)) (*plane.Polygon, error) {
	if len(a.Edges) == 0 || len(b.Edges) == 0 {
		return &plane.Polygon{}, nil
	}

	reducedA, err := Reduce(a, ruleA, maxCapacity, trace)
	if err != nil {
		return nil, err
	}
	reducedB, err := Reduce(b, ruleB, maxCapacity, trace)
	if err != nil {
		return nil, err
	}
	if len(reducedA.Edges) == 0 || len(reducedB.Edges) == 0 {
		return &plane.Polygon{}, nil
	}

	ar, starts, err := buildDualEdges(reducedA, reducedB, maxCapacity)
	if err != nil {
		return nil, err
	}
	eng := &dualEngine{
		engine: engine{
			edges:  ar,
			active: newActiveList(ar),
			q:      newQueue(starts),
			trace:  trace,
		},
	}
	eng.q.heap.MaxCapacity = maxCapacity

	var traps []plane.Trapezoid
	for {
		batch, ok := eng.popBatch()
		if !ok {
			break
		}
		eng.traceBatch(batch)
		if err := eng.processBatch(batch, &traps); err != nil {
			return nil, err
		}
	}
	eng.flushStopped(&traps)

	out := &plane.Polygon{}
	for _, t := range traps {
		out.AddEdge(plane.Edge{Line: t.Left, Top: t.Top, Bottom: t.Bottom, Dir: 1})
		out.AddEdge(plane.Edge{Line: t.Right, Top: t.Top, Bottom: t.Bottom, Dir: -1})
	}
	return out, nil
}
