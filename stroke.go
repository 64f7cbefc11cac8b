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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// flattenedSubpath is one sub-path reduced to straight segments in user
// space, with its closedness recorded.
type flattenedSubpath struct {
	segs   []strokeSegment
	closed bool
	// degenerate holds the single point of a zero-length sub-path (no
	// segments survived newStrokeSegment's length check).
	degenerate vec.Vec2
	isPoint    bool
}

// flattenPath walks path's ops and groups them into flattenedSubpaths,
// mirroring seehuhn.de/go/raster.Rasterizer.flattenPath. Curves are not
// part of Path (already flattened by the caller into CmdLineTo runs).
func flattenPath(p *Path, sign float64) []flattenedSubpath {
	var out []flattenedSubpath
	var cur vec.Vec2
	var subStart vec.Vec2
	var segs []strokeSegment
	inSub := false

	flush := func(closed bool) {
		if !inSub {
			return
		}
		if len(segs) == 0 {
			out = append(out, flattenedSubpath{degenerate: subStart, isPoint: true})
		} else {
			out = append(out, flattenedSubpath{segs: segs, closed: closed})
		}
		segs = nil
	}

	for _, op := range p.ops {
		switch op.Cmd {
		case CmdMoveTo:
			flush(false)
			cur = vec.Vec2{X: float64(op.Pts[0].X), Y: float64(op.Pts[0].Y)}
			subStart = cur
			inSub = true
		case CmdLineTo:
			if !inSub {
				continue
			}
			next := vec.Vec2{X: float64(op.Pts[0].X), Y: float64(op.Pts[0].Y)}
			if seg, ok := newStrokeSegment(cur, next, sign); ok {
				segs = append(segs, seg)
			}
			cur = next
		case CmdClose:
			if !inSub {
				continue
			}
			if seg, ok := newStrokeSegment(cur, subStart, sign); ok {
				segs = append(segs, seg)
			}
			cur = subStart
			flush(true)
			inSub = false
		}
	}
	if inSub {
		flush(false)
	}
	return out
}

// strokeSubpath appends one closed stroke-outline polygon for segs to pb,
// offset by the style's line width on both sides and capped or joined at
// segment boundaries. It follows the teacher's two-pass (+N forward, -N
// backward) construction, simplified to always emit join geometry on the
// outer (convex) side of each corner and the plain offset points of both
// adjacent segments on the inner side: any resulting overlap at reflex corners is harmless because the
// stroke polygon only ever feeds a nonzero-winding tessellation, which
// merges overlapping interior regions rather than double-counting them.
func strokeSubpath(pb *penBuilder, style *Style, segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := style.LineWidth / 2
	first, last := &segs[0], &segs[len(segs)-1]

	turn := func(prevT, nextT vec.Vec2) float64 {
		return prevT.X*nextT.Y - prevT.Y*nextT.X
	}

	if !closed {
		pb.addCap(style.Cap, first.A, first.T.Mul(-1), d)
	}

	// forward pass: +N side
	if closed {
		pb.add(first.A.Add(first.N.Mul(d)))
	}
	for i := range segs {
		seg := &segs[i]
		if !closed || i > 0 {
			pb.add(seg.A.Add(seg.N.Mul(d)))
		}
		pb.add(seg.B.Add(seg.N.Mul(d)))

		var next *strokeSegment
		switch {
		case i < len(segs)-1:
			next = &segs[i+1]
		case closed:
			next = first
		}
		if next == nil {
			continue
		}
		s := turn(seg.T, next.T)
		if math.Abs(s) < collinearityThreshold {
			continue
		}
		if s < 0 {
			pb.addJoin(style, seg.B, seg.T, next.T, d, true)
		}
		// s>0 (right turn): +N is the inner side, the plain offsets already
		// added above stand in for it.
	}

	if !closed {
		pb.addCap(style.Cap, last.B, last.T, d)
	} else {
		pb.add(first.A.Add(first.N.Mul(d)))
	}

	// backward pass: -N side
	start := len(segs) - 1
	if closed {
		pb.add(last.B.Sub(last.N.Mul(d)))
	}
	for i := start; i >= 0; i-- {
		seg := &segs[i]
		if !closed || i < start {
			pb.add(seg.B.Sub(seg.N.Mul(d)))
		}
		pb.add(seg.A.Sub(seg.N.Mul(d)))

		var prev *strokeSegment
		switch {
		case i > 0:
			prev = &segs[i-1]
		case closed:
			prev = last
		}
		if prev == nil {
			continue
		}
		s := turn(prev.T, seg.T)
		if math.Abs(s) < collinearityThreshold {
			continue
		}
		if s > 0 {
			pb.addJoin(style, seg.A, prev.T, seg.T, d, false)
		}
		// left turn (s<0): -N is the inner side, plain offsets stand in.
	}
	if closed {
		pb.add(last.B.Sub(last.N.Mul(d)))
	}
}

// addEdgesFromLoop converts a closed sequence of device-space points into
// edge pairs appended to out, tagging each with the sign of its vertical
// extent: an edge traversed downward in the loop's own order gets Dir=+1,
// one traversed upward gets Dir=-1. Horizontal and zero-length edges are
// silently dropped by Polygon.AddEdge.
func addEdgesFromLoop(out *Polygon, pts []Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		if a.Y == b.Y {
			continue
		}
		if a.Y < b.Y {
			out.AddEdge(Edge{Line: Line{P1: a, P2: b}, Top: a.Y, Bottom: b.Y, Dir: 1})
		} else {
			out.AddEdge(Edge{Line: Line{P1: b, P2: a}, Top: b.Y, Bottom: a.Y, Dir: -1})
		}
	}
}

// StrokeToPolygon expands path under style into a fixed-point polygon whose
// filled interior (under the nonzero winding rule) is the stroked outline:
// each sub-path's offset-by-half-width outline, with caps at open ends,
// joins at corners, and (if style specifies a dash pattern) split into
// independently capped on-segments first. ctm maps path's user-space
// coordinates to the device-space plane the returned polygon lives on;
// ctmInverse must be its exact inverse (checked via a round-trip sanity
// test, returning ErrSingularCTM on failure). tolerance bounds the
// deviation of arc (round cap/join) approximation in device space.
func StrokeToPolygon(path *Path, style *Style, ctm, ctmInverse matrix.Matrix, tolerance float64) (*Polygon, error) {
	if !ctmRoundTrips(ctm, ctmInverse) {
		return nil, ErrSingularCTM
	}

	sign := normalSign(ctm)
	subpaths := flattenPath(path, sign)

	out := &Polygon{}
	pb := &penBuilder{ctm: ctm, flatness: tolerance}

	emit := func(userPts []vec.Vec2) {
		if len(userPts) < 3 {
			return
		}
		devPts := make([]Point, len(userPts))
		for i, v := range userPts {
			devPts[i] = quantize(applyMatrix(ctm, v))
		}
		addEdgesFromLoop(out, devPts)
	}

	for _, sp := range subpaths {
		if sp.isPoint {
			if style.Cap == graphics.LineCapRound {
				pb.pts = pb.pts[:0]
				pb.addArc(sp.degenerate, style.LineWidth/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
				emit(pb.pts)
			}
			continue
		}
		if style.dashed() {
			for _, dashSeg := range dashSegments(style, sp.segs, sp.closed) {
				if len(dashSeg) == 1 && dashSeg[0].A == dashSeg[0].B {
					pb.pts = pb.pts[:0]
					seg := dashSeg[0]
					switch style.Cap {
					case graphics.LineCapRound:
						pb.addArc(seg.A, style.LineWidth/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
						emit(pb.pts)
					case graphics.LineCapSquare:
						addSquare(pb, seg.A, seg.T, style.LineWidth/2)
						emit(pb.pts)
					}
					continue
				}
				pb.pts = pb.pts[:0]
				strokeSubpath(pb, style, dashSeg, false)
				emit(pb.pts)
			}
			continue
		}
		pb.pts = pb.pts[:0]
		strokeSubpath(pb, style, sp.segs, sp.closed)
		emit(pb.pts)
	}

	return out, nil
}

// addSquare appends a square of side style width centered at center,
// oriented by tangent T, used for a zero-length dash under square caps.
func addSquare(pb *penBuilder, center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	pb.add(center.Add(T.Mul(d)).Add(N.Mul(d)))
	pb.add(center.Add(T.Mul(d)).Sub(N.Mul(d)))
	pb.add(center.Sub(T.Mul(d)).Sub(N.Mul(d)))
	pb.add(center.Sub(T.Mul(d)).Add(N.Mul(d)))
}

// ctmRoundTrips checks that ctmInverse actually undoes ctm on a small
// probe set, the sanity check StrokeToPolygon uses in place of computing
// and comparing a determinant directly (robust to the matrices having been
// composed from several transforms with accumulated rounding).
func ctmRoundTrips(ctm, ctmInverse matrix.Matrix) bool {
	const eps = 1e-6
	probes := [3]vec.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	for _, p := range probes {
		dev := applyMatrix(ctm, p)
		back := applyMatrix(ctmInverse, dev)
		if math.Abs(back.X-p.X) > eps || math.Abs(back.Y-p.Y) > eps {
			return false
		}
	}
	return true
}
