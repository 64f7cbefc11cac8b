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
	"errors"

	"seehuhn.de/go/tessellate/internal/fixedmath"
	"seehuhn.de/go/tessellate/plane"
)

// ErrParallel is returned by intersectLines when the two supporting lines
// are parallel (den == 0) or rounding produces a degenerate division (spec
// §4.4: "Fails with Parallel when den = 0 or when rounding yields a
// degenerate division").
var ErrParallel = errors.New("sweep: lines are parallel or do not properly intersect")

// approxTag is the three-valued rounding-direction tag spec §4.9 requires
// for the dual-winding intersector's event-ordering tie-break: approxExact
// when a rounded ordinate landed exactly on the true rational intersection
// value, approxExcess when the rounded value is larger than the true
// value, approxDefault when it is smaller. compareEvents, shared by every
// sweep, uses the tags to order same-integer-point crossings the way the
// underlying continuous crossings were actually ordered. containedIn and
// containedInY take the tag as a parameter but do not consult it, so their
// containment test is always strict.
type approxTag int8

const (
	approxDefault approxTag = -1
	approxExact   approxTag = 0
	approxExcess  approxTag = 1
)

// intersectLines computes the point at which edges a and b's supporting
// lines cross, if that point lies strictly within both edges' own active
// y-ranges (a.top/a.bot, b.top/b.bot) — which may be narrower than the
// supporting lines' full extent — (spec §4.4). Endpoints count as
// "outside" (no phantom intersections at shared vertices).
func intersectLines(a, b *edge) (pt plane.Point, xTag, yTag approxTag, err error) {
	aLine, bLine := a.line, b.line
	adx, ady := aLine.DX(), aLine.DY()
	bdx, bdy := bLine.DX(), bLine.DY()

	den := fixedmath.Det(adx, ady, bdx, bdy)
	if den == 0 {
		return plane.Point{}, approxExact, approxExact, ErrParallel
	}

	// Parametrize a's line as a.P1 + t*(adx,ady), b's as b.P1 + s*(bdx,bdy).
	// t = det(b.P1-a.P1, b dir) / den ; s = det(b.P1-a.P1, a dir) / den
	// Reject early via the signs of the numerators vs den, testing t,s in
	// (0,1) without forming the quotient (spec step 2).
	ex := int64(bLine.P1.X) - int64(aLine.P1.X)
	ey := int64(bLine.P1.Y) - int64(aLine.P1.Y)

	tNum := ex*int64(bdy) - ey*int64(bdx)
	sNum := ex*int64(ady) - ey*int64(adx)

	if !strictlyBetween0And1(tNum, den) || !strictlyBetween0And1(sNum, den) {
		return plane.Point{}, 0, 0, ErrParallel
	}

	// x = (det(b.P1,b.P2)*adx - det(a.P1,a.P2)*bdx) / den and
	// y = (det(b.P1,b.P2)*ady - det(a.P1,a.P2)*bdy) / den (Cramer's rule on
	// the line equations), computed as 96-by-64 divisions of 128-bit
	// numerators (spec step 3).
	aDet := fixedmath.Det(aLine.P1.X, aLine.P1.Y, aLine.P2.X, aLine.P2.Y)
	bDet := fixedmath.Det(bLine.P1.X, bLine.P1.Y, bLine.P2.X, bLine.P2.Y)
	xNum := fixedmath.Mul64x32_128(bDet, adx).
		Sub(fixedmath.Mul64x32_128(aDet, bdx))
	yNum := fixedmath.Mul64x32_128(bDet, ady).
		Sub(fixedmath.Mul64x32_128(aDet, bdy))

	x, xt, ok := roundToNearest(xNum, den)
	if !ok {
		return plane.Point{}, 0, 0, ErrParallel
	}
	y, yt, ok := roundToNearest(yNum, den)
	if !ok {
		return plane.Point{}, 0, 0, ErrParallel
	}

	pt = plane.Point{X: x, Y: y}

	if !containedIn(pt, xt, aLine, a.top, a.bot) || !containedIn(pt, xt, bLine, b.top, b.bot) {
		return plane.Point{}, 0, 0, ErrParallel
	}
	if !containedInY(pt, yt, a.top, a.bot) || !containedInY(pt, yt, b.top, b.bot) {
		return plane.Point{}, 0, 0, ErrParallel
	}

	return pt, xt, yt, nil
}

// strictlyBetween0And1 reports whether num/den lies strictly in (0,1),
// given a nonzero den (spec §4.4 step 2: "two signed 64-bit comparisons
// ... both branches depend on the sign of den").
func strictlyBetween0And1(num, den int64) bool {
	if den > 0 {
		return num > 0 && num < den
	}
	return num < 0 && num > den
}

// roundToNearest computes round(num/den) with half-away-from-zero
// rounding in the direction of the quotient's sign (spec §4.4 step 3): the
// 96/64 division gives quotient+remainder; the remainder, doubled, is
// compared against den to decide whether to round away from zero. If the
// doubled remainder exactly equals |den|, the division is degenerate and
// ok is false (spec: "report no intersection").
//
// tag reports which way the returned result sits relative to the true
// (unrounded) rational value num/den: the final remainder r (r itself when
// no adjustment was made, or r∓den after rounding away from zero) has
// result + r/den == num/den, so r/den > 0 means the true value is larger
// than result (approxDefault) and r/den < 0 means it is smaller
// (approxExcess) — same-sign(r, den) decides which (spec §4.9's
// three-valued tag).
func roundToNearest(num fixedmath.Int128, den int64) (result int32, tag approxTag, ok bool) {
	q, r := fixedmath.Div96_64(num, den)
	if r == 0 {
		return int32(q), approxExact, true
	}

	absR := r
	if absR < 0 {
		absR = -absR
	}
	absDen := den
	if absDen < 0 {
		absDen = -absDen
	}
	doubled := absR * 2

	if doubled == absDen {
		return 0, approxExact, false
	}
	if doubled > absDen {
		// Round away from zero in the direction of the true quotient's
		// sign, i.e. in the direction remainder and denominator agree on.
		if (r < 0) == (den < 0) {
			q++
			r -= den
		} else {
			q--
			r += den
		}
	}

	tag = approxExcess
	if (r < 0) == (den < 0) {
		tag = approxDefault
	}
	return int32(q), tag, true
}

// containedIn checks the rounded point's x component is consistent with an
// edge whose supporting line is l and whose active range is [top, bot]: if
// pt.Y exactly matches top or bot, the point must not coincide with l's
// true x there, i.e. must not be that endpoint itself (spec §4.4 step 4,
// "the rounded point must lie in (edge.top, edge.bottom) ... Endpoints
// count as 'outside' to avoid phantom intersections at shared vertices").
// top and bot are the edge's own clamp, which may be narrower than l's full
// [l.P1.Y, l.P2.Y] extent (plane.Edge.Top/Bottom). Otherwise the x
// component carries no extra constraint here; containedInY decides whether
// pt.Y is strictly interior to the edge's range.
func containedIn(pt plane.Point, tag approxTag, l plane.Line, top, bot int32) bool {
	if pt == l.P1 || pt == l.P2 {
		return false
	}
	if pt.Y == top && pt.X == xAtY(l, top) {
		return false
	}
	if pt.Y == bot && pt.X == xAtY(l, bot) {
		return false
	}
	return true
}

// containedInY verifies pt.Y lies strictly inside (top, bot) — the edge's
// own active range, not its supporting line's full extent (spec §4.4 step
// 4: an edge may be clamped to a narrower range than its line; endpoints
// count as "outside").
func containedInY(pt plane.Point, tag approxTag, top, bot int32) bool {
	if pt.Y <= top || pt.Y >= bot {
		return false
	}
	return true
}
