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
	"seehuhn.de/go/tessellate/internal/fixedmath"
	"seehuhn.de/go/tessellate/plane"
)

// xAtY returns the x coordinate of line l at height y, rounded down to an
// integer when the true value is fractional, using the minimum width
// needed (spec §4.3 "x-at-y compare of two edges"). y must
// lie within [l.P1.Y, l.P2.Y]. For a horizontal line (DY()==0) the line's
// own x (P1.X) is returned, since horizontal edges never reach this path
// except at their own endpoints.
func xAtY(l plane.Line, y int32) int32 {
	dy := l.DY()
	if dy == 0 {
		return l.P1.X
	}
	if y == l.P1.Y {
		return l.P1.X
	}
	if y == l.P2.Y {
		return l.P2.X
	}
	dx := l.DX()
	q := fixedmath.MulDivFloor(dx, y-l.P1.Y, int64(dy))
	return l.P1.X + int32(q)
}

// slopeCompare returns the sign of adx*bdy - bdx*ady (spec §4.3 "Slope
// compare"), using the documented fast paths before falling back to a
// widened product comparison.
func slopeCompare(a, b plane.Line) int {
	adx, ady := a.DX(), a.DY()
	bdx, bdy := b.DX(), b.DY()

	if adx == 0 {
		return sign32(-bdx)
	}
	if bdx == 0 {
		return sign32(adx)
	}
	if (adx < 0) != (bdx < 0) {
		return sign32(adx)
	}

	lhs := fixedmath.Mul32x32_64(adx, bdy)
	rhs := fixedmath.Mul32x32_64(bdx, ady)
	return sign64(lhs - rhs)
}

func sign32(x int32) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func sign64(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// xAtYCompare decides whether line a's x at height y is less than, equal
// to, or greater than line b's x at the same height (spec §4.3 "x-at-y
// compare of two edges"), returning -1/0/+1. If y coincides with an
// endpoint of either line, the exact endpoint x is used instead of the
// general formula.
func xAtYCompare(a, b plane.Line, y int32) int {
	ax, aExact := exactXAtEndpoint(a, y)
	bx, bExact := exactXAtEndpoint(b, y)
	if aExact && bExact {
		return cmpInt32(ax, bx)
	}
	if aExact {
		return cmpInt32(ax, xAtY(b, y))
	}
	if bExact {
		return cmpInt32(xAtY(a, y), bx)
	}

	// Bounding-box fast path: if the x-ranges of the two lines over their
	// full extent are disjoint, the order at any shared y is decided by
	// the box order.
	aLo, aHi := orderedX(a)
	bLo, bHi := orderedX(b)
	if aHi < bLo {
		return -1
	}
	if bHi < aLo {
		return 1
	}

	adx, ady := a.DX(), a.DY()
	bdx, bdy := b.DX(), b.DY()
	ax0 := a.P1.X
	bx0 := b.P1.X

	if adx == 0 || bdx == 0 || ax0 == bx0 {
		// One or both lines are vertical, or they start at the same x:
		// the surviving 32-bit terms decide it directly.
		return cmpInt32(xAtY(a, y), xAtY(b, y))
	}

	// General case: reduce to
	//   ady*bdy*(ax0-bx0) ? (y-by0)*bdx*ady - (y-ay0)*adx*bdy
	// both sides widened to 128 bits since ady, bdy, (ax0-bx0) and the two
	// subtracted 96-bit-ish terms can each approach the full 32-bit range.
	// y and both endpoints are bounded by plane.MaxCoord (<2^30), so
	// y-ay0 and y-by0 always fit in int32.
	dxDiff := ax0 - bx0
	left := wideMul3(ady, bdy, dxDiff)

	yMinusBY0 := y - b.P1.Y
	yMinusAY0 := y - a.P1.Y
	right1 := wideMul3(bdx, yMinusBY0, ady)
	right2 := wideMul3(adx, yMinusAY0, bdy)
	right := right1.Sub(right2)

	return left.Cmp(right)
}

// wideMul3 computes the exact signed product p*q*r as an Int128, where p,
// q are int32 and r is int32, by first widening p*q to int64 (exact) and
// then widening that by r.
func wideMul3(p, q, r int32) fixedmath.Int128 {
	pq := fixedmath.Mul32x32_64(p, q)
	return fixedmath.Mul64x32_128(pq, r)
}

// exactXAtEndpoint returns (x, true) if y exactly matches one of line l's
// endpoint y-coordinates, else (0, false).
func exactXAtEndpoint(l plane.Line, y int32) (int32, bool) {
	if y == l.P1.Y {
		return l.P1.X, true
	}
	if y == l.P2.Y {
		return l.P2.X, true
	}
	return 0, false
}

func orderedX(l plane.Line) (lo, hi int32) {
	if l.P1.X <= l.P2.X {
		return l.P1.X, l.P2.X
	}
	return l.P2.X, l.P1.X
}

func cmpInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
