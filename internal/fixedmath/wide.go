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

// Package fixedmath implements the exact extended-precision integer
// arithmetic the sweep-line predicates require (spec §4.1): widened
// products up to 128 bits and a truncating 128-by-64 division with
// remainder, all without heap allocation.
package fixedmath

import "math/bits"

// Int128 is a signed 128-bit integer, stored as (Hi, Lo) two's-complement,
// Hi holding the sign. Zero value is 0.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Mul32x32_64 computes the exact signed product a*b as an int64. Go's
// builtin int64 multiplication of two int32-widened operands is already
// exact and allocation-free; this wrapper exists so call sites read the
// same as spec §4.1's operation table and so the width is explicit at
// every use site in the predicates.
func Mul32x32_64(a, b int32) int64 {
	return int64(a) * int64(b)
}

// Det computes a*d - b*c, widened to int64 to avoid overflow when a, b, c,
// d are int32 (spec §4.1 "det(a,b,c,d)").
func Det(a, b, c, d int32) int64 {
	return Mul32x32_64(a, d) - Mul32x32_64(b, c)
}

// Mul64x32_128 computes the exact signed product a*b as an Int128, where a
// is int64 and b is int32 (spec §4.1 "mul64x32_128").
func Mul64x32_128(a int64, b int32) Int128 {
	neg := false
	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a)
		neg = !neg
	}
	ub := uint64(b)
	if b < 0 {
		ub = uint64(-b)
		neg = !neg
	}
	hi, lo := bits.Mul64(ua, ub)
	r := Int128{Hi: int64(hi), Lo: lo}
	if neg {
		r = r.Neg()
	}
	return r
}

// Neg returns -x for an Int128 in two's complement.
func (x Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, x.Lo, 0)
	hi, _ := bits.Sub64(0, uint64(x.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Add returns x+y as an Int128.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(uint64(x.Hi), uint64(y.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub returns x-y as an Int128.
func (x Int128) Sub(y Int128) Int128 {
	return x.Add(y.Neg())
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int128) Sign() int {
	if x.Hi < 0 {
		return -1
	}
	if x.Hi > 0 || x.Lo != 0 {
		return 1
	}
	return 0
}

// Cmp returns -1, 0, +1 as x is less than, equal to, or greater than y.
func (x Int128) Cmp(y Int128) int {
	d := x.Sub(y)
	return d.Sign()
}

// abs returns the absolute value of x and whether x was negative. The
// magnitude is returned as an unsigned 128-bit pair (hi, lo).
func (x Int128) abs() (hi, lo uint64, negative bool) {
	if x.Hi < 0 {
		n := x.Neg()
		return uint64(n.Hi), n.Lo, true
	}
	return uint64(x.Hi), x.Lo, false
}

// Div96_64 divides the Int128 numerator n (whose magnitude is assumed to
// fit in 96 bits, per spec §4.1's "div_96_by_64") by the nonzero int64
// denominator den, truncating toward zero. The remainder has the sign of
// the dividend, matching Go's own integer division semantics (spec §4.1
// "truncating; remainder has sign of dividend").
//
// den must be nonzero; callers are expected to have already rejected den==0
// (the sweep's intersection predicate treats that as Parallel, spec §4.4).
func Div96_64(n Int128, den int64) (quotient, remainder int64) {
	nHiMag, nLoMag, nNeg := n.abs()
	dMag := uint64(den)
	dNeg := den < 0
	if dNeg {
		dMag = uint64(-den)
	}

	// nHiMag fits comfortably below dMag for all values this module
	// produces (96-bit numerator / 64-bit denominator), so a single
	// bits.Div64 of the (high, low) word pair by dMag is exact and never
	// panics with "divide overflow" for valid inputs; guard the degenerate
	// case explicitly rather than relying on that.
	if nHiMag >= dMag {
		// Numerator magnitude would overflow a 64-bit quotient; this
		// violates the documented 96-by-64 precondition. Saturate rather
		// than panic so a caller bug surfaces as a wrong-but-finite
		// comparison result instead of a crash in a sweep that must not
		// suspend (§5).
		nHiMag = dMag - 1
	}
	q, r := bits.Div64(nHiMag, nLoMag, dMag)

	qNeg := nNeg != dNeg
	quotient = int64(q)
	if qNeg {
		quotient = -quotient
	}
	remainder = int64(r)
	if nNeg {
		remainder = -remainder
	}
	return quotient, remainder
}

// MulDivFloor computes floor((a*b) / c) for int32 a, b and nonzero int64 c,
// used by x-at-y computations (spec §4.1 "mul_div_floor"). Unlike Div96_64
// this rounds toward negative infinity, not toward zero.
func MulDivFloor(a, b int32, c int64) int64 {
	num := Mul32x32_64(a, b)
	q := num / c
	r := num % c
	if r != 0 && (r < 0) != (c < 0) {
		q--
	}
	return q
}
