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

package fixedmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDet(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d int32
		want       int64
	}{
		{"zero", 0, 0, 0, 0, 0},
		{"identity", 1, 0, 0, 1, 1},
		{"swap", 0, 1, 1, 0, -1},
		{"overflow-safe", math.MaxInt32, math.MaxInt32, -math.MaxInt32, math.MaxInt32,
			int64(math.MaxInt32)*int64(math.MaxInt32) - int64(math.MaxInt32)*int64(-math.MaxInt32)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Det(tc.a, tc.b, tc.c, tc.d))
		})
	}
}

func TestMul64x32_128RoundTrip(t *testing.T) {
	cases := []struct {
		a    int64
		b    int32
		hi   int64
		lo   uint64
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 1},
		{-1, 1, -1, ^uint64(0)},
		{math.MaxInt32, math.MaxInt32, 0, uint64(math.MaxInt32) * uint64(math.MaxInt32)},
		{-math.MaxInt32, math.MaxInt32, -1, ^(uint64(math.MaxInt32)*uint64(math.MaxInt32) - 1)},
	}
	for _, tc := range cases {
		got := Mul64x32_128(tc.a, tc.b)
		assert.Equal(t, tc.hi, got.Hi, "hi for %d*%d", tc.a, tc.b)
		assert.Equal(t, tc.lo, got.Lo, "lo for %d*%d", tc.a, tc.b)
	}
}

func TestInt128AddSubNeg(t *testing.T) {
	a := Mul64x32_128(1<<40, 1<<20)
	b := Mul64x32_128(1, 1)
	sum := a.Add(b)
	diff := sum.Sub(b)
	assert.Equal(t, 0, diff.Cmp(a))

	negA := a.Neg()
	assert.Equal(t, -1, negA.Sign())
	assert.Equal(t, 1, a.Sign())
	assert.Equal(t, 0, Int128{}.Sign())
}

func TestInt128Cmp(t *testing.T) {
	small := Mul64x32_128(1, 1)
	big := Mul64x32_128(1<<40, 1<<20)
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(small))
}

func TestDiv96_64(t *testing.T) {
	cases := []struct {
		name    string
		n       Int128
		den     int64
		wantQ   int64
		wantR   int64
	}{
		{"exact positive", Mul64x32_128(100, 1), 10, 10, 0},
		{"truncates toward zero", Mul64x32_128(7, 1), 2, 3, 1},
		{"negative numerator", Mul64x32_128(-7, 1), 2, -3, -1},
		{"negative denominator", Mul64x32_128(7, 1), -2, -3, 1},
		{"both negative", Mul64x32_128(-7, 1), -2, 3, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, r := Div96_64(tc.n, tc.den)
			assert.Equal(t, tc.wantQ, q)
			assert.Equal(t, tc.wantR, r)
		})
	}
}

func TestMulDivFloorRoundsTowardNegativeInfinity(t *testing.T) {
	// 7/2 = 3 remainder 1: floor matches truncation for positive operands.
	require.Equal(t, int64(3), MulDivFloor(7, 1, 2))
	// -7/2 truncates to -3 but floors to -4.
	require.Equal(t, int64(-4), MulDivFloor(-7, 1, 2))
	require.Equal(t, int64(-4), MulDivFloor(7, -1, 2))
	require.Equal(t, int64(3), MulDivFloor(-7, -1, 2))
}
