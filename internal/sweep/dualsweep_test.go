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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/tessellate/plane"
)

func TestIntersectOverlappingSquares(t *testing.T) {
	a := &plane.Polygon{Edges: square(0, 0, 10, 10)}
	b := &plane.Polygon{Edges: square(5, 5, 15, 15)}

	out, err := Intersect(a, plane.Winding, b, plane.Winding, 0, nil)
	require.NoError(t, err)

	traps, err := Tessellate(out, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(25), totalArea(traps)) // [5,10]x[5,10]
}

func TestIntersectDisjointSquaresIsEmpty(t *testing.T) {
	a := &plane.Polygon{Edges: square(0, 0, 10, 10)}
	b := &plane.Polygon{Edges: square(20, 20, 30, 30)}

	out, err := Intersect(a, plane.Winding, b, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, out.Edges)
}

func TestIntersectEmptyInputIsEmpty(t *testing.T) {
	a := &plane.Polygon{}
	b := &plane.Polygon{Edges: square(0, 0, 10, 10)}

	out, err := Intersect(a, plane.Winding, b, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, out.Edges)
}

func TestIntersectContainedSquareEqualsSmaller(t *testing.T) {
	a := &plane.Polygon{Edges: square(0, 0, 10, 10)}
	b := &plane.Polygon{Edges: square(2, 2, 5, 5)}

	out, err := Intersect(a, plane.Winding, b, plane.Winding, 0, nil)
	require.NoError(t, err)

	traps, err := Tessellate(out, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), totalArea(traps)) // [2,5]x[2,5]
}

func TestIntersectDifferentRulesPerSide(t *testing.T) {
	// a has a hole under EvenOdd; b fully covers the hole. The intersection
	// must still exclude a's hole.
	var aEdges []plane.Edge
	aEdges = append(aEdges, square(0, 0, 10, 10)...)
	aEdges = append(aEdges, square(3, 3, 7, 7)...)
	a := &plane.Polygon{Edges: aEdges}
	b := &plane.Polygon{Edges: square(0, 0, 10, 10)}

	out, err := Intersect(a, plane.EvenOdd, b, plane.Winding, 0, nil)
	require.NoError(t, err)
	traps, err := Tessellate(out, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100-16), totalArea(traps)) // 10x10 minus the 4x4 hole
}
