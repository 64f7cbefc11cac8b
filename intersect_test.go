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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectSquares(t *testing.T) {
	out, err := Intersect(squarePolygon(0, 0, 10, 10), Winding, squarePolygon(5, 5, 15, 15), Winding)
	require.NoError(t, err)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	assert.Equal(t, int64(25), trapArea(traps))
}

func TestIntersectTriangleWithEnclosingSquare(t *testing.T) {
	triangle := pathToPolygon(trianglePath(10, 50, 32, 10, 54, 50))
	bounds := squarePolygon(0, 0, 64, 64)

	out, err := Intersect(triangle, Winding, bounds, Winding)
	require.NoError(t, err)

	triangleArea, err := Tessellate(triangle, Winding)
	require.NoError(t, err)
	intersectionArea, err := Tessellate(out, Winding)
	require.NoError(t, err)

	// The triangle is entirely inside bounds, so intersecting with it must
	// not change the covered area.
	assert.Equal(t, trapArea(triangleArea), trapArea(intersectionArea))
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	out, err := Intersect(squarePolygon(0, 0, 10, 10), Winding, squarePolygon(100, 100, 110, 110), Winding)
	require.NoError(t, err)
	assert.Empty(t, out.Edges)
}

func TestIntersectRespectsMaxCapacity(t *testing.T) {
	_, err := Intersect(squarePolygon(0, 0, 10, 10), Winding, squarePolygon(5, 5, 15, 15), Winding, WithMaxCapacity(1))
	assert.ErrorIs(t, err, ErrOutOfMemory)
}
