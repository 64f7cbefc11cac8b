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

// TestReduceIsIdempotent checks that reducing two overlapping squares, and
// then reducing that result again, gives the same covered area both times
// (reduction is idempotent).
func TestReduceIsIdempotent(t *testing.T) {
	var edges []plane.Edge
	edges = append(edges, square(0, 0, 10, 10)...)
	edges = append(edges, square(5, 0, 15, 10)...)
	p := &plane.Polygon{Edges: edges}

	once, err := Reduce(p, plane.Winding, 0, nil)
	require.NoError(t, err)

	twice, err := Reduce(once, plane.Winding, 0, nil)
	require.NoError(t, err)

	trapsOnce, err := Tessellate(once, plane.Winding, 0, nil)
	require.NoError(t, err)
	trapsTwice, err := Tessellate(twice, plane.Winding, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, totalArea(trapsOnce), totalArea(trapsTwice))
}

func TestReduceSelfIntersectingUsesWindingOutput(t *testing.T) {
	// A bowtie: two triangles sharing an X crossing, wound so that under
	// EvenOdd the two triangles are both filled as separate lobes.
	edges := []plane.Edge{
		{Line: plane.Line{P1: plane.Point{X: 0, Y: 0}, P2: plane.Point{X: 10, Y: 10}}, Top: 0, Bottom: 10, Dir: 1},
		// Stored top-down per the Line invariant (P1.Y <= P2.Y); Dir: -1
		// records that this edge's original traversal ran from (0,10) up to
		// (10,0).
		{Line: plane.Line{P1: plane.Point{X: 10, Y: 0}, P2: plane.Point{X: 0, Y: 10}}, Top: 0, Bottom: 10, Dir: -1},
	}
	p := &plane.Polygon{Edges: edges}

	out, err := Reduce(p, plane.EvenOdd, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out.Edges)

	// The reduced polygon is itself simple (no self-intersections): a
	// Winding-rule tessellation of it should reproduce the same area as an
	// EvenOdd tessellation of the original.
	original, err := Tessellate(p, plane.EvenOdd, 0, nil)
	require.NoError(t, err)
	reduced, err := Tessellate(out, plane.Winding, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, totalArea(original), totalArea(reduced))
}
