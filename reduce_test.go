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

func TestReducePentagramIsIdempotent(t *testing.T) {
	poly := pathToPolygon(fivePointStarPath())

	once, err := Reduce(poly, EvenOdd)
	require.NoError(t, err)
	twice, err := Reduce(once, Winding)
	require.NoError(t, err)

	trapsOnce, err := Tessellate(once, Winding)
	require.NoError(t, err)
	trapsTwice, err := Tessellate(twice, Winding)
	require.NoError(t, err)
	assert.Equal(t, trapArea(trapsOnce), trapArea(trapsTwice))
}

func TestReduceRespectsMaxCapacity(t *testing.T) {
	_, err := Reduce(squarePolygon(0, 0, 10, 10), Winding, WithMaxCapacity(1))
	assert.ErrorIs(t, err, ErrOutOfMemory)
}
