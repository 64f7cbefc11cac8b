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

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocGetAcrossBlockBoundaries(t *testing.T) {
	a := New[int]()
	// initialBlockSize*3 + a bit forces several block-growth events, which
	// is exactly where an off-by-one in the block/offset accounting would
	// show up as Get returning the wrong cell.
	n := initialBlockSize*3 + 17
	idxs := make([]int32, n)
	for i := 0; i < n; i++ {
		idx, val, err := a.Alloc()
		require.NoError(t, err)
		*val = i * 7
		idxs[i] = idx
	}
	require.Equal(t, int32(n), a.Len())
	for i, idx := range idxs {
		require.Equal(t, i*7, *a.Get(idx), "index %d", i)
	}
}

func TestAllocRespectsMaxCapacity(t *testing.T) {
	a := New[int]()
	a.MaxCapacity = 3
	for i := 0; i < 3; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}
	_, _, err := a.Alloc()
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestReset(t *testing.T) {
	a := New[int]()
	for i := 0; i < 10; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}
	a.Reset()
	require.Equal(t, int32(0), a.Len())
	idx, val, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, int32(0), idx)
	*val = 42
	require.Equal(t, 42, *a.Get(0))
}
