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

// Package arena implements a typed, block-growing free-pool allocator for
// short-lived sweep objects (spec §4's Free-pool allocator; §9's redesign
// note: "a typed arena whose capacity doubles on exhaustion; all events are
// dropped together at sweep end — a natural fit for region-based
// allocation"). There is no per-object free; the whole arena is released
// at once when a sweep finishes, by dropping the Arena value.
package arena

import "errors"

// ErrOutOfMemory is returned by Alloc when the arena would need to grow
// past MaxCapacity.
var ErrOutOfMemory = errors.New("arena: out of memory")

const initialBlockSize = 256

// Arena allocates values of T in growing blocks, handing out stable
// indices rather than pointers (spec §9: arena-backed indices, not
// pointers, so the sweep line can be rebuilt safely without per-edge heap
// traffic).
type Arena[T any] struct {
	blocks      [][]T
	blockStart  []int32 // global index at which blocks[i] starts
	count       int32
	MaxCapacity int32 // 0 = unbounded
}

// New creates an empty Arena[T].
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Alloc reserves space for one more T, returning its stable index. The
// returned pointer is valid for the arena's lifetime (blocks are never
// moved, only appended).
func (a *Arena[T]) Alloc() (idx int32, val *T, err error) {
	if a.MaxCapacity > 0 && a.count >= a.MaxCapacity {
		return 0, nil, ErrOutOfMemory
	}
	if len(a.blocks) == 0 || a.count == a.blockStart[len(a.blocks)-1]+int32(len(a.blocks[len(a.blocks)-1])) {
		size := initialBlockSize
		if n := len(a.blocks); n > 0 {
			size = len(a.blocks[n-1]) * 2
		}
		a.blocks = append(a.blocks, make([]T, size))
		a.blockStart = append(a.blockStart, a.count)
	}
	idx = a.count
	a.count++
	last := a.blocks[len(a.blocks)-1]
	within := idx - a.blockStart[len(a.blockStart)-1]
	return idx, &last[within], nil
}

// Get returns a pointer to the value at idx. idx must have been returned
// by a prior Alloc on the same Arena.
func (a *Arena[T]) Get(idx int32) *T {
	// Blocks only ever grow, so the block containing idx is found by
	// scanning from the end; in steady state (repeated Alloc/Get within the
	// same, already-grown arena) this is almost always the last block.
	for i := len(a.blocks) - 1; i >= 0; i-- {
		if idx >= a.blockStart[i] {
			return &a.blocks[i][idx-a.blockStart[i]]
		}
	}
	panic("arena: Get on index never allocated")
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int32 { return a.count }

// Reset releases all allocated blocks at once, matching "all events are
// dropped together at sweep end" — the arena is ready for reuse afterward,
// growing from scratch on the next Alloc.
func (a *Arena[T]) Reset() {
	a.blocks = a.blocks[:0]
	a.blockStart = a.blockStart[:0]
	a.count = 0
}
