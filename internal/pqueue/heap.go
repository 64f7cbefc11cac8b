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

// Package pqueue implements a 1-indexed binary min-heap over event
// pointers, with an embedded small-array fast path so the common case (a
// sweep whose worklist never grows past the inline capacity) allocates
// nothing beyond the heap's own fixed-size array (spec §4.2).
package pqueue

import "errors"

// ErrOutOfMemory is returned by Push when the heap would need to grow past
// MaxCapacity (spec §4.2 "Fails with OutOfMemory when growth cannot be
// satisfied").
var ErrOutOfMemory = errors.New("pqueue: out of memory")

// inlineCapacity is the embedded fast-path size: heaps smaller than this
// never touch the Go allocator at all.
const inlineCapacity = 1024

// Heap is a 1-indexed binary min-heap of *T, ordered by less. Index 0 of
// the backing array is always unused so that a node at index i has
// children at 2i and 2i+1 and parent at i/2.
//
// MaxCapacity, if nonzero, bounds how large the heap may grow; Push
// returns ErrOutOfMemory rather than growing past it. Zero means
// unbounded (bounded only by available memory, as for a normal Go slice).
type Heap[T any] struct {
	less        func(a, b *T) bool
	MaxCapacity int

	inline [inlineCapacity + 1]*T
	data   []*T // backing storage once grown past inlineCapacity; data[0] unused
	n      int  // number of elements currently stored
}

// New creates an empty Heap using less as the ordering predicate.
func New[T any](less func(a, b *T) bool) *Heap[T] {
	h := &Heap[T]{less: less}
	h.data = h.inline[:]
	return h
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return h.n }

// Push inserts v and restores the heap property by sifting up.
func (h *Heap[T]) Push(v *T) error {
	if h.n+1 >= len(h.data) {
		if err := h.grow(); err != nil {
			return err
		}
	}
	h.n++
	h.data[h.n] = v
	h.siftUp(h.n)
	return nil
}

// Pop removes and returns the minimum element. Pop panics if the heap is
// empty; callers must check Len() first (mirroring the teacher's
// precondition-checked internal helpers rather than returning a (v, ok)
// pair for a hot inner-loop call).
func (h *Heap[T]) Pop() *T {
	if h.n == 0 {
		panic("pqueue: Pop on empty heap")
	}
	top := h.data[1]
	last := h.data[h.n]
	h.data[h.n] = nil
	h.n--
	if h.n > 0 {
		h.data[1] = last
		h.siftDown(1)
	}
	return top
}

// Peek returns the minimum element without removing it. Peek panics if the
// heap is empty.
func (h *Heap[T]) Peek() *T {
	if h.n == 0 {
		panic("pqueue: Peek on empty heap")
	}
	return h.data[1]
}

func (h *Heap[T]) grow() error {
	newCap := len(h.data) * 2
	if newCap < 4 {
		newCap = 4
	}
	if h.MaxCapacity > 0 && newCap-1 > h.MaxCapacity {
		newCap = h.MaxCapacity + 1
		if newCap-1 <= h.n {
			return ErrOutOfMemory
		}
	}
	grown := make([]*T, newCap)
	copy(grown, h.data[:h.n+1])
	h.data = grown
	return nil
}

func (h *Heap[T]) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= h.n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right <= h.n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
