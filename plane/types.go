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

// Package plane holds the fixed-point data model shared by the sweep engine
// and the public tessellate package. It lives in its own package so that
// internal/sweep and the root package can both depend on it without an
// import cycle.
package plane

import "seehuhn.de/go/geom/rect"

// MaxCoord is the largest coordinate magnitude the sweep core accepts.
// Callers must clamp input coordinates so that |dx|, |dy| between any two
// points of an edge stay below 2^30; this leaves two guard bits so that
// every 32-bit difference the core computes (§4.1) fits in int32 with room
// for one more doubling during intermediate widening.
const MaxCoord = 1 << 30

// Point is a single point on the fixed-point plane. Both coordinates use the
// same implicit denominator as the caller's fixed-point convention; the core
// itself is agnostic to the denominator's value.
type Point struct {
	X, Y int32
}

// Compare orders points by Y ascending, ties broken by X ascending (§4.3
// "Point compare").
func (p Point) Compare(q Point) int {
	if p.Y != q.Y {
		if p.Y < q.Y {
			return -1
		}
		return 1
	}
	if p.X != q.X {
		if p.X < q.X {
			return -1
		}
		return 1
	}
	return 0
}

// Line is a directed segment with the sweep invariant P1.Y <= P2.Y.
type Line struct {
	P1, P2 Point
}

// DX returns P2.X - P1.X.
func (l Line) DX() int32 { return l.P2.X - l.P1.X }

// DY returns P2.Y - P1.Y. Always >= 0 for a correctly oriented Line.
func (l Line) DY() int32 { return l.P2.Y - l.P1.Y }

// FillRule selects the interior predicate used by the tessellator and
// reducer (§4.7).
type FillRule int

const (
	// Winding is the nonzero winding rule: a point is inside iff the signed
	// crossing count is nonzero.
	Winding FillRule = iota
	// EvenOdd is the even-odd rule: a point is inside iff the crossing
	// count is odd.
	EvenOdd
)

// Edge is an input edge: a Line plus the y-range over which it contributes
// to the winding count and its winding direction.
//
// Invariants (violations are silently dropped by Polygon.AddEdge, per
// spec.md §7 "DegenerateInput — not raised"):
//
//	Top >= Line.P1.Y
//	Bottom <= Line.P2.Y
//	Top < Bottom
//	Dir != 0
type Edge struct {
	Line        Line
	Top, Bottom int32
	Dir         int8 // +1 or -1
}

// valid reports whether e satisfies the input-edge invariants.
func (e Edge) valid() bool {
	return e.Top >= e.Line.P1.Y && e.Bottom <= e.Line.P2.Y &&
		e.Top < e.Bottom && e.Dir != 0 && e.Line.P1.Y <= e.Line.P2.Y
}

// Trapezoid is an output region bounded above and below by horizontal lines
// at Top/Bottom and on the sides by two Lines. A trapezoid with Top >=
// Bottom is degenerate and never constructed by this module's emitters.
type Trapezoid struct {
	Top, Bottom int32
	Left, Right Line
}

// Polygon is an ordered collection of input edges plus an optional
// axis-aligned clip box and a lazily-computed bounding box. Polygon is
// always caller-owned. The reducer and intersector do not mutate their
// inputs: each returns a newly allocated Polygon.
type Polygon struct {
	Edges []Edge

	// Clip optionally bounds the polygon to an axis-aligned device
	// rectangle. A nil Clip means unclipped.
	Clip *rect.Rect

	bbox      Rect
	bboxValid bool
}

// Rect is an axis-aligned integer bounding box on the fixed-point plane.
type Rect struct {
	XMin, YMin, XMax, YMax int32
}

// Empty reports whether r contains no area.
func (r Rect) Empty() bool { return r.XMin >= r.XMax || r.YMin >= r.YMax }

// Reset clears p's edges in place, keeping the underlying array's capacity,
// so that p can be refilled with AddEdge without reallocating. The reducer
// and intersector do not call it.
func (p *Polygon) Reset() {
	p.Edges = p.Edges[:0]
	p.bboxValid = false
}

// AddEdge appends e to p's edge list, silently dropping it if it violates
// the Edge invariants (spec.md §7: degenerate input is dropped, not an
// error).
func (p *Polygon) AddEdge(e Edge) {
	if !e.valid() {
		return
	}
	p.Edges = append(p.Edges, e)
	p.bboxValid = false
}

// BBox returns the cached bounding box of p's edges, computing it on first
// use. An empty polygon returns an empty Rect.
func (p *Polygon) BBox() Rect {
	if p.bboxValid {
		return p.bbox
	}
	var r Rect
	first := true
	for _, e := range p.Edges {
		xlo, xhi := e.Line.P1.X, e.Line.P2.X
		if xlo > xhi {
			xlo, xhi = xhi, xlo
		}
		if first {
			r = Rect{XMin: xlo, XMax: xhi, YMin: e.Top, YMax: e.Bottom}
			first = false
			continue
		}
		if xlo < r.XMin {
			r.XMin = xlo
		}
		if xhi > r.XMax {
			r.XMax = xhi
		}
		if e.Top < r.YMin {
			r.YMin = e.Top
		}
		if e.Bottom > r.YMax {
			r.YMax = e.Bottom
		}
	}
	p.bbox = r
	p.bboxValid = true
	return r
}
