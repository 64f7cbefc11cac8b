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

// Package tessellate computes exact, fixed-point polygon tessellations,
// boundary reductions, polygon intersections and stroke-to-fill outlines
// using a planar sweep (Bentley-Ottmann). Every coordinate is a 32-bit
// integer; edges are compared and intersected with widened integer
// arithmetic rather than floating point, and computed intersection points
// are rounded to the nearest grid point.
package tessellate

import "seehuhn.de/go/tessellate/plane"

// Point, Line, FillRule, Edge, Trapezoid, Polygon and Rect are the shared
// fixed-point data model (package plane); they are re-exported here as
// aliases so callers only need to import this package.
type (
	Point     = plane.Point
	Line      = plane.Line
	FillRule  = plane.FillRule
	Edge      = plane.Edge
	Trapezoid = plane.Trapezoid
	Polygon   = plane.Polygon
	Rect      = plane.Rect
)

// Winding and EvenOdd select the interior predicate used by Tessellate,
// Reduce and Intersect.
const (
	Winding = plane.Winding
	EvenOdd = plane.EvenOdd
)

// MaxCoord is the largest coordinate magnitude the sweep accepts; see
// plane.MaxCoord.
const MaxCoord = plane.MaxCoord
