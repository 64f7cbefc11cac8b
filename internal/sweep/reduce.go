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

import "seehuhn.de/go/tessellate/plane"

// Reduce sweeps p under rule and rebuilds its boundary as a nonzero-winding
// edge soup: one +1 edge per trapezoid left side and one -1 edge per
// trapezoid right side (spec §4.8). The result represents exactly the same
// filled region as p under rule, but always under the Winding rule — this
// is the "same event/sweep loop as §4.6, emission constructs boundary
// edges instead of trapezoids" operation the dual-winding intersector and
// repeated reduce/combine pipelines build on.
func Reduce(p *plane.Polygon, rule plane.FillRule, maxCapacity int, trace func(string)) (*plane.Polygon, error) {
	traps, err := Tessellate(p, rule, maxCapacity, trace)
	if err != nil {
		return nil, err
	}

	out := &plane.Polygon{Clip: p.Clip}
	for _, t := range traps {
		out.AddEdge(plane.Edge{Line: t.Left, Top: t.Top, Bottom: t.Bottom, Dir: 1})
		out.AddEdge(plane.Edge{Line: t.Right, Top: t.Top, Bottom: t.Bottom, Dir: -1})
	}
	return out, nil
}
