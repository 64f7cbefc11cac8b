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

// Fixture paths below are carried over, as fixed-point polylines, from a
// rendering library's example gallery (a triangle, a self-intersecting
// five-pointed star, and a rectangle), reused here to exercise the sweep
// engine on recognizable non-trivial shapes instead of only axis-aligned
// boxes.

func trianglePath(x1, y1, x2, y2, x3, y3 int32) *Path {
	p := &Path{}
	p.MoveTo(Point{X: x1, Y: y1})
	p.LineTo(Point{X: x2, Y: y2})
	p.LineTo(Point{X: x3, Y: y3})
	p.Close()
	return p
}

func rectanglePath(x1, y1, x2, y2 int32) *Path {
	p := &Path{}
	p.MoveTo(Point{X: x1, Y: y1})
	p.LineTo(Point{X: x2, Y: y1})
	p.LineTo(Point{X: x2, Y: y2})
	p.LineTo(Point{X: x1, Y: y2})
	p.Close()
	return p
}

// fivePointStarPath builds a pentagram centered at (32,32) with radius 25,
// connecting every second vertex (0->2->4->1->3->0) so the outline
// self-intersects: the five points have winding number 1, the small
// pentagon at the center has winding number 2.
func fivePointStarPath() *Path {
	pts := [5]Point{
		{X: 32, Y: 7},
		{X: 56, Y: 24},
		{X: 47, Y: 52},
		{X: 17, Y: 52},
		{X: 8, Y: 24},
	}
	order := [5]int{0, 2, 4, 1, 3}
	p := &Path{}
	p.MoveTo(pts[order[0]])
	for _, i := range order[1:] {
		p.LineTo(pts[i])
	}
	p.Close()
	return p
}

// pathToPolygon traces path's sub-paths directly as a Polygon (straight
// edges, no stroking), for tests that want Tessellate/Reduce/Intersect to
// operate on the fixture shapes themselves rather than on their stroked
// outlines.
func pathToPolygon(p *Path) *Polygon {
	out := &Polygon{}
	var pts []Point
	var start Point
	for _, op := range p.Ops() {
		switch op.Cmd {
		case CmdMoveTo:
			if len(pts) > 0 {
				addEdgesFromLoop(out, pts)
			}
			pts = pts[:0]
			start = op.Pts[0]
			pts = append(pts, start)
		case CmdLineTo:
			pts = append(pts, op.Pts[0])
		case CmdClose:
			if len(pts) > 0 {
				addEdgesFromLoop(out, pts)
			}
			pts = nil
		}
	}
	if len(pts) > 0 {
		addEdgesFromLoop(out, pts)
	}
	return out
}
