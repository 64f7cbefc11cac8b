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

// Cmd names a single path operation. Curves are out of scope (spec.md §1
// excludes curve flattening): a caller that needs Bézier segments flattens
// them into CmdLineTo operations before handing the path to the stroker.
type Cmd uint8

const (
	// CmdMoveTo starts a new sub-path at Pts[0].
	CmdMoveTo Cmd = iota
	// CmdLineTo draws a straight segment from the current point to Pts[0].
	CmdLineTo
	// CmdClose draws a straight segment back to the sub-path's start point
	// and ends the sub-path.
	CmdClose
)

// Op is one element of a Path: a command plus the points it consumes.
// CmdMoveTo and CmdLineTo use Pts[0]; CmdClose uses no points.
type Op struct {
	Cmd Cmd
	Pts [1]Point
}

// Path is a sequence of sub-paths in user space, each a chain of
// move/line/close operations, as consumed by StrokeToPolygon. Points are
// fixed-point (the same coordinate domain as Polygon edges), since the
// stroker's geometric construction happens in floating point internally but
// both its input and output are quantized to the plane's integer grid.
type Path struct {
	ops []Op
}

// MoveTo starts a new sub-path at p. A previous sub-path left without a
// Close call ends open: no closing segment is added for it.
func (p *Path) MoveTo(pt Point) {
	p.ops = append(p.ops, Op{Cmd: CmdMoveTo, Pts: [1]Point{pt}})
}

// LineTo appends a straight segment from the current point to pt.
func (p *Path) LineTo(pt Point) {
	p.ops = append(p.ops, Op{Cmd: CmdLineTo, Pts: [1]Point{pt}})
}

// Close draws a straight segment back to the current sub-path's start
// point and marks the sub-path closed.
func (p *Path) Close() {
	p.ops = append(p.ops, Op{Cmd: CmdClose})
}

// Reset empties the path, keeping the underlying storage for reuse.
func (p *Path) Reset() {
	p.ops = p.ops[:0]
}

// Ops returns the path's operations in order. The caller must not modify
// the returned slice.
func (p *Path) Ops() []Op {
	return p.ops
}
