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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	zeroLengthThreshold  = 1e-9
	collinearityThreshold = 1e-9
	cuspCosineThreshold   = -0.999
)

// strokeSegment is a single straight piece of a sub-path, in user space,
// together with its precomputed unit tangent and normal.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2
	N    vec.Vec2
}

// normalSign is +1 or -1: the rotation direction flips when the CTM
// determinant is negative, so the stroker that built faces before knowing
// the final device-space winding needs to know which way "90° CCW" goes.
func normalSign(ctm matrix.Matrix) float64 {
	det := ctm[0]*ctm[3] - ctm[1]*ctm[2]
	if det < 0 {
		return -1
	}
	return 1
}

func newStrokeSegment(a, b vec.Vec2, sign float64) (strokeSegment, bool) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y * sign, Y: t.X * sign}
	return strokeSegment{A: a, B: b, T: t, N: n}, true
}

// penBuilder accumulates a single closed stroke-outline polygon in user
// space; StrokeToPolygon then transforms it to device space and quantizes
// it to the fixed-point plane, exactly as seehuhn.de/go/raster.Rasterizer.stroke
// accumulates vertices before collectStrokeEdges converts them to device
// integers.
type penBuilder struct {
	pts     []vec.Vec2
	ctm     matrix.Matrix
	flatness float64
}

func (pb *penBuilder) add(p vec.Vec2) {
	pb.pts = append(pb.pts, p)
}

// transformLinear applies only the 2x2 linear part of ctm, for CTM-aware
// tolerance checks where translation is irrelevant.
func transformLinear(ctm matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: ctm[0]*v.X + ctm[2]*v.Y,
		Y: ctm[1]*v.X + ctm[3]*v.Y,
	}
}

func applyMatrix(ctm matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: ctm[0]*v.X + ctm[2]*v.Y + ctm[4],
		Y: ctm[1]*v.X + ctm[3]*v.Y + ctm[5],
	}
}

func quantize(v vec.Vec2) Point {
	return Point{X: roundCoord(v.X), Y: roundCoord(v.Y)}
}

func roundCoord(x float64) int32 {
	if x >= 0 {
		return int32(x + 0.5)
	}
	return -int32(-x + 0.5)
}

// addCap appends a line cap at P, whose outward tangent direction is T, to
// pb. d is half the stroke width.
func (pb *penBuilder) addCap(cap graphics.LineCapStyle, P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		pb.add(ext.Add(N.Mul(d)))
		pb.add(ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		pb.addArc(P, d, N, -math.Pi, true)
	default: // graphics.LineCapButt
	}
}

// addJoin appends the outer join geometry at corner P where the tangent
// changes from T1 to T2 on the side named by positiveSide, per style.Join.
// A near-cusp corner (tangents almost reversed) degrades to a pair of caps,
// matching the teacher's addJoin.
func (pb *penBuilder) addJoin(style *Style, P, T1, T2 vec.Vec2, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		pb.addCap(style.Cap, P, T1, d)
		pb.addCap(style.Cap, P, T2.Mul(-1), d)
		return
	}

	switch style.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt(max(0, (1+cosTheta)/2))
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= style.MiterLimit+miterEpsilon {
			n1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			n2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := n1.Add(n2)
			if !positiveSide {
				bisector = bisector.Mul(-1)
			}
			if bl := bisector.Length(); bl > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bl)
				pb.add(P.Add(bisector.Mul(d / sinHalf)))
			}
			return
		}
		// miter limit exceeded: degrade to bevel
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		n1 := vec.Vec2{X: -T1.Y, Y: T1.X}
		if positiveSide == (sinTheta > 0) {
			pb.addArc(P, d, n1, angle, false)
		} else {
			pb.addArc(P, d, n1, -angle, false)
		}
	}
	// graphics.LineJoinBevel: the two offset points already bound the corner.
}

// addArc appends points approximating an arc of the given sweep (positive =
// CCW) centered at center, starting in direction startDir, discretized
// finely enough that the device-space sagitta stays within pb.flatness.
func (pb *penBuilder) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadiusX := transformLinear(pb.ctm, vec.Vec2{X: radius, Y: 0}).Length()
	devRadiusY := transformLinear(pb.ctm, vec.Vec2{X: 0, Y: radius}).Length()
	devRadius := max(devRadiusX, devRadiusY)

	rotate := func(d vec.Vec2, angle float64) vec.Vec2 {
		cos, sin := math.Cos(angle), math.Sin(angle)
		return vec.Vec2{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos}
	}

	if devRadius < pb.flatness {
		if includeStart {
			pb.add(center.Add(startDir.Mul(radius)))
		}
		pb.add(center.Add(rotate(startDir, sweep).Mul(radius)))
		return
	}

	absSweep := math.Abs(sweep)
	angleStep := 2 * math.Acos(1-pb.flatness/devRadius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := max(int(math.Ceil(absSweep/angleStep)), 1)

	dt := sweep / float64(n)
	start := 0
	if !includeStart {
		start = 1
	}
	for i := start; i <= n; i++ {
		dir := rotate(startDir, float64(i)*dt)
		pb.add(center.Add(dir.Mul(radius)))
	}
}
