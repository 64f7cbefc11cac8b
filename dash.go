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

	"seehuhn.de/go/geom/vec"
)

// dashSegments partitions segs along the path's length according to
// style.Dash/style.DashPhase, and returns one []strokeSegment per "on"
// run (each to be stroked and capped independently). A zero-length on-run
// is returned as a single segment with A==B (caller emits a dot via square
// or round caps); a zero-length on-run under butt caps produces no output
// at all, matching seehuhn.de/go/raster.Rasterizer.applyDashPattern.
//
// For a closed sub-path whose dash state is still "on" when it wraps back
// to the start, the first and last runs are merged into one, so a dash
// never appears to restart at the seam.
func dashSegments(style *Style, segs []strokeSegment, closed bool) [][]strokeSegment {
	dash := style.Dash
	dashLen := len(dash)

	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 || len(segs) == 0 {
		return nil
	}

	phase := math.Mod(style.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	at := func(i int) float64 {
		if dashLen == 0 {
			return 0
		}
		return dash[i%dashLen]
	}

	dashIdx := 0
	dist := phase
	for dist >= at(dashIdx) && at(dashIdx) > 0 {
		dist -= at(dashIdx)
		dashIdx++
	}
	remaining := at(dashIdx) - dist
	isOn := dashIdx%2 == 0

	var runs [][]strokeSegment
	var cur []strokeSegment

	if isOn && remaining == 0 {
		cur = append(cur, strokeSegment{A: segs[0].A, B: segs[0].A, T: segs[0].T, N: segs[0].N})
		runs = append(runs, cur)
		cur = nil
		dashIdx++
		remaining = at(dashIdx)
		isOn = dashIdx%2 == 0
	}

	startedOn := isOn
	firstRun := -1

	segIdx := 0
	segDist := 0.0
	for segIdx < len(segs) {
		seg := segs[segIdx]
		segLen := seg.B.Sub(seg.A).Length()
		segRemaining := segLen - segDist

		if remaining >= segRemaining {
			if isOn {
				if segDist > 0 {
					t := segDist / segLen
					startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(t))
					cur = append(cur, strokeSegment{A: startPt, B: seg.B, T: seg.T, N: seg.N})
				} else {
					cur = append(cur, seg)
				}
			}
			remaining -= segRemaining
			segIdx++
			segDist = 0
			continue
		}

		endDist := segDist + remaining
		t := endDist / segLen
		splitPt := seg.A.Add(seg.B.Sub(seg.A).Mul(t))

		if isOn {
			startT := segDist / segLen
			startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(startT))
			dv := splitPt.Sub(startPt)
			dLen := dv.Length()
			if dLen > zeroLengthThreshold {
				tv := dv.Mul(1 / dLen)
				nv := vec.Vec2{X: -tv.Y, Y: tv.X}
				cur = append(cur, strokeSegment{A: startPt, B: splitPt, T: tv, N: nv})
			} else if len(cur) == 0 {
				cur = append(cur, strokeSegment{A: startPt, B: startPt, T: seg.T, N: seg.N})
			}
			if len(cur) > 0 {
				if firstRun < 0 {
					firstRun = len(runs)
				}
				runs = append(runs, cur)
				cur = nil
			}
		}

		segDist = endDist
		dashIdx++
		remaining = at(dashIdx)
		isOn = dashIdx%2 == 0
	}

	if len(cur) > 0 {
		if closed && startedOn && isOn && firstRun >= 0 {
			cur = append(cur, runs[firstRun]...)
			runs = append(runs[:firstRun], runs[firstRun+1:]...)
		}
		runs = append(runs, cur)
	}

	return runs
}
