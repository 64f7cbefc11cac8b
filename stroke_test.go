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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeToPolygonOpenLineProducesNonEmptyOutline(t *testing.T) {
	p := &Path{}
	p.MoveTo(Point{X: 0, Y: 0})
	p.LineTo(Point{X: 100, Y: 0})

	style := NewStyle()
	style.LineWidth = 10

	out, err := StrokeToPolygon(p, style, matrix.Identity, matrix.Identity, 0.1)
	require.NoError(t, err)
	require.NotEmpty(t, out.Edges)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	// A butt-capped 100x10 horizontal stroke covers exactly 100*10 = 1000.
	assert.Equal(t, int64(1000), trapArea(traps))
}

func TestStrokeToPolygonSquareCapExtendsLength(t *testing.T) {
	p := &Path{}
	p.MoveTo(Point{X: 0, Y: 0})
	p.LineTo(Point{X: 100, Y: 0})

	style := NewStyle()
	style.LineWidth = 10
	style.Cap = graphics.LineCapSquare

	out, err := StrokeToPolygon(p, style, matrix.Identity, matrix.Identity, 0.1)
	require.NoError(t, err)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	// Square caps extend the stroke by half the line width at each end:
	// (100+10) * 10 = 1100.
	assert.Equal(t, int64(1100), trapArea(traps))
}

func TestStrokeToPolygonClosedRectangleHasHole(t *testing.T) {
	style := NewStyle()
	style.LineWidth = 4
	style.Join = graphics.LineJoinMiter

	out, err := StrokeToPolygon(rectanglePath(0, 0, 40, 40), style, matrix.Identity, matrix.Identity, 0.1)
	require.NoError(t, err)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	area := trapArea(traps)
	// A mitered outline around a 40x40 square with line width 4 sits inside
	// an outer 44x44 square (the miter points extend 2 units past each
	// corner) and has a 36x36 hole, so it covers 44*44 - 36*36 = 640: less
	// than the outer bound and exactly its four 40x4 edge strips.
	assert.Equal(t, int64(44*44-36*36), area)
	assert.Less(t, area, int64(44*44))
}

func TestStrokeToPolygonDashedLineSplitsIntoSegments(t *testing.T) {
	p := &Path{}
	p.MoveTo(Point{X: 0, Y: 0})
	p.LineTo(Point{X: 100, Y: 0})

	style := NewStyle()
	style.LineWidth = 2
	style.Dash = []float64{10, 10}

	out, err := StrokeToPolygon(p, style, matrix.Identity, matrix.Identity, 0.1)
	require.NoError(t, err)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	// Five 10-unit-long "on" dashes of width 2, butt-capped: 5*10*2 = 100.
	assert.Equal(t, int64(100), trapArea(traps))
}

func TestStrokeToPolygonRejectsSingularCTM(t *testing.T) {
	p := &Path{}
	p.MoveTo(Point{X: 0, Y: 0})
	p.LineTo(Point{X: 10, Y: 0})

	// ctmInverse is not the inverse of ctm: ctm is the identity and
	// ctmInverse is the zero matrix, so the round-trip probe fails.
	_, err := StrokeToPolygon(p, NewStyle(), matrix.Identity, matrix.Matrix{}, 0.1)
	assert.ErrorIs(t, err, ErrSingularCTM)
}

func TestStrokeToPolygonTriangleOutlineIsNonEmpty(t *testing.T) {
	style := NewStyle()
	style.LineWidth = 3
	style.Join = graphics.LineJoinRound

	out, err := StrokeToPolygon(trianglePath(10, 50, 32, 10, 54, 50), style, matrix.Identity, matrix.Identity, 0.25)
	require.NoError(t, err)

	traps, err := Tessellate(out, Winding)
	require.NoError(t, err)
	assert.NotEmpty(t, traps)
}
