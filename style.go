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

import "seehuhn.de/go/pdf/graphics"

// Style holds the stroke parameters StrokeToPolygon needs: line width, cap
// and join shapes, the miter limit, and an optional dash pattern. Fields
// are set directly by the caller and defaulted by NewStyle, the same shape
// seehuhn.de/go/raster.Rasterizer uses for its stroke-related fields.
type Style struct {
	// LineWidth is the stroke thickness in user-space units. Must be
	// positive.
	LineWidth float64

	// Cap sets the style for stroke endpoints.
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length; joins that would exceed it
	// degrade to a bevel. Must be at least 1.0.
	MiterLimit float64

	// Dash specifies alternating on/off lengths in user-space units. All
	// elements must be non-negative and at least one must be positive.
	// Nil means a solid (undashed) stroke.
	Dash []float64

	// DashPhase offsets into Dash in user-space units; any value is
	// accepted, including negative ones.
	DashPhase float64
}

// NewStyle returns a Style with a 1.0 line width, butt caps, miter joins,
// a miter limit of 10 and no dash pattern — the PDF imaging model defaults
// seehuhn.de/go/raster.NewRasterizer also starts from.
func NewStyle() *Style {
	return &Style{
		LineWidth:  1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}
}

// dashed reports whether s specifies a dash pattern with at least one
// positive entry.
func (s *Style) dashed() bool {
	for _, d := range s.Dash {
		if d > 0 {
			return true
		}
	}
	return false
}
