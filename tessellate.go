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

import "seehuhn.de/go/tessellate/internal/sweep"

// Tessellate sweeps p's edges under rule and returns the maximal
// vertically-monotone trapezoids covering the filled region: no two
// returned trapezoids overlap in their interior, and their union is
// exactly the filled area.
func Tessellate(p *Polygon, rule FillRule, opts ...Option) ([]Trapezoid, error) {
	cfg := newConfig(opts)
	traps, err := sweep.Tessellate(p, rule, cfg.MaxCapacity, cfg.Trace)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return traps, nil
}

// Reduce sweeps p under rule and rebuilds its boundary as a polygon whose
// edges do not self-intersect, with winding equivalent to p's under rule.
func Reduce(p *Polygon, rule FillRule, opts ...Option) (*Polygon, error) {
	cfg := newConfig(opts)
	out, err := sweep.Reduce(p, rule, cfg.MaxCapacity, cfg.Trace)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return out, nil
}

// Intersect sweeps a (under ruleA) and b (under ruleB) together and
// returns a polygon describing the geometric intersection of the two
// filled regions, winding-rule encoded the same way Reduce's output is.
func Intersect(a *Polygon, ruleA FillRule, b *Polygon, ruleB FillRule, opts ...Option) (*Polygon, error) {
	cfg := newConfig(opts)
	out, err := sweep.Intersect(a, ruleA, b, ruleB, cfg.MaxCapacity, cfg.Trace)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return out, nil
}
