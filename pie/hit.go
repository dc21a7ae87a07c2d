// chart - series geometry for charts
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

package pie

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Contains reports whether pt lies inside the filled region of the slice.
func (g *Geometry) Contains(pt vec.Vec2) bool {
	if g.IsEmpty() {
		return false
	}
	d := pt.Sub(g.Origin)
	r := d.Length()
	if r > g.Outer || r < g.Inner {
		return false
	}
	if g.SweepAngle >= 360 {
		return true
	}
	if r == 0 {
		return true
	}

	angle := math.Atan2(d.Y, d.X) * 180 / math.Pi
	rel := math.Mod(angle-g.StartAngle, 360)
	if rel < 0 {
		rel += 360
	}
	if rel > g.SweepAngle {
		return false
	}
	if g.Inner == 0 || g.InnerSweep >= g.SweepAngle {
		return true
	}

	// The side edges of a doughnut slice run from the outer arc to the
	// narrower inner arc. Test against the edge on the side of pt.
	mid := g.StartAngle + g.SweepAngle/2
	var a, b vec.Vec2
	if rel < g.SweepAngle/2 {
		a = polar(g.Outer, g.StartAngle)
		b = polar(g.Inner, mid-g.InnerSweep/2)
	} else {
		a = polar(g.Outer, g.StartAngle+g.SweepAngle)
		b = polar(g.Inner, mid+g.InnerSweep/2)
	}
	m := polar((g.Inner+g.Outer)/2, mid)
	e := b.Sub(a)
	return cross(e, d.Sub(a))*cross(e, m.Sub(a)) >= 0
}

func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// HitTest returns the index of the first slice containing pt, or -1.
func HitTest(slices []Geometry, pt vec.Vec2) int {
	for i := range slices {
		if slices[i].Contains(pt) {
			return i
		}
	}
	return -1
}
