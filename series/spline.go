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

package series

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Tension is the Catmull-Rom tension used for all smoothed series.
const Tension = 0.5

// SampleCount returns the number of curve samples used for a window whose
// inner points are distance pixels apart.
//
// The tolerance grows with the distance, so long windows get relatively
// fewer samples: floor(d / (0.03·d + 1)).
func SampleCount(distance float64) int {
	tolerance := 0.03*distance + 1
	return int(math.Floor(distance / tolerance))
}

// Interpolate returns vertices approximating a Catmull-Rom spline through
// pts. The points before and after are used as outer neighbours of the
// first and last window, so that curves continue smoothly across gaps;
// pass the end points themselves if there are no neighbours.
//
// The result starts at pts[0] and ends at the last point of pts.
func Interpolate(pts []vec.Vec2, before, after vec.Vec2) []vec.Vec2 {
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return []vec.Vec2{pts[0]}
	case 2:
		res := []vec.Vec2{pts[0]}
		return appendWindow(res, pts[0], pts[0], pts[1], pts[1])
	}

	res := []vec.Vec2{pts[0]}
	last := len(pts) - 1
	for i := range last {
		p0 := before
		if i > 0 {
			p0 = pts[i-1]
		}
		p3 := after
		if i+2 <= last {
			p3 = pts[i+2]
		}
		res = appendWindow(res, p0, pts[i], pts[i+1], p3)
	}
	return res
}

// appendWindow appends samples of the cubic between p1 and p2 to res.
// The sample at p1 is assumed to be present already; p2 is always
// appended.
func appendWindow(res []vec.Vec2, p0, p1, p2, p3 vec.Vec2) []vec.Vec2 {
	s1 := p2.Sub(p0).Mul(Tension)
	s2 := p3.Sub(p1).Mul(Tension)

	// P(t) = a·t³ + b·t² + s1·t + p1
	a := p1.Mul(2).Sub(p2.Mul(2)).Add(s1).Add(s2)
	b := p2.Mul(3).Sub(p1.Mul(3)).Sub(s1.Mul(2)).Sub(s2)

	n := SampleCount(p2.Sub(p1).Length())
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		pt := a.Mul(t * t * t).Add(b.Mul(t * t)).Add(s1.Mul(t)).Add(p1)
		res = append(res, pt)
	}
	return append(res, p2)
}

// SplineRenderer draws a smoothed curve through consecutive points.
type SplineRenderer struct{}

// TopPoints implements [Renderer].
func (SplineRenderer) TopPoints(seg Segment, ctx *RenderContext) []vec.Vec2 {
	return splinePoints(seg, ctx)
}

// BuildPath implements [Renderer].
func (r SplineRenderer) BuildPath(seg Segment, ctx *RenderContext) *path.Data {
	return polyline(r.TopPoints(seg, ctx))
}

// StrokePath implements [Stroker].
func (SplineRenderer) StrokePath(top []vec.Vec2, _ *RenderContext) *path.Data {
	return polyline(top)
}

func splinePoints(seg Segment, ctx *RenderContext) []vec.Vec2 {
	before, after := seg.First(), seg.Last()
	if ctx != nil && ctx.Points != nil {
		before, after = Neighbours(ctx.Points, seg)
	}
	return Interpolate(seg.Positions(), before, after)
}
