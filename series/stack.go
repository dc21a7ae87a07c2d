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

import "seehuhn.de/go/geom/vec"

// stackedBottom collects the part of the previous top surface below the
// category range [start, end].
//
// The walk resumes at the stored cursor, skips points before start and
// stops at the first point at or beyond end, which is included. If
// keepBefore is set, one point before start is retained as well, so that
// a smoothed boundary is not cut off against a straight one. The cursor
// is left on the last collected point.
func (ctx *RenderContext) stackedBottom(start, end float64, keepBefore bool) []vec.Vec2 {
	prev := ctx.Previous
	i := ctx.cursor
	for i < len(prev) && ctx.k(prev[i]) < start {
		i++
	}
	if keepBefore && i > 0 {
		i--
	}

	var res []vec.Vec2
	for ; i < len(prev); i++ {
		res = append(res, prev[i])
		if ctx.k(prev[i]) >= end {
			break
		}
	}
	ctx.cursor = min(i, len(prev)-1)

	if len(res) >= 2 && ctx.k(res[0]) == ctx.k(res[1]) {
		res = res[1:]
	}
	return res
}

// stackedRange returns the points of the previous top surface with
// category coordinate in [lo, hi], starting the search at the cursor.
// The cursor is not moved.
func (ctx *RenderContext) stackedRange(lo, hi float64) []vec.Vec2 {
	prev := ctx.Previous
	i := min(ctx.cursor, len(prev))
	for i > 0 && ctx.k(prev[i-1]) >= lo {
		i--
	}
	var res []vec.Vec2
	for ; i < len(prev); i++ {
		k := ctx.k(prev[i])
		if k > hi {
			break
		}
		if k >= lo {
			res = append(res, prev[i])
		}
	}
	return res
}

// topSurface accumulates the continuous upper boundary of a series,
// for use by the next stacked series.
type topSurface struct {
	ctx *RenderContext
	pts []vec.Vec2
}

// add appends points to the surface. When three consecutive points share
// the same category coordinate, the middle one is dropped.
func (s *topSurface) add(pts ...vec.Vec2) {
	for _, p := range pts {
		n := len(s.pts)
		if n >= 2 {
			k := s.ctx.k(p)
			if s.ctx.k(s.pts[n-1]) == k && s.ctx.k(s.pts[n-2]) == k {
				s.pts[n-1] = p
				continue
			}
		}
		s.pts = append(s.pts, p)
	}
}

// gap fills the surface across the points skipped between two segments.
//
// lo and hi are the category coordinates of the segment end before the
// gap and the segment start after it; hasLo and hasHi are false before
// the first and after the last segment. Stacked series copy the previous
// top surface across the gap. Other series drop to the baseline at both
// segment edges and at every skipped point.
//
// If nothing was skipped, only the part of the previous surface outside
// the series is copied.
func (s *topSurface) gap(skipped []DataPoint, lo, hi float64, hasLo, hasHi bool) {
	ctx := s.ctx
	edges := len(skipped) > 0

	if ctx.Stacked {
		prev := ctx.Previous
		if !hasLo {
			lo = ctx.k(prev[0])
		}
		if !hasHi {
			hi = ctx.k(prev[len(prev)-1])
		}
		for _, p := range ctx.stackedRange(lo, hi) {
			k := ctx.k(p)
			if !edges && ((hasLo && k == lo) || (hasHi && k == hi)) {
				continue
			}
			s.add(p)
		}
		return
	}
	if !edges {
		return
	}

	dir := ctx.Direction
	sign := 1.0
	if ctx.descending {
		sign = -1
	}
	if hasLo {
		s.add(ctx.Base(sign * lo))
	}
	for _, p := range skipped {
		s.add(ctx.Base(dir.key(p.Pos)))
	}
	if hasHi {
		s.add(ctx.Base(sign * hi))
	}
}
