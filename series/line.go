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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// LinePoints returns the vertices of the polyline through seg.
//
// A point is included if it, or one of its neighbours within the segment,
// is visible. This keeps lines leaving the visible region intact while
// skipping long invisible stretches of a zoomed-in series.
func LinePoints(seg Segment) []vec.Vec2 {
	pts := seg.Points
	res := make([]vec.Vec2, 0, len(pts))
	for i, p := range pts {
		if p.Visible ||
			(i > 0 && pts[i-1].Visible) ||
			(i+1 < len(pts) && pts[i+1].Visible) {
			res = append(res, p.Pos)
		}
	}
	return res
}

// polyline converts a list of vertices into an open path.
func polyline(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p
}

// LineRenderer draws straight lines between consecutive points.
type LineRenderer struct{}

// TopPoints implements [Renderer].
func (LineRenderer) TopPoints(seg Segment, _ *RenderContext) []vec.Vec2 {
	return LinePoints(seg)
}

// BuildPath implements [Renderer].
func (r LineRenderer) BuildPath(seg Segment, ctx *RenderContext) *path.Data {
	return polyline(r.TopPoints(seg, ctx))
}

// StrokePath implements [Stroker].
func (LineRenderer) StrokePath(top []vec.Vec2, _ *RenderContext) *path.Data {
	return polyline(top)
}
