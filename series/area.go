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

// AreaRenderer fills the region between a series and its baseline, or
// between a series and the top surface of the previous stacked series.
type AreaRenderer struct {
	// Spline selects a smoothed upper boundary.
	Spline bool
}

// TopPoints implements [Renderer].
func (r AreaRenderer) TopPoints(seg Segment, ctx *RenderContext) []vec.Vec2 {
	if r.Spline {
		return splinePoints(seg, ctx)
	}
	return LinePoints(seg)
}

// BuildPath implements [Renderer].
// For stacked contexts this advances the cursor into the previous top
// surface, so segments must be passed in order.
func (r AreaRenderer) BuildPath(seg Segment, ctx *RenderContext) *path.Data {
	return r.FillPath(seg, r.TopPoints(seg, ctx), ctx)
}

// StrokePath implements [Stroker].
// Only the upper boundary of an area is outlined.
func (AreaRenderer) StrokePath(top []vec.Vec2, _ *RenderContext) *path.Data {
	return polyline(top)
}

// FillPath implements [Filler].
//
// The region starts with the upper boundary top, continues along the
// bottom boundary from the end of the segment back to its start and is
// then closed.
func (r AreaRenderer) FillPath(seg Segment, top []vec.Vec2, ctx *RenderContext) *path.Data {
	p := &path.Data{}
	if len(top) < 2 {
		return p
	}
	bottom := r.bottom(top, ctx)

	p = p.MoveTo(top[0])
	for _, pt := range top[1:] {
		p = p.LineTo(pt)
	}
	for i := len(bottom) - 1; i >= 0; i-- {
		p = p.LineTo(bottom[i])
	}
	return p.Close()
}

// bottom returns the lower boundary below top, ordered along the series.
func (r AreaRenderer) bottom(top []vec.Vec2, ctx *RenderContext) []vec.Vec2 {
	first, last := top[0], top[len(top)-1]
	if ctx.Stacked {
		res := ctx.stackedBottom(ctx.k(first), ctx.k(last), r.Spline)
		if len(res) > 0 {
			return res
		}
	}
	dir := ctx.Direction
	return []vec.Vec2{
		ctx.Base(dir.key(first)),
		ctx.Base(dir.key(last)),
	}
}
