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
	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// Series is a cartesian series registered with a layout [Pass].
type Series struct {
	Name     string
	Points   []DataPoint
	Renderer Renderer

	// Stacked series sit on top of the series registered before them.
	Stacked bool
}

// Result is the geometry of one series after a layout pass.
type Result struct {
	Name     string
	Segments []Segment

	// Lines holds one open path per segment for renderers implementing
	// [Stroker].
	Lines []*path.Data

	// Fills holds one closed path per segment for renderers implementing
	// [Filler].
	Fills []*path.Data

	// Surface is the continuous upper boundary of the series, including
	// gaps. It is consumed by the next stacked series.
	Surface []vec.Vec2
}

// Pass lays out a group of series which share a viewport.
//
// Series are processed in registration order, since every stacked series
// depends on the finished top surface of its predecessor.
type Pass struct {
	entries []entry
}

type entry struct {
	Series
	stroker Stroker
	filler  Filler
}

func newEntry(s Series) entry {
	e := entry{Series: s}
	e.stroker, _ = s.Renderer.(Stroker)
	e.filler, _ = s.Renderer.(Filler)
	return e
}

// Add registers a series. The first registered series never stacks, even
// if s.Stacked is set.
func (p *Pass) Add(s Series) error {
	if s.Renderer == nil {
		return chart.InvalidArgument("series %q has no renderer", s.Name)
	}
	p.entries = append(p.entries, newEntry(s))
	return nil
}

// Len returns the number of registered series.
func (p *Pass) Len() int {
	return len(p.entries)
}

// Layout renders all registered series and returns their geometry in
// registration order.
func (p *Pass) Layout(cfg ContextConfig) ([]Result, error) {
	log := chart.Logger()

	res := make([]Result, 0, len(p.entries))
	var previous []vec.Vec2
	for _, e := range p.entries {
		c := cfg
		c.Stacked = e.Stacked
		ctx, err := NewRenderContext(c, previous)
		if err != nil {
			return nil, err
		}
		r := e.render(ctx)
		log.Debug("series laid out",
			zap.String("series", e.Name),
			zap.Int("segments", len(r.Segments)),
			zap.Int("surface", len(r.Surface)),
			zap.Bool("stacked", ctx.Stacked))
		res = append(res, r)
		previous = r.Surface
	}
	return res, nil
}

// Render lays out a single series with renderer r.
func Render(r Renderer, points []DataPoint, ctx *RenderContext) Result {
	e := newEntry(Series{Points: points, Renderer: r})
	return e.render(ctx)
}

func (e *entry) render(ctx *RenderContext) Result {
	points := e.Points
	ctx.Points = points
	ctx.orient(points)

	res := Result{
		Name:     e.Name,
		Segments: Split(points),
	}

	surf := &topSurface{ctx: ctx}
	next := 0
	var lo float64
	hasLo := false
	for _, seg := range res.Segments {
		top := e.Renderer.TopPoints(seg, ctx)
		if len(top) < 2 {
			continue
		}
		first := indexOf(points, seg.Start)
		surf.gap(points[next:first], lo, ctx.k(top[0]), hasLo, true)

		if e.filler != nil {
			res.Fills = append(res.Fills, e.filler.FillPath(seg, top, ctx))
		}
		if e.stroker != nil {
			res.Lines = append(res.Lines, e.stroker.StrokePath(top, ctx))
		}

		surf.add(top...)
		lo, hasLo = ctx.k(top[len(top)-1]), true
		next = first + len(seg.Points)
	}
	surf.gap(points[next:], lo, 0, hasLo, false)

	res.Surface = surf.pts
	return res
}
