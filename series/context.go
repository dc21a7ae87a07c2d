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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// Direction is the plot direction of a cartesian series.
type Direction uint8

const (
	// Vertical series grow upwards from a horizontal baseline;
	// the category axis runs along x.
	Vertical Direction = iota
	// Horizontal series grow to the right from a vertical baseline;
	// the category axis runs along y.
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "invalid"
	}
}

// key returns the coordinate of p along the category axis.
func (d Direction) key(p vec.Vec2) float64 {
	if d == Horizontal {
		return p.Y
	}
	return p.X
}

// at returns the point with category coordinate k and value coordinate v.
func (d Direction) at(k, v float64) vec.Vec2 {
	if d == Horizontal {
		return vec.Vec2{X: v, Y: k}
	}
	return vec.Vec2{X: k, Y: v}
}

// ContextConfig describes the viewport of one layout pass.
type ContextConfig struct {
	// PlotArea is the region series are laid out in, before zoom and pan.
	// LLy is the top edge and URy the bottom edge.
	PlotArea rect.Rect

	// Direction selects vertical or horizontal series.
	Direction Direction

	// Zoom scales the plot area. Both factors must be positive;
	// the zero value is treated as no zoom.
	Zoom vec.Vec2

	// Pan shifts the zoomed plot area, in pixels.
	Pan vec.Vec2

	// Origin is the position of the value axis origin as a fraction of the
	// plot area, measured from the bottom (vertical) or left (horizontal)
	// edge. Must be within [0, 1].
	Origin float64

	// Stacked marks series whose bottom boundary follows the top surface
	// of the previous series.
	Stacked bool
}

// RenderContext is the shared state of one series during one layout
// pass. It must not be shared between series or reused between passes.
type RenderContext struct {
	// PlotArea is the effective plot area with zoom and pan applied.
	PlotArea rect.Rect

	Direction Direction
	Zoom      vec.Vec2
	Pan       vec.Vec2

	// Baseline is the value coordinate of the value axis origin.
	Baseline float64

	// Stacked is true if a previous top surface is available.
	Stacked bool

	// Previous is the finished top surface of the previous stacked series.
	Previous []vec.Vec2

	// Points are all points of the series being rendered, used to find
	// spline neighbours across gaps. May be nil.
	Points []DataPoint

	cursor     int
	descending bool // category coordinates decrease along the series
}

// NewRenderContext builds the context for one series.
//
// If cfg.Stacked is set and previous is non-empty, the new context stacks
// on top of previous. An invalid configuration returns an error wrapping
// [chart.ErrInvalidArgument].
func NewRenderContext(cfg ContextConfig, previous []vec.Vec2) (*RenderContext, error) {
	zoom := cfg.Zoom
	if zoom == (vec.Vec2{}) {
		zoom = vec.Vec2{X: 1, Y: 1}
	}
	switch {
	case zoom.X <= 0 || zoom.Y <= 0:
		return nil, chart.InvalidArgument("zoom factor %v", zoom)
	case cfg.Origin < 0 || cfg.Origin > 1:
		return nil, chart.InvalidArgument("plot origin %g", cfg.Origin)
	case cfg.PlotArea.URx <= cfg.PlotArea.LLx || cfg.PlotArea.URy <= cfg.PlotArea.LLy:
		return nil, chart.InvalidArgument("empty plot area %v", cfg.PlotArea)
	case cfg.Direction > Horizontal:
		return nil, chart.InvalidArgument("plot direction %d", cfg.Direction)
	}

	area := cfg.PlotArea
	width := (area.URx - area.LLx) * zoom.X
	height := (area.URy - area.LLy) * zoom.Y
	eff := rect.Rect{
		LLx: area.LLx + cfg.Pan.X,
		LLy: area.LLy + cfg.Pan.Y,
	}
	eff.URx = eff.LLx + width
	eff.URy = eff.LLy + height

	ctx := &RenderContext{
		PlotArea:  eff,
		Direction: cfg.Direction,
		Zoom:      zoom,
		Pan:       cfg.Pan,
	}
	if cfg.Direction == Horizontal {
		ctx.Baseline = eff.LLx + cfg.Origin*width
	} else {
		ctx.Baseline = eff.URy - cfg.Origin*height
	}
	if cfg.Stacked && len(previous) > 0 {
		ctx.Stacked = true
		ctx.Previous = previous
		ctx.cursor = 0
	}
	return ctx, nil
}

// Base returns the point on the baseline at category coordinate k.
func (ctx *RenderContext) Base(k float64) vec.Vec2 {
	return ctx.Direction.at(k, ctx.Baseline)
}

// k returns the category coordinate of p, negated for series whose
// category coordinates decrease, so that k is increasing along the series.
func (ctx *RenderContext) k(p vec.Vec2) float64 {
	k := ctx.Direction.key(p)
	if ctx.descending {
		return -k
	}
	return k
}

// orient records the direction of the category axis of points.
func (ctx *RenderContext) orient(points []DataPoint) {
	first, last := -1, -1
	for i, p := range points {
		if p.Empty {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first >= 0 && last > first {
		key := ctx.Direction.key
		ctx.descending = key(points[last].Pos) < key(points[first].Pos)
	}
}
