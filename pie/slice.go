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
	"slices"

	"go.uber.org/zap"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// Tolerance is the maximal distance, in pixels, between a circular arc
// and its Bézier approximation.
const Tolerance = 0.05

// Geometry is the drawable outline of one slice.
type Geometry struct {
	Fill   *path.Data // closed region of the slice
	Stroke *path.Data // outline, same shape as Fill
	Arc    *path.Data // band along the outer edge, closed like Fill

	// Center is the visual centre of the slice, used to place labels.
	Center vec.Vec2

	// Origin is the apex of the slice, moved outwards for exploded slices.
	Origin vec.Vec2

	Inner, Outer float64 // radii of the filled region
	StartAngle   float64 // start of the outer edge after the gutter
	SweepAngle   float64 // sweep of the outer edge after the gutter

	// InnerSweep is the sweep of the inner edge of a doughnut slice,
	// centred on the same bisector as the outer edge.
	InnerSweep float64
}

// IsEmpty reports whether the slice is not drawn.
func (g *Geometry) IsEmpty() bool {
	return g.Fill == nil || len(g.Fill.Cmds) == 0
}

func emptyGeometry() Geometry {
	return Geometry{
		Fill:   &path.Data{},
		Stroke: &path.Data{},
		Arc:    &path.Data{},
	}
}

// ReducedSweep returns the sweep angle left after removing a linear
// distance of px pixels, measured along a circle of the given radius.
func ReducedSweep(sweep, px, radius float64) float64 {
	return sweep - 360*px/(2*math.Pi*radius)
}

// Engine computes slice geometry for one pie series.
type Engine struct {
	Style Style
}

// NewEngine returns an engine using the given style.
func NewEngine(style Style) *Engine {
	return &Engine{Style: style}
}

// Layout computes the geometry of all slices of a series.
func (e *Engine) Layout(points []DataPoint, ctx *UpdateContext) []Geometry {
	res := make([]Geometry, len(points))
	drawn := 0
	for i, p := range points {
		res[i] = e.Slice(p, ctx)
		if !res[i].IsEmpty() {
			drawn++
		}
	}
	chart.Logger().Debug("pie laid out",
		zap.Int("slices", len(points)),
		zap.Int("drawn", drawn),
		zap.Bool("doughnut", e.Style.Doughnut),
		zap.Float64("radius", ctx.Radius))
	return res
}

// Slice computes the geometry of a single slice.
//
// Slices with zero sweep, or with no sweep left after subtracting the
// gutter and outline, have empty geometry.
func (e *Engine) Slice(p DataPoint, ctx *UpdateContext) Geometry {
	if p.Empty || p.SweepAngle == 0 {
		return emptyGeometry()
	}

	r := ctx.Radius
	sw := e.Style.strokeWidth
	full := math.Abs(p.SweepAngle) >= 360
	mid := p.MidAngle()

	origin := ctx.Center
	if p.OffsetFromCenter > 0 {
		origin = origin.Add(polar(r*p.OffsetFromCenter, mid))
	}

	gutter := e.Style.sliceOffset + sw
	sweep := p.SweepAngle
	if !full {
		sweep = ReducedSweep(p.SweepAngle, gutter, r)
		if sweep <= 0 {
			return emptyGeometry()
		}
	}
	start := mid - sweep/2

	outer := r - sw/2
	if outer <= 0 {
		return emptyGeometry()
	}

	g := Geometry{
		Origin:     origin,
		Outer:      outer,
		StartAngle: start,
		SweepAngle: sweep,
	}

	inner := 0.0
	ar := r - sw - e.Style.arcWidth/2
	g.Arc = &path.Data{}
	if e.Style.Doughnut {
		inner = ctx.InnerRadius()
		g.Inner = min(inner+sw/2, outer)
		g.InnerSweep = sweep
		if !full {
			g.InnerSweep = max(ReducedSweep(p.SweepAngle, gutter, inner), 0)
		}
		g.Fill = ring(origin, outer, g.Inner, start, sweep, g.InnerSweep, full)
		if ar > g.Inner {
			g.Arc = ring(origin, ar, g.Inner, start, sweep, g.InnerSweep, full)
		}
	} else {
		g.Fill = wedge(origin, outer, start, sweep, full)
		if ar > 0 {
			g.Arc = wedge(origin, ar, start, sweep, full)
		}
	}
	g.Stroke = clonePath(g.Fill)

	g.Center = origin.Add(polar((r+inner)/2, mid))
	return g
}

// wedge returns a circular sector closed through its apex c.
func wedge(c vec.Vec2, r, start, sweep float64, full bool) *path.Data {
	p := &path.Data{}
	if full {
		appendArc(p, c, r, start, sweep, true)
		return p.Close()
	}
	p.MoveTo(c)
	appendArc(p, c, r, start, sweep, false)
	return p.Close()
}

// ring returns an annular sector. The inner edge has its own sweep,
// centred on the same bisector as the outer edge.
func ring(c vec.Vec2, outer, inner, start, sweep, innerSweep float64, full bool) *path.Data {
	p := &path.Data{}
	appendArc(p, c, outer, start, sweep, true)
	if full {
		// second subpath with opposite orientation leaves the hole unfilled
		p.Close()
		appendArc(p, c, inner, start+sweep, -sweep, true)
		return p.Close()
	}
	mid := start + sweep/2
	innerStart := mid - innerSweep/2
	appendArc(p, c, inner, innerStart+innerSweep, -innerSweep, false)
	return p.Close()
}

// appendArc adds a circular arc around c to p. Angles are in degrees.
// If move is false, the arc is connected to the current point by a line.
func appendArc(p *path.Data, c vec.Vec2, r, start, sweep float64, move bool) {
	arc := curve.Arc{
		Center:     curve.Pt(c.X, c.Y),
		Radii:      curve.Vec(r, r),
		StartAngle: radians(start),
		SweepAngle: radians(sweep),
	}
	for el := range arc.PathElements(Tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if move {
				p.MoveTo(toVec(el.P0))
			} else {
				p.LineTo(toVec(el.P0))
			}
		case curve.CubicToKind:
			p.CubeTo(toVec(el.P0), toVec(el.P1), toVec(el.P2))
		}
	}
}

func clonePath(p *path.Data) *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: slices.Clone(p.Coords),
	}
}

func toVec(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// polar returns the offset of length r in direction angle (degrees).
func polar(r, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(radians(angle))
	return vec.Vec2{X: r * cos, Y: r * sin}
}
