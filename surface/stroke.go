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

package surface

import (
	"iter"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// defaultFlatness is the curve approximation tolerance in pixels.
const defaultFlatness = 0.25

// Outline returns a fillable path covering the stroke of p. The result
// is meant to be filled with the nonzero winding rule; every subpath of
// the outline is closed.
//
// Subpaths without extent produce no outline.
func Outline(p *path.Data, s StrokeStyle, tolerance float64) *path.Data {
	out := &path.Data{}
	if p == nil || !(s.Width > 0) {
		return out
	}
	if tolerance <= 0 {
		tolerance = defaultFlatness
	}

	open := false
	for el := range curve.StrokePath(elements(p), s.curveStroke(), curve.StrokeOpts{}, tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				out.Close()
			}
			out.MoveTo(toVec(el.P0))
			open = true
		case curve.LineToKind:
			out.LineTo(toVec(el.P0))
		case curve.QuadToKind:
			out.QuadTo(toVec(el.P0), toVec(el.P1))
		case curve.CubicToKind:
			out.CubeTo(toVec(el.P0), toVec(el.P1), toVec(el.P2))
		case curve.ClosePathKind:
			if open {
				out.Close()
				open = false
			}
		}
	}
	if open {
		out.Close()
	}
	return out
}

// curveStroke converts s to the stroke description used for expansion.
func (s StrokeStyle) curveStroke() curve.Stroke {
	res := curve.Stroke{
		Width:      s.Width,
		MiterLimit: s.MiterLimit,
	}
	switch s.Join {
	case graphics.LineJoinMiter:
		res.Join = curve.MiterJoin
	case graphics.LineJoinRound:
		res.Join = curve.RoundJoin
	default:
		res.Join = curve.BevelJoin
	}
	switch s.Cap {
	case graphics.LineCapRound:
		res.StartCap = curve.RoundCap
	case graphics.LineCapSquare:
		res.StartCap = curve.SquareCap
	default:
		res.StartCap = curve.ButtCap
	}
	res.EndCap = res.StartCap
	return res
}

// elements returns the commands of p as curve path elements.
func elements(p *path.Data) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for cmd, pts := range p.Iter() {
			var el curve.PathElement
			switch cmd {
			case path.CmdMoveTo:
				el = curve.MoveTo(toPoint(pts[0]))
			case path.CmdLineTo:
				el = curve.LineTo(toPoint(pts[0]))
			case path.CmdQuadTo:
				el = curve.QuadTo(toPoint(pts[0]), toPoint(pts[1]))
			case path.CmdCubeTo:
				el = curve.CubicTo(toPoint(pts[0]), toPoint(pts[1]), toPoint(pts[2]))
			case path.CmdClose:
				el = curve.ClosePath()
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

func toPoint(v vec.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}

func toVec(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
