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

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// Renderer converts segments of a series into path geometry.
//
// Renderers are stateless; all per-pass state lives in the
// [RenderContext].
type Renderer interface {
	// TopPoints returns the vertices of the upper boundary of seg.
	TopPoints(seg Segment, ctx *RenderContext) []vec.Vec2

	// BuildPath returns the main path of seg: the polyline for line
	// series, the closed fill region for area series.
	BuildPath(seg Segment, ctx *RenderContext) *path.Data
}

// Stroker is implemented by renderers which outline their series.
type Stroker interface {
	Renderer
	StrokePath(top []vec.Vec2, ctx *RenderContext) *path.Data
}

// Filler is implemented by renderers which fill the region below their
// series.
type Filler interface {
	Renderer
	FillPath(seg Segment, top []vec.Vec2, ctx *RenderContext) *path.Data
}

// Mode selects one of the built-in renderers.
type Mode uint8

// These are the supported series modes.
const (
	ModeLine Mode = iota
	ModeSpline
	ModeArea
	ModeSplineArea
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeSpline:
		return "spline"
	case ModeArea:
		return "area"
	case ModeSplineArea:
		return "splinearea"
	default:
		return "invalid"
	}
}

// ParseMode returns the mode with the given name, as returned by
// [Mode.String].
func ParseMode(name string) (Mode, error) {
	for m := ModeLine; m <= ModeSplineArea; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, chart.InvalidArgument("series mode %q", name)
}

// ModeRenderer returns the renderer for mode m.
func ModeRenderer(m Mode) (Renderer, error) {
	switch m {
	case ModeLine:
		return LineRenderer{}, nil
	case ModeSpline:
		return SplineRenderer{}, nil
	case ModeArea:
		return AreaRenderer{}, nil
	case ModeSplineArea:
		return AreaRenderer{Spline: true}, nil
	default:
		return nil, chart.InvalidArgument("series mode %d", m)
	}
}

var (
	_ Stroker = LineRenderer{}
	_ Stroker = SplineRenderer{}
	_ Stroker = AreaRenderer{}
	_ Filler  = AreaRenderer{}
)
