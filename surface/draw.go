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
	"image/color"

	"seehuhn.de/go/geom/path"

	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/pie"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/series"
)

// SeriesStyle holds the resolved colours of a cartesian series.
// A nil colour disables the corresponding part.
type SeriesStyle struct {
	Fill   color.Color
	Stroke color.Color
	Line   StrokeStyle
}

// DrawSeries draws the fills and then the lines of a laid out series.
func DrawSeries(s Surface, res series.Result, style SeriesStyle) {
	if style.Fill != nil {
		for _, p := range res.Fills {
			if !empty(p) {
				s.Fill(p, style.Fill)
			}
		}
	}
	if style.Stroke != nil && style.Line.Width > 0 {
		for _, p := range res.Lines {
			if !empty(p) {
				s.Stroke(p, style.Line, style.Stroke)
			}
		}
	}
}

// SliceStyle holds the resolved colours of a pie series.
type SliceStyle struct {
	// Fills are used for the slices in turn.
	Fills []color.Color

	// Stroke outlines every slice, if StrokeWidth is positive.
	Stroke      color.Color
	StrokeWidth float64

	// Arc draws a band along the outer edge, if ArcWidth is positive.
	Arc      color.Color
	ArcWidth float64
}

// DrawSlices draws the slices of a laid out pie series. Empty slices
// are skipped but still consume a fill colour.
func DrawSlices(s Surface, slices []pie.Geometry, style SliceStyle) {
	for i := range slices {
		g := &slices[i]
		if g.IsEmpty() {
			continue
		}
		if n := len(style.Fills); n > 0 && style.Fills[i%n] != nil {
			s.Fill(g.Fill, style.Fills[i%n])
		}
		if style.Stroke != nil && style.StrokeWidth > 0 {
			s.Stroke(g.Stroke, NewStrokeStyle(style.StrokeWidth), style.Stroke)
		}
		if style.Arc != nil && style.ArcWidth > 0 && !empty(g.Arc) {
			s.Stroke(g.Arc, NewStrokeStyle(style.ArcWidth), style.Arc)
		}
	}
}

func empty(p *path.Data) bool {
	return p == nil || len(p.Cmds) == 0
}
