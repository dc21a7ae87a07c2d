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

import chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"

// Style holds the per-series configuration of a pie or doughnut.
// The zero value is not valid, use [NewStyle].
type Style struct {
	sliceOffset float64
	strokeWidth float64
	arcWidth    float64

	// Doughnut selects ring-shaped slices.
	Doughnut bool
}

// NewStyle returns the default style: no gutter between slices, no
// outline and an arc band of one pixel.
func NewStyle() Style {
	return Style{arcWidth: 1}
}

// SliceOffset returns the gutter between adjacent slices, in pixels.
func (s *Style) SliceOffset() float64 { return s.sliceOffset }

// StrokeWidth returns the width of the slice outline.
func (s *Style) StrokeWidth() float64 { return s.strokeWidth }

// ArcWidth returns the width of the band drawn along the outer arc.
func (s *Style) ArcWidth() float64 { return s.arcWidth }

// SetSliceOffset sets the gutter between adjacent slices, in pixels.
func (s *Style) SetSliceOffset(px float64) error {
	if !(px >= 0) {
		return chart.InvalidArgument("slice offset %g", px)
	}
	s.sliceOffset = px
	return nil
}

// SetStrokeWidth sets the width of the slice outline.
func (s *Style) SetStrokeWidth(w float64) error {
	if !(w >= 0) {
		return chart.InvalidArgument("stroke width %g", w)
	}
	s.strokeWidth = w
	return nil
}

// SetArcWidth sets the width of the band along the outer arc.
// The width must be positive.
func (s *Style) SetArcWidth(w float64) error {
	if !(w > 0) {
		return chart.InvalidArgument("arc width %g", w)
	}
	s.arcWidth = w
	return nil
}
