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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Axis is the value range mapped onto the plot area.
type Axis struct {
	Min, Max float64
}

// Project maps category values to data points inside area.
//
// Category i is placed at the centre of the i-th of len(values) equal
// bands along the category axis. Values are mapped linearly so that
// axis.Min lies on the bottom (vertical) or left (horizontal) edge of
// area. NaN values become empty points; their category coordinate is
// still set.
func Project(values []float64, area rect.Rect, axis Axis, dir Direction) []DataPoint {
	res := make([]DataPoint, len(values))
	if len(values) == 0 {
		return res
	}

	span := axis.Max - axis.Min
	if span == 0 {
		span = 1
	}
	width := area.URx - area.LLx
	height := area.URy - area.LLy

	for i, v := range values {
		frac := (float64(i) + 0.5) / float64(len(values))
		var k, val float64
		if dir == Horizontal {
			k = area.LLy + frac*height
			val = area.LLx + (v-axis.Min)/span*width
		} else {
			k = area.LLx + frac*width
			val = area.URy - (v-axis.Min)/span*height
		}
		empty := math.IsNaN(v)
		if empty {
			val = 0
		}
		res[i] = DataPoint{
			Pos:     dir.at(k, val),
			Empty:   empty,
			Visible: !empty,
			Index:   i,
		}
	}
	return res
}

// Accumulate returns the stacked values of a series on top of base.
// Empty (NaN) values stay empty but do not interrupt the stack: the
// running total is carried through unchanged. Missing base values
// count as zero.
func Accumulate(base, values []float64) (stacked, total []float64) {
	stacked = make([]float64, len(values))
	total = make([]float64, len(values))
	for i, v := range values {
		b := 0.0
		if i < len(base) && !math.IsNaN(base[i]) {
			b = base[i]
		}
		if math.IsNaN(v) {
			stacked[i] = math.NaN()
			total[i] = b
			continue
		}
		stacked[i] = b + v
		total[i] = b + v
	}
	return stacked, total
}
