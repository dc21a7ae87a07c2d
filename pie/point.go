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

import "math"

// DataPoint is one slice of a pie series. Angles are in degrees and grow
// clockwise on screen, starting at the positive x-axis.
type DataPoint struct {
	Value      float64
	Normalized float64 // Value as a fraction of the series total, in [0, 1]

	StartAngle float64
	SweepAngle float64

	// OffsetFromCenter moves the slice outwards along its bisector, as a
	// fraction of the radius. Used for exploded or selected slices.
	OffsetFromCenter float64

	Empty bool
}

// MidAngle returns the angle bisecting the slice.
func (p DataPoint) MidAngle() float64 {
	return p.StartAngle + p.SweepAngle/2
}

// AngleRange is the part of the circle covered by a pie series.
type AngleRange struct {
	Start float64
	Sweep float64
}

// FullCircle covers the whole circle, starting at the positive x-axis.
var FullCircle = AngleRange{Start: 0, Sweep: 360}

// Partition converts values into contiguous slices covering r.
//
// Values which are NaN, infinite or not positive give empty slices with
// zero sweep. If no value is positive, all slices are empty.
func Partition(values []float64, r AngleRange) []DataPoint {
	total := 0.0
	for _, v := range values {
		if usable(v) {
			total += v
		}
	}

	res := make([]DataPoint, len(values))
	angle := r.Start
	for i, v := range values {
		p := &res[i]
		p.Value = v
		p.StartAngle = angle
		if !usable(v) || total == 0 {
			p.Empty = true
			continue
		}
		p.Normalized = v / total
		p.SweepAngle = p.Normalized * r.Sweep
		angle += p.SweepAngle
	}
	return res
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
