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

import "seehuhn.de/go/geom/vec"

// Split divides points into segments of consecutive non-empty points.
//
// Runs consisting of a single point are dropped, since a single point
// cannot form a line. The returned segments share storage with points.
func Split(points []DataPoint) []Segment {
	var res []Segment

	start := -1
	commit := func(end int) {
		if start >= 0 && end-start > 1 {
			res = append(res, Segment{
				Start:  points[start].Index,
				Points: points[start:end:end],
			})
		}
		start = -1
	}

	for i, p := range points {
		if p.Empty {
			commit(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	commit(len(points))

	return res
}

// Neighbours returns the nearest non-empty points before and after seg,
// looking across gaps. If there is no such point, the first (respectively
// last) point of the segment is returned instead.
//
// The points of seg must be a sub-slice of points at the position given
// by the point indices.
func Neighbours(points []DataPoint, seg Segment) (before, after vec.Vec2) {
	before, after = seg.First(), seg.Last()

	first := indexOf(points, seg.Start)
	if first < 0 {
		return before, after
	}
	for i := first - 1; i >= 0; i-- {
		if !points[i].Empty {
			before = points[i].Pos
			break
		}
	}
	for i := first + len(seg.Points); i < len(points); i++ {
		if !points[i].Empty {
			after = points[i].Pos
			break
		}
	}
	return before, after
}

// indexOf returns the slice position of the point with the given index.
// Points are normally stored at their own index, so this is a direct
// lookup in the common case.
func indexOf(points []DataPoint, index int) int {
	if index >= 0 && index < len(points) && points[index].Index == index {
		return index
	}
	for i, p := range points {
		if p.Index == index {
			return i
		}
	}
	return -1
}
