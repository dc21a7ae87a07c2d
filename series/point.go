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

// DataPoint is one plotted point of a series, already mapped to plot space.
// The engine never modifies data points.
type DataPoint struct {
	Pos     vec.Vec2 // position in pixels
	Empty   bool     // gap marker, the point carries no value
	Visible bool     // false for points clipped away by zoom or pan
	Index   int      // position in the owning series
}

// Segment is a maximal run of at least two consecutive non-empty points.
type Segment struct {
	Start  int // index of the first point
	Points []DataPoint
}

// End returns the index of the last point of the segment.
func (s Segment) End() int {
	return s.Start + len(s.Points) - 1
}

// First returns the position of the first point.
func (s Segment) First() vec.Vec2 {
	return s.Points[0].Pos
}

// Last returns the position of the last point.
func (s Segment) Last() vec.Vec2 {
	return s.Points[len(s.Points)-1].Pos
}

// Positions returns the positions of all points of the segment.
func (s Segment) Positions() []vec.Vec2 {
	res := make([]vec.Vec2, len(s.Points))
	for i, p := range s.Points {
		res[i] = p.Pos
	}
	return res
}
