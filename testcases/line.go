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

package testcases

var lineCases = []Chart{
	{
		Name:   "basic",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "line", Values: []float64{3, 5, 4, 7, 6, 8}},
			},
		},
	},
	{
		Name:   "gap",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Series: []Series{
				// the isolated 7 does not form a segment
				{Name: "a", Mode: "line", Values: []float64{3, 5, nan, 7, nan, 6, 4, 2}},
			},
		},
	},
	{
		Name:   "spline",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "spline", Values: []float64{3, 7, 2, 8, 4, 6}, Stroke: "#1f77b4"},
			},
		},
	},
	{
		Name:   "spline_gap",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "spline", Values: []float64{3, 7, 2, nan, 8, 4, 6}, Stroke: "#1f77b4"},
			},
		},
	},
	{
		Name:   "horizontal",
		Width:  120,
		Height: 200,
		Cartesian: &Cartesian{
			Horizontal: true,
			Max:        10,
			Margin:     10,
			Series: []Series{
				{Name: "a", Mode: "line", Values: []float64{3, 5, 4, 7, 6, 8}},
				{Name: "b", Mode: "spline", Values: []float64{6, 2, 5, 3, 8, 4}, Stroke: "#d62728"},
			},
		},
	},
	{
		Name:   "zoom",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Zoom:   2,
			Pan:    [2]float64{-90, -50},
			Series: []Series{
				{Name: "a", Mode: "line", Values: []float64{3, 5, 4, 7, 6, 8}, LineWidth: 3},
			},
		},
	},
}
