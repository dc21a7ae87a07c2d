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

var areaCases = []Chart{
	{
		Name:   "basic",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Max:    10,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "area", Values: []float64{3, 5, 4, 7, 6}, Fill: "#aec7e8", Stroke: "#1f77b4"},
			},
		},
	},
	{
		Name:   "origin",
		Width:  200,
		Height: 120,
		Cartesian: &Cartesian{
			Min:    -5,
			Max:    5,
			Origin: 0.5,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "area", Values: []float64{-2, 3, 1, -4, 2}, Fill: "#aec7e8"},
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
				{Name: "a", Mode: "area", Values: []float64{3, 5, nan, 7, 6}, Fill: "#aec7e8"},
				{Name: "b", Mode: "area", Stacked: true, Values: []float64{2, 2, 2, 2, 2}, Fill: "#ffbb78"},
			},
		},
	},
	{
		Name:   "stacked",
		Width:  200,
		Height: 160,
		Cartesian: &Cartesian{
			Max:    20,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "area", Values: []float64{3, 5, 4, 7, 6}, Fill: "#aec7e8"},
				{Name: "b", Mode: "area", Stacked: true, Values: []float64{2, 4, 3, 2, 5}, Fill: "#ffbb78"},
				{Name: "c", Mode: "area", Stacked: true, Values: []float64{4, 1, 5, 3, 2}, Fill: "#98df8a"},
			},
		},
	},
	{
		Name:   "stacked_gap",
		Width:  200,
		Height: 160,
		Cartesian: &Cartesian{
			Max:    20,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "area", Values: []float64{3, 5, 4, 7, 6, 5}, Fill: "#aec7e8"},
				{Name: "b", Mode: "area", Stacked: true, Values: []float64{nan, 4, 3, nan, 5, 2}, Fill: "#ffbb78"},
				{Name: "c", Mode: "area", Stacked: true, Values: []float64{4, 1, 5, 3, 2, 3}, Fill: "#98df8a"},
			},
		},
	},
	{
		Name:   "spline_stacked",
		Width:  200,
		Height: 160,
		Cartesian: &Cartesian{
			Max:    20,
			Margin: 10,
			Series: []Series{
				{Name: "a", Mode: "splinearea", Values: []float64{3, 5, 4, 7, 6}, Fill: "#aec7e8"},
				{Name: "b", Mode: "splinearea", Stacked: true, Values: []float64{2, 4, 3, 2, 5}, Fill: "#ffbb78"},
			},
		},
	},
	{
		Name:   "horizontal_stacked",
		Width:  160,
		Height: 200,
		Cartesian: &Cartesian{
			Horizontal: true,
			Max:        20,
			Margin:     10,
			Series: []Series{
				{Name: "a", Mode: "area", Values: []float64{3, 5, 4, 7, 6}, Fill: "#aec7e8"},
				{Name: "b", Mode: "area", Stacked: true, Values: []float64{2, 4, 3, 2, 5}, Fill: "#ffbb78"},
			},
		},
	},
}
