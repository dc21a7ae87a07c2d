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

var pieCases = []Chart{
	{
		Name:   "basic",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			Values:       []float64{1, 1, 2},
		},
	},
	{
		Name:   "gutter",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			StartAngle:   -90,
			SliceOffset:  4,
			StrokeWidth:  2,
			Values:       []float64{3, 1, 2, 4},
		},
	},
	{
		Name:   "exploded",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.8,
			Values:       []float64{3, 1, 2, 4},
			Exploded:     []int{1},
			Explode:      0.1,
		},
	},
	{
		Name:   "arc",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			StrokeWidth:  1,
			ArcWidth:     4,
			Values:       []float64{2, 3, 5},
			Arc:          "#333",
		},
	},
	{
		Name:   "single",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			SliceOffset:  4,
			Values:       []float64{5},
		},
	},
	{
		Name:   "empty_slice",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			Values:       []float64{2, 0, 3},
		},
	},
	{
		Name:   "doughnut",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			Doughnut:     true,
			Values:       []float64{1, 1, 2},
		},
	},
	{
		Name:   "doughnut_gutter",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor:      0.9,
			Doughnut:          true,
			InnerRadiusFactor: ref(0.6),
			SliceOffset:       3,
			StrokeWidth:       1,
			ArcWidth:          3,
			Values:            []float64{3, 1, 2, 4},
		},
	},
	{
		Name:   "doughnut_full",
		Width:  120,
		Height: 120,
		Pie: &Pie{
			RadiusFactor: 0.9,
			Doughnut:     true,
			Values:       []float64{1},
		},
	},
}
