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

// Chart describes a single chart scenario.
//
// Exactly one of Cartesian and Pie is set. Charts can be written by hand
// in YAML, see [Load].
type Chart struct {
	Name   string `yaml:"name"`   // lowercase a-z, 0-9 and _ only
	Width  int    `yaml:"width"`  // canvas width in pixels
	Height int    `yaml:"height"` // canvas height in pixels

	// Background is the canvas colour, white if empty.
	Background string `yaml:"background,omitempty"`

	Cartesian *Cartesian `yaml:"cartesian,omitempty"`
	Pie       *Pie       `yaml:"pie,omitempty"`
}

// Cartesian is a group of series sharing a category axis and a value axis.
type Cartesian struct {
	Horizontal bool    `yaml:"horizontal,omitempty"`
	Min        float64 `yaml:"min"` // value axis range
	Max        float64 `yaml:"max"`

	// Origin is the position of the value axis origin as a fraction of
	// the plot area.
	Origin float64 `yaml:"origin,omitempty"`

	Zoom float64    `yaml:"zoom,omitempty"` // 0 means no zoom
	Pan  [2]float64 `yaml:"pan,flow,omitempty"`

	// Margin is the distance between the canvas edge and the plot area.
	Margin float64 `yaml:"margin,omitempty"`

	Series []Series `yaml:"series"`
}

// Series is one series of a cartesian chart.
type Series struct {
	Name string `yaml:"name"`

	// Mode is one of line, spline, area and splinearea.
	Mode string `yaml:"mode"`

	// Stacked series are drawn on top of the previous series.
	Stacked bool `yaml:"stacked,omitempty"`

	// Values holds one value per category. NaN (.nan in YAML) marks a gap.
	Values []float64 `yaml:"values,flow"`

	Fill      string  `yaml:"fill,omitempty"`
	Stroke    string  `yaml:"stroke,omitempty"`
	LineWidth float64 `yaml:"line_width,omitempty"`
}

// Pie is a pie or doughnut chart.
type Pie struct {
	RadiusFactor float64 `yaml:"radius_factor,omitempty"` // 0 means 1
	StartAngle   float64 `yaml:"start_angle,omitempty"`

	Doughnut          bool     `yaml:"doughnut,omitempty"`
	InnerRadiusFactor *float64 `yaml:"inner_radius_factor,omitempty"` // nil means default

	SliceOffset float64 `yaml:"slice_offset,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty"`
	ArcWidth    float64 `yaml:"arc_width,omitempty"` // 0 means no arc band

	Values []float64 `yaml:"values,flow"`

	// Exploded lists the slices moved outwards by Explode times the radius.
	Exploded []int   `yaml:"exploded,flow,omitempty"`
	Explode  float64 `yaml:"explode,omitempty"`

	Colors []string `yaml:"colors,flow"`
	Stroke string   `yaml:"stroke,omitempty"`
	Arc    string   `yaml:"arc,omitempty"`
}
