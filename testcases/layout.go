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

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/pie"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/series"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/surface"
)

// Geometry is a chart after layout, ready to be drawn.
type Geometry struct {
	Chart      *Chart
	Background color.Color

	Series      []series.Result
	SeriesStyle []surface.SeriesStyle

	Slices     []pie.Geometry
	SliceStyle surface.SliceStyle
}

// Draw paints the chart onto s. The background is not painted.
func (g *Geometry) Draw(s surface.Surface) {
	for i, res := range g.Series {
		surface.DrawSeries(s, res, g.SeriesStyle[i])
	}
	if g.Slices != nil {
		surface.DrawSlices(s, g.Slices, g.SliceStyle)
	}
}

// Layout computes the geometry of c.
func (c *Chart) Layout() (*Geometry, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, chart.InvalidArgument("chart %q: canvas size %dx%d", c.Name, c.Width, c.Height)
	}
	bg, err := parseColor(c.Background, color.White)
	if err != nil {
		return nil, errors.Wrapf(err, "chart %q", c.Name)
	}
	g := &Geometry{Chart: c, Background: bg}

	switch {
	case c.Cartesian != nil && c.Pie != nil:
		err = chart.InvalidArgument("chart %q is both cartesian and pie", c.Name)
	case c.Cartesian != nil:
		err = c.layoutCartesian(g)
	case c.Pie != nil:
		err = c.layoutPie(g)
	default:
		err = chart.InvalidArgument("chart %q has no series", c.Name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "chart %q", c.Name)
	}
	return g, nil
}

func (c *Chart) layoutCartesian(g *Geometry) error {
	cc := c.Cartesian
	area := rect.Rect{
		LLx: cc.Margin,
		LLy: cc.Margin,
		URx: float64(c.Width) - cc.Margin,
		URy: float64(c.Height) - cc.Margin,
	}
	dir := series.Vertical
	if cc.Horizontal {
		dir = series.Horizontal
	}
	cfg := series.ContextConfig{
		PlotArea:  area,
		Direction: dir,
		Pan:       vec.Vec2{X: cc.Pan[0], Y: cc.Pan[1]},
		Origin:    cc.Origin,
	}
	if cc.Zoom != 0 {
		cfg.Zoom = vec.Vec2{X: cc.Zoom, Y: cc.Zoom}
	}

	// Points are projected into the effective plot area, so that zoom
	// and pan move the data together with the baseline.
	eff, err := series.NewRenderContext(cfg, nil)
	if err != nil {
		return err
	}
	axis := series.Axis{Min: cc.Min, Max: cc.Max}

	pass := &series.Pass{}
	var total []float64
	for i, s := range cc.Series {
		if !finite(s.Values) {
			return chart.InvalidArgument("series %q has infinite values", s.Name)
		}
		mode, err := series.ParseMode(s.Mode)
		if err != nil {
			return errors.Wrapf(err, "series %q", s.Name)
		}
		r, err := series.ModeRenderer(mode)
		if err != nil {
			return err
		}

		values := s.Values
		stacked := s.Stacked && i > 0
		if stacked {
			values, total = series.Accumulate(total, s.Values)
		} else {
			_, total = series.Accumulate(nil, s.Values)
		}

		err = pass.Add(series.Series{
			Name:     s.Name,
			Points:   series.Project(values, eff.PlotArea, axis, dir),
			Renderer: r,
			Stacked:  stacked,
		})
		if err != nil {
			return err
		}

		style, err := s.style(mode)
		if err != nil {
			return errors.Wrapf(err, "series %q", s.Name)
		}
		g.SeriesStyle = append(g.SeriesStyle, style)
	}

	g.Series, err = pass.Layout(cfg)
	return err
}

func (s *Series) style(mode series.Mode) (surface.SeriesStyle, error) {
	var res surface.SeriesStyle
	var err error

	if mode == series.ModeArea || mode == series.ModeSplineArea {
		res.Fill, err = parseColor(s.Fill, color.Gray{Y: 0xc0})
		if err != nil {
			return res, err
		}
	}
	res.Stroke, err = parseColor(s.Stroke, color.Black)
	if err != nil {
		return res, err
	}
	width := s.LineWidth
	if width == 0 {
		width = 2
	}
	res.Line = surface.NewStrokeStyle(width)
	return res, res.Line.Validate()
}

func (c *Chart) layoutPie(g *Geometry) error {
	pc := c.Pie
	factor := pc.RadiusFactor
	if factor == 0 {
		factor = 1
	}
	ctx, err := pie.NewUpdateContext(rect.Rect{URx: float64(c.Width), URy: float64(c.Height)}, factor, pc.StartAngle)
	if err != nil {
		return err
	}
	if pc.InnerRadiusFactor != nil {
		if err := ctx.SetInnerRadiusFactor(*pc.InnerRadiusFactor); err != nil {
			return err
		}
	}

	style := pie.NewStyle()
	style.Doughnut = pc.Doughnut
	if err := style.SetSliceOffset(pc.SliceOffset); err != nil {
		return err
	}
	if err := style.SetStrokeWidth(pc.StrokeWidth); err != nil {
		return err
	}
	if pc.ArcWidth != 0 {
		if err := style.SetArcWidth(pc.ArcWidth); err != nil {
			return err
		}
	}

	points := pie.Partition(pc.Values, ctx.Range())
	if !(pc.Explode >= 0) {
		return chart.InvalidArgument("explode offset %g", pc.Explode)
	}
	for _, i := range pc.Exploded {
		if i < 0 || i >= len(points) {
			return chart.InvalidArgument("exploded slice %d out of range", i)
		}
		points[i].OffsetFromCenter = pc.Explode
	}
	g.Slices = pie.NewEngine(style).Layout(points, ctx)

	ss := surface.SliceStyle{
		StrokeWidth: pc.StrokeWidth,
		ArcWidth:    pc.ArcWidth,
	}
	for _, name := range pc.Colors {
		col, err := parseColor(name, nil)
		if err != nil {
			return err
		}
		ss.Fills = append(ss.Fills, col)
	}
	if len(ss.Fills) == 0 {
		ss.Fills = defaultPalette
	}
	if ss.Stroke, err = parseColor(pc.Stroke, color.White); err != nil {
		return err
	}
	if ss.Arc, err = parseColor(pc.Arc, color.Black); err != nil {
		return err
	}
	g.SliceStyle = ss
	return nil
}

// defaultPalette is used for pie slices without explicit colours.
var defaultPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// parseColor parses colours of the form #rgb and #rrggbb.
// The empty string gives def.
func parseColor(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	if s[0] != '#' || (len(s) != 4 && len(s) != 7) {
		return nil, chart.InvalidArgument("colour %q", s)
	}
	var digits [6]uint8
	for i, c := range s[1:] {
		switch {
		case '0' <= c && c <= '9':
			digits[i] = uint8(c - '0')
		case 'a' <= c && c <= 'f':
			digits[i] = uint8(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			digits[i] = uint8(c - 'A' + 10)
		default:
			return nil, chart.InvalidArgument("colour %q", s)
		}
	}
	if len(s) == 4 {
		return color.RGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 0xff}, nil
	}
	return color.RGBA{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
		A: 0xff,
	}, nil
}

// finite reports whether all values are finite or NaN gaps.
func finite(values []float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
