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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

func TestPassStacked(t *testing.T) {
	var p Pass
	require.NoError(t, p.Add(Series{
		Name:     "bottom",
		Points:   points(pts(0, 100, 10, 90, 20, 80, 30, 90, 40, 100)),
		Renderer: AreaRenderer{},
	}))
	require.NoError(t, p.Add(Series{
		Name:     "top",
		Points:   points(pts(0, 0, 10, 50, 20, 40, 30, 50, 40, 0), 0, 4),
		Renderer: AreaRenderer{},
		Stacked:  true,
	}))
	assert.Equal(t, 2, p.Len())

	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)
	require.Len(t, res, 2)

	diff(t, pts(0, 100, 10, 90, 20, 80, 30, 90, 40, 100), res[0].Surface)
	require.Len(t, res[1].Fills, 1)
	diff(t, pts(10, 50, 20, 40, 30, 50, 30, 90, 20, 80, 10, 90), res[1].Fills[0].Coords)

	// leading and trailing gaps follow the bottom series
	diff(t, pts(0, 100, 10, 90, 10, 50, 20, 40, 30, 50, 30, 90, 40, 100), res[1].Surface)
}

func TestPassUnstackedGap(t *testing.T) {
	var p Pass
	require.NoError(t, p.Add(Series{
		Name:     "gappy",
		Points:   points(pts(0, 100, 10, 90, 20, 0, 30, 90, 40, 100), 2),
		Renderer: AreaRenderer{},
	}))
	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)

	r := res[0]
	assert.Len(t, r.Segments, 2)
	assert.Len(t, r.Fills, 2)
	assert.Len(t, r.Lines, 2)
	diff(t, pts(0, 100, 10, 90, 10, 200, 20, 200, 30, 200, 30, 90, 40, 100), r.Surface)
}

func TestPassStackedSplineKeepsPointBefore(t *testing.T) {
	bottom := pts(0, 100, 10, 90, 20, 80, 30, 90, 40, 100)
	cases := []struct {
		r    Renderer
		last vec.Vec2 // last point of the bottom boundary walk
	}{
		{AreaRenderer{}, vec.Vec2{X: 10, Y: 90}},
		{AreaRenderer{Spline: true}, vec.Vec2{X: 0, Y: 100}},
	}
	for _, tc := range cases {
		var p Pass
		require.NoError(t, p.Add(Series{Points: points(bottom), Renderer: AreaRenderer{}}))
		require.NoError(t, p.Add(Series{
			Points:   points(pts(0, 0, 10, 50, 20, 40, 30, 50, 40, 0), 0),
			Renderer: tc.r,
			Stacked:  true,
		}))
		res, err := p.Layout(ContextConfig{PlotArea: testArea})
		require.NoError(t, err)
		require.Len(t, res[1].Fills, 1)

		coords := res[1].Fills[0].Coords
		diff(t, vec.Vec2{X: 10, Y: 50}, coords[0], approx)
		diff(t, tc.last, coords[len(coords)-1])
		for _, pt := range coords {
			if pt.Y >= 80 {
				assert.Contains(t, bottom, pt)
			}
		}
	}
}

func TestPassStackedGapOverBaselineDrops(t *testing.T) {
	var p Pass
	require.NoError(t, p.Add(Series{
		Name:     "gappy",
		Points:   points(pts(0, 100, 10, 90, 20, 0, 30, 90, 40, 100), 2),
		Renderer: AreaRenderer{},
	}))
	require.NoError(t, p.Add(Series{
		Name:     "stacked",
		Points:   points(pts(0, 80, 10, 70, 20, 0, 30, 70, 40, 80), 2),
		Renderer: AreaRenderer{},
		Stacked:  true,
	}))
	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)

	// the first series drops to the baseline at 10 and 30
	diff(t, pts(0, 100, 10, 90, 10, 200, 20, 200, 30, 200, 30, 90, 40, 100), res[0].Surface)

	// Copying the gap puts three points at 10 and at 30 onto the
	// surface; the middle one is removed each time.
	diff(t, pts(0, 80, 10, 70, 10, 200, 20, 200, 30, 200, 30, 70, 40, 80), res[1].Surface)

	require.Len(t, res[1].Fills, 2)
	diff(t, pts(0, 80, 10, 70, 10, 90, 0, 100), res[1].Fills[0].Coords)
	// the walk starts at (30, 200); it shares its key with (30, 90) and is dropped
	diff(t, pts(30, 70, 40, 80, 40, 100, 30, 90), res[1].Fills[1].Coords)
}

func TestPassFirstSeriesNeverStacks(t *testing.T) {
	var p Pass
	require.NoError(t, p.Add(Series{
		Points:   points(pts(0, 100, 10, 90)),
		Renderer: AreaRenderer{},
		Stacked:  true,
	}))
	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)
	diff(t, pts(0, 100, 10, 90, 10, 200, 0, 200), res[0].Fills[0].Coords)
}

func TestPassLineSeries(t *testing.T) {
	var p Pass
	require.NoError(t, p.Add(Series{
		Points:   points(pts(0, 100, 10, 90, 20, 80)),
		Renderer: LineRenderer{},
	}))
	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)
	assert.Empty(t, res[0].Fills)
	require.Len(t, res[0].Lines, 1)
	diff(t, pts(0, 100, 10, 90, 20, 80), res[0].Lines[0].Coords)
}

func TestPassDescending(t *testing.T) {
	// category coordinates decrease along the series
	var p Pass
	require.NoError(t, p.Add(Series{
		Points:   points(pts(40, 100, 30, 90, 20, 80, 10, 90, 0, 100)),
		Renderer: AreaRenderer{},
	}))
	require.NoError(t, p.Add(Series{
		Points:   points(pts(40, 0, 30, 50, 20, 40, 10, 50, 0, 0), 0, 4),
		Renderer: AreaRenderer{},
		Stacked:  true,
	}))
	res, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)
	diff(t, pts(30, 50, 20, 40, 10, 50, 10, 90, 20, 80, 30, 90), res[1].Fills[0].Coords)
}

func TestPassErrors(t *testing.T) {
	var p Pass
	err := p.Add(Series{Name: "broken"})
	require.ErrorIs(t, err, chart.ErrInvalidArgument)

	require.NoError(t, p.Add(Series{Renderer: LineRenderer{}}))
	_, err = p.Layout(ContextConfig{})
	require.ErrorIs(t, err, chart.ErrInvalidArgument)
}

func TestPassLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	chart.SetLogger(zap.New(core))
	defer chart.SetLogger(nil)

	var p Pass
	require.NoError(t, p.Add(Series{
		Name:     "logged",
		Points:   points(pts(0, 1, 2, 3)),
		Renderer: LineRenderer{},
	}))
	_, err := p.Layout(ContextConfig{PlotArea: testArea})
	require.NoError(t, err)

	entries := logs.FilterField(zap.String("series", "logged")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "series laid out", entries[0].Message)
}

func TestModeRenderer(t *testing.T) {
	for m := ModeLine; m <= ModeSplineArea; m++ {
		r, err := ModeRenderer(m)
		require.NoError(t, err, m.String())
		_, fills := r.(Filler)
		assert.Equal(t, m == ModeArea || m == ModeSplineArea, fills, m.String())

		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ModeRenderer(ModeSplineArea + 1)
	require.ErrorIs(t, err, chart.ErrInvalidArgument)
	_, err = ParseMode("bubble")
	require.ErrorIs(t, err, chart.ErrInvalidArgument)
}

func TestProject(t *testing.T) {
	got := Project([]float64{0, 5, math.NaN(), 10}, testArea, Axis{Min: 0, Max: 10}, Vertical)
	require.Len(t, got, 4)
	assert.InDelta(t, 12.5, got[0].Pos.X, 1e-9)
	assert.InDelta(t, 200, got[0].Pos.Y, 1e-9)
	assert.InDelta(t, 100, got[1].Pos.Y, 1e-9)
	assert.True(t, got[2].Empty)
	assert.InDelta(t, 62.5, got[2].Pos.X, 1e-9)
	assert.InDelta(t, 0, got[3].Pos.Y, 1e-9)
	assert.Equal(t, 3, got[3].Index)

	h := Project([]float64{5}, testArea, Axis{Min: 0, Max: 10}, Horizontal)
	assert.InDelta(t, 50, h[0].Pos.X, 1e-9)
	assert.InDelta(t, 100, h[0].Pos.Y, 1e-9)
}

func TestAccumulate(t *testing.T) {
	stacked, total := Accumulate([]float64{1, 2, 3}, []float64{1, math.NaN(), 1})
	assert.Equal(t, 2.0, stacked[0])
	assert.True(t, math.IsNaN(stacked[1]))
	assert.Equal(t, 4.0, stacked[2])
	assert.Equal(t, []float64{2, 2, 4}, total)
}
