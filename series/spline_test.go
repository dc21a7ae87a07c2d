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

	"seehuhn.de/go/geom/vec"
)

func TestSampleCount(t *testing.T) {
	cases := []struct {
		distance float64
		want     int
	}{
		{0, 0},
		{0.5, 0},
		{1, 0},
		{2, 1},
		{10, 7},
		{100, 25},
		{1000, 32},
	}
	for _, tc := range cases {
		if got := SampleCount(tc.distance); got != tc.want {
			t.Errorf("SampleCount(%g) = %d, expected %d", tc.distance, got, tc.want)
		}
	}
}

func TestInterpolateCollinear(t *testing.T) {
	in := pts(0, 0, 100, 100, 200, 200, 300, 300)
	got := Interpolate(in, in[0], in[3])
	if len(got) <= len(in) {
		t.Fatalf("got %d points, expected more than %d", len(got), len(in))
	}
	for _, p := range got {
		if math.Abs(p.X-p.Y) > 1e-9 {
			t.Errorf("point %v is not on y = x", p)
		}
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	if got := Interpolate(nil, vec.Vec2{}, vec.Vec2{}); len(got) != 0 {
		t.Errorf("got %v for empty input", got)
	}

	one := pts(3, 4)
	diff(t, one, Interpolate(one, vec.Vec2{X: -10}, vec.Vec2{X: 10}))

	// two points: each point is its own neighbour, so the curve is a
	// straight line from the first point to the second
	two := pts(0, 0, 100, 50)
	got := Interpolate(two, vec.Vec2{X: -100, Y: 500}, vec.Vec2{X: 500, Y: -100})
	if len(got) != SampleCount(two[1].Sub(two[0]).Length()) {
		t.Errorf("got %d points, expected %d", len(got), SampleCount(two[1].Sub(two[0]).Length()))
	}
	for _, p := range got {
		if math.Abs(p.Y-p.X/2) > 1e-9 {
			t.Errorf("point %v is not on the line", p)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	in := pts(0, 100, 40, 20, 80, 160, 120, 60, 160, 90)
	got := Interpolate(in, in[0], in[len(in)-1])

	diff(t, in[0], got[0])
	diff(t, in[len(in)-1], got[len(got)-1])

	// every input point appears exactly once, in order
	j := 0
	for _, p := range got {
		if j < len(in) && p == in[j] {
			j++
		}
	}
	if j != len(in) {
		t.Errorf("found %d of %d input points in the output", j, len(in))
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("point %d repeats %v", i, got[i])
		}
	}
}

func TestInterpolateNeighbours(t *testing.T) {
	in := pts(100, 100, 200, 100)
	flat := Interpolate(append([]vec.Vec2{}, in...), in[0], in[1])

	// with a neighbour far below, the curve bends away from it
	bent := Interpolate(in, vec.Vec2{X: 0, Y: 300}, vec.Vec2{X: 300, Y: 300})
	if len(bent) != len(flat) {
		t.Fatalf("got %d and %d points", len(bent), len(flat))
	}
	mid := bent[len(bent)/2]
	if mid.Y == 100 {
		t.Errorf("neighbours did not influence the curve: %v", mid)
	}
}

func TestSplineRendererUsesGapNeighbours(t *testing.T) {
	// the point after the gap pulls the end of the first segment
	in := points(pts(0, 100, 50, 100, 100, 100, 150, 0, 200, 300, 300, 300), 3)
	ctx := newContext(t, nil)
	ctx.Points = in

	segs := Split(in)
	withGap := SplineRenderer{}.TopPoints(segs[0], ctx)
	alone := SplineRenderer{}.TopPoints(segs[0], nil)

	if len(withGap) != len(alone) {
		t.Fatalf("got %d and %d points", len(withGap), len(alone))
	}
	changed := false
	for i := range alone {
		if withGap[i] != alone[i] {
			changed = true
		}
	}
	if !changed {
		t.Error("neighbour across the gap was ignored")
	}
}
