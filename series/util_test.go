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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pts builds a list of vectors from x, y pairs.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// points builds visible data points at the given positions. Points at
// the indices listed in empty are marked as gaps.
func points(pos []vec.Vec2, empty ...int) []DataPoint {
	res := make([]DataPoint, len(pos))
	for i, p := range pos {
		res[i] = DataPoint{Pos: p, Visible: true, Index: i}
	}
	for _, i := range empty {
		res[i].Empty = true
		res[i].Visible = false
	}
	return res
}

var testArea = rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 200}

func newContext(t *testing.T, previous []vec.Vec2) *RenderContext {
	t.Helper()
	ctx, err := NewRenderContext(ContextConfig{
		PlotArea: testArea,
		Stacked:  previous != nil,
	}, previous)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}
