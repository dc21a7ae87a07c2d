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

import "testing"

func TestLinePointsVisibility(t *testing.T) {
	in := points(pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5))
	for i := range in {
		in[i].Visible = false
	}
	in[2].Visible = true

	seg := Split(in)[0]
	got := LinePoints(seg)
	diff(t, pts(1, 1, 2, 2, 3, 3), got)
}

func TestLinePointsAllVisible(t *testing.T) {
	in := points(pts(0, 5, 1, 4, 2, 3))
	got := LinePoints(Split(in)[0])
	diff(t, pts(0, 5, 1, 4, 2, 3), got)
}

func TestLineRendererPath(t *testing.T) {
	in := points(pts(0, 5, 1, 4, 2, 3))
	seg := Split(in)[0]
	p := LineRenderer{}.BuildPath(seg, nil)
	if len(p.Cmds) != 3 {
		t.Fatalf("got %d commands, expected 3", len(p.Cmds))
	}
	diff(t, pts(0, 5, 1, 4, 2, 3), p.Coords)
}
