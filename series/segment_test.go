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

	"github.com/davecgh/go-spew/spew"
)

func TestSplitExample(t *testing.T) {
	in := points(pts(0, 0, 1, 1, 2, 2, 3, 3), 1)
	segs := Split(in)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, expected 1:\n%s", len(segs), spew.Sdump(segs))
	}
	if segs[0].Start != 2 || len(segs[0].Points) != 2 {
		t.Errorf("got segment %d+%d, expected 2+2", segs[0].Start, len(segs[0].Points))
	}
	if segs[0].End() != 3 {
		t.Errorf("got end %d, expected 3", segs[0].End())
	}
}

func TestSplitDegenerate(t *testing.T) {
	cases := []struct {
		name  string
		in    []DataPoint
		count int
	}{
		{"nil", nil, 0},
		{"all_empty", points(pts(0, 0, 1, 1, 2, 2), 0, 1, 2), 0},
		{"single", points(pts(0, 0)), 0},
		{"isolated", points(pts(0, 0, 1, 1, 2, 2), 0, 2), 0},
		{"two", points(pts(0, 0, 1, 1)), 1},
		{"trailing_run", points(pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4), 1), 1},
		{"two_runs", points(pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4), 2), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs := Split(tc.in)
			if len(segs) != tc.count {
				t.Errorf("got %d segments, expected %d:\n%s", len(segs), tc.count, spew.Sdump(segs))
			}
		})
	}
}

// TestSplitCoverage checks all gap patterns of eight points: segments are
// disjoint, hold at least two non-empty points, and together with the
// empty and isolated points cover the input exactly once.
func TestSplitCoverage(t *testing.T) {
	const n = 8
	pos := make([]float64, 0, 2*n)
	for i := range n {
		pos = append(pos, float64(i), float64(i*i))
	}

	for mask := range 1 << n {
		var empty []int
		for i := range n {
			if mask&(1<<i) != 0 {
				empty = append(empty, i)
			}
		}
		in := points(pts(pos...), empty...)
		segs := Split(in)

		seen := make([]int, n)
		for _, seg := range segs {
			if len(seg.Points) < 2 {
				t.Fatalf("mask %08b: short segment %v", mask, seg)
			}
			for j, p := range seg.Points {
				if p.Empty {
					t.Fatalf("mask %08b: empty point in segment", mask)
				}
				if p.Index != seg.Start+j {
					t.Fatalf("mask %08b: segment not contiguous", mask)
				}
				seen[p.Index]++
			}
		}
		for i, p := range in {
			isolated := !p.Empty &&
				(i == 0 || in[i-1].Empty) &&
				(i == n-1 || in[i+1].Empty)
			want := 1
			if p.Empty || isolated {
				want = 0
			}
			if seen[i] != want {
				t.Fatalf("mask %08b: point %d covered %d times, expected %d", mask, i, seen[i], want)
			}
		}
	}
}

func TestNeighbours(t *testing.T) {
	in := points(pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6), 2, 5)
	segs := Split(in)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, expected 2", len(segs))
	}

	before, after := Neighbours(in, segs[0])
	diff(t, pts(0, 0, 3, 3), pts(before.X, before.Y, after.X, after.Y))

	before, after = Neighbours(in, segs[1])
	diff(t, pts(1, 1, 6, 6), pts(before.X, before.Y, after.X, after.Y))
}

func TestNeighboursAcrossIsolatedPoint(t *testing.T) {
	// the isolated point at index 2 does not form a segment, but it is
	// still the neighbour of the segment that follows
	in := points(pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6), 3)
	in[1].Empty = true
	segs := Split(in)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, expected 1", len(segs))
	}
	before, after := Neighbours(in, segs[0])
	diff(t, pts(2, 2, 6, 6), pts(before.X, before.Y, after.X, after.Y))
}
