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

// Package chart computes drawable geometry for chart series.
//
// The work is split into sub-packages:
//
//   - [series] turns ordered data points of cartesian series into
//     polylines, smoothed curves and (optionally stacked) filled areas.
//   - [pie] turns proportional values into pie and doughnut slices.
//   - [surface] hands the finished paths to a drawing surface.
//
// All geometry uses [seehuhn.de/go/geom/path.Data] for paths and
// [seehuhn.de/go/geom/vec.Vec2] for points. Coordinates are in pixels with
// the y axis pointing down.
//
// The engine is synchronous and not safe for concurrent use across series
// of the same layout pass: stacked series read the finished top surface of
// the series registered before them.
package chart
