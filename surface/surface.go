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

// Package surface hands finished chart geometry to a drawing surface.
//
// The [Surface] interface is the only contract between the geometry
// engine and a rendering backend. [Image] is a reference implementation
// which rasterizes into an in-memory image.
package surface

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

//go:generate mockgen -source=surface.go -destination=mock_surface_test.go -package=surface

// Surface is a drawing target for finished paths.
type Surface interface {
	// Fill fills p using the nonzero winding rule.
	Fill(p *path.Data, c color.Color)

	// Stroke draws the outline of p.
	Stroke(p *path.Data, s StrokeStyle, c color.Color)
}

// StrokeStyle describes how a path is outlined.
type StrokeStyle struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit turns miter joins into bevels for sharp corners.
	MiterLimit float64
}

// defaultMiterLimit matches PDF and PostScript.
const defaultMiterLimit = 10.0

// NewStrokeStyle returns a style with round joins and butt caps, which
// suits chart lines.
func NewStrokeStyle(width float64) StrokeStyle {
	return StrokeStyle{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinRound,
		MiterLimit: defaultMiterLimit,
	}
}

// Validate checks that s describes a drawable stroke.
func (s StrokeStyle) Validate() error {
	switch {
	case !(s.Width > 0):
		return chart.InvalidArgument("line width %g", s.Width)
	case s.Join == graphics.LineJoinMiter && !(s.MiterLimit >= 1):
		return chart.InvalidArgument("miter limit %g", s.MiterLimit)
	case s.Cap > graphics.LineCapSquare:
		return chart.InvalidArgument("line cap %d", s.Cap)
	case s.Join > graphics.LineJoinBevel:
		return chart.InvalidArgument("line join %d", s.Join)
	}
	return nil
}
