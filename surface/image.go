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

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Image is a [Surface] which rasterizes into an in-memory image.
//
// An Image is not safe for concurrent use.
type Image struct {
	// Dst receives the drawing, composited with the Over operator.
	Dst draw.Image

	// Flatness controls curve approximation accuracy in pixels.
	Flatness float64

	ras *vector.Rasterizer
}

var _ Surface = (*Image)(nil)

// NewImage returns a surface drawing into dst.
func NewImage(dst draw.Image) *Image {
	b := dst.Bounds()
	return &Image{
		Dst:      dst,
		Flatness: defaultFlatness,
		ras:      vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// NewRGBA returns a surface drawing into a new image of the given size,
// filled with bg.
func NewRGBA(width, height int, bg color.Color) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return NewImage(dst)
}

// Fill implements [Surface].
func (im *Image) Fill(p *path.Data, c color.Color) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	b := im.Dst.Bounds()
	im.ras.Reset(b.Dx(), b.Dy())

	dx, dy := float64(b.Min.X), float64(b.Min.Y)
	xy := func(v vec.Vec2) (float32, float32) {
		return float32(v.X - dx), float32(v.Y - dy)
	}

	open := false
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				im.ras.ClosePath()
			}
			im.ras.MoveTo(xy(pts[0]))
			open = true
		case path.CmdLineTo:
			im.ras.LineTo(xy(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := xy(pts[0])
			x2, y2 := xy(pts[1])
			im.ras.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := xy(pts[0])
			x2, y2 := xy(pts[1])
			x3, y3 := xy(pts[2])
			im.ras.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			if open {
				im.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		im.ras.ClosePath()
	}

	im.ras.Draw(im.Dst, b, image.NewUniform(c), image.Point{})
}

// Stroke implements [Surface]. Invalid stroke styles draw nothing.
func (im *Image) Stroke(p *path.Data, s StrokeStyle, c color.Color) {
	if p == nil || s.Validate() != nil {
		return
	}
	im.Fill(Outline(p, s, im.Flatness), c)
}
