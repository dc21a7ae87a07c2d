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

package pie

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// DefaultInnerRadiusFactor is the doughnut hole size used by
// [NewUpdateContext].
const DefaultInnerRadiusFactor = 0.5

// UpdateContext holds the circle a pie series is laid out in.
// It is recomputed once per layout pass.
type UpdateContext struct {
	Center     vec.Vec2
	Radius     float64
	Diameter   float64
	StartAngle float64 // degrees

	// InnerRadiusFactor is the ratio of the doughnut hole radius to
	// Radius. It is ignored for plain pies.
	InnerRadiusFactor float64
}

// NewUpdateContext centres the largest circle fitting into area, scaled
// by radiusFactor, which must be in (0, 1].
func NewUpdateContext(area rect.Rect, radiusFactor, startAngle float64) (*UpdateContext, error) {
	w := area.URx - area.LLx
	h := area.URy - area.LLy
	switch {
	case !(radiusFactor > 0 && radiusFactor <= 1):
		return nil, chart.InvalidArgument("radius factor %g", radiusFactor)
	case w <= 0 || h <= 0:
		return nil, chart.InvalidArgument("empty drawing area %v", area)
	}

	d := min(w, h) * radiusFactor
	return &UpdateContext{
		Center: vec.Vec2{
			X: area.LLx + w/2,
			Y: area.LLy + h/2,
		},
		Radius:            d / 2,
		Diameter:          d,
		StartAngle:        startAngle,
		InnerRadiusFactor: DefaultInnerRadiusFactor,
	}, nil
}

// SetInnerRadiusFactor sets the doughnut hole size. The factor must lie
// strictly between 0 and 1.
func (ctx *UpdateContext) SetInnerRadiusFactor(f float64) error {
	if !(f > 0 && f < 1) {
		return chart.InvalidArgument("inner radius factor %g", f)
	}
	ctx.InnerRadiusFactor = f
	return nil
}

// InnerRadius returns the radius of the doughnut hole.
func (ctx *UpdateContext) InnerRadius() float64 {
	return ctx.InnerRadiusFactor * ctx.Radius
}

// Range returns the angle range of a full pie starting at ctx.StartAngle.
func (ctx *UpdateContext) Range() AngleRange {
	return AngleRange{Start: ctx.StartAngle, Sweep: 360}
}
