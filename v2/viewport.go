/*
 * viewport.go, part of nomen.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

//Viewport is the area coordinates are fitted into. Width and Height are the
//usable area; Margin is added on each side, so the whole canvas is
//(Width+2*Margin) x (Height+2*Margin).
type Viewport struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Margin float64 `yaml:"margin" json:"margin"`
}

//DefaultViewport is a 640x410 area with an 80 units margin.
var DefaultViewport = Viewport{Width: 640, Height: 410, Margin: 80}

//Canvas returns the size of the whole drawing, margins included.
func (V Viewport) Canvas() r2.Vec {
	return r2.Vec{X: V.Width + 2*V.Margin, Y: V.Height + 2*V.Margin}
}

//Contains returns true if p is inside the margin-bounded area, within tol.
func (V Viewport) Contains(p r2.Vec, tol float64) bool {
	return p.X >= V.Margin-tol && p.X <= V.Margin+V.Width+tol &&
		p.Y >= V.Margin-tol && p.Y <= V.Margin+V.Height+tol
}

//Fit scales and translates the vectors in F, in place, so they fill V.
//Both axes get the same scale, the smallest of the two that would fit each axis, so
//the shape is kept; the axis that doesn't fill its span is centered in it.
//If all vectors are equal they all go to the center of V. Fit returns the scale used.
func (F *Matrix) Fit(V Viewport) float64 {
	box := F.Bounds()
	span := r2.Sub(box.Max, box.Min)
	sx, sy := math.Inf(1), math.Inf(1)
	if span.X > 0 {
		sx = V.Width / span.X
	}
	if span.Y > 0 {
		sy = V.Height / span.Y
	}
	scale := math.Min(sx, sy)
	if math.IsInf(scale, 1) {
		scale = 1
	}
	off := r2.Vec{
		X: V.Margin + (V.Width-scale*span.X)/2,
		Y: V.Margin + (V.Height-scale*span.Y)/2,
	}
	F.Apply(func(i, j int, v float64) float64 {
		if j == 0 {
			return off.X + scale*(v-box.Min.X)
		}
		return off.Y + scale*(v-box.Min.Y)
	}, F.Dense)
	return scale
}
