/*
 * handy.go, part of nomen.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package nomen

import "gonum.org/v1/gonum/spatial/r2"

//Some internal convenience functions.

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//Same as the previous, but with points.
func isInVec(container []r2.Vec, test r2.Vec) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}

//rotate turns d 90 degrees clockwise: (dx,dy) -> (dy,-dx).
func rotate(d r2.Vec) r2.Vec {
	return r2.Vec{X: d.Y, Y: -d.X}
}

//step returns p moved l units along d.
func step(p, d r2.Vec, l float64) r2.Vec {
	return r2.Add(p, r2.Scale(l, d))
}
