/*
 * v2_test.go, part of nomen.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func near(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

func TestMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3}); err == nil {
		Te.Error("a 3-element slice made a Matrix")
	}
	A, err := NewMatrix([]float64{1, 2, -3, 4, 5, -6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	A.SetVec(1, r2.Vec{X: 7, Y: 8})
	if A.Vec(1) != (r2.Vec{X: 7, Y: 8}) {
		Te.Errorf("SetVec didn't set: %v", A.Vec(1))
	}
	box := A.Bounds()
	if box.Min != (r2.Vec{X: 1, Y: -6}) || box.Max != (r2.Vec{X: 7, Y: 8}) {
		Te.Errorf("wrong bounds %v", box)
	}
	fmt.Println(box)
}

func TestFit(Te *testing.T) {
	V := DefaultViewport
	A, _ := NewMatrix([]float64{0, 0, 10, 0})
	s := A.Fit(V)
	if math.Abs(s-64) > tol {
		Te.Errorf("expected a scale of 64, got %f", s)
	}
	if !near(A.Vec(0), r2.Vec{X: 80, Y: 285}) || !near(A.Vec(1), r2.Vec{X: 720, Y: 285}) {
		Te.Errorf("a horizontal segment should span the width, centered: %v %v", A.Vec(0), A.Vec(1))
	}
	B, _ := NewMatrix([]float64{5, 5, 5, 5})
	B.Fit(V)
	if !near(B.Vec(0), r2.Vec{X: 400, Y: 285}) || !near(B.Vec(1), B.Vec(0)) {
		Te.Errorf("coincident points should go to the center: %v", B.Vec(0))
	}
	//a square is limited by the height and centered horizontally.
	C, _ := NewMatrix([]float64{0, 0, 1, 1, 0, 1, 1, 0})
	C.Fit(V)
	box := C.Bounds()
	if !near(box.Min, r2.Vec{X: 195, Y: 80}) || !near(box.Max, r2.Vec{X: 605, Y: 490}) {
		Te.Errorf("unexpected box for a fitted square: %v", box)
	}
	for i := 0; i < C.NVecs(); i++ {
		if !V.Contains(C.Vec(i), tol) {
			Te.Errorf("%v outside the viewport", C.Vec(i))
		}
	}
	if c := V.Canvas(); c != (r2.Vec{X: 800, Y: 570}) {
		Te.Errorf("unexpected canvas %v", c)
	}
}
