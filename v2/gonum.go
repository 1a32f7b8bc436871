/*
 * gonum.go, part of nomen.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v2

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

const cols int = 2

//Matrix is a set of vectors in 2D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 2 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not a positive multiple of %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 2 in the other dimension.
//Panics if vecs is not positive.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		panic(ErrNotEnoughElements)
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx2Matrix)
	}
	return r
}

//Vec returns the ith vector of the matrix as a point.
func (F *Matrix) Vec(i int) r2.Vec {
	row := F.RawRowView(i)
	return r2.Vec{X: row[0], Y: row[1]}
}

//SetVec sets the ith vector of the matrix to p.
func (F *Matrix) SetVec(i int, p r2.Vec) {
	F.Set(i, 0, p.X)
	F.Set(i, 1, p.Y)
}

//Bounds returns the smallest box that contains all the vectors in F.
func (F *Matrix) Bounds() r2.Box {
	n := F.NVecs()
	x := mat.Col(make([]float64, n), 0, F.Dense)
	y := mat.Col(make([]float64, n), 1, F.Dense)
	return r2.Box{
		Min: r2.Vec{X: floats.Min(x), Y: floats.Min(y)},
		Max: r2.Vec{X: floats.Max(x), Y: floats.Max(y)},
	}
}

//Error is the error type for the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx2Matrix      = PanicMsg("nomen/v2: A Matrix should have 2 columns")
	ErrNotEnoughElements = PanicMsg("nomen/v2: not enough elements in Matrix")
)
