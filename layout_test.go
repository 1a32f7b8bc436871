/*
 * layout_test.go, part of nomen.
 *
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
 *
 */

package nomen

import (
	"math"
	"testing"

	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func TestLayoutPropane(Te *testing.T) {
	G, err := Sketch("propane")
	if err != nil {
		Te.Fatal(err)
	}
	c0, c1, c2 := G.Atom(0).Pos, G.Atom(1).Pos, G.Atom(2).Pos
	d1, d2 := r2.Sub(c1, c0), r2.Sub(c2, c1)
	if math.Abs(d1.X-d2.X) > tol || math.Abs(d1.Y-d2.Y) > tol {
		Te.Errorf("the carbons should be evenly spaced on a line: %v %v %v", c0, c1, c2)
	}
	if math.Abs(math.Abs(d1.X)-math.Abs(d1.Y)) > tol {
		Te.Errorf("the first bond should be diagonal: %v", d1)
	}
	//the molecule is taller than it is wide, relative to the viewport,
	//so it fills the whole height.
	box := G.Coords().Bounds()
	if math.Abs(box.Min.Y-80) > tol || math.Abs(box.Max.Y-490) > tol {
		Te.Errorf("expected the y range to be [80, 490], got %v", box)
	}
	if box.Min.X < 80-tol || box.Max.X > 720+tol {
		Te.Errorf("x range %v outside the viewport", box)
	}
	//and is centered horizontally
	if math.Abs((box.Min.X+box.Max.X)/2-400) > tol {
		Te.Errorf("not centered: %v", box)
	}
}

//After fitting, all distances keep their ratios: heavy atoms are
//BondStep apart and hydrogens HydrogenStep from their atom.
func TestLayoutDistances(Te *testing.T) {
	for _, name := range []string{"propan-2-ol", "butanoic acid", "propan-1,3-dioic acid"} {
		G, err := Sketch(name)
		if err != nil {
			Te.Fatal(err)
		}
		var heavy float64
		for _, b := range Bonds(G) {
			if G.Atom(b[0]).Symbol == Hydrogen || G.Atom(b[1]).Symbol == Hydrogen {
				continue
			}
			d := r2.Norm(r2.Sub(G.Atom(b[0]).Pos, G.Atom(b[1]).Pos))
			if heavy == 0 {
				heavy = d
			}
			if math.Abs(d-heavy) > 1e-6 {
				Te.Errorf("%s: bond %v has length %f, expected %f", name, b, d, heavy)
			}
		}
		ratio := heavy / math.Sqrt2 * DefaultHydrogenStep / DefaultBondStep
		for _, b := range Bonds(G) {
			if G.Atom(b[1]).Symbol != Hydrogen {
				continue
			}
			d := r2.Norm(r2.Sub(G.Atom(b[0]).Pos, G.Atom(b[1]).Pos))
			if math.Abs(d-ratio) > 1e-6 {
				Te.Errorf("%s: hydrogen bond %v has length %f, expected %f", name, b, d, ratio)
			}
		}
	}
}

//Positions relative to atom 0, in units of the layout before the fit.
//They depend on the visit order and on which way free directions are searched.
func TestLayoutPlacementOrder(Te *testing.T) {
	G, err := Sketch("propan-2-ol")
	if err != nil {
		Te.Fatal(err)
	}
	origin := G.Atom(0).Pos
	scale := (G.Atom(1).Pos.X - origin.X) / DefaultBondStep
	if scale <= 0 {
		Te.Fatalf("atom 1 is not to the right of atom 0:\n%s", G)
	}
	rel := func(i int) r2.Vec {
		return r2.Scale(1/scale, r2.Sub(G.Atom(i).Pos, origin))
	}
	expected := map[int]r2.Vec{
		1: {X: 10, Y: 10},
		2: {X: 20, Y: 20},
		3: {X: 20, Y: 0}, //the oxygen, turned away from the chain
	}
	hs := neighbours(G, 0, Hydrogen)
	if len(hs) != 3 {
		Te.Fatalf("atom 0 should have 3 hydrogens:\n%s", G)
	}
	for i, v := range []r2.Vec{{X: 0, Y: 3.5}, {X: 3.5, Y: 0}, {X: 0, Y: -3.5}} {
		expected[hs[i]] = v
	}
	for i, v := range expected {
		p := rel(i)
		if math.Abs(p.X-v.X) > 1e-6 || math.Abs(p.Y-v.Y) > 1e-6 {
			Te.Errorf("atom %d (%s) at %v, expected %v", i, G.Atom(i).Symbol, p, v)
		}
	}
}

func TestLayoutEmpty(Te *testing.T) {
	G, err := Layout(NewGraph())
	if err != nil || G.Len() != 0 {
		Te.Errorf("an empty graph should be laid out as is: %v", err)
	}
}

func TestLayoutCrowded(Te *testing.T) {
	G := NewGraph()
	G.AddAtom(Carbon)
	for i := 0; i < 5; i++ {
		o := G.AddAtom(Oxygen)
		G.Bond(0, o.Index, 1)
	}
	_, err := Layout(G)
	if err == nil {
		Te.Fatal("five neighbours fit around one atom")
	}
	if kerr, ok := err.(KindError); !ok || kerr.Kind() != Crowded {
		Te.Errorf("expected a Crowded error, got %v", err)
	}
}

func TestLayoutUngrounded(Te *testing.T) {
	frag := func() *Graph {
		G := NewGraph()
		G.AddAtom(Carbon)
		G.AddAtom(Carbon)
		return G
	}
	_, err := Layout(frag())
	if kerr, ok := err.(KindError); !ok || kerr.Kind() != Ungrounded {
		Te.Fatalf("expected an Ungrounded error, got %v", err)
	}
	E := NewLayoutEngine(DefaultTables())
	E.Policy = Policy{NoSuffix: Fail}
	if _, _, err := E.Layout(frag()); err == nil {
		Te.Fatal("a policy that doesn't name Ungrounded absorbed it")
	}
	E.Policy = Policy{Ungrounded: Absorb}
	G, diags, err := E.Layout(frag())
	if err != nil {
		Te.Fatal(err)
	}
	if !hasKind(diags, Ungrounded) {
		Te.Errorf("the fragment wasn't reported: %v", diags)
	}
	if G.Formula() != "C2H8" {
		Te.Errorf("expected two methanes, got %s", G.Formula())
	}
	if G.Atom(1).Pos.X <= G.Atom(0).Pos.X {
		Te.Errorf("the second fragment should be to the right of the first:\n%s", G)
	}
	seen := make(map[r2.Vec]bool)
	for _, at := range G.Atoms {
		if seen[at.Pos] {
			Te.Errorf("two atoms at %v", at.Pos)
		}
		seen[at.Pos] = true
	}
}

func TestCustomViewport(Te *testing.T) {
	S, err := NewSketcher(WithViewport(v2.Viewport{Width: 100, Height: 100}), WithSteps(20, 5))
	if err != nil {
		Te.Fatal(err)
	}
	R, err := S.Sketch("ethanol")
	if err != nil {
		Te.Fatal(err)
	}
	box := R.Graph.Coords().Bounds()
	if box.Min.X < -tol || box.Min.Y < -tol || box.Max.X > 100+tol || box.Max.Y > 100+tol {
		Te.Errorf("coordinates outside the viewport: %v", box)
	}
	if _, err := NewSketcher(WithViewport(v2.Viewport{Height: 100})); err == nil {
		Te.Errorf("a viewport with no width was accepted")
	}
}
