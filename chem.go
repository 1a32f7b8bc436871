/*
 * chem.go, part of nomen.
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

package nomen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

/**Note: Many funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the funciton on a nil object or trying to access out-of bounds
 * fields**/

//Atom is a node of the molecular graph. Its Index never changes
//once the atom is in a Graph.
type Atom struct {
	Index  int
	Symbol Element
	Bonds  []Bond
	Pos    r2.Vec
	Placed bool //false until the layout engine gives the atom a position
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	N.Bonds = make([]Bond, len(A.Bonds))
	copy(N.Bonds, A.Bonds)
	return &N
}

//OrderSum returns the sum of the orders of all the bonds of the atom.
func (A *Atom) OrderSum() int {
	s := 0
	for _, b := range A.Bonds {
		s += b.Order
	}
	return s
}

//BondedTo returns true if the atom has a bond to the atom with index j.
func (A *Atom) BondedTo(j int) bool {
	for _, b := range A.Bonds {
		if b.To == j {
			return true
		}
	}
	return false
}

/*****Graph type***/

//Graph is the molecule. It owns its atoms, which are appended
//and never removed, so indexes are stable.
type Graph struct {
	Atoms []*Atom
}

//NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{Atoms: make([]*Atom, 0, 10)}
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.Atoms)
}

//Atom returns the Atom with index i. Panics if
//out of range.
func (G *Graph) Atom(i int) *Atom {
	if i < 0 || i >= G.Len() {
		panic("Graph: Requested Atom out of bounds")
	}
	return G.Atoms[i]
}

//AddAtom appends a new atom with the given symbol and returns it.
func (G *Graph) AddAtom(sym Element) *Atom {
	at := &Atom{Index: len(G.Atoms), Symbol: sym}
	G.Atoms = append(G.Atoms, at)
	return at
}

//Bond adds a bond of the given order between the atoms i and j.
//Both atoms get an entry, so the bond lists stay symmetric. Panics
//if an index is out of range or i==j.
func (G *Graph) Bond(i, j, order int) {
	if i == j {
		panic("Graph: Tried to bond an atom to itself")
	}
	a, b := G.Atom(i), G.Atom(j)
	a.Bonds = append(a.Bonds, Bond{To: j, Order: order})
	b.Bonds = append(b.Bonds, Bond{To: i, Order: order})
}

//OrderSum returns the sum of the bond orders of atom i.
func (G *Graph) OrderSum(i int) int {
	return G.Atom(i).OrderSum()
}

//Copy returns a deep copy of the graph.
func (G *Graph) Copy() *Graph {
	N := &Graph{Atoms: make([]*Atom, len(G.Atoms))}
	for i, v := range G.Atoms {
		N.Atoms[i] = v.Copy()
	}
	return N
}

//Coords returns the positions of all atoms as a Nx2 matrix, in index order.
//It returns nil for an empty graph.
func (G *Graph) Coords() *v2.Matrix {
	if G.Len() == 0 {
		return nil
	}
	c := v2.Zeros(G.Len())
	for i, at := range G.Atoms {
		c.SetVec(i, at.Pos)
	}
	return c
}

//SetCoords puts the rows of c as the positions of the atoms.
func (G *Graph) SetCoords(c *v2.Matrix) error {
	if c.NVecs() != G.Len() {
		return newError(-1, true, "Graph.SetCoords", "%d coordinates for %d atoms", c.NVecs(), G.Len())
	}
	for i, at := range G.Atoms {
		at.Pos = c.Vec(i)
	}
	return nil
}

//Mass returns the molecular mass.
func (G *Graph) Mass() float64 {
	var m float64
	for _, at := range G.Atoms {
		m += Mass(at.Symbol)
	}
	return m
}

//Formula returns the molecular formula in Hill order: C first, H second,
//everything else alphabetically. Without carbon, everything goes alphabetically.
func (G *Graph) Formula() string {
	count := make(map[Element]int)
	for _, at := range G.Atoms {
		count[at.Symbol]++
	}
	syms := make([]string, 0, len(count))
	for k := range count {
		syms = append(syms, string(k))
	}
	sort.Strings(syms)
	if count[Carbon] > 0 {
		rest := make([]string, 0, len(syms))
		for _, v := range syms {
			if v != string(Carbon) && v != string(Hydrogen) {
				rest = append(rest, v)
			}
		}
		syms = append([]string{string(Carbon)}, rest...)
		if count[Hydrogen] > 0 {
			syms = append([]string{string(Carbon), string(Hydrogen)}, rest...)
		}
	}
	var b strings.Builder
	for _, v := range syms {
		b.WriteString(v)
		if n := count[Element(v)]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

//Check verifies that no atom goes over its valence and that every bond
//appears, with the same order, in the lists of both of its atoms.
//Elements not in valence are not checked for valence.
func (G *Graph) Check(valence map[Element]int) error {
	for i, at := range G.Atoms {
		if at.Index != i {
			return newError(-1, true, "Graph.Check", "atom %d has index %d", i, at.Index)
		}
		if v, ok := valence[at.Symbol]; ok && at.OrderSum() > v {
			return newError(ValenceOverflow, true, "Graph.Check", "atom %d (%s) has bond order sum %d, valence %d", i, at.Symbol, at.OrderSum(), v)
		}
		for _, b := range at.Bonds {
			if b.To < 0 || b.To >= G.Len() {
				return newError(-1, true, "Graph.Check", "atom %d bonded to missing atom %d", i, b.To)
			}
			if !G.Atoms[b.To].hasBond(i, b.Order) {
				return newError(-1, true, "Graph.Check", "bond %d-%d (order %d) has no reciprocal", i, b.To, b.Order)
			}
		}
	}
	return nil
}

func (A *Atom) hasBond(to, order int) bool {
	for _, b := range A.Bonds {
		if b.To == to && b.Order == order {
			return true
		}
	}
	return false
}

func (G *Graph) String() string {
	var b strings.Builder
	for _, at := range G.Atoms {
		fmt.Fprintf(&b, "%d %s %v", at.Index, at.Symbol, at.Bonds)
		if at.Placed {
			fmt.Fprintf(&b, " [%.2f %.2f]", at.Pos.X, at.Pos.Y)
		}
		b.WriteString("\n")
	}
	return b.String()
}
