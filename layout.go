/*
 * layout.go, part of nomen.
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
	"sort"

	"github.com/rmera/nomen/chemgraph"
	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultBondStep     = 10.0
	DefaultHydrogenStep = 3.5
)

var (
	bondStart     = r2.Vec{X: 1, Y: 1}
	hydrogenStart = r2.Vec{X: 0, Y: 1}
)

//LayoutEngine gives every atom of a graph a 2D position, adding the hydrogens
//needed to fill the valences on the way.
type LayoutEngine struct {
	Valence      map[Element]int
	Viewport     v2.Viewport
	BondStep     float64 //distance between bonded heavy atoms, before fitting to the viewport
	HydrogenStep float64 //distance between an atom and its hydrogens, before fitting
	Policy       Policy  //only Ungrounded is looked at
}

//NewLayoutEngine returns an engine with the default geometry for the valences in T.
func NewLayoutEngine(T *Tables) *LayoutEngine {
	return &LayoutEngine{
		Valence:      T.Valence,
		Viewport:     v2.DefaultViewport,
		BondStep:     DefaultBondStep,
		HydrogenStep: DefaultHydrogenStep,
		Policy:       DefaultPolicy(),
	}
}

//layout is the state of one run of the engine.
type layout struct {
	*LayoutEngine
	G        *Graph
	occupied map[r2.Vec]bool
}

func (L *layout) place(i int, p r2.Vec) {
	at := L.G.Atom(i)
	at.Pos = p
	at.Placed = true
	L.occupied[p] = true
}

//Layout places all the atoms of G, adds the hydrogens and fits
//everything into the viewport. G is modified in place and returned.
//The graph must be connected: atoms that can't be reached from atom 0
//give an Ungrounded error, unless the policy absorbs it, in which case each
//fragment is placed to the right of the previous one.
func (E *LayoutEngine) Layout(G *Graph) (*Graph, []Diagnostic, error) {
	diags := make([]Diagnostic, 0)
	if G.Len() == 0 {
		return G, diags, nil
	}
	L := &layout{LayoutEngine: E, G: G, occupied: make(map[r2.Vec]bool, 4*G.Len())}
	top := chemgraph.NewTopology()
	for _, at := range G.Atoms {
		top.AddAtom(string(at.Symbol))
	}
	for _, b := range Bonds(G) {
		if err := top.AddBond(int64(b[0]), int64(b[1]), b[2]); err != nil {
			return nil, diags, newError(-1, true, "LayoutEngine.Layout", "%s", err.Error())
		}
	}
	roots := []int{0}
	if lost := top.Unreachable(0); len(lost) > 0 {
		if E.Policy.Action(Ungrounded) == Fail {
			return nil, diags, newError(Ungrounded, false, "LayoutEngine.Layout", "%s: atoms %v", ErrUngrounded, lost)
		}
		diags = append(diags, diag(Ungrounded, "atoms %v not connected to atom 0, laid out apart", lost))
		for _, c := range top.Components() {
			if m := minID(c); m != 0 {
				roots = append(roots, int(m))
			}
		}
		sort.Ints(roots)
	}
	origin := r2.Vec{}
	for _, r := range roots {
		if r != 0 {
			box := placedBox(G)
			origin = r2.Vec{X: box.Max.X + 2*E.BondStep, Y: 0}
		}
		if err := L.heavy(r, origin); err != nil {
			return nil, diags, errDecorate(err, "LayoutEngine.Layout")
		}
	}
	if err := L.hydrogens(); err != nil {
		return nil, diags, errDecorate(err, "LayoutEngine.Layout")
	}
	coords := G.Coords()
	coords.Fit(E.Viewport)
	if err := G.SetCoords(coords); err != nil {
		return nil, diags, errDecorate(err, "LayoutEngine.Layout")
	}
	return G, diags, nil
}

//frame is a pending visit of the depth-first placement. dir is the direction
//the last child went in, and is where the search for the next child starts.
type frame struct {
	atom int
	pos  r2.Vec
	dir  r2.Vec
	next int //next bond to look at
}

//heavy places root at origin and then every atom that can be reached from it,
//depth first. Before each child is placed, the direction is turned until the
//step in that direction lands on a free spot. The child inherits that direction.
func (L *layout) heavy(root int, origin r2.Vec) error {
	L.place(root, origin)
	stack := []frame{{atom: root, pos: origin, dir: bondStart}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		bonds := L.G.Atom(f.atom).Bonds
		if f.next >= len(bonds) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := bonds[f.next].To
		f.next++
		if L.G.Atom(child).Placed {
			continue
		}
		d, ok := L.freeDirection(f.pos, f.dir, L.BondStep, nil)
		if !ok {
			return newError(Crowded, true, "layout.heavy", "%s: atom %d next to atom %d", ErrCrowded, child, f.atom)
		}
		f.dir = d
		p := step(f.pos, d, L.BondStep)
		L.place(child, p)
		stack = append(stack, frame{atom: child, pos: p, dir: d})
	}
	return nil
}

//freeDirection turns d until a step of length l from p lands on an unoccupied spot
//and, if neighbours is given, a step of BondStep doesn't land on a neighbour.
//It gives up after trying the four directions.
func (L *layout) freeDirection(p, d r2.Vec, l float64, neighbours []r2.Vec) (r2.Vec, bool) {
	for i := 0; i < 4; i++ {
		if !L.occupied[step(p, d, l)] && (neighbours == nil || !isInVec(neighbours, step(p, d, L.BondStep))) {
			return d, true
		}
		d = rotate(d)
	}
	return d, false
}

//hydrogens adds, to every atom placed so far, as many hydrogens as its free
//valence allows. They go closer to their atom than heavy atoms go to each other.
func (L *layout) hydrogens() error {
	n := L.G.Len()
	for i := 0; i < n; i++ {
		at := L.G.Atom(i)
		free := FreeValence(L.G, i, L.Valence)
		if free <= 0 {
			continue
		}
		neighbours := make([]r2.Vec, 0, len(at.Bonds))
		for _, b := range at.Bonds {
			neighbours = append(neighbours, L.G.Atom(b.To).Pos)
		}
		d := hydrogenStart
		for k := 0; k < free; k++ {
			var ok bool
			d, ok = L.freeDirection(at.Pos, d, L.HydrogenStep, neighbours)
			if !ok {
				return newError(Crowded, true, "layout.hydrogens", "%s: hydrogen %d of atom %d", ErrCrowded, k+1, i)
			}
			h := L.G.AddAtom(Hydrogen)
			L.G.Bond(i, h.Index, 1)
			L.place(h.Index, step(at.Pos, d, L.HydrogenStep))
		}
	}
	return nil
}

//placedBox returns the bounding box of the atoms placed so far.
func placedBox(G *Graph) r2.Box {
	var box r2.Box
	first := true
	for _, at := range G.Atoms {
		if !at.Placed {
			continue
		}
		if first {
			box = r2.Box{Min: at.Pos, Max: at.Pos}
			first = false
			continue
		}
		box.Min = r2.Vec{X: min(box.Min.X, at.Pos.X), Y: min(box.Min.Y, at.Pos.Y)}
		box.Max = r2.Vec{X: max(box.Max.X, at.Pos.X), Y: max(box.Max.Y, at.Pos.Y)}
	}
	return box
}

func minID(c []int64) int64 {
	m := c[0]
	for _, v := range c[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

var defaultLayoutEngine = NewLayoutEngine(DefaultTables())

//Layout lays G out with the default geometry and valences. Disconnected graphs
//give an error.
func Layout(G *Graph) (*Graph, error) {
	G, _, err := defaultLayoutEngine.Layout(G)
	return G, err
}
