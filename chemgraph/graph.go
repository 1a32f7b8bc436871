/*
 * graph.go, part of nomen.
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

//Package chemgraph puts a molecule behind the gonum graph interfaces, so the
//gonum graph algorithms (traversals, connected components, shortest paths) can
//be used on it. Atoms are nodes, with their index as ID, and bonds are
//undirected edges weighted by their order.
package chemgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

type Atom struct {
	id     int64
	Symbol string
}

func (A *Atom) ID() int64 {
	return A.id
}

type Bond struct {
	At1, At2 *Atom
	Order    int
}

//Weight is the bond order.
func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//ReversedEdge returns a new bond with the atoms swapped. Bonds are
//not directional, so it is the same bond seen from the other end.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1, Order: B.Order}
}

type pair [2]int64

func key(id1, id2 int64) pair {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return pair{id1, id2}
}

//Topology implements the gonum graph.WeightedUndirected interface.
type Topology struct {
	atoms []*Atom
	bonds map[pair]*Bond
	adj   [][]int64
}

//NewTopology returns an empty topology.
func NewTopology() *Topology {
	return &Topology{bonds: make(map[pair]*Bond)}
}

//AddAtom adds an atom with the given symbol. Its ID is the number of atoms
//that were in the topology before it.
func (T *Topology) AddAtom(symbol string) *Atom {
	at := &Atom{id: int64(len(T.atoms)), Symbol: symbol}
	T.atoms = append(T.atoms, at)
	T.adj = append(T.adj, nil)
	return at
}

//AddBond bonds the atoms with IDs i and j. Adding a bond that is already there
//only updates its order.
func (T *Topology) AddBond(i, j int64, order int) error {
	if T.Node(i) == nil || T.Node(j) == nil || i == j {
		return fmt.Errorf("AddBond: can't bond %d and %d in a topology of %d atoms", i, j, len(T.atoms))
	}
	if b, ok := T.bonds[key(i, j)]; ok {
		b.Order = order
		return nil
	}
	T.bonds[key(i, j)] = &Bond{At1: T.atoms[i], At2: T.atoms[j], Order: order}
	T.adj[i] = append(T.adj[i], j)
	T.adj[j] = append(T.adj[j], i)
	return nil
}

//Len returns the number of atoms.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//NBonds returns the number of bonds.
func (T *Topology) NBonds() int {
	return len(T.bonds)
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

func (T *Topology) Nodes() graph.Nodes {
	if len(T.atoms) == 0 {
		return graph.Empty
	}
	n := make([]graph.Node, len(T.atoms))
	for i, v := range T.atoms {
		n[i] = v
	}
	return iterator.NewOrderedNodes(n)
}

//From returns the atoms bonded to the atom with the given ID, in the
//order the bonds were added.
func (T *Topology) From(id int64) graph.Nodes {
	if T.Node(id) == nil || len(T.adj[id]) == 0 {
		return graph.Empty
	}
	n := make([]graph.Node, len(T.adj[id]))
	for i, v := range T.adj[id] {
		n[i] = T.atoms[v]
	}
	return iterator.NewOrderedNodes(n)
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	_, ok := T.bonds[key(id1, id2)]
	return ok
}

func (T *Topology) WeightedEdgeBetween(id1, id2 int64) graph.WeightedEdge {
	b, ok := T.bonds[key(id1, id2)]
	if !ok {
		return nil
	}
	//The graph is undirected, the edge is given as seen from id1.
	if b.At1.ID() != id1 {
		return b.ReversedEdge().(*Bond)
	}
	return b
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	if e := T.WeightedEdgeBetween(id1, id2); e != nil {
		return e
	}
	return nil
}

func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	return T.EdgeBetween(id1, id2)
}

func (T *Topology) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	return T.WeightedEdgeBetween(id1, id2)
}

func (T *Topology) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	b, ok := T.bonds[key(id1, id2)]
	if !ok {
		return -1, false
	}
	return b.Weight(), true
}

//Reachable returns the IDs of all atoms that can be reached from root, in
//depth-first order, root included.
func (T *Topology) Reachable(root int64) []int64 {
	r := T.Node(root)
	if r == nil {
		return nil
	}
	ret := make([]int64, 0, len(T.atoms))
	df := traverse.DepthFirst{Visit: func(n graph.Node) { ret = append(ret, n.ID()) }}
	df.Walk(T, r, nil)
	return ret
}

//Unreachable returns, in increasing order, the IDs of the atoms that can't be
//reached from root.
func (T *Topology) Unreachable(root int64) []int64 {
	seen := make([]bool, len(T.atoms))
	for _, v := range T.Reachable(root) {
		seen[v] = true
	}
	ret := make([]int64, 0)
	for i, v := range seen {
		if !v {
			ret = append(ret, int64(i))
		}
	}
	return ret
}

//Components returns the IDs of the atoms in each connected fragment of
//the molecule.
func (T *Topology) Components() [][]int64 {
	cc := topo.ConnectedComponents(T)
	ret := make([][]int64, len(cc))
	for i, c := range cc {
		ret[i] = make([]int64, len(c))
		for j, n := range c {
			ret[i][j] = n.ID()
		}
	}
	return ret
}

//Path returns the IDs of the atoms in the path between from and to
//that has the smallest total bond order, and that total. It returns nil
//if there is no such path.
func (T *Topology) Path(from, to int64) ([]int64, float64) {
	f := T.Node(from)
	if f == nil || T.Node(to) == nil {
		return nil, 0
	}
	sp := path.DijkstraFrom(f, T)
	nodes, w := sp.To(to)
	if len(nodes) == 0 {
		return nil, 0
	}
	ret := make([]int64, len(nodes))
	for i, v := range nodes {
		ret[i] = v.ID()
	}
	return ret, w
}
