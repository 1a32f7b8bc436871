/*
 * graph_test.go, part of nomen.
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

package chemgraph

import (
	"reflect"
	"sort"
	"testing"
)

//propanol plus a loose chlorine: C0-C1-C2-O3, Cl4
func testTopology(Te *testing.T) *Topology {
	T := NewTopology()
	for _, s := range []string{"C", "C", "C", "O", "Cl"} {
		T.AddAtom(s)
	}
	for _, b := range [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}} {
		if err := T.AddBond(b[0], b[1], int(b[2])); err != nil {
			Te.Fatal(err)
		}
	}
	return T
}

func TestTopology(Te *testing.T) {
	T := testTopology(Te)
	if T.Len() != 5 || T.NBonds() != 3 {
		Te.Errorf("expected 5 atoms and 3 bonds, got %d and %d", T.Len(), T.NBonds())
	}
	if err := T.AddBond(0, 0, 1); err == nil {
		Te.Errorf("an atom was bonded to itself")
	}
	if err := T.AddBond(0, 7, 1); err == nil {
		Te.Errorf("a bond to a missing atom was added")
	}
	if !T.HasEdgeBetween(1, 0) || T.HasEdgeBetween(0, 2) {
		Te.Errorf("wrong edges")
	}
	if w, ok := T.Weight(2, 1); !ok || w != 1 {
		Te.Errorf("wrong weight %f", w)
	}
	if e := T.WeightedEdgeBetween(1, 0); e == nil || e.From().ID() != 1 || e.To().ID() != 0 {
		Te.Errorf("the edge should be seen from the first atom: %v", e)
	}
	if T.From(4).Len() != 0 {
		Te.Errorf("the chlorine has no neighbours")
	}
	if err := T.AddBond(2, 1, 2); err != nil {
		Te.Error(err)
	}
	if w, _ := T.Weight(1, 2); w != 2 || T.NBonds() != 3 {
		Te.Errorf("adding an existing bond should only change its order")
	}
}

func TestReachable(Te *testing.T) {
	T := testTopology(Te)
	r := T.Reachable(0)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	if !reflect.DeepEqual(r, []int64{0, 1, 2, 3}) {
		Te.Errorf("unexpected reachable atoms %v", r)
	}
	if u := T.Unreachable(0); !reflect.DeepEqual(u, []int64{4}) {
		Te.Errorf("unexpected unreachable atoms %v", u)
	}
	if c := T.Components(); len(c) != 2 {
		Te.Errorf("expected 2 fragments, got %v", c)
	}
	if T.Reachable(10) != nil {
		Te.Errorf("a missing root reached something")
	}
}

func TestPath(Te *testing.T) {
	T := testTopology(Te)
	p, w := T.Path(0, 3)
	if !reflect.DeepEqual(p, []int64{0, 1, 2, 3}) || w != 3 {
		Te.Errorf("unexpected path %v, weight %f", p, w)
	}
	if p, _ := T.Path(0, 4); p != nil {
		Te.Errorf("a path to a loose atom: %v", p)
	}
}
