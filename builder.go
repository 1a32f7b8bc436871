/*
 * builder.go, part of nomen.
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

//Builder builds the heavy-atom graph of a parsed name. It doesn't add hydrogens,
//the layout engine does that.
type Builder struct {
	tables *Tables
}

//NewBuilder returns a Builder that uses the groups and valences in T.
func NewBuilder(T *Tables) *Builder {
	return &Builder{tables: T}
}

//Build makes the main chain and attaches the functional groups to it.
//A group that doesn't fit at its position is moved towards the end of the chain
//until it fits. If it fits nowhere, it is left out. Both things are reported
//as diagnostics.
func (B *Builder) Build(P ParsedName) (*Graph, []Diagnostic) {
	G := NewGraph()
	diags := make([]Diagnostic, 0, 1)
	group, ok := B.tables.Groups[P.Group]
	if !ok {
		diags = append(diags, diag(NoSuffix, "unknown group %q, chain taken as saturated", P.Group))
		group = B.tables.Groups[saturated]
	}
	cval := B.tables.Valence[Carbon]
	for i := 0; i < P.ChainLength; i++ {
		G.AddAtom(Carbon)
		if i == 0 {
			continue
		}
		order := 1
		if group.Unsaturation > 0 && isInInt(P.Positions, i) {
			order = group.Unsaturation
			if G.OrderSum(i-1)+order > cval || order > cval {
				diags = append(diags, diag(ValenceOverflow, "order %d bond between carbons %d and %d doesn't fit, made single", order, i, i+1))
				order = 1
			}
		}
		G.Bond(i-1, i, order)
	}
	if len(group.Atoms) == 0 {
		return G, diags
	}
	for j := 0; j < P.Frequency && j < len(P.Positions); j++ {
		asked := P.Positions[j]
		if asked < 1 {
			diags = append(diags, diag(GroupDropped, "%s at position %d: no such carbon", P.Group, asked))
			continue
		}
		pos := asked
		for pos <= P.ChainLength && G.OrderSum(pos-1)+group.Strength > cval {
			pos++
		}
		if pos > P.ChainLength {
			diags = append(diags, diag(GroupDropped, "%s at position %d fits nowhere in a %d carbon chain", P.Group, asked, P.ChainLength))
			continue
		}
		if pos != asked {
			diags = append(diags, diag(ValenceOverflow, "%s moved from position %d to %d", P.Group, asked, pos))
		}
		attach(G, group, pos-1)
	}
	return G, diags
}

//attach appends the atoms of the template to G, bonding the anchor to the atom with index to.
func attach(G *Graph, T GroupTemplate, to int) {
	base := G.Len()
	for _, a := range T.Atoms {
		G.AddAtom(a.Symbol)
	}
	for k, a := range T.Atoms {
		for _, b := range a.Bonds {
			if b.To == Anchor {
				G.Bond(base+k, to, b.Order)
				continue
			}
			//templates may list an internal bond on both atoms
			if !G.Atom(base + k).BondedTo(base + int(b.To)) {
				G.Bond(base+k, base+int(b.To), b.Order)
			}
		}
	}
}

var defaultBuilder = NewBuilder(DefaultTables())

//Build builds P with the default tables.
func Build(P ParsedName) *Graph {
	G, _ := defaultBuilder.Build(P)
	return G
}
