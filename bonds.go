/*
 * bonds.go, part of nomen.
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

import "fmt"

//Bond is one end of a bond, as seen from the atom that holds it.
//The atom at the other end holds a Bond with To pointing back and the same Order.
type Bond struct {
	To    int
	Order int //1 single, 2 double, 3 triple
}

func (B Bond) String() string {
	return fmt.Sprintf("%s%d", bondSymbol(B.Order), B.To)
}

func bondSymbol(order int) string {
	switch order {
	case 1:
		return "-"
	case 2:
		return "="
	case 3:
		return "#"
	}
	return fmt.Sprintf("(%d)", order)
}

//Bonds returns every bond in the graph once, as index pairs with i<j,
//in the order a renderer should draw them.
func Bonds(G Atomer) [][3]int {
	ret := make([][3]int, 0, G.Len())
	for i := 0; i < G.Len(); i++ {
		for _, b := range G.Atom(i).Bonds {
			if b.To > i {
				ret = append(ret, [3]int{i, b.To, b.Order})
			}
		}
	}
	return ret
}

//FreeValence returns how much bond order atom i can still take, given the valences in valence.
//Elements without a known valence have none free.
func FreeValence(G Atomer, i int, valence map[Element]int) int {
	at := G.Atom(i)
	v, ok := valence[at.Symbol]
	if !ok {
		return 0
	}
	return v - at.OrderSum()
}
