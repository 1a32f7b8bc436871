/*
 * atomicdata.go, part of nomen.
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

//Element is the chemical symbol of an atom.
type Element string

const (
	Carbon   Element = "C"
	Oxygen   Element = "O"
	Nitrogen Element = "N"
	Chlorine Element = "Cl"
	Bromine  Element = "Br"
	Hydrogen Element = "H"
)

//The valences the name grammar knows about. The builder
//and the layout engine never let the sum of bond orders
//of an atom go over these.
var symbolValence = map[Element]int{
	Carbon:   4,
	Oxygen:   2,
	Nitrogen: 3,
	Chlorine: 1,
	Bromine:  1,
	Hydrogen: 1,
}

//A map for assigning mass to elements.
//Only the elements that can appear in a name are present.
var symbolMass = map[Element]float64{
	Hydrogen: 1.0,
	Carbon:   12.01,
	Oxygen:   16.00,
	Nitrogen: 14.01,
	Chlorine: 35.45,
	Bromine:  79.904,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//Renderers use them to size the atom circles.
var symbolVdwrad = map[Element]float64{
	Hydrogen: 1.10,
	Carbon:   1.70,
	Oxygen:   1.52,
	Nitrogen: 1.55,
	Chlorine: 1.75,
	Bromine:  1.83,
}

//Homologous series. Each one is a small adjacency list that gets appended
//to the main chain at a given position, plus the bond strength it needs
//from the carbon it is attached to.
//ane, ene and yne add no atoms. ene and yne only change the order of the
//chain bonds at the given positions.
var defaultGroups = map[string]GroupTemplate{
	"ane": {},
	"ene": {Unsaturation: 2},
	"yne": {Unsaturation: 3},
	"ol": {
		Atoms:    []TemplateAtom{{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 1}}}},
		Strength: 1,
	},
	"amine": {
		Atoms:    []TemplateAtom{{Symbol: Nitrogen, Bonds: []TemplateBond{{To: Anchor, Order: 1}}}},
		Strength: 1,
	},
	"al": {
		Atoms:    []TemplateAtom{{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 2}}}},
		Strength: 2,
	},
	"one": {
		Atoms:    []TemplateAtom{{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 2}}}},
		Strength: 2,
	},
	"oic acid": {
		Atoms: []TemplateAtom{
			{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 2}}},
			{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 1}}},
		},
		Strength: 3,
	},
	"amide": {
		Atoms: []TemplateAtom{
			{Symbol: Oxygen, Bonds: []TemplateBond{{To: Anchor, Order: 2}}},
			{Symbol: Nitrogen, Bonds: []TemplateBond{{To: Anchor, Order: 1}}},
		},
		Strength: 3,
	},
}

//Numeral words, without the vowels that are only there
//to make them pronounceable.
var defaultNumerals = map[string]int{
	"nonacont":  90,
	"octacont":  80,
	"heptacont": 70,
	"hexacont":  60,
	"pentacont": 50,
	"tetracont": 40,
	"triacont":  30,
	"cos":       20,
	"dec":       10,
	"non":       9,
	"oct":       8,
	"hept":      7,
	"hex":       6,
	"pent":      5,
	"but":       4,
	"tetr":      4,
	"prop":      3,
	"tr":        3,
	"eth":       2,
	"d":         2,
	"meth":      1,
	"un":        1,
	"hen":       1,
}

//Mass returns the atomic mass of the element, or 0 if unknown.
func Mass(sym Element) float64 {
	return symbolMass[sym]
}

//VdwRadius returns the van der Waals radius, in A, of the element,
//or 0 if unknown.
func VdwRadius(sym Element) float64 {
	return symbolVdwrad[sym]
}
