/*
 * tables_test.go, part of nomen.
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
	"strings"
	"testing"
)

func TestDefaultTables(Te *testing.T) {
	T := DefaultTables()
	if err := T.Validate(); err != nil {
		Te.Fatal(err)
	}
	T.Valence[Carbon] = 2
	delete(T.Groups, "ol")
	if DefaultTables().Valence[Carbon] != 4 || len(DefaultTables().Groups["ol"].Atoms) != 1 {
		Te.Errorf("the default tables were changed through a copy")
	}
}

func TestLoadTables(Te *testing.T) {
	T, err := LoadTables("testdata/tables.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Valence[Carbon] != 4 || T.Valence["S"] != 2 {
		Te.Errorf("valences not merged: %v", T.Valence)
	}
	g, ok := T.Groups["nitrile"]
	if !ok || len(g.Atoms) != 1 || g.Atoms[0].Bonds[0].To != Anchor || g.Atoms[0].Bonds[0].Order != 3 {
		Te.Fatalf("nitrile group not read properly: %+v", g)
	}
	if _, ok := T.Groups["ol"]; !ok {
		Te.Errorf("the default groups were lost")
	}
	if NewNumeralParser(T).WordToNum("mono") != 1 {
		Te.Errorf("the new numeral wasn't read")
	}
	S, err := NewSketcher(WithTables(T))
	if err != nil {
		Te.Fatal(err)
	}
	cases := map[string]string{
		"propanenitrile": "C3H5N",
		"propanethiol":   "C3H8S",
		"propan-2-ol":    "C3H8O",
	}
	for name, formula := range cases {
		R, err := S.Sketch(name)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if f := R.Graph.Formula(); f != formula {
			Te.Errorf("%s: expected %s, got %s", name, formula, f)
		}
	}
}

func TestBadTables(Te *testing.T) {
	_, err := LoadTables("testdata/badtables.yaml")
	if err == nil || !strings.Contains(err.Error(), ErrBadTables) {
		Te.Errorf("a group with an unknown element was accepted: %v", err)
	}
	_, err = ReadTables(strings.NewReader("replace: true\nvalence:\n  C: 4\n"), nil)
	if err == nil {
		Te.Errorf("tables without the saturated group were accepted")
	}
	_, err = ReadTables(strings.NewReader("groups:\n  ol:\n    atoms:\n      - symbol: O\n        bonds:\n          - {to: 3, order: 1}\n    strength: 1\n"), nil)
	if err == nil {
		Te.Errorf("a bond to a missing template atom was accepted")
	}
	_, err = ReadTables(strings.NewReader("groups: [1, 2"), nil)
	if err == nil {
		Te.Errorf("broken YAML was accepted")
	}
	T := DefaultTables()
	T.Valence[Carbon] = 0
	if _, err := NewSketcher(WithTables(T)); err == nil {
		Te.Errorf("a Sketcher was built on invalid tables")
	}
}

func TestPolicyNames(Te *testing.T) {
	for i := NoSuffix; i <= Crowded; i++ {
		k, err := ParseAnomaly(strings.ToUpper(i.String()))
		if err != nil || k != i {
			Te.Errorf("ParseAnomaly(%q) = %v, %v", i.String(), k, err)
		}
	}
	if _, err := ParseAnomaly("bogus"); err == nil {
		Te.Errorf("ParseAnomaly accepted 'bogus'")
	}
	P := Policy{Crowded: Absorb}
	if P.Action(Crowded) != Fail {
		Te.Errorf("Crowded can't be absorbed")
	}
	var nilp Policy
	if nilp.Action(Ungrounded) != Fail || nilp.Action(NoSuffix) != Absorb {
		Te.Errorf("a nil policy should behave as the default one")
	}
	partial := Policy{NoSuffix: Fail}
	if partial.Action(NoSuffix) != Fail || partial.Action(Ungrounded) != Fail || partial.Action(GroupDropped) != Absorb {
		Te.Errorf("kinds missing from a policy should take the default action")
	}
}
