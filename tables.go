/*
 * tables.go, part of nomen.
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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

//Handle points to an atom of a group template. Anchor is the
//carbon of the main chain the group gets attached to.
type Handle int

const Anchor Handle = -1

//UnmarshalYAML reads a handle either as an integer or as the word "anchor".
func (H *Handle) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if strings.ToLower(s) == "anchor" {
		*H = Anchor
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return fmt.Errorf("invalid handle %q, must be a non-negative integer or 'anchor'", s)
	}
	*H = Handle(i)
	return nil
}

//MarshalYAML writes Anchor as "anchor".
func (H Handle) MarshalYAML() (interface{}, error) {
	if H == Anchor {
		return "anchor", nil
	}
	return int(H), nil
}

type TemplateBond struct {
	To    Handle `yaml:"to"`
	Order int    `yaml:"order"`
}

type TemplateAtom struct {
	Symbol Element        `yaml:"symbol"`
	Bonds  []TemplateBond `yaml:"bonds"`
}

//GroupTemplate is the substructure a functional group suffix stands for.
//Strength is the bond order the group takes from the carbon it attaches to.
//A non-zero Unsaturation means the suffix adds no atoms but turns the chain bonds
//at the listed positions into bonds of that order.
type GroupTemplate struct {
	Atoms        []TemplateAtom `yaml:"atoms"`
	Strength     int            `yaml:"strength"`
	Unsaturation int            `yaml:"unsaturation"`
}

//Copy returns a deep copy of the template.
func (T GroupTemplate) Copy() GroupTemplate {
	r := GroupTemplate{Strength: T.Strength, Unsaturation: T.Unsaturation}
	if T.Atoms == nil {
		return r
	}
	r.Atoms = make([]TemplateAtom, len(T.Atoms))
	for i, a := range T.Atoms {
		r.Atoms[i] = TemplateAtom{Symbol: a.Symbol, Bonds: append([]TemplateBond(nil), a.Bonds...)}
	}
	return r
}

//Tables holds the static data the pipeline works with.
type Tables struct {
	Valence  map[Element]int          `yaml:"valence"`
	Groups   map[string]GroupTemplate `yaml:"groups"`
	Numerals map[string]int           `yaml:"numerals"`
}

//DefaultTables returns a copy of the built-in tables. Changing it
//doesn't affect the defaults.
func DefaultTables() *Tables {
	T := &Tables{
		Valence:  make(map[Element]int, len(symbolValence)),
		Groups:   make(map[string]GroupTemplate, len(defaultGroups)),
		Numerals: make(map[string]int, len(defaultNumerals)),
	}
	for k, v := range symbolValence {
		T.Valence[k] = v
	}
	for k, v := range defaultGroups {
		T.Groups[k] = v.Copy()
	}
	for k, v := range defaultNumerals {
		T.Numerals[k] = v
	}
	return T
}

//ReadTables reads a YAML table file from r. Entries in the file are added to
//base (or replace the ones with the same key). If base is nil, the defaults are used.
//A file that starts with "replace: true" doesn't inherit anything.
func ReadTables(r io.Reader, base *Tables) (*Tables, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	in := struct {
		Replace bool `yaml:"replace"`
		Tables  `yaml:",inline"`
	}{}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, newError(-1, true, "ReadTables", "%s: %s", ErrBadTables, err.Error())
	}
	var T *Tables
	switch {
	case in.Replace:
		T = &Tables{Valence: map[Element]int{}, Groups: map[string]GroupTemplate{}, Numerals: map[string]int{}}
	case base == nil:
		T = DefaultTables()
	default:
		T = base.Copy()
	}
	for k, v := range in.Valence {
		T.Valence[k] = v
	}
	for k, v := range in.Groups {
		T.Groups[strings.ToLower(k)] = v
	}
	for k, v := range in.Numerals {
		T.Numerals[strings.ToLower(k)] = v
	}
	if err := T.Validate(); err != nil {
		return nil, errDecorate(err, "ReadTables")
	}
	return T, nil
}

//LoadTables reads the table file fname on top of the default tables.
func LoadTables(fname string) (*Tables, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	T, err := ReadTables(f, nil)
	return T, errDecorate(err, "LoadTables "+fname)
}

//Copy returns a deep copy of the tables.
func (T *Tables) Copy() *Tables {
	N := &Tables{
		Valence:  make(map[Element]int, len(T.Valence)),
		Groups:   make(map[string]GroupTemplate, len(T.Groups)),
		Numerals: make(map[string]int, len(T.Numerals)),
	}
	for k, v := range T.Valence {
		N.Valence[k] = v
	}
	for k, v := range T.Groups {
		N.Groups[k] = v.Copy()
	}
	for k, v := range T.Numerals {
		N.Numerals[k] = v
	}
	return N
}

//Validate checks that the tables are consistent: the chain element has a valence,
//every template atom has a known element, template bonds point to existing atoms
//(or to the anchor) and no template atom goes over its valence.
func (T *Tables) Validate() error {
	bad := func(format string, args ...interface{}) error {
		return newError(-1, true, "Tables.Validate", "%s: %s", ErrBadTables, fmt.Sprintf(format, args...))
	}
	if T.Valence[Carbon] <= 0 {
		return bad("no valence for the chain element %s", Carbon)
	}
	if _, ok := T.Groups[saturated]; !ok {
		return bad("no %q group", saturated)
	}
	for name, g := range T.Groups {
		if name == "" {
			return bad("empty group name")
		}
		if g.Unsaturation < 0 || g.Unsaturation > T.Valence[Carbon] {
			return bad("group %q: unsaturation %d", name, g.Unsaturation)
		}
		anchored := 0
		for i, a := range g.Atoms {
			val, ok := T.Valence[a.Symbol]
			if !ok {
				return bad("group %q: atom %d has unknown element %q", name, i, a.Symbol)
			}
			sum := 0
			for _, b := range a.Bonds {
				if b.Order < 1 {
					return bad("group %q: atom %d has a bond of order %d", name, i, b.Order)
				}
				if b.To == Anchor {
					anchored += b.Order
				} else if int(b.To) < 0 || int(b.To) >= len(g.Atoms) || int(b.To) == i {
					return bad("group %q: atom %d bonded to %d", name, i, b.To)
				}
				sum += b.Order
			}
			if sum > val {
				return bad("group %q: atom %d (%s) over valence", name, i, a.Symbol)
			}
		}
		if len(g.Atoms) > 0 && anchored == 0 {
			return bad("group %q is not attached to the chain", name)
		}
		if g.Strength < anchored {
			return bad("group %q: strength %d smaller than its anchor bonds (%d)", name, g.Strength, anchored)
		}
	}
	for k, v := range T.Numerals {
		if k == "" || v < 0 {
			return bad("numeral %q: %d", k, v)
		}
	}
	return nil
}

//suffixes returns the group names, longest first.
func (T *Tables) suffixes() []string {
	return longestFirst(T.Groups)
}

//numeralWords returns the numeral words, longest first.
func (T *Tables) numeralWords() []string {
	return longestFirst(T.Numerals)
}

func longestFirst[V any](m map[string]V) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		if len(ret[i]) != len(ret[j]) {
			return len(ret[i]) > len(ret[j])
		}
		return ret[i] < ret[j]
	})
	return ret
}
