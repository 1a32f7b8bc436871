/*
 * decompose.go, part of nomen.
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
	"regexp"
	"strconv"
	"strings"
)

//the suffix of saturated chains. It adds nothing to the chain.
const saturated = "ane"

//vowels that can go in front of a chain numeral, as in "eicosane"
const leadingGlides = "aeio"

//ParsedName is what a name says about the molecule: how long the main chain is,
//which functional group it carries, how many times, and where.
type ParsedName struct {
	Name        string
	ChainLength int
	Group       string
	Frequency   int
	Positions   []int    //1-based, as many as Frequency (or more, if the name gives more)
	Dropped     []string //substituent prefixes that were ignored
	Rest        string   //whatever was left in front of the chain numeral
}

func (P ParsedName) String() string {
	return fmt.Sprintf("%s: chain %d, %d x %s at %v", P.Name, P.ChainLength, P.Frequency, P.Group, P.Positions)
}

//Decomposer splits names into their parts. Each step takes a suffix
//off the string left by the previous one, so the order of the steps matters.
type Decomposer struct {
	tables   *Tables
	numerals *NumeralParser
	suffixes []string
	run      *regexp.Regexp //a run of numeral words, glides allowed, at the end of the string
}

var (
	positionsRegex = regexp.MustCompile(`[-(\[]([0-9][0-9,]*)[-)\]]\s*$`)
	fillerRegex    = regexp.MustCompile(`a?n?e?$`)
)

//NewDecomposer returns a Decomposer for the groups and numerals in T.
func NewDecomposer(T *Tables) *Decomposer {
	D := &Decomposer{tables: T, numerals: NewNumeralParser(T), suffixes: T.suffixes()}
	words := T.numeralWords()
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	if len(quoted) == 0 {
		quoted = []string{`\x00`} //matches nothing in a name
	}
	D.run = regexp.MustCompile(`(?:(?:` + strings.Join(quoted, "|") + `)a?i?o?)+$`)
	return D
}

//Decompose parses name. It never fails: missing parts take their default values,
//and each default taken is reported as a Diagnostic.
func (D *Decomposer) Decompose(name string) (ParsedName, []Diagnostic) {
	diags := make([]Diagnostic, 0, 2)
	P := ParsedName{Name: name}
	rest := strings.ToLower(strings.TrimSpace(name))
	P.Dropped, rest = substituents(rest)
	var ok bool
	if P.Group, rest, ok = D.suffix(rest); !ok {
		diags = append(diags, diag(NoSuffix, "%q has no known suffix, taken as %q", name, saturated))
	}
	if P.Frequency, rest, ok = D.frequency(rest); !ok {
		diags = append(diags, diag(NoFrequency, "%q has no multiplier, taken as 1", name))
	}
	if P.Positions, rest, ok = positions(rest); !ok {
		diags = append(diags, diag(NoPositions, "%q has no locants, taken as [1]", name))
	}
	for len(P.Positions) < P.Frequency {
		P.Positions = append(P.Positions, 1)
	}
	if P.ChainLength, P.Rest, ok = D.chain(rest); !ok {
		diags = append(diags, diag(NoChain, "%q has no chain length", name))
	}
	return P, diags
}

//substituents drops everything up to the last "yl". Substituent branches
//are not built.
func substituents(s string) ([]string, string) {
	parts := strings.Split(s, "yl")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

//suffix takes the longest functional group suffix off s.
//Without one, the chain is saturated.
func (D *Decomposer) suffix(s string) (string, string, bool) {
	for _, v := range D.suffixes {
		if strings.HasSuffix(s, v) {
			return v, strings.TrimSuffix(s, v), true
		}
	}
	return saturated, s, false
}

//frequency takes the multiplier (di, tri, ...) off s. A run of numerals
//that is all there is left, save for leading glides as in "icos", is the
//chain, not a multiplier.
func (D *Decomposer) frequency(s string) (int, string, bool) {
	loc := D.run.FindStringIndex(s)
	if loc == nil || strings.Trim(s[:loc[0]], leadingGlides) == "" {
		return 1, s, false
	}
	n := D.numerals.WordToNum(s[loc[0]:])
	if n <= 0 {
		return 1, s, false
	}
	return n, s[:loc[0]], true
}

//positions takes the list of locants, as in "-1,3-" or "(1,3)", off s.
func positions(s string) ([]int, string, bool) {
	m := positionsRegex.FindStringSubmatchIndex(s)
	if m == nil {
		return []int{1}, s, false
	}
	ret := make([]int, 0, 3)
	for _, v := range strings.Split(s[m[2]:m[3]], ",") {
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		ret = append(ret, i)
	}
	if len(ret) == 0 {
		return []int{1}, s, false
	}
	return ret, s[:m[0]], true
}

//chain takes the filler letters left by the suffixes ("propan", "propane") and then the
//chain length numeral off s. The filler is kept if removing it would eat into
//the numeral (as in "non").
func (D *Decomposer) chain(s string) (int, string, bool) {
	loc := fillerRegex.FindStringIndex(s)
	for _, c := range []string{s[:loc[0]], s} {
		r := D.run.FindStringIndex(c)
		if r == nil {
			continue
		}
		if n := D.numerals.WordToNum(c[r[0]:]); n > 0 {
			return n, c[:r[0]], true
		}
	}
	return 0, s[:loc[0]], false
}

var defaultDecomposer = NewDecomposer(DefaultTables())

//Decompose parses name with the default tables.
func Decompose(name string) ParsedName {
	P, _ := defaultDecomposer.Decompose(name)
	return P
}
