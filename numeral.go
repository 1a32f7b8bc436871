/*
 * numeral.go, part of nomen.
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

import "strings"

//the vowels that only make numerals pronounceable (dodeca, tri, penta).
const glides = "aio"

//NumeralParser turns numeral words into numbers.
type NumeralParser struct {
	values map[string]int
	words  []string //longest first
}

//NewNumeralParser returns a parser for the numeral words in T.
func NewNumeralParser(T *Tables) *NumeralParser {
	return &NumeralParser{values: T.Numerals, words: T.numeralWords()}
}

//WordToNum returns the number a concatenation of numeral words stands for,
//for instance 12 for "dodeca" ("do", 2, plus "deca", 10). Trailing a, i and o
//are ignored. The longest numeral word that ends the string is taken first, and
//the rest is parsed the same way. It returns 0 if no numeral word ends the string.
func (N *NumeralParser) WordToNum(s string) int {
	s = strings.TrimRight(s, glides)
	if v, ok := N.values[s]; ok {
		return v
	}
	for _, w := range N.words {
		if strings.HasSuffix(s, w) {
			return N.values[w] + N.WordToNum(strings.TrimSuffix(s, w))
		}
	}
	return 0
}

//NumeralValue is WordToNum for values of unknown type. It fails
//if v is not a string.
func (N *NumeralParser) NumeralValue(v interface{}) (int, error) {
	s, ok := v.(string)
	if !ok {
		return 0, newError(-1, true, "NumeralValue", "%s: got %T", ErrInputType, v)
	}
	return N.WordToNum(s), nil
}

var defaultNumeralParser = NewNumeralParser(DefaultTables())

//WordToNum parses s with the default numeral words.
func WordToNum(s string) int {
	return defaultNumeralParser.WordToNum(s)
}

//NumeralValue parses v with the default numeral words, failing if v is not a string.
func NumeralValue(v interface{}) (int, error) {
	return defaultNumeralParser.NumeralValue(v)
}
