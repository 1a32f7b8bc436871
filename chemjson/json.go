/*
 * json.go, part of nomen.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package chemjson reads and writes positioned molecules as JSON documents, so
//other programs (a web front end, a plotting script) can draw them.
//Files ending in .zst or .gz are compressed with zstd or gzip.
package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/nomen"
	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

//A ready-to-serialize bond, seen from the atom that holds it.
type Bond struct {
	To    int `json:"to"`
	Order int `json:"order"`
}

//A ready-to-serialize container for an atom.
type Atom struct {
	Index  int        `json:"index"`
	Symbol string     `json:"symbol"`
	Bonds  []Bond     `json:"bonds"`
	Pos    [2]float64 `json:"pos"`
}

//Molecule is the JSON document for one sketched name.
type Molecule struct {
	Name        string       `json:"name"`
	Formula     string       `json:"formula"`
	Atoms       []Atom       `json:"atoms"`
	Viewport    *v2.Viewport `json:"viewport,omitempty"` //the area the coordinates were fitted to
	Diagnostics []string     `json:"diagnostics,omitempty"`
}

//NewMolecule puts the graph G, sketched from name, in a Molecule.
func NewMolecule(name string, G *nomen.Graph) *Molecule {
	M := &Molecule{Name: name, Formula: G.Formula(), Atoms: make([]Atom, G.Len())}
	for i, at := range G.Atoms {
		a := Atom{Index: i, Symbol: string(at.Symbol), Bonds: make([]Bond, len(at.Bonds)), Pos: [2]float64{at.Pos.X, at.Pos.Y}}
		for j, b := range at.Bonds {
			a.Bonds[j] = Bond{To: b.To, Order: b.Order}
		}
		M.Atoms[i] = a
	}
	return M
}

//FromResult puts a sketch result in a Molecule, diagnostics included.
func FromResult(R *nomen.Result, V v2.Viewport) *Molecule {
	M := NewMolecule(R.Name, R.Graph)
	M.Viewport = &V
	for _, d := range R.Diagnostics {
		M.Diagnostics = append(M.Diagnostics, d.String())
	}
	return M
}

//Graph rebuilds the molecular graph. A bond may be listed in both of its atoms,
//or only in one of them. No atom may go over its valence in valence, or in
//the default table if valence is nil.
func (M *Molecule) Graph(valence map[nomen.Element]int) (*nomen.Graph, *Error) {
	const funcname = "Molecule.Graph"
	G := nomen.NewGraph()
	for i, a := range M.Atoms {
		if a.Index != i {
			return nil, NewError("decode", funcname, fmt.Errorf("atom %d has index %d", i, a.Index))
		}
		at := G.AddAtom(nomen.Element(a.Symbol))
		at.Pos = r2.Vec{X: a.Pos[0], Y: a.Pos[1]}
		at.Placed = true
	}
	for i, a := range M.Atoms {
		for _, b := range a.Bonds {
			if b.To < 0 || b.To >= len(M.Atoms) || b.To == i || b.Order < 1 {
				return nil, NewError("decode", funcname, fmt.Errorf("invalid bond %d-%d of order %d", i, b.To, b.Order))
			}
			if !G.Atom(i).BondedTo(b.To) {
				G.Bond(i, b.To, b.Order)
			}
		}
	}
	if valence == nil {
		valence = nomen.DefaultTables().Valence
	}
	if err := G.Check(valence); err != nil {
		return nil, NewError("decode", funcname, err)
	}
	return G, nil
}

//Encode writes M to out as indented JSON.
func Encode(M *Molecule, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(M); err != nil {
		return NewError("encode", "Encode", err)
	}
	return nil
}

//Decode reads one Molecule from in.
func Decode(in io.Reader) (*Molecule, *Error) {
	M := new(Molecule)
	if err := json.NewDecoder(in).Decode(M); err != nil {
		return nil, NewError("decode", "Decode", err)
	}
	return M, nil
}

//compression is chosen by the file extension.
func compression(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, ".zst"):
		return "zstd"
	case strings.HasSuffix(name, ".gz"):
		return "gzip"
	}
	return ""
}

//WriteFile writes M to the file name, compressed if the extension asks for it.
func WriteFile(name string, M *Molecule) error {
	f, err := os.Create(name)
	if err != nil {
		return NewError("file", "WriteFile", err)
	}
	defer f.Close()
	var w io.WriteCloser
	switch compression(name) {
	case "zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gzip":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		w = nopCloser{f}
	}
	if err != nil {
		return NewError("file", "WriteFile", err)
	}
	if err := Encode(M, w); err != nil {
		w.Close()
		err.Decorate("WriteFile " + name)
		return err
	}
	if err := w.Close(); err != nil {
		return NewError("file", "WriteFile", err)
	}
	return f.Close()
}

//ReadFile reads a Molecule from the file name, which may be compressed.
func ReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("file", "ReadFile", err)
	}
	defer f.Close()
	var r io.Reader = f
	switch compression(name) {
	case "zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, NewError("file", "ReadFile", err)
		}
		defer zr.Close()
		r = zr
	case "gzip":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, NewError("file", "ReadFile", err)
		}
		defer gr.Close()
		r = gr
	}
	M, jerr := Decode(r)
	if jerr != nil {
		jerr.Decorate("ReadFile " + name)
		return nil, jerr
	}
	return M, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool   //If this is false (no error) all the other fields will be at their zero-values.
	InEncode bool
	InDecode bool
	InFile   bool   //opening, creating or (de)compressing a file
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	if len(J.deco) == 0 {
		return J.Message
	}
	return fmt.Sprintf("%s (%s)", J.Message, strings.Join(J.deco, " <- "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "encode":
		jerr.InEncode = true
	case "decode":
		jerr.InDecode = true
	default:
		jerr.InFile = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}
