/*
 * sketch.go, part of nomen.
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

//Package chemplot draws positioned molecules with gonum/plot: bonds as one,
//two or three parallel strokes and atoms as circles colored by element.
//The output format is given by the file extension (png, svg, pdf...).
package chemplot

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"

	"github.com/rmera/nomen"
	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	strokeGap   = 3.0 //distance between the strokes of a multiple bond, in canvas units
	radiusScale = 5.0 //points per A of van der Waals radius
)

var elementColors = map[nomen.Element]color.RGBA{
	nomen.Carbon:   {R: 77, G: 77, B: 77, A: 255},
	nomen.Oxygen:   {R: 191, G: 0, B: 0, A: 255},
	nomen.Hydrogen: {R: 255, G: 255, B: 255, A: 255},
	nomen.Nitrogen: {R: 128, G: 128, B: 255, A: 255},
	nomen.Chlorine: {R: 31, G: 240, B: 31, A: 255},
	nomen.Bromine:  {R: 166, G: 41, B: 41, A: 255},
}

//ElementColor returns the color atoms of the element are drawn with.
//Elements without a color of their own get one from their symbol.
func ElementColor(sym nomen.Element) color.RGBA {
	if c, ok := elementColors[sym]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(sym))
	r, g, b := iHVS2RGB(float64(h.Sum32()%360), 0.9, 0.7)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//Plot returns a plot of G, whose coordinates are taken to be fitted to V.
//The y axis is flipped, so the drawing looks as it would on a screen, where y grows downwards.
func Plot(G *nomen.Graph, V v2.Viewport) (*plot.Plot, error) {
	canvas := V.Canvas()
	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.White
	p.X.Min, p.X.Max = 0, canvas.X
	p.Y.Min, p.Y.Max = 0, canvas.Y
	flip := func(v r2.Vec) r2.Vec { return r2.Vec{X: v.X, Y: canvas.Y - v.Y} }
	for _, b := range nomen.Bonds(G) {
		from, to := flip(G.Atom(b[0]).Pos), flip(G.Atom(b[1]).Pos)
		for _, s := range strokes(from, to, b[2]) {
			l, err := plotter.NewLine(plotter.XYs{{X: s[0].X, Y: s[0].Y}, {X: s[1].X, Y: s[1].Y}})
			if err != nil {
				return nil, fmt.Errorf("Plot: bond %d-%d: %w", b[0], b[1], err)
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = color.Black
			p.Add(l)
		}
	}
	//heavy atoms go on top of their hydrogens
	for _, heavy := range []bool{false, true} {
		for _, at := range G.Atoms {
			if (at.Symbol != nomen.Hydrogen) != heavy {
				continue
			}
			pos := flip(at.Pos)
			s, err := plotter.NewScatter(plotter.XYs{{X: pos.X, Y: pos.Y}})
			if err != nil {
				return nil, fmt.Errorf("Plot: atom %d: %w", at.Index, err)
			}
			r := nomen.VdwRadius(at.Symbol)
			if r == 0 {
				r = 1.5
			}
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			s.GlyphStyle.Radius = vg.Points(r * radiusScale)
			s.GlyphStyle.Color = ElementColor(at.Symbol)
			p.Add(s)
		}
	}
	return p, nil
}

//Render draws G to filename, at the size of the canvas of V (one point per unit).
func Render(G *nomen.Graph, V v2.Viewport, filename string) error {
	p, err := Plot(G, V)
	if err != nil {
		return err
	}
	c := V.Canvas()
	return p.Save(vg.Points(c.X), vg.Points(c.Y), filename)
}

//strokes returns the segments that draw a bond of the given order
//between from and to, parallel and centered on the bond axis.
func strokes(from, to r2.Vec, order int) [][2]r2.Vec {
	if order < 1 {
		order = 1
	}
	d := r2.Sub(to, from)
	n := r2.Norm(d)
	if n == 0 {
		return [][2]r2.Vec{{from, to}}
	}
	perp := r2.Scale(1/n, r2.Vec{X: -d.Y, Y: d.X})
	ret := make([][2]r2.Vec, 0, order)
	for k := 0; k < order; k++ {
		off := r2.Scale(strokeGap*(float64(k)-float64(order-1)/2), perp)
		ret = append(ret, [2]r2.Vec{r2.Add(from, off), r2.Add(to, off)})
	}
	return ret
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = 1 - s
	q = 1 - s*f
	t = 1 - s*(1-f)
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default: //case 5
		r, g, b = 1, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}
