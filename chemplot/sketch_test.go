/*
 * sketch_test.go, part of nomen.
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

package chemplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/nomen"
	v2 "github.com/rmera/nomen/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestRender(Te *testing.T) {
	G, err := nomen.Sketch("propan-1,3-dioic acid")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"acid.png", "acid.svg"} {
		fname := filepath.Join(dir, name)
		if err := Render(G, v2.DefaultViewport, fname); err != nil {
			Te.Fatal(err)
		}
		fi, err := os.Stat(fname)
		if err != nil {
			Te.Fatal(err)
		}
		if fi.Size() == 0 {
			Te.Errorf("%s is empty", name)
		}
	}
}

func TestStrokes(Te *testing.T) {
	from, to := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0}
	s := strokes(from, to, 2)
	if len(s) != 2 {
		Te.Fatalf("a double bond needs 2 strokes, got %d", len(s))
	}
	if math.Abs(s[0][0].Y+s[1][0].Y) > 1e-9 || math.Abs(math.Abs(s[0][0].Y-s[1][0].Y)-strokeGap) > 1e-9 {
		Te.Errorf("strokes not centered on the bond: %v", s)
	}
	if s = strokes(from, to, 3); len(s) != 3 || s[1][0] != from || s[1][1] != to {
		Te.Errorf("the middle stroke of a triple bond should be the bond itself: %v", s)
	}
	if ElementColor("S") != ElementColor("S") || ElementColor(nomen.Oxygen).R != 191 {
		Te.Errorf("unexpected colors")
	}
}
