/*
 * main_test.go, part of nomen.
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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/nomen"
	v2 "github.com/rmera/nomen/v2"
	"go.uber.org/zap"
)

func TestLoadConfig(Te *testing.T) {
	C, err := LoadConfig("testdata/config.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if C.Viewport != (v2.Viewport{Width: 320, Height: 200, Margin: 10}) {
		Te.Errorf("unexpected viewport %+v", C.Viewport)
	}
	if C.Layout.Bond != 20 || C.Layout.Hydrogen != nomen.DefaultHydrogenStep {
		Te.Errorf("unexpected steps %+v", C.Layout)
	}
	if C.Output.JSON != "molecule.json.zst" || C.Output.Picture != "" {
		Te.Errorf("unexpected output %+v", C.Output)
	}
	P, err := C.SketchPolicy("groupdropped")
	if err != nil {
		Te.Fatal(err)
	}
	if P[nomen.ValenceOverflow] != nomen.Fail || P[nomen.Ungrounded] != nomen.Absorb || P[nomen.GroupDropped] != nomen.Fail || P[nomen.NoSuffix] != nomen.Absorb {
		Te.Errorf("unexpected policy %v", P)
	}
	if _, err := C.SketchPolicy("bogus"); err == nil {
		Te.Errorf("an unknown anomaly was accepted")
	}
	D, err := LoadConfig("")
	if err != nil || D.Viewport != v2.DefaultViewport {
		Te.Errorf("the defaults should be used without a file: %+v %v", D, err)
	}
	if _, err := LoadConfig("testdata/missing.yaml"); err == nil {
		Te.Errorf("a missing file was read")
	}
}

func TestProcess(Te *testing.T) {
	logger = zap.NewNop().Sugar()
	config = defaultConfig()
	dir := Te.TempDir()
	config.Output.JSON = filepath.Join(dir, "out.json.gz")
	config.Output.Picture = filepath.Join(dir, "out.png")
	S, err := newSketcher("")
	if err != nil {
		Te.Fatal(err)
	}
	for i, name := range []string{"propan-2-ol", "butanoic acid"} {
		if err := process(S, name, i, 2); err != nil {
			Te.Fatal(err)
		}
	}
	for _, f := range []string{"1_out.json.gz", "2_out.json.gz", "1_out.png", "2_out.png"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			Te.Error(err)
		}
	}
	G, _ := nomen.Sketch("propan-2-ol")
	if s, w := backbone(G, 3); s != "C0-C1-C2" || w != 2 {
		Te.Errorf("unexpected backbone %s (%f)", s, w)
	}
}
