/*
 * main.go, part of nomen.
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

//nomen sketches the molecules named in its arguments, or, without arguments,
//the ones read from the standard input, one name per line.
//For each name it prints the formula and what had to be assumed, and
//optionally writes a JSON document and a picture.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/nomen"
	"github.com/rmera/nomen/chemgraph"
	"github.com/rmera/nomen/chemjson"
	"github.com/rmera/nomen/chemplot"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version string
	logger  *zap.SugaredLogger
	config  *Configuration
)

//logInit logs JSON to nomen.log in logPath or, if logPath is empty,
//to the standard error. The returned file, if not nil, must be closed.
func logInit(d bool, logPath string) *os.File {
	pe := zap.NewProductionEncoderConfig()
	pe.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zap.InfoLevel
	if d {
		level = zap.DebugLevel
	}
	var core zapcore.Core
	var file *os.File
	if logPath == "" {
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(pe), zapcore.Lock(os.Stderr), level)
	} else {
		var err error
		file, err = os.OpenFile(filepath.Join(logPath, "nomen.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			panic(err)
		}
		core = zapcore.NewCore(zapcore.NewJSONEncoder(pe), zapcore.AddSync(file), level)
	}
	logger = zap.New(core).Sugar()
	return file
}

func main() {
	cn := flag.String("config", "", "Config file path, must be YAML")
	d := flag.Bool("d", false, "Sets up the log level to debug")
	v := flag.Bool("v", false, "Prints the version and exits")
	logPath := flag.String("log", "", "Directory for the log file. By default, the log goes to the standard error")
	tables := flag.String("tables", "", "YAML file with extra groups, numerals and valences")
	jsonOut := flag.String("json", "", "Writes the molecule as JSON to this file (.zst and .gz are compressed)")
	picOut := flag.String("png", "", "Draws the molecule to this file (png, svg or pdf, by extension)")
	fail := flag.String("fail", "", "Comma-separated anomalies that should stop the program, e.g. valenceoverflow,groupdropped")
	flag.Parse()
	if *v {
		fmt.Println("nomen", version)
		return
	}
	var err error
	config, err = LoadConfig(*cn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logPath != "" {
		config.LogPath = *logPath
	}
	if *tables != "" {
		config.Tables = *tables
	}
	if *jsonOut != "" {
		config.Output.JSON = *jsonOut
	}
	if *picOut != "" {
		config.Output.Picture = *picOut
	}
	if f := logInit(*d, config.LogPath); f != nil {
		defer f.Close()
	}
	defer logger.Sync()
	S, err := newSketcher(*fail)
	if err != nil {
		logger.Errorw("can't set up", "error", err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	names := flag.Args()
	if len(names) == 0 {
		names = readNames(os.Stdin)
	}
	failed := 0
	for i, name := range names {
		if err := process(S, name, i, len(names)); err != nil {
			logger.Errorw("sketch failed", "name", name, "error", err.Error())
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			failed++
		}
	}
	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func newSketcher(fail string) (*nomen.Sketcher, error) {
	P, err := config.SketchPolicy(fail)
	if err != nil {
		return nil, err
	}
	opts := []nomen.Option{
		nomen.WithPolicy(P),
		nomen.WithLogger(logger),
		nomen.WithViewport(config.Viewport),
		nomen.WithSteps(config.Layout.Bond, config.Layout.Hydrogen),
	}
	if config.Tables != "" {
		T, err := nomen.LoadTables(config.Tables)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nomen.WithTables(T))
	}
	logger.Infow("configuration", "version", version, "tables", config.Tables, "viewport", config.Viewport,
		"json", config.Output.JSON, "picture", config.Output.Picture)
	return nomen.NewSketcher(opts...)
}

func readNames(in *os.File) []string {
	ret := make([]string, 0, 1)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			ret = append(ret, l)
		}
	}
	return ret
}

//process sketches one name and writes whatever output was asked for.
func process(S *nomen.Sketcher, name string, i, total int) error {
	R, err := S.Sketch(name)
	if err != nil {
		return err
	}
	G := R.Graph
	fmt.Printf("%s: %s, %.2f g/mol\n", name, G.Formula(), G.Mass())
	if path, w := backbone(G, R.Parsed.ChainLength); path != "" {
		fmt.Printf("  chain: %s (bond order sum %.0f)\n", path, w)
	}
	for _, d := range R.Diagnostics {
		fmt.Printf("  %s\n", d)
	}
	if config.Output.JSON != "" {
		fname := numbered(config.Output.JSON, i, total)
		if err := chemjson.WriteFile(fname, chemjson.FromResult(R, config.Viewport)); err != nil {
			jerr, _ := err.(*chemjson.Error)
			logger.Errorw("can't write the JSON file", "name", name, "file", fname, "details", string(jerr.Marshal()))
			return err
		}
		logger.Debugw("written", "name", name, "file", fname)
	}
	if config.Output.Picture != "" {
		fname := numbered(config.Output.Picture, i, total)
		if err := chemplot.Render(G, config.Viewport, fname); err != nil {
			return err
		}
		logger.Debugw("drawn", "name", name, "file", fname)
	}
	return nil
}

//backbone returns the main chain of G, which is the path between the first and last
//chain carbons, as a string, and its bond order sum.
func backbone(G *nomen.Graph, chain int) (string, float64) {
	if chain < 1 {
		return "", 0
	}
	T := chemgraph.NewTopology()
	for _, at := range G.Atoms {
		T.AddAtom(string(at.Symbol))
	}
	for _, b := range nomen.Bonds(G) {
		if err := T.AddBond(int64(b[0]), int64(b[1]), b[2]); err != nil {
			return "", 0
		}
	}
	path, w := T.Path(0, int64(chain-1))
	if path == nil {
		return "", 0
	}
	s := make([]string, len(path))
	for k, v := range path {
		s[k] = fmt.Sprintf("%s%d", G.Atom(int(v)).Symbol, v)
	}
	return strings.Join(s, "-"), w
}

//numbered puts the number of the name in front of the file name
//when there is more than one name.
func numbered(fname string, i, total int) string {
	if total < 2 {
		return fname
	}
	dir, base := filepath.Split(fname)
	return filepath.Join(dir, fmt.Sprintf("%d_%s", i+1, base))
}
