/*
 * sketch.go, part of nomen.
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
	v2 "github.com/rmera/nomen/v2"
	"go.uber.org/zap"
)

//Sketcher runs the whole pipeline: name, decomposition, graph, layout.
type Sketcher struct {
	tables  *Tables
	policy  Policy
	logger  *zap.SugaredLogger
	dec     *Decomposer
	builder *Builder
	engine  *LayoutEngine
}

//Option configures a Sketcher.
type Option func(*Sketcher)

//WithTables makes the Sketcher use T instead of the default tables.
func WithTables(T *Tables) Option {
	return func(S *Sketcher) { S.tables = T }
}

//WithPolicy sets the action for each anomaly.
func WithPolicy(P Policy) Option {
	return func(S *Sketcher) { S.policy = P }
}

//WithLogger sets the logger diagnostics are sent to. By default nothing is logged.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(S *Sketcher) {
		if l != nil {
			S.logger = l
		}
	}
}

//WithViewport sets the area the coordinates are fitted into.
func WithViewport(V v2.Viewport) Option {
	return func(S *Sketcher) { S.engine.Viewport = V }
}

//WithSteps sets the bond and hydrogen distances used before fitting. Non-positive
//values leave the defaults.
func WithSteps(bond, hydrogen float64) Option {
	return func(S *Sketcher) {
		if bond > 0 {
			S.engine.BondStep = bond
		}
		if hydrogen > 0 {
			S.engine.HydrogenStep = hydrogen
		}
	}
}

//NewSketcher returns a Sketcher configured by opts. It fails if the tables
//don't validate.
func NewSketcher(opts ...Option) (*Sketcher, error) {
	S := &Sketcher{
		tables: DefaultTables(),
		policy: DefaultPolicy(),
		logger: zap.NewNop().Sugar(),
		engine: &LayoutEngine{Viewport: v2.DefaultViewport, BondStep: DefaultBondStep, HydrogenStep: DefaultHydrogenStep},
	}
	for _, o := range opts {
		o(S)
	}
	if err := S.tables.Validate(); err != nil {
		return nil, errDecorate(err, "NewSketcher")
	}
	if S.engine.Viewport.Width <= 0 || S.engine.Viewport.Height <= 0 || S.engine.Viewport.Margin < 0 {
		return nil, newError(-1, true, "NewSketcher", "invalid viewport %+v", S.engine.Viewport)
	}
	S.engine.Valence = S.tables.Valence
	S.engine.Policy = S.policy
	S.dec = NewDecomposer(S.tables)
	S.builder = NewBuilder(S.tables)
	return S, nil
}

//Tables returns the tables the Sketcher works with. They must not be modified.
func (S *Sketcher) Tables() *Tables {
	return S.tables
}

//Result is a positioned molecule together with what was
//understood from its name and the anomalies met on the way.
type Result struct {
	Name        string
	Parsed      ParsedName
	Graph       *Graph
	Diagnostics []Diagnostic
}

//Sketch turns name into a positioned graph. Anomalies the policy absorbs end
//up in the Diagnostics of the result; the first one it doesn't gives an error,
//and no result.
func (S *Sketcher) Sketch(name string) (*Result, error) {
	R := &Result{Name: name}
	var d []Diagnostic
	R.Parsed, d = S.dec.Decompose(name)
	if err := S.absorb(R, d); err != nil {
		return nil, errDecorate(err, "Sketch")
	}
	S.logger.Debugw("decomposed", "name", name, "chain", R.Parsed.ChainLength, "group", R.Parsed.Group,
		"frequency", R.Parsed.Frequency, "positions", R.Parsed.Positions)
	R.Graph, d = S.builder.Build(R.Parsed)
	if err := S.absorb(R, d); err != nil {
		return nil, errDecorate(err, "Sketch")
	}
	G, d, err := S.engine.Layout(R.Graph)
	if err != nil {
		S.logger.Errorw("layout failed", "name", name, "error", err.Error())
		return nil, errDecorate(err, "Sketch")
	}
	if err := S.absorb(R, d); err != nil {
		return nil, errDecorate(err, "Sketch")
	}
	R.Graph = G
	S.logger.Debugw("sketched", "name", name, "atoms", G.Len(), "formula", G.Formula())
	return R, nil
}

//SketchAny is Sketch for a value of unknown type, as read from a
//data file. It fails if v is not a string.
func (S *Sketcher) SketchAny(v interface{}) (*Result, error) {
	name, ok := v.(string)
	if !ok {
		return nil, newError(-1, true, "SketchAny", "%s: got %T", ErrInputType, v)
	}
	return S.Sketch(name)
}

//absorb logs the diagnostics and adds them to R, or returns an error
//if the policy doesn't absorb one of them.
func (S *Sketcher) absorb(R *Result, diags []Diagnostic) error {
	if err := S.policy.Check(diags); err != nil {
		return err
	}
	for _, d := range diags {
		switch d.Kind {
		case NoSuffix, NoFrequency, NoPositions:
			S.logger.Debugw("default taken", "name", R.Name, "kind", d.Kind.String(), "detail", d.Detail)
		default:
			S.logger.Warnw("anomaly absorbed", "name", R.Name, "kind", d.Kind.String(), "detail", d.Detail)
		}
	}
	R.Diagnostics = append(R.Diagnostics, diags...)
	return nil
}

//Sketch turns name into a positioned graph with the default tables and policy.
func Sketch(name string) (*Graph, error) {
	S, err := NewSketcher()
	if err != nil {
		return nil, err
	}
	R, err := S.Sketch(name)
	if err != nil {
		return nil, err
	}
	return R.Graph, nil
}
