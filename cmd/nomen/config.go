/*
 * config.go, part of nomen.
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
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/rmera/nomen"
	v2 "github.com/rmera/nomen/v2"
	"gopkg.in/yaml.v2"
)

//Steps are the distances used by the layout before fitting.
type Steps struct {
	Bond, Hydrogen float64
}

//Output are the files written for each name. Empty means not written.
type Output struct {
	JSON, Picture string
}

//Configuration stores the configuration parameters of the program
type Configuration struct {
	LogPath  string
	Tables   string //extra lexical tables, read on top of the defaults
	Viewport v2.Viewport
	Layout   Steps
	Output   Output
	Policy   map[string]string //anomaly name -> absorb or fail
}

//defaultConfig is used when no config file is given.
func defaultConfig() *Configuration {
	return &Configuration{
		Viewport: v2.DefaultViewport,
		Layout:   Steps{Bond: nomen.DefaultBondStep, Hydrogen: nomen.DefaultHydrogenStep},
	}
}

//LoadConfig reads the YAML config file c. Anything not in the file keeps its default.
//If c is empty, the defaults are returned.
func LoadConfig(c string) (*Configuration, error) {
	t := defaultConfig()
	if len(c) == 0 {
		return t, nil
	}
	data, err := ioutil.ReadFile(c)
	if err != nil {
		return t, err
	}
	err = yaml.Unmarshal(data, t)
	if err != nil {
		return t, err
	}
	return t, nil
}

//SketchPolicy returns the default policy with the changes asked for in the config
//and in fail, a comma-separated list of anomalies that should give an error.
func (C *Configuration) SketchPolicy(fail string) (nomen.Policy, error) {
	P := nomen.DefaultPolicy()
	for k, v := range C.Policy {
		kind, err := nomen.ParseAnomaly(k)
		if err != nil {
			return nil, fmt.Errorf("policy: %w", err)
		}
		act, err := nomen.ParseAction(v)
		if err != nil {
			return nil, fmt.Errorf("policy for %s: %w", k, err)
		}
		P[kind] = act
	}
	for _, k := range strings.Split(fail, ",") {
		if strings.TrimSpace(k) == "" {
			continue
		}
		kind, err := nomen.ParseAnomaly(k)
		if err != nil {
			return nil, fmt.Errorf("-fail: %w", err)
		}
		P[kind] = nomen.Fail
	}
	return P, nil
}
