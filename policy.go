/*
 * policy.go, part of nomen.
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
	"strings"
)

//Anomaly is something in a name, or in the graph built from it, that
//the pipeline can either work around or refuse.
type Anomaly int

const (
	NoSuffix        Anomaly = iota //no functional group suffix, the chain is taken as saturated
	NoFrequency                    //no multiplier, the group appears once
	NoPositions                    //no locants, every occurrence goes to carbon 1
	NoChain                        //no chain length numeral, the chain has no carbons
	ValenceOverflow                //a group or a multiple bond didn't fit where it was asked for
	GroupDropped                   //a group fitted nowhere and was left out
	Ungrounded                     //some atoms are not connected to atom 0
	Crowded                        //no free direction around an atom during layout
)

var anomalyNames = []string{"nosuffix", "nofrequency", "nopositions", "nochain", "valenceoverflow", "groupdropped", "ungrounded", "crowded"}

func (A Anomaly) String() string {
	if A < 0 || int(A) >= len(anomalyNames) {
		return fmt.Sprintf("anomaly(%d)", int(A))
	}
	return anomalyNames[A]
}

//ParseAnomaly returns the Anomaly with the given name (case insensitive).
func ParseAnomaly(s string) (Anomaly, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range anomalyNames {
		if v == s {
			return Anomaly(i), nil
		}
	}
	return -1, fmt.Errorf("unknown anomaly %q", s)
}

//Action is what the pipeline does when it meets an anomaly.
type Action int

const (
	Absorb Action = iota //use the documented fallback and keep going
	Fail                 //return an error
)

func (A Action) String() string {
	if A == Fail {
		return "fail"
	}
	return "absorb"
}

//ParseAction returns the Action named by s ("absorb" or "fail").
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absorb", "default", "":
		return Absorb, nil
	case "fail":
		return Fail, nil
	}
	return Absorb, fmt.Errorf("unknown action %q", s)
}

//Policy maps each anomaly to the action taken. Kinds not in the map take
//their action from DefaultPolicy. Crowded can't be absorbed at all.
type Policy map[Anomaly]Action

//DefaultPolicy absorbs every grammar and construction anomaly and fails on
//graphs that can't be laid out.
func DefaultPolicy() Policy {
	return Policy{
		NoSuffix:        Absorb,
		NoFrequency:     Absorb,
		NoPositions:     Absorb,
		NoChain:         Absorb,
		ValenceOverflow: Absorb,
		GroupDropped:    Absorb,
		Ungrounded:      Fail,
		Crowded:         Fail,
	}
}

//Action returns the action for the anomaly k.
func (P Policy) Action(k Anomaly) Action {
	if k == Crowded {
		return Fail
	}
	if a, ok := P[k]; ok {
		return a
	}
	return DefaultPolicy()[k]
}

//Check returns an error for the first diagnostic whose kind the policy
//says should fail, or nil.
func (P Policy) Check(diags []Diagnostic) error {
	for _, d := range diags {
		if P.Action(d.Kind) == Fail {
			return newError(d.Kind, false, "Policy.Check", "%s: %s", d.Kind, d.Detail)
		}
	}
	return nil
}

//Diagnostic records an anomaly that was absorbed.
type Diagnostic struct {
	Kind   Anomaly
	Detail string
}

func (D Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", D.Kind, D.Detail)
}

func diag(kind Anomaly, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
