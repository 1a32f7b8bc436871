/*
 * errors.go, part of nomen.
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

package nomen

import (
	"fmt"
	"strings"
)

//CError is the concrete error type of the package. It implements Error and KindError.
type CError struct {
	msg      string
	kind     Anomaly
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Kind returns the anomaly that caused the error.
func (err *CError) Kind() Anomaly { return err.kind }

//Critical returns true if the error can't be recovered by a policy change.
func (err *CError) Critical() bool { return err.critical }

func newError(kind Anomaly, critical bool, caller string, format string, args ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, args...), kind: kind, critical: critical}
	err.Decorate(caller)
	return err
}

//errDecorate is a helper function that decorates the error with the caller's name before returning it,
//if it implements Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//Messages for the errors returned by the package.
const (
	ErrInputType  = "only strings are allowed"
	ErrUngrounded = "ungrounded atom: not connected to atom 0"
	ErrCrowded    = "no free direction left to place atom"
	ErrBadTables  = "invalid lexical tables"
)
