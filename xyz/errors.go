/*
 * errors.go, part of orcabuild.
 *
 *
 * Copyright 2024 Raul Mera <rmeraatusachdotcl>
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

package xyz

import (
	"fmt"
	"strings"
)

//Error is the error type for problems reading coordinates.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("xyz error: %s", err.message)
	}
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds the name of a caller to the error trail, and returns the trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Trail returns the chain of functions the error went through, innermost first.
func (err *Error) Trail() string { return strings.Join(err.deco, " <- ") }

//FileName returns the file with the problem, or an empty string.
func (err *Error) FileName() string { return err.filename }

//Critical returns true if nothing could be read.
func (err *Error) Critical() bool { return err.critical }

func newError(caller, format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

//errDecorate adds caller to err's trail if err is an *Error, and sets
//its file name if it has none.
func errDecorate(err error, caller, filename string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	if e.filename == "" {
		e.filename = filename
	}
	e.Decorate(caller)
	return e
}
