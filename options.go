/*
 * options.go, part of orcabuild.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package orcabuild

//JobOptions are the settings that go into the main line, the
//solvation block and the coordinates block.
type JobOptions struct {
	Job    string //Name of a JobKind. Unknown names contribute no keyword.
	Method string
	Basis  string
	//Charge and Multiplicity are not checked, they are written as given.
	Charge       string
	Multiplicity string
	Solvent      string
	Flags        Flags
	Keywords     string //Appended verbatim at the end of the main line
}

//ResourceOptions are the memory and parallelization settings.
type ResourceOptions struct {
	MaxCore int //MB per core
	NProcs  int
}

//CoordinateInput is the raw coordinate text, as typed or read from a file.
//If AutoFormat is true, the atom count and comment lines of an XYZ file
//are removed.
type CoordinateInput struct {
	Text       string
	AutoFormat bool
}

//Default values.
const (
	DefaultMaxCore = 2000
	DefaultNProcs  = 4
)

//Defaults returns the options a new input starts with: a single point at
//B3LYP/def2-SVP with TightSCF, for a neutral singlet in water.
func Defaults() (JobOptions, ResourceOptions) {
	job := JobOptions{
		Job:          SinglePoint,
		Method:       Methods[0],
		Basis:        BasisSet[0],
		Charge:       "0",
		Multiplicity: "1",
		Solvent:      Solvents[0],
		Flags:        NewFlags(TightSCF),
	}
	return job, ResourceOptions{MaxCore: DefaultMaxCore, NProcs: DefaultNProcs}
}
