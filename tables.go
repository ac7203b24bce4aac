/*
 * tables.go, part of orcabuild.
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

import (
	"fmt"
	"strings"
)

//Names of the job kinds that the rest of the code needs to refer to.
const (
	SinglePoint = "Single Point (SP)"
	Solvation   = "Solvation"
)

//solventKeyword is the main-line keyword that turns on the %cpcm block.
const solventKeyword = "CPCM"

//JobKind is a named kind of calculation and the main-line
//keywords it contributes.
type JobKind struct {
	Name     string
	Keywords []string
}

//The order is the one in which the kinds are offered to the user.
//A single point is ORCA's default, so it needs no keyword.
var jobKinds = []JobKind{
	{SinglePoint, nil},
	{"Geometry Optimization (OPT)", []string{"Opt"}},
	{"Vibrational Frequency (FREQ)", []string{"Freq"}},
	{"OPT + FREQ", []string{"Opt", "Freq"}},
	{"Excited States (TD-DFT)", []string{"TDDFT"}},
	{"Scan", []string{"Opt", "Scan"}},
	{"Transition State (TS)", []string{"OptTS"}},
	{Solvation, []string{"Opt", solventKeyword}},
	{"Molecular Mechanics (MM)", []string{"MM"}},
	{"QM/MM", []string{"QMMM"}},
}

//JobKinds returns a copy of the job kind table, in display order.
func JobKinds() []JobKind {
	ret := make([]JobKind, len(jobKinds))
	for i, v := range jobKinds {
		ret[i] = JobKind{v.Name, append([]string(nil), v.Keywords...)}
	}
	return ret
}

//JobKeywords returns the keywords for the job kind called name.
//An unknown name gives no keywords. It is not an error, as ad hoc
//job types can always be given as custom keywords.
func JobKeywords(name string) []string {
	for _, v := range jobKinds {
		if v.Name == name {
			return append([]string(nil), v.Keywords...)
		}
	}
	return nil
}

//Flag is one of the on/off corrections or accuracy settings.
//Each flag contributes exactly one main-line keyword.
type Flag uint

const (
	TightSCF Flag = iota
	D3BJ
	RIJCOSX
	Grid5
	CPCM
	VeryTightSCF
	SlowConv
	DefGrid3
	DefGridX
	numFlags
)

//Indexed by Flag, so this is also the order in which the
//keywords appear in the main line.
var flagTokens = [numFlags]string{
	TightSCF:     "TightSCF",
	D3BJ:         "D3BJ",
	RIJCOSX:      "RIJCOSX",
	Grid5:        "Grid5",
	CPCM:         solventKeyword,
	VeryTightSCF: "VeryTightSCF",
	SlowConv:     "SlowConv",
	DefGrid3:     "DefGrid3",
	DefGridX:     "DefGridX",
}

//String returns the keyword for the flag.
func (f Flag) String() string {
	if f >= numFlags {
		return fmt.Sprintf("Flag(%d)", uint(f))
	}
	return flagTokens[f]
}

//AllFlags returns every flag, in declaration order.
func AllFlags() []Flag {
	ret := make([]Flag, numFlags)
	for i := range ret {
		ret[i] = Flag(i)
	}
	return ret
}

//ParseFlag returns the flag whose keyword is name. The comparison is
//case-insensitive, as ORCA keywords are.
func ParseFlag(name string) (Flag, error) {
	name = strings.TrimSpace(name)
	for i, v := range flagTokens {
		if strings.EqualFold(v, name) {
			return Flag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown flag %q", name)
}

//Flags is a set of enabled flags. The zero value has no flag enabled.
type Flags uint32

//NewFlags returns a set with the given flags enabled.
func NewFlags(fl ...Flag) Flags {
	var F Flags
	for _, v := range fl {
		F = F.With(v)
	}
	return F
}

//Has returns true if fl is enabled in F.
func (F Flags) Has(fl Flag) bool {
	return fl < numFlags && F&(1<<fl) != 0
}

//With returns a copy of F with fl enabled.
func (F Flags) With(fl Flag) Flags {
	if fl >= numFlags {
		return F
	}
	return F | 1<<fl
}

//Without returns a copy of F with fl disabled.
func (F Flags) Without(fl Flag) Flags {
	return F &^ (1 << fl)
}

//List returns the enabled flags in declaration order.
func (F Flags) List() []Flag {
	var ret []Flag
	for i := Flag(0); i < numFlags; i++ {
		if F.Has(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

//Tokens returns the keywords of the enabled flags in declaration order.
func (F Flags) Tokens() []string {
	var ret []string
	for _, v := range F.List() {
		ret = append(ret, flagTokens[v])
	}
	return ret
}

//Suggestions offered to the user. Method and basis are free text, so
//anything else is accepted too.
var (
	Methods  = []string{"B3LYP", "PBE0", "wB97X-D", "PBE", "M06-2X", "HF", "B97-D3"}
	BasisSet = []string{"def2-SVP", "def2-TZVP", "def2-QZVP", "6-31G*", "6-311G**", "cc-pVDZ", "cc-pVTZ"}
	Solvents = []string{"Water", "Methanol", "Ethanol", "Acetonitrile", "Dichloromethane", "Toluene"}
)
