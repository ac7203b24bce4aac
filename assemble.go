/*
 * assemble.go, part of orcabuild.
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

//Assemble builds the ORCA input for the given options, coordinates and
//custom blocks. It never fails: every value is treated as text and
//written as given, and missing parts are just left out.
func Assemble(job JobOptions, res ResourceOptions, coords CoordinateInput, custom string) string {
	var b strings.Builder
	b.WriteString(MainLine(job))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%%maxcore %d\n%%pal nprocs %d end\n\n", res.MaxCore, res.NProcs)
	if NeedsSolvent(job) {
		fmt.Fprintf(&b, "%%cpcm\n  smd true\n  SMDsolvent \"%s\"\nend\n\n", job.Solvent)
	}
	if custom = strings.TrimSpace(custom); custom != "" {
		b.WriteString(custom)
		b.WriteString("\n\n")
	}
	var xyz string
	if coords.AutoFormat {
		xyz = FormatCoords(coords.Text)
	} else {
		xyz = strings.TrimSpace(coords.Text)
	}
	if xyz != "" {
		fmt.Fprintf(&b, "* xyz %s %s\n%s\n*\n", job.Charge, job.Multiplicity, xyz)
	}
	return b.String()
}

//MainLine returns the "!" line for job: job keywords, method, basis,
//flags and custom keywords, separated by single spaces.
//Method and basis always take their slot, so an empty one leaves
//its separating space in the line.
func MainLine(job JobOptions) string {
	tokens := JobKeywords(job.Job)
	tokens = append(tokens, strings.TrimSpace(job.Method), strings.TrimSpace(job.Basis))
	tokens = append(tokens, job.Flags.Tokens()...)
	if kw := strings.TrimSpace(job.Keywords); kw != "" {
		tokens = append(tokens, kw)
	}
	return strings.TrimSpace("! " + strings.Join(tokens, " "))
}

//Keywords returns the main-line keywords other than method and basis:
//those from the job kind, the flags and the custom keywords.
func Keywords(job JobOptions) string {
	tokens := append(JobKeywords(job.Job), job.Flags.Tokens()...)
	tokens = append(tokens, strings.TrimSpace(job.Keywords))
	return joinNonEmpty(tokens)
}

//NeedsSolvent returns true if the input for job needs a %cpcm block,
//which happens if the CPCM flag is set, if CPCM appears among the
//keywords (custom ones included) or if the job is a solvation one.
func NeedsSolvent(job JobOptions) bool {
	return job.Flags.Has(CPCM) ||
		job.Job == Solvation ||
		strings.Contains(Keywords(job), solventKeyword)
}

//FormatCoords trims text and, if it starts with an XYZ header (a line with
//only the number of atoms followed by a comment line) removes the header.
//Anything else is returned trimmed but otherwise untouched.
func FormatCoords(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || !isCount(strings.TrimSpace(lines[0])) {
		return text
	}
	for i, v := range lines {
		lines[i] = strings.TrimSuffix(v, "\r")
	}
	return strings.TrimSpace(strings.Join(lines[2:], "\n"))
}

//isCount returns true if s is a non-empty string of decimal digits.
func isCount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func joinNonEmpty(tokens []string) string {
	ret := make([]string, 0, len(tokens))
	for _, v := range tokens {
		if v != "" {
			ret = append(ret, v)
		}
	}
	return strings.Join(ret, " ")
}
