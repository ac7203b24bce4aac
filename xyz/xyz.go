/*
 * xyz.go, part of orcabuild.
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

package xyz

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Molecule is a set of atoms, given by their symbols, and their
//cartesian coordinates in Angstrom, one row per atom.
type Molecule struct {
	Symbols []string
	Coords  *mat.Dense
	Comment string
}

//NewMolecule returns a molecule with the given symbols and coordinates.
//coords must have 3 elements per symbol.
func NewMolecule(symbols []string, coords []float64) (*Molecule, error) {
	if len(symbols) == 0 {
		return nil, newError("NewMolecule", "no atoms")
	}
	if len(coords) != 3*len(symbols) {
		return nil, newError("NewMolecule", "%d coordinates for %d atoms", len(coords), len(symbols))
	}
	return &Molecule{Symbols: symbols, Coords: mat.NewDense(len(symbols), 3, coords)}, nil
}

//Len returns the number of atoms in M.
func (M *Molecule) Len() int {
	return len(M.Symbols)
}

//Lines returns the coordinates of M as ORCA expects them inside a
//"* xyz" block: one atom per line, no header.
func (M *Molecule) Lines() string {
	var b strings.Builder
	for i, s := range M.Symbols {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-2s  %12.6f%12.6f%12.6f", s, M.Coords.At(i, 0), M.Coords.At(i, 1), M.Coords.At(i, 2))
	}
	return b.String()
}

//XYZ returns M in the XYZ file format, with the number of atoms
//and the comment line.
func (M *Molecule) XYZ() string {
	return fmt.Sprintf("%d\n%s\n%s\n", M.Len(), strings.TrimSpace(M.Comment), M.Lines())
}

//Formula returns the chemical formula of M in Hill order: carbon,
//then hydrogen, then the other elements alphabetically. Without carbon
//all elements go alphabetically.
func (M *Molecule) Formula() string {
	count := make(map[string]int)
	for _, v := range M.Symbols {
		count[v]++
	}
	elements := make([]string, 0, len(count))
	for k := range count {
		elements = append(elements, k)
	}
	sort.Strings(elements)
	if count["C"] > 0 {
		rest := make([]string, 0, len(elements))
		for _, v := range elements {
			if v != "C" && v != "H" {
				rest = append(rest, v)
			}
		}
		elements = []string{"C"}
		if count["H"] > 0 {
			elements = append(elements, "H")
		}
		elements = append(elements, rest...)
	}
	var b strings.Builder
	for _, v := range elements {
		b.WriteString(v)
		if count[v] > 1 {
			b.WriteString(strconv.Itoa(count[v]))
		}
	}
	return b.String()
}

//Read reads XYZ coordinates from r. Both the full format, with the
//number of atoms and a comment line, and bare "symbol x y z" lines are
//accepted. Blank lines are ignored.
func Read(r io.Reader) (*Molecule, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, newError("Read", "%s", err.Error())
	}
	natoms := -1
	var comment string
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) {
		if n, err := strconv.Atoi(strings.TrimSpace(lines[start])); err == nil {
			natoms = n
			if start+1 < len(lines) {
				comment = lines[start+1]
			}
			start += 2
		}
	}
	symbols := make([]string, 0, max(natoms, 0))
	coords := make([]float64, 0, 3*max(natoms, 0))
	for i := start; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, newError("Read", "line %d ill formed: %q", i+1, lines[i])
		}
		var c [3]float64
		for j := range c {
			var err error
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError("Read", "line %d: can't read coordinate %q", i+1, fields[j+1])
			}
		}
		symbols = append(symbols, fields[0])
		coords = append(coords, c[:]...)
	}
	if natoms >= 0 && natoms != len(symbols) {
		return nil, newError("Read", "header says %d atoms, found %d", natoms, len(symbols))
	}
	mol, err := NewMolecule(symbols, coords)
	if err != nil {
		return nil, errDecorate(err, "Read", "")
	}
	mol.Comment = comment
	return mol, nil
}
