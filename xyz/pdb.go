/*
 * pdb.go, part of orcabuild.
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
	"strconv"
	"strings"
)

//ReadPDB reads the ATOM and HETATM records of the first model in a PDB
//stream. If the element column is missing, the symbol is guessed from the
//atom name.
func ReadPDB(r io.Reader) (*Molecule, error) {
	symbols := make([]string, 0)
	coords := make([]float64, 0)
	var title string
	scanner := bufio.NewScanner(r)
	contlines := 0 //count the lines read to better report errors
	for scanner.Scan() {
		contlines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model is read
		}
		if strings.HasPrefix(line, "TITLE") && title == "" && len(line) > 10 {
			title = strings.TrimSpace(line[10:])
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		symbol, c, err := readPDBLine(line)
		if err != nil {
			return nil, newError("ReadPDB", "line %d: %s", contlines, err.Error())
		}
		symbols = append(symbols, symbol)
		coords = append(coords, c[:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, newError("ReadPDB", "%s", err.Error())
	}
	mol, err := NewMolecule(symbols, coords)
	if err != nil {
		return nil, errDecorate(err, "ReadPDB", "")
	}
	mol.Comment = title
	return mol, nil
}

//readPDBLine parses a valid ATOM or HETATM line of a PDB file, returns the
//element symbol and the coordinates.
func readPDBLine(line string) (string, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return "", coords, fmt.Errorf("record too short")
	}
	var err error
	for i := range coords {
		field := strings.TrimSpace(line[30+8*i : 38+8*i])
		coords[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return "", coords, fmt.Errorf("can't read coordinate %q", field)
		}
	}
	symbol := ""
	if len(line) >= 78 {
		symbol = strings.TrimSpace(line[76:78])
	}
	if symbol == "" {
		symbol, err = symbolFromName(strings.TrimSpace(line[12:16]))
		if err != nil {
			return "", coords, err
		}
	}
	return normalizeSymbol(symbol), coords, nil
}

//normalizeSymbol turns "CL" or "cl" into "Cl".
func normalizeSymbol(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom name.
//Mostly based on AMBER names, it only deals with some common bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	switch {
	case name == "":
	case len(name) == 4 || name[0] == 'H': //only Hs have 4-char names in AMBER.
		symbol = "H"
	case name[0] == 'C': //Ca is not considered here
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C"
		}
	case name[0] == 'N':
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name[0] == 'S':
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	case strings.HasPrefix(name, "ZN"):
		symbol = "Zn"
	case strings.HasPrefix(name, "FE"):
		symbol = "Fe"
	case strings.HasPrefix(name, "MG"):
		symbol = "Mg"
	}
	if symbol == "" {
		return "", fmt.Errorf("couldn't guess symbol from PDB name %q", name)
	}
	return symbol, nil
}
