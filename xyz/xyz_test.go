/*
 * xyz_test.go, part of orcabuild.
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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const waterLines = `O       0.000000    0.000000    0.117300
H       0.000000    0.757200   -0.469200
H       0.000000   -0.757200   -0.469200`

func TestRead(Te *testing.T) {
	f, err := os.Open("testdata/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	mol, err := Read(f)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 {
		Te.Fatalf("expected 3 atoms, got %d", mol.Len())
	}
	if diff := cmp.Diff([]string{"O", "H", "H"}, mol.Symbols); diff != "" {
		Te.Errorf("symbols (-want +got):\n%s", diff)
	}
	if mol.Comment != "water, from a DFT optimization" {
		Te.Errorf("wrong comment %q", mol.Comment)
	}
	if y := mol.Coords.At(1, 1); y != 0.7572 {
		Te.Errorf("wrong coordinate, got %f", y)
	}
	if diff := cmp.Diff(waterLines, mol.Lines()); diff != "" {
		Te.Errorf("Lines() (-want +got):\n%s", diff)
	}
}

func TestReadBare(Te *testing.T) {
	mol, err := Read(strings.NewReader("\n" + waterLines + "\n\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.Comment != "" {
		Te.Errorf("expected 3 atoms and no comment, got %d, %q", mol.Len(), mol.Comment)
	}
	//Lines followed by Read again must give the same text.
	again, err := Read(strings.NewReader(mol.XYZ()))
	if err != nil {
		Te.Fatal(err)
	}
	if again.Lines() != mol.Lines() {
		Te.Errorf("XYZ round trip changed the coordinates:\n%s\n%s", mol.Lines(), again.Lines())
	}
}

func TestReadErrors(Te *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"short line":    "O 0.0 0.0\n",
		"bad number":    "O 0.0 zero 0.0\n",
		"count too big": "4\ncomment\n" + waterLines,
	}
	for name, in := range tests {
		Te.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(in))
			if err == nil {
				t.Fatalf("expected an error")
			}
			var xerr *Error
			if !errors.As(err, &xerr) {
				t.Fatalf("expected an *Error, got %T", err)
			}
			if !xerr.Critical() {
				t.Errorf("errors reading coordinates should be critical")
			}
		})
	}
}

func TestReadPDB(Te *testing.T) {
	mol, err := ReadFile("testdata/water.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"O", "H", "H", "Na"}, mol.Symbols); diff != "" {
		Te.Errorf("symbols (-want +got):\n%s", diff)
	}
	if mol.Comment != "WATER AND SODIUM" {
		Te.Errorf("wrong title %q", mol.Comment)
	}
	if x := mol.Coords.At(3, 0); x != 3.0 {
		Te.Errorf("the second model should not be read, x=%f", x)
	}
}

func TestSymbolFromName(Te *testing.T) {
	tests := map[string]string{"CA": "C", "HB2": "H", "1HD1": "H", "CL": "Cl", "NZ": "N", "SE": "Se", "ZN": "Zn", "OG1": "O"}
	for name, want := range tests {
		got, err := symbolFromName(name)
		if err != nil || got != want {
			Te.Errorf("symbolFromName(%q) = %q, %v, want %q", name, got, err, want)
		}
	}
	if _, err := symbolFromName("XX"); err == nil {
		Te.Errorf("symbolFromName(\"XX\") should fail")
	}
}

func TestFormula(Te *testing.T) {
	tests := []struct {
		symbols []string
		want    string
	}{
		{[]string{"O", "H", "H"}, "H2O"},
		{[]string{"H", "C", "Cl", "Cl", "Cl"}, "CHCl3"},
		{[]string{"N", "C", "C", "H", "H", "H", "O"}, "C2H3NO"},
		{[]string{"Na", "Cl"}, "ClNa"},
		{[]string{"C", "O", "O"}, "CO2"},
	}
	for _, tt := range tests {
		mol, err := NewMolecule(tt.symbols, make([]float64, 3*len(tt.symbols)))
		if err != nil {
			Te.Fatal(err)
		}
		if got := mol.Formula(); got != tt.want {
			Te.Errorf("Formula(%v) = %q, want %q", tt.symbols, got, tt.want)
		}
	}
}

func TestFormatOf(Te *testing.T) {
	tests := map[string]Format{
		"a.xyz":        XYZ,
		"a.pdb":        PDB,
		"A.PDB.gz":     PDB,
		"b.ent.zst":    PDB,
		"coords":       XYZ,
		"dir.pdb/file": XYZ,
	}
	for name, want := range tests {
		if got := FormatOf(name); got != want {
			Te.Errorf("FormatOf(%q) = %v, want %v", name, got, want)
		}
	}
}

func writeCompressed(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if strings.HasSuffix(name, ".gz") {
		w := gzip.NewWriter(f)
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTextCompressed(Te *testing.T) {
	raw, err := os.ReadFile("testdata/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"water.xyz.gz", "water.xyz.zst"} {
		Te.Run(name, func(t *testing.T) {
			path := writeCompressed(t, name, raw)
			got, err := LoadText(path)
			if err != nil {
				t.Fatal(err)
			}
			if got != string(raw) {
				t.Errorf("decompressed text differs:\n%q\n%q", got, raw)
			}
		})
	}
}

func TestLoadTextPDB(Te *testing.T) {
	raw, err := os.ReadFile("testdata/water.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	path := writeCompressed(Te, "water.pdb.gz", raw)
	got, err := LoadText(path)
	if err != nil {
		Te.Fatal(err)
	}
	want := "O       0.000000    0.000000    0.117000\n" +
		"H       0.000000    0.757000   -0.469000\n" +
		"H       0.000000   -0.757000   -0.469000\n" +
		"Na      3.000000    0.000000    0.000000\n"
	if diff := cmp.Diff(want, got); diff != "" {
		Te.Errorf("LoadText() (-want +got):\n%s", diff)
	}
}

func TestLoadTextMissing(Te *testing.T) {
	_, err := LoadText(filepath.Join(Te.TempDir(), "nothere.xyz"))
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestErrorTrail(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "bad.xyz")
	if err := os.WriteFile(path, []byte("2\ncomment\nO 0 0 0\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err := ReadFile(path)
	var xerr *Error
	if !errors.As(err, &xerr) {
		Te.Fatalf("expected an *Error, got %v", err)
	}
	if xerr.FileName() != path {
		Te.Errorf("FileName() = %q, want %q", xerr.FileName(), path)
	}
	if xerr.Trail() != "Read <- ReadFile" {
		Te.Errorf("Trail() = %q", xerr.Trail())
	}
}
