/*
 * preset_test.go, part of orcabuild.
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

package preset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/orcabuild"
)

func TestLoadYAML(Te *testing.T) {
	p, err := Load("testdata/opt.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	want := &Preset{
		Job:          "Geometry Optimization (OPT)",
		Method:       "PBE0",
		Basis:        "def2-TZVP",
		Charge:       "-1",
		Multiplicity: "1", //default
		Solvent:      "Acetonitrile",
		Flags:        []string{"TightSCF", "D3BJ", "CPCM"},
		MaxCore:      3000,
		NProcs:       8,
		AutoFormat:   true, //default
		Output:       DefaultOutput,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		Te.Errorf("Load() (-want +got):\n%s", diff)
	}
	job, res, err := p.Options()
	if err != nil {
		Te.Fatal(err)
	}
	got := orcabuild.MainLine(job)
	if got != "! Opt PBE0 def2-TZVP TightSCF D3BJ CPCM" {
		Te.Errorf("unexpected main line %q", got)
	}
	if res.MaxCore != 3000 || res.NProcs != 8 {
		Te.Errorf("unexpected resources %+v", res)
	}
}

func TestLoadHCL(Te *testing.T) {
	p, err := Load("testdata/ts.hcl")
	if err != nil {
		Te.Fatal(err)
	}
	want := &Preset{
		Job:          "Transition State (TS)",
		Method:       "wB97X-D",
		Basis:        "def2-SVP",
		Charge:       "0",
		Multiplicity: "2",
		Solvent:      "Water",
		Flags:        []string{"RIJCOSX", "SlowConv"},
		Keywords:     "def2/J",
		MaxCore:      orcabuild.DefaultMaxCore,
		NProcs:       16,
		AutoFormat:   false,
		Output:       "ts.inp",
	}
	if diff := cmp.Diff(want, p); diff != "" {
		Te.Errorf("Load() (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(Te *testing.T) {
	if _, err := Load(""); !errors.Is(err, ErrEmptyName) {
		Te.Errorf("expected ErrEmptyName, got %v", err)
	}
	_, err := Load("testdata/missing.yaml")
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("expected ErrNotFound wrapping fs.ErrNotExist, got %v", err)
	}
	if _, err := Load("testdata/unknown_field.yaml"); !errors.Is(err, ErrParse) {
		Te.Errorf("expected ErrParse for an unknown field, got %v", err)
	}
	p, err := Load("testdata/bad_flag.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if _, _, err := p.Options(); !errors.Is(err, ErrUnknownFlag) {
		Te.Errorf("expected ErrUnknownFlag, got %v", err)
	}
}

func TestParseTooLarge(Te *testing.T) {
	old := MaxInputSize
	MaxInputSize = 10
	defer func() { MaxInputSize = old }()
	if _, err := Parse("big.yaml", []byte("method: B3LYP\nbasis: def2-SVP\n")); !errors.Is(err, ErrInputTooLarge) {
		Te.Errorf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestParseEmpty(Te *testing.T) {
	p, err := Parse("empty.yaml", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(Default(), p); diff != "" {
		Te.Errorf("an empty preset should give the defaults (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoadByName(Te *testing.T) {
	dir := Te.TempDir()
	job, res := orcabuild.Defaults()
	job.Job = "Excited States (TD-DFT)"
	job.Flags = orcabuild.NewFlags(orcabuild.RIJCOSX, orcabuild.DefGrid3)
	job.Keywords = "def2/J"
	res.NProcs = 12
	p := FromOptions(job, res, false)
	p.Output = "tddft.inp"
	if err := Save(filepath.Join(dir, "tddft.yaml"), p); err != nil {
		Te.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { os.Chdir(wd) })
	loaded, err := Load("tddft")
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(p, loaded); diff != "" {
		Te.Errorf("saved and loaded presets differ (-want +got):\n%s", diff)
	}
	gotJob, gotRes, err := loaded.Options()
	if err != nil {
		Te.Fatal(err)
	}
	if gotJob != job || gotRes != res {
		Te.Errorf("options changed through the preset:\n%+v\n%+v", job, gotJob)
	}
}
