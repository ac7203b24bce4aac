/*
 * open.go, part of orcabuild.
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
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Format is a coordinate file format.
type Format int

const (
	XYZ Format = iota
	PDB
)

func (f Format) String() string {
	if f == PDB {
		return "pdb"
	}
	return "xyz"
}

//FormatOf guesses the format of a file from its name. Compression
//suffixes (.gz, .zst) are ignored. Anything that is not a PDB file is
//taken to be XYZ.
func FormatOf(name string) Format {
	ext := strings.ToLower(filepath.Ext(stripCompression(name)))
	if ext == ".pdb" || ext == ".ent" {
		return PDB
	}
	return XYZ
}

func stripCompression(name string) string {
	lower := strings.ToLower(name)
	for _, v := range []string{".gz", ".zst"} {
		if strings.HasSuffix(lower, v) {
			return name[:len(name)-len(v)]
		}
	}
	return name
}

//multiCloser closes the decompressor and then the file under it.
type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

//Open opens the file name for reading. Files ending in .gz or .zst
//are decompressed on the fly.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, &Error{message: "can't read gzip stream: " + err.Error(), filename: name, deco: []string{"Open"}, critical: true}
		}
		return &multiCloser{gz, []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(lower, ".zst"):
		zs, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, &Error{message: "can't read zstd stream: " + err.Error(), filename: name, deco: []string{"Open"}, critical: true}
		}
		//zstd.Decoder.Close returns nothing.
		zclose := func() error { zs.Close(); return nil }
		return &multiCloser{zs, []func() error{zclose, f.Close}}, nil
	}
	return &multiCloser{buf, []func() error{f.Close}}, nil
}

//ReadFile reads the molecule in the file name, in the format given by
//FormatOf.
func ReadFile(name string) (*Molecule, error) {
	r, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile", name)
	}
	defer r.Close()
	var mol *Molecule
	if FormatOf(name) == PDB {
		mol, err = ReadPDB(r)
	} else {
		mol, err = Read(r)
	}
	if err != nil {
		return nil, errDecorate(err, "ReadFile", name)
	}
	return mol, nil
}

//LoadText returns the contents of the file name as text to be used as
//coordinates in an ORCA input. XYZ files are returned as they are (after
//decompression, if needed), so the header is handled when the input is
//assembled. PDB files are converted to bare XYZ lines.
func LoadText(name string) (string, error) {
	if FormatOf(name) == PDB {
		mol, err := ReadFile(name)
		if err != nil {
			return "", errDecorate(err, "LoadText", name)
		}
		return mol.Lines() + "\n", nil
	}
	r, err := Open(name)
	if err != nil {
		return "", errDecorate(err, "LoadText", name)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{message: err.Error(), filename: name, deco: []string{"LoadText"}, critical: true}
	}
	return string(data), nil
}
