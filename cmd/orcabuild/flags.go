/*
 * flags.go, part of orcabuild.
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

package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/rmera/orcabuild"
)

//jobFlags holds the flags that set the job options.
type jobFlags struct {
	job      string
	method   string
	basis    string
	charge   string
	mult     string
	solvent  string
	keywords string
	enable   []string
	disable  []string
}

//resourceFlags holds the memory and parallelization flags.
type resourceFlags struct {
	maxcore int
	nprocs  int
}

//ioFlags holds the flags for files read and written.
type ioFlags struct {
	preset       string
	savePreset   string
	coords       string
	custom       string
	template     string
	output       string
	noAutoformat bool
	force        bool
}

type cliFlags struct {
	job       jobFlags
	resources resourceFlags
	files     ioFlags
	check     bool
	list      bool
	verbose   bool
	version   bool
}

func addJobFlags(fs *flag.FlagSet, f *jobFlags) {
	fs.StringVarP(&f.job, "job", "j", "", "job type, see --list")
	fs.StringVarP(&f.method, "method", "m", "", "method, e.g. B3LYP")
	fs.StringVarP(&f.basis, "basis", "b", "", "basis set, e.g. def2-SVP")
	fs.StringVar(&f.charge, "charge", "", "total charge")
	fs.StringVar(&f.mult, "mult", "", "spin multiplicity")
	fs.StringVar(&f.solvent, "solvent", "", "SMD solvent name")
	fs.StringVarP(&f.keywords, "keywords", "k", "", "custom keywords appended to the ! line")
	fs.StringSliceVarP(&f.enable, "flag", "f", nil, "enable a flag (repeatable), see --list")
	fs.StringSliceVar(&f.disable, "no-flag", nil, "disable a flag (repeatable)")
}

func addResourceFlags(fs *flag.FlagSet, f *resourceFlags) {
	fs.IntVar(&f.maxcore, "maxcore", orcabuild.DefaultMaxCore, "memory per core in MB")
	fs.IntVarP(&f.nprocs, "nprocs", "n", orcabuild.DefaultNProcs, "number of processes")
}

func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.preset, "preset", "p", "", "preset name or file (.yaml, .yml, .hcl)")
	fs.StringVar(&f.savePreset, "save-preset", "", "save the resulting options as a YAML preset")
	fs.StringVarP(&f.coords, "coords", "c", "", "coordinates file (.xyz, .pdb, optionally .gz/.zst), - for stdin")
	fs.StringVar(&f.custom, "custom", "", "file with custom %blocks")
	fs.StringVarP(&f.template, "template", "t", "", "write this input file verbatim instead of building one")
	fs.StringVarP(&f.output, "output", "o", "", "write the input to this file instead of stdout")
	fs.BoolVar(&f.noAutoformat, "no-autoformat", false, "keep the XYZ header lines in the coordinates")
	fs.BoolVar(&f.force, "force", false, "save even if the input is empty")
}

//parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (*cliFlags, *flag.FlagSet, error) {
	f := new(cliFlags)
	fs := flag.NewFlagSet("orcabuild", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	addJobFlags(fs, &f.job)
	addResourceFlags(fs, &f.resources)
	addIOFlags(fs, &f.files)
	fs.BoolVar(&f.check, "check", false, "check that the coordinates can be read")
	fs.BoolVarP(&f.list, "list", "l", false, "list job types, flags and suggested values")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log what is being done")
	fs.BoolVar(&f.version, "version", false, "print the version")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: orcabuild [flags]\n\nBuilds an ORCA input file.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, fs, nil
}

//applyJob overrides the options in job with the flags the user set.
func applyJob(fs *flag.FlagSet, f *jobFlags, job orcabuild.JobOptions) (orcabuild.JobOptions, error) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("job", &job.Job, f.job)
	set("method", &job.Method, f.method)
	set("basis", &job.Basis, f.basis)
	set("charge", &job.Charge, f.charge)
	set("mult", &job.Multiplicity, f.mult)
	set("solvent", &job.Solvent, f.solvent)
	set("keywords", &job.Keywords, f.keywords)
	for _, v := range f.enable {
		fl, err := orcabuild.ParseFlag(v)
		if err != nil {
			return job, err
		}
		job.Flags = job.Flags.With(fl)
	}
	for _, v := range f.disable {
		fl, err := orcabuild.ParseFlag(v)
		if err != nil {
			return job, err
		}
		job.Flags = job.Flags.Without(fl)
	}
	return job, nil
}

//applyResources overrides the options in res with the flags the user set.
func applyResources(fs *flag.FlagSet, f *resourceFlags, res orcabuild.ResourceOptions) orcabuild.ResourceOptions {
	if fs.Changed("maxcore") {
		res.MaxCore = f.maxcore
	}
	if fs.Changed("nprocs") {
		res.NProcs = f.nprocs
	}
	return res
}
