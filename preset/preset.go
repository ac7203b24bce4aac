/*
 * preset.go, part of orcabuild.
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

//Package preset stores sets of ORCA input options in YAML or HCL files,
//so they can be reused between sessions.
package preset

import (
	"errors"
	"fmt"

	"github.com/rmera/orcabuild"
)

//DefaultOutput is the name proposed for the ORCA input file.
const DefaultOutput = "orca_input.inp"

//ErrUnknownFlag is returned when a preset enables a flag that does not exist.
var ErrUnknownFlag = errors.New("unknown flag")

//Preset is a stored set of options. Fields missing from a preset file keep
//the values of orcabuild.Defaults.
type Preset struct {
	Job          string   `yaml:"job" hcl:"job,optional"`
	Method       string   `yaml:"method" hcl:"method,optional"`
	Basis        string   `yaml:"basis" hcl:"basis,optional"`
	Charge       string   `yaml:"charge" hcl:"charge,optional"`
	Multiplicity string   `yaml:"multiplicity" hcl:"multiplicity,optional"`
	Solvent      string   `yaml:"solvent" hcl:"solvent,optional"`
	Flags        []string `yaml:"flags" hcl:"flags,optional"`
	Keywords     string   `yaml:"keywords,omitempty" hcl:"keywords,optional"`
	MaxCore      int      `yaml:"maxcore" hcl:"maxcore,optional"`
	NProcs       int      `yaml:"nprocs" hcl:"nprocs,optional"`
	AutoFormat   bool     `yaml:"autoformat" hcl:"autoformat,optional"`
	Output       string   `yaml:"output,omitempty" hcl:"output,optional"`
}

//Default returns the preset with the default options.
func Default() *Preset {
	job, res := orcabuild.Defaults()
	p := FromOptions(job, res, true)
	p.Output = DefaultOutput
	return p
}

//FromOptions returns a preset with the given options.
func FromOptions(job orcabuild.JobOptions, res orcabuild.ResourceOptions, autoformat bool) *Preset {
	return &Preset{
		Job:          job.Job,
		Method:       job.Method,
		Basis:        job.Basis,
		Charge:       job.Charge,
		Multiplicity: job.Multiplicity,
		Solvent:      job.Solvent,
		Flags:        job.Flags.Tokens(),
		Keywords:     job.Keywords,
		MaxCore:      res.MaxCore,
		NProcs:       res.NProcs,
		AutoFormat:   autoformat,
	}
}

//Options returns the options stored in P. It fails only if P enables
//a flag that does not exist.
func (P *Preset) Options() (orcabuild.JobOptions, orcabuild.ResourceOptions, error) {
	var flags orcabuild.Flags
	for _, v := range P.Flags {
		fl, err := orcabuild.ParseFlag(v)
		if err != nil {
			return orcabuild.JobOptions{}, orcabuild.ResourceOptions{}, fmt.Errorf("%w: %q", ErrUnknownFlag, v)
		}
		flags = flags.With(fl)
	}
	job := orcabuild.JobOptions{
		Job:          P.Job,
		Method:       P.Method,
		Basis:        P.Basis,
		Charge:       P.Charge,
		Multiplicity: P.Multiplicity,
		Solvent:      P.Solvent,
		Flags:        flags,
		Keywords:     P.Keywords,
	}
	return job, orcabuild.ResourceOptions{MaxCore: P.MaxCore, NProcs: P.NProcs}, nil
}
