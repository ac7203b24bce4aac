/*
 * main.go, part of orcabuild.
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

//orcabuild builds an ORCA input file from command line options, a preset
//and a coordinates file, and writes it to the standard output or to a file.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/rmera/orcabuild"
	"github.com/rmera/orcabuild/preset"
	"github.com/rmera/orcabuild/session"
	"github.com/rmera/orcabuild/xyz"
)

//Version is set at build time via ldflags.
var Version = "dev"

const (
	ExitSuccess = 0 //Input written
	ExitGeneral = 1 //Anything else, including a cancelled save
	ExitUsage   = 2 //Invalid flags, preset or coordinates
	ExitIO      = 3 //File not found, permission denied
)

var (
	errUsage      = errors.New("usage error")
	errBadCoords  = errors.New("invalid coordinates")
	errReadCustom = errors.New("reading custom blocks")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

//run is main without the os.Exit, so it can be tested.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, fs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	switch {
	case f.version:
		fmt.Fprintf(stdout, "orcabuild %s\n", Version)
		return ExitSuccess
	case f.list:
		printTables(stdout)
		return ExitSuccess
	}
	if err := build(f, fs, stdin, stdout, stderr, logger); err != nil {
		fmt.Fprintf(stderr, "orcabuild: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

//build does the actual work: sets up a session from the preset and flags,
//and writes the input.
func build(f *cliFlags, fs *flag.FlagSet, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	p := preset.Default()
	if f.files.preset != "" {
		var err error
		if p, err = preset.Load(f.files.preset); err != nil {
			return err
		}
		logger.Debug("preset loaded", "preset", f.files.preset)
	}
	if fs.Changed("no-autoformat") {
		p.AutoFormat = !f.files.noAutoformat
	}
	S, err := session.FromPreset(p, logger)
	if err != nil {
		return err
	}
	job, err := applyJob(fs, &f.job, S.Job())
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	S.SetJob(job)
	S.SetResources(applyResources(fs, &f.resources, S.Resources()))
	if f.files.output != "" {
		S.SetOutput(f.files.output)
	}
	if orcabuild.JobKeywords(job.Job) == nil && job.Job != orcabuild.SinglePoint {
		logger.Warn("unknown job type, no keyword added", "job", job.Job)
	}

	switch f.files.coords {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading coordinates from stdin: %w", err)
		}
		S.SetCoords(string(data))
	default:
		if err := S.LoadCoords(f.files.coords); err != nil {
			return err
		}
	}
	if f.files.custom != "" {
		data, err := os.ReadFile(f.files.custom) // #nosec G304 -- path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %w", errReadCustom, err)
		}
		S.SetCustom(string(data))
	}
	if f.check {
		if err := checkCoords(S.Coords(), stderr, logger); err != nil {
			return err
		}
	}
	if f.files.savePreset != "" {
		if err := preset.Save(f.files.savePreset, S.Preset()); err != nil {
			return err
		}
		logger.Info("preset saved", "file", f.files.savePreset)
	}
	if f.files.template != "" {
		if err := S.LoadTemplate(f.files.template); err != nil {
			return err
		}
	}
	if f.files.output == "" {
		_, err := io.WriteString(stdout, S.Preview())
		return err
	}
	name, err := S.Save("", func() bool {
		logger.Warn("the input is empty", "force", f.files.force)
		return f.files.force
	})
	if err != nil {
		return err
	}
	logger.Debug("input written", "file", name)
	return nil
}

//checkCoords makes sure that the coordinates that will go in the input
//can be read as XYZ, and reports the number of atoms and the formula
//to w, so the user can tell whether the right molecule went in.
func checkCoords(c orcabuild.CoordinateInput, w io.Writer, logger *slog.Logger) error {
	text := strings.TrimSpace(c.Text)
	if c.AutoFormat {
		text = orcabuild.FormatCoords(text)
	}
	if text == "" {
		logger.Warn("no coordinates given")
		return nil
	}
	mol, err := xyz.Read(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("%w: %w", errBadCoords, err)
	}
	fmt.Fprintf(w, "orcabuild: coordinates ok, %d atoms, %s\n", mol.Len(), mol.Formula())
	logger.Debug("coordinates checked", "atoms", mol.Len(), "formula", mol.Formula())
	return nil
}

//printTables writes the job types, flags and suggested values.
func printTables(w io.Writer) {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Job type\tKeywords")
	for _, v := range orcabuild.JobKinds() {
		fmt.Fprintf(tw, "%s\t%s\n", v.Name, strings.Join(v.Keywords, " "))
	}
	tw.Flush()
	flags := make([]string, 0)
	for _, v := range orcabuild.AllFlags() {
		flags = append(flags, v.String())
	}
	fmt.Fprintf(&b, "\nFlags:      %s\n", strings.Join(flags, " "))
	fmt.Fprintf(&b, "Methods:    %s\n", strings.Join(orcabuild.Methods, " "))
	fmt.Fprintf(&b, "Basis sets: %s\n", strings.Join(orcabuild.BasisSet, " "))
	fmt.Fprintf(&b, "Solvents:   %s\n", strings.Join(orcabuild.Solvents, " "))
	w.Write(b.Bytes())
}

//exitCodeFor returns the exit code for err.
func exitCodeFor(err error) int {
	var xerr *xyz.Error
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission), errors.Is(err, errReadCustom),
		errors.Is(err, preset.ErrNotFound):
		return ExitIO
	case errors.Is(err, errUsage), errors.Is(err, errBadCoords), errors.As(err, &xerr),
		errors.Is(err, preset.ErrParse),
		errors.Is(err, preset.ErrUnknownFlag), errors.Is(err, preset.ErrInputTooLarge):
		return ExitUsage
	}
	return ExitGeneral
}
