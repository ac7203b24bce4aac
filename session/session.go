/*
 * session.go, part of orcabuild.
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

//Package session keeps the state of an interactive editing session: the
//current options, coordinates and custom blocks, and the preview of the
//ORCA input built from them. Any front end (a GUI, a TUI or the command
//line tool) can drive it.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/orcabuild"
	"github.com/rmera/orcabuild/preset"
	"github.com/rmera/orcabuild/xyz"
)

//InputExt is the extension of ORCA input files.
const InputExt = ".inp"

var (
	ErrSaveCancelled = errors.New("save cancelled")
	ErrAutoMode      = errors.New("the preview can't be edited in automatic mode")
)

//Mode says where the preview text comes from.
type Mode int

const (
	//Auto rebuilds the preview every time an input changes.
	Auto Mode = iota
	//ManualOverride keeps the preview as it was last edited or
	//loaded, input changes don't touch it.
	ManualOverride
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case ManualOverride:
		return "manual"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

//Session is the state of one editing session. It is not safe for
//concurrent use.
type Session struct {
	job     orcabuild.JobOptions
	res     orcabuild.ResourceOptions
	coords  orcabuild.CoordinateInput
	custom  string
	output  string
	mode    Mode
	preview string
	log     *slog.Logger
}

//New returns a session with the default options, in automatic mode. If
//logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	S := &Session{log: logger}
	S.job, S.res = orcabuild.Defaults()
	S.coords.AutoFormat = true
	S.output = preset.DefaultOutput
	S.Refresh()
	return S
}

//FromPreset returns a session with the options in p.
func FromPreset(p *preset.Preset, logger *slog.Logger) (*Session, error) {
	job, res, err := p.Options()
	if err != nil {
		return nil, err
	}
	S := New(logger)
	S.job, S.res = job, res
	S.coords.AutoFormat = p.AutoFormat
	if p.Output != "" {
		S.output = p.Output
	}
	S.changed()
	return S, nil
}

//Preset returns the current options as a preset.
func (S *Session) Preset() *preset.Preset {
	p := preset.FromOptions(S.job, S.res, S.coords.AutoFormat)
	p.Output = S.output
	return p
}

//changed rebuilds the preview, unless the session is in manual mode.
func (S *Session) changed() {
	if S.mode == Auto {
		S.Refresh()
	}
}

//Refresh rebuilds the preview from the current inputs, whatever the mode.
func (S *Session) Refresh() {
	S.preview = orcabuild.Assemble(S.job, S.res, S.coords, S.custom)
}

//Preview returns the text that would be saved.
func (S *Session) Preview() string { return S.preview }

//Mode returns the current preview mode.
func (S *Session) Mode() Mode { return S.mode }

//Job returns the current job options.
func (S *Session) Job() orcabuild.JobOptions { return S.job }

//Resources returns the current resource options.
func (S *Session) Resources() orcabuild.ResourceOptions { return S.res }

//Coords returns the current coordinate input.
func (S *Session) Coords() orcabuild.CoordinateInput { return S.coords }

//Custom returns the current custom block text.
func (S *Session) Custom() string { return S.custom }

//Output returns the proposed name for the input file.
func (S *Session) Output() string { return S.output }

func (S *Session) SetJob(job orcabuild.JobOptions) {
	S.job = job
	S.changed()
}

func (S *Session) SetResources(res orcabuild.ResourceOptions) {
	S.res = res
	S.changed()
}

func (S *Session) SetCoords(text string) {
	S.coords.Text = text
	S.changed()
}

func (S *Session) SetAutoFormat(auto bool) {
	S.coords.AutoFormat = auto
	S.changed()
}

func (S *Session) ClearCoords() {
	S.SetCoords("")
}

func (S *Session) SetCustom(text string) {
	S.custom = text
	S.changed()
}

//SetOutput sets the proposed name for the input file. The .inp extension
//is added if name has none.
func (S *Session) SetOutput(name string) {
	S.output = WithInputExt(name)
}

//SetMode sets the preview mode. Going back to Auto rebuilds the preview,
//discarding manual edits.
func (S *Session) SetMode(m Mode) {
	if m == S.mode {
		return
	}
	S.mode = m
	S.log.Debug("preview mode changed", "mode", m)
	S.changed()
}

//ToggleMode switches between Auto and ManualOverride and returns the new mode.
func (S *Session) ToggleMode() Mode {
	if S.mode == Auto {
		S.SetMode(ManualOverride)
	} else {
		S.SetMode(Auto)
	}
	return S.mode
}

//Edit replaces the preview text. It is only allowed in manual mode.
func (S *Session) Edit(text string) error {
	if S.mode == Auto {
		return ErrAutoMode
	}
	S.preview = text
	return nil
}

//LoadCoords replaces the coordinates with those in the file name.
//See xyz.LoadText for the formats accepted. The session is not changed
//if the file can't be read.
func (S *Session) LoadCoords(name string) error {
	text, err := xyz.LoadText(name)
	if err != nil {
		return fmt.Errorf("loading coordinates: %w", err)
	}
	S.log.Info("coordinates loaded", "file", name, "format", xyz.FormatOf(name))
	S.SetCoords(text)
	return nil
}

//LoadTemplate replaces the preview with the contents of a previously saved
//input, verbatim, and switches to manual mode so the text is kept.
func (S *Session) LoadTemplate(name string) error {
	data, err := os.ReadFile(name) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	S.mode = ManualOverride
	S.preview = string(data)
	S.log.Info("template loaded", "file", name, "bytes", len(data))
	return nil
}

//SaveTemplate writes the preview text, as it is, to name.
func (S *Session) SaveTemplate(name string) error {
	if err := os.WriteFile(name, []byte(S.preview), 0o644); err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	S.log.Info("template saved", "file", name)
	return nil
}

//Save writes the input to name, or to the session's output name if name
//is empty. In automatic mode a freshly assembled input is written, in manual
//mode the preview text. If there is nothing to write, confirm is called and
//the save goes on only if it returns true. A nil confirm cancels.
func (S *Session) Save(name string, confirm func() bool) (string, error) {
	if name == "" {
		name = S.output
	}
	name = WithInputExt(name)
	content := S.preview
	if S.mode == Auto {
		S.Refresh()
		content = S.preview
	}
	if strings.TrimSpace(content) == "" {
		if confirm == nil || !confirm() {
			S.log.Warn("empty input not saved", "file", name)
			return "", ErrSaveCancelled
		}
	}
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("saving input: %w", err)
	}
	S.log.Info("input saved", "file", name, "mode", S.mode)
	return name, nil
}

//WithInputExt adds the .inp extension to name if it has none.
func WithInputExt(name string) string {
	if name == "" || filepath.Ext(name) != "" {
		return name
	}
	return name + InputExt
}
