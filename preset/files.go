/*
 * files.go, part of orcabuild.
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

var (
	ErrNotFound      = errors.New("preset not found")
	ErrEmptyName     = errors.New("preset name cannot be empty")
	ErrParse         = errors.New("failed to parse preset")
	ErrInputTooLarge = errors.New("preset exceeds maximum size")
)

//MaxInputSize limits the size of a preset file.
var MaxInputSize = 1 << 20

//extensions are tried in this order when a preset is given by name.
var extensions = []string{".yaml", ".yml", ".hcl"}

//Load reads a preset from a file path or a preset name. Names (anything
//without a path separator or a known extension) are searched for in the
//current directory and then in the user config directory, under orcabuild/.
func Load(nameOrPath string) (*Preset, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyName
	}
	path := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if path, err = resolve(nameOrPath); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(path) // #nosec G304 -- preset path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("reading preset: %w", err)
	}
	return Parse(path, data)
}

//Parse decodes the preset in data. The format is chosen from the
//extension of filename: .hcl for HCL, YAML otherwise.
func Parse(filename string, data []byte) (*Preset, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	p := Default()
	if filepath.Ext(filename) == ".hcl" {
		if err := hclsimple.Decode(filepath.Base(filename), data, nil, p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return p, nil
	}
	if len(data) == 0 {
		return p, nil
	}
	if err := yaml.UnmarshalWithOptions(data, p, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return p, nil
}

//Save writes P as YAML to path.
func Save(path string, P *Preset) error {
	data, err := yaml.Marshal(P)
	if err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preset: %w", err)
	}
	return nil
}

//isFilePath returns true if s looks like a file path rather than a name.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	for _, v := range extensions {
		if ext == v {
			return true
		}
	}
	return false
}

//resolve searches for the preset called name.
func resolve(name string) (string, error) {
	dirs := []string{"."}
	if confdir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(confdir, "orcabuild"))
	}
	tried := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
			tried = append(tried, path)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(tried, ", "))
}
