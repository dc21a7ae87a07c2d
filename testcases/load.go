// chart - series geometry for charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
)

// File is the top-level structure of a YAML chart file.
type File struct {
	Charts []Chart `yaml:"charts"`
}

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Load reads chart descriptions in YAML format.
//
// Unknown fields are rejected, so that typos do not go unnoticed.
func Load(r io.Reader) ([]Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding charts")
	}
	seen := make(map[string]bool, len(f.Charts))
	for _, c := range f.Charts {
		if !validName.MatchString(c.Name) {
			return nil, chart.InvalidArgument("chart name %q", c.Name)
		}
		if seen[c.Name] {
			return nil, chart.InvalidArgument("duplicate chart %q", c.Name)
		}
		seen[c.Name] = true
	}
	return f.Charts, nil
}

// LoadFile reads chart descriptions from the named YAML file.
func LoadFile(name string) ([]Chart, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	charts, err := Load(fd)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return charts, nil
}

// Write stores charts in YAML format.
func Write(w io.Writer, charts []Chart) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Charts: charts}); err != nil {
		return err
	}
	return enc.Close()
}
