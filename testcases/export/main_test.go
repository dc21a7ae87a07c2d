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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/testcases"
)

func TestWrite(t *testing.T) {
	c := &testcases.All["pie"][0]
	g, err := c.Layout()
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "geometry.yaml")
	out := yamlFile{Charts: []yamlChart{toYAML("pie_"+c.Name, g)}}
	require.NoError(t, write(fname, out))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	var back yamlFile
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back.Charts, 1)
	assert.Equal(t, "pie_"+c.Name, back.Charts[0].Name)
	assert.Len(t, back.Charts[0].Slices, len(g.Slices))
}

func TestWriteMissingDir(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "geometry.yaml")
	assert.Error(t, write(fname, yamlFile{}))
}
