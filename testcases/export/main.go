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

// Command export writes the computed geometry of every chart scenario to a
// YAML file, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"flag"
	"maps"
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/pie"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/series"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/testcases"
)

func main() {
	outName := flag.String("o", "testdata/geometry.yaml", "output file")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	chart.SetLogger(logger)

	var out yamlFile
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for i := range testcases.All[category] {
			c := &testcases.All[category][i]
			g, err := c.Layout()
			if err != nil {
				logger.Fatal("layout failed",
					zap.String("chart", category+"_"+c.Name), zap.Error(err))
			}
			out.Charts = append(out.Charts, toYAML(category+"_"+c.Name, g))
		}
	}

	if err := write(*outName, out); err != nil {
		logger.Fatal("cannot write geometry", zap.Error(err))
	}
	logger.Info("geometry written",
		zap.String("file", *outName), zap.Int("charts", len(out.Charts)))
}

func write(fname string, out yamlFile) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type yamlFile struct {
	Charts []yamlChart `yaml:"charts"`
}

type yamlChart struct {
	Name   string       `yaml:"name"`
	Series []yamlSeries `yaml:"series,omitempty"`
	Slices []yamlSlice  `yaml:"slices,omitempty"`
}

type yamlSeries struct {
	Name     string          `yaml:"name"`
	Segments [][2]int        `yaml:"segments,flow"` // first and last point index
	Surface  [][2]float64    `yaml:"surface,flow"`
	Lines    [][]yamlSegment `yaml:"lines,omitempty"`
	Fills    [][]yamlSegment `yaml:"fills,omitempty"`
}

type yamlSlice struct {
	Empty      bool          `yaml:"empty,omitempty"`
	Center     [2]float64    `yaml:"center,flow"`
	Origin     [2]float64    `yaml:"origin,flow"`
	Inner      float64       `yaml:"inner"`
	Outer      float64       `yaml:"outer"`
	StartAngle float64       `yaml:"start_angle"`
	SweepAngle float64       `yaml:"sweep_angle"`
	Fill       []yamlSegment `yaml:"fill,omitempty"`
	Arc        []yamlSegment `yaml:"arc,omitempty"`
}

type yamlSegment struct {
	Cmd string       `yaml:"cmd"`
	Pts [][2]float64 `yaml:"pts,flow,omitempty"`
}

func toYAML(name string, g *testcases.Geometry) yamlChart {
	res := yamlChart{Name: name}
	for _, s := range g.Series {
		res.Series = append(res.Series, seriesToYAML(s))
	}
	for i := range g.Slices {
		res.Slices = append(res.Slices, sliceToYAML(&g.Slices[i]))
	}
	return res
}

func seriesToYAML(s series.Result) yamlSeries {
	res := yamlSeries{Name: s.Name}
	for _, seg := range s.Segments {
		res.Segments = append(res.Segments, [2]int{seg.Start, seg.End()})
	}
	for _, pt := range s.Surface {
		res.Surface = append(res.Surface, xy(pt))
	}
	for _, p := range s.Lines {
		res.Lines = append(res.Lines, pathToYAML(p))
	}
	for _, p := range s.Fills {
		res.Fills = append(res.Fills, pathToYAML(p))
	}
	return res
}

func sliceToYAML(g *pie.Geometry) yamlSlice {
	res := yamlSlice{
		Empty:      g.IsEmpty(),
		Center:     xy(g.Center),
		Origin:     xy(g.Origin),
		Inner:      g.Inner,
		Outer:      g.Outer,
		StartAngle: g.StartAngle,
		SweepAngle: g.SweepAngle,
	}
	if g.Fill != nil {
		res.Fill = pathToYAML(g.Fill)
	}
	if g.Arc != nil {
		res.Arc = pathToYAML(g.Arc)
	}
	return res
}

func pathToYAML(p *path.Data) []yamlSegment {
	var segs []yamlSegment
	for cmd, pts := range p.Iter() {
		seg := yamlSegment{}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for _, pt := range pts {
			seg.Pts = append(seg.Pts, xy(pt))
		}
		segs = append(segs, seg)
	}
	return segs
}

func xy(v vec.Vec2) [2]float64 {
	return [2]float64{v.X, v.Y}
}
