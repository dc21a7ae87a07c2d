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

// Command genpng renders every chart scenario into a PNG file, using the
// built-in rasteriser.
package main

import (
	"flag"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/surface"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/png", "output directory")
	input := flag.String("charts", "", "YAML chart file, instead of the built-in scenarios")
	flatness := flag.Float64("flatness", 0, "curve flattening tolerance in pixels, 0 for the default")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	chart.SetLogger(logger)

	charts := map[string]*testcases.Chart{}
	if *input == "" {
		for category, list := range testcases.All {
			for i := range list {
				charts[category+"_"+list[i].Name] = &list[i]
			}
		}
	} else {
		list, err := testcases.LoadFile(*input)
		if err != nil {
			logger.Fatal("cannot load charts", zap.Error(err))
		}
		for i := range list {
			charts[list[i].Name] = &list[i]
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Fatal("cannot create output directory", zap.Error(err))
	}
	for _, name := range slices.Sorted(maps.Keys(charts)) {
		fname := filepath.Join(*outDir, name+".png")
		if err := render(charts[name], fname, *flatness); err != nil {
			logger.Fatal("cannot render chart", zap.String("chart", name), zap.Error(err))
		}
		logger.Info("chart written", zap.String("file", fname))
	}
}

func render(c *testcases.Chart, fname string, flatness float64) error {
	g, err := c.Layout()
	if err != nil {
		return err
	}

	im := surface.NewRGBA(c.Width, c.Height, g.Background)
	if flatness > 0 {
		im.Flatness = flatness
	}
	g.Draw(im)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, im.Dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
