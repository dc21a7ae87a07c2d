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

// Command genpdf renders every chart scenario into a PDF file.
//
// Colours are converted to gray, so that the output can be compared with
// the PNG files written by genpng after conversion to gray. With -png the
// PDF files are also rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	chart "github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/surface"
	"github.com/Japhlet/Telerik-UI-for-Android-2016-2-504-sub003/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	input := flag.String("charts", "", "YAML chart file, instead of the built-in scenarios")
	withPNG := flag.Bool("png", false, "render the PDF files to PNG using Ghostscript")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	chart.SetLogger(logger)

	charts, err := load(*input)
	if err != nil {
		logger.Fatal("cannot load charts", zap.Error(err))
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Fatal("cannot create output directory", zap.Error(err))
	}

	for _, name := range slices.Sorted(maps.Keys(charts)) {
		c := charts[name]
		pdfPath := filepath.Join(*outDir, name+".pdf")
		if err := generatePDF(c, pdfPath); err != nil {
			logger.Fatal("cannot write PDF", zap.String("chart", name), zap.Error(err))
		}
		if *withPNG {
			pngPath := filepath.Join(*outDir, name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				logger.Fatal("cannot render PDF", zap.String("chart", name), zap.Error(err))
			}
		}
		logger.Info("chart written", zap.String("file", pdfPath))
	}
}

// load returns the charts to render, keyed by output file name.
func load(fname string) (map[string]*testcases.Chart, error) {
	res := make(map[string]*testcases.Chart)
	if fname == "" {
		for category, list := range testcases.All {
			for i := range list {
				res[category+"_"+list[i].Name] = &list[i]
			}
		}
		return res, nil
	}

	list, err := testcases.LoadFile(fname)
	if err != nil {
		return nil, err
	}
	for i := range list {
		res[list[i].Name] = &list[i]
	}
	return res, nil
}

func generatePDF(c *testcases.Chart, pdfPath string) error {
	g, err := c.Layout()
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(c.Width),
		URy: float64(c.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(gray(g.Background))
	page.Rectangle(0, 0, float64(c.Width), float64(c.Height))
	page.Fill()

	// PDF origin is bottom-left; charts assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(c.Height)})

	g.Draw(&pageSurface{page: page})

	return page.Close()
}

// pageSurface draws onto a PDF page.
type pageSurface struct {
	page *document.Page
}

func (s *pageSurface) Fill(p *path.Data, c color.Color) {
	s.page.SetFillColor(gray(c))
	s.path(p)
	s.page.Fill()
}

func (s *pageSurface) Stroke(p *path.Data, style surface.StrokeStyle, c color.Color) {
	// stroke parameters must be set before path construction
	s.page.SetStrokeColor(gray(c))
	s.page.SetLineWidth(style.Width)
	s.page.SetLineCap(style.Cap)
	s.page.SetLineJoin(style.Join)
	s.page.SetMiterLimit(style.MiterLimit)
	s.path(p)
	s.page.Stroke()
}

// path converts p to PDF path operators. PDF has no quadratic curves.
func (s *pageSurface) path(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			s.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			s.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			s.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			s.page.ClosePath()
		}
	}
}

func gray(c color.Color) pdfcolor.Color {
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return pdfcolor.DeviceGray(float64(g.Y) / 0xffff)
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
