// seehuhn.de/go/linechart - line chart layout and geometry
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

// Command genpdf generates reference images for the chart test cases.
// It writes a PDF and a PNG for every case, and renders each PDF with
// Ghostscript for comparison if gs is installed.
package main

import (
	"errors"
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/linechart/export"
	"seehuhn.de/go/linechart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	_, err := exec.LookPath("gs")
	haveGS := err == nil
	if !haveGS {
		fmt.Fprintln(os.Stderr, "gs not found, skipping Ghostscript renderings")
	}

	style := export.DefaultStyle()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")
			gsPath := filepath.Join(refDir, name+"_gs.png")

			l := tc.Layout()
			if err := export.WritePDF(pdfPath, l, style); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(pngPath, tc, style); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if haveGS {
				if err := renderPNG(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func writePNG(pngPath string, tc testcases.TestCase, style *export.Style) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, export.RenderImage(tc.Layout(), style))
	return errors.Join(err, f.Close())
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, like the style colours
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
