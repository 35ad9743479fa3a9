// seehuhn.de/go/legend - legend placement for 2D charts
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

// Command genpdf renders every chart scenario into testdata/gallery, as
// a PDF file and as a PNG image. If Ghostscript is installed, the PDF
// files are also rasterised for side by side comparison.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/canvas"
	"seehuhn.de/go/legend/pdfout"
	"seehuhn.de/go/legend/testcases"
)

const galleryDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(galleryDir, 0o755); err != nil {
		log.Fatal(err)
	}
	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(galleryDir, name+".pdf")
			pngPath := filepath.Join(galleryDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if err := generatePNG(tc, pngPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if gsErr == nil {
				gsPath := filepath.Join(galleryDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath); err != nil {
					log.Fatalf("%s: %v", name, err)
				}
			}
		}
	}
	if gsErr != nil {
		log.Printf("ghostscript not found, skipped PDF rasterisation")
	}
}

func generatePDF(tc testcases.Case, pdfPath string) error {
	ch, err := tc.Chart()
	if err != nil {
		return err
	}
	w, err := pdfout.Create(pdfPath, 600, 450, legend.DefaultMargins)
	if err != nil {
		return err
	}
	res, err := ch.Draw(w)
	if err != nil {
		w.Close()
		return err
	}
	report(tc, res)
	return w.Close()
}

func generatePNG(tc testcases.Case, pngPath string) error {
	ch, err := tc.Chart()
	if err != nil {
		return err
	}
	ch.SetTitles(legend.Titles{Title: tc.Name, X: "x", Y: "y"})
	c, err := canvas.New(600, 450, legend.DefaultMargins)
	if err != nil {
		return err
	}
	if _, err := ch.Draw(c); err != nil {
		return err
	}
	return c.SavePNG(pngPath)
}

func report(tc testcases.Case, res legend.Result) {
	if res.Failed {
		log.Printf("%s: %v", tc.Name, res.Err())
		return
	}
	fmt.Printf("%-20s %-12s %-14s attempts=%d evaluations=%d\n",
		tc.Name, res.State, res.Anchor, res.Attempts, res.Evaluations)
}

func renderPNG(pdfPath, pngPath string) error {
	// -r96 with a 600x450pt page gives 800x600 pixels
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r96",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
