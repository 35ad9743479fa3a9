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

// Command legendplot draws a chart with an automatically placed legend.
//
// The data come either from one of the built-in scenarios (--case) or
// from an xlsx workbook with one series per worksheet (--input). The
// output format is chosen by the file extension, .png or .pdf.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/legend/testcases"
)

func main() {
	var opt options

	rootCmd := &cobra.Command{
		Use:   "legendplot -o output.png (--case name | --input data.xlsx)",
		Short: "Draw a chart with an automatically placed legend",
		Long: `legendplot draws all series of a scenario or workbook and places
the legend box where it does not cover any data. If no free position
exists, the legend is drawn in the upper right corner and a warning is
printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.list {
				listCases()
				return nil
			}
			return run(&opt)
		},
		SilenceUsage: true,
	}

	f := rootCmd.Flags()
	f.StringVarP(&opt.output, "output", "o", "", "Output file (.png or .pdf)")
	f.StringVar(&opt.caseName, "case", "", "Built-in scenario, as category_name")
	f.StringVar(&opt.input, "input", "", "xlsx workbook with one series per sheet")
	f.BoolVar(&opt.list, "list", false, "List the built-in scenarios and exit")
	f.IntVar(&opt.width, "width", 800, "Image width in pixels (points for PDF)")
	f.IntVar(&opt.height, "height", 600, "Image height in pixels (points for PDF)")
	f.Float64SliceVar(&opt.legendSize, "legend-size", nil, "Legend width,height in box units")
	f.StringVar(&opt.anchor, "anchor", "", "Fix the legend at this anchor, e.g. lower-left")
	f.Float64SliceVar(&opt.position, "position", nil, "Fix the legend at x0,y0,x1,y1 in box units")
	f.Float64SliceVar(&opt.yRange, "y-range", nil, "Fix the y axis range to min,max")
	f.StringVar(&opt.title, "title", "", "Chart title")
	f.BoolVar(&opt.stats, "stats", false, "Show statistics of the first series")
	f.BoolVar(&opt.noLegend, "no-legend", false, "Do not draw the legend")
	f.BoolVarP(&opt.verbose, "verbose", "v", false, "Log every step of the legend search")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func listCases() {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			fmt.Printf("%s_%s\n", category, tc.Name)
		}
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("legendplot: ")
}
