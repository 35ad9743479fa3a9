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

package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/canvas"
	"seehuhn.de/go/legend/pdfout"
	"seehuhn.de/go/legend/series"
	"seehuhn.de/go/legend/testcases"
)

type options struct {
	output   string
	caseName string
	input    string
	list     bool

	width, height int

	legendSize []float64
	anchor     string
	position   []float64
	yRange     []float64

	title    string
	stats    bool
	noLegend bool
	verbose  bool
}

var errUsage = errors.New("exactly one of --case and --input is required")

func run(opt *options) error {
	if opt.output == "" {
		return errors.New("no output file given")
	}
	ch, err := buildChart(opt)
	if err != nil {
		return err
	}

	var res legend.Result
	switch ext := strings.ToLower(filepath.Ext(opt.output)); ext {
	case ".png":
		c, err := canvas.New(opt.width, opt.height, legend.DefaultMargins)
		if err != nil {
			return err
		}
		res, err = ch.Draw(c)
		if err != nil {
			return err
		}
		if err := c.SavePNG(opt.output); err != nil {
			return err
		}
	case ".pdf":
		w, err := pdfout.Create(opt.output, float64(opt.width), float64(opt.height), legend.DefaultMargins)
		if err != nil {
			return err
		}
		res, err = ch.Draw(w)
		if err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if err := res.Err(); err != nil {
		log.Printf("warning: %v", err)
	} else if opt.verbose {
		log.Printf("legend %s at %s after %d range steps",
			res.State, res.Anchor, res.Attempts)
	}
	return nil
}

// buildChart collects the series and applies the legend options.
func buildChart(opt *options) (*legend.Chart, error) {
	var opts []legend.Option
	if opt.verbose {
		opts = append(opts, legend.WithTrace(func(ev legend.Event) {
			log.Printf("%-16s %-13s collides=%t y=[%g, %g]",
				ev.State, ev.Anchor, ev.Collides, ev.Range.Y.Min, ev.Range.Y.Max)
		}))
	}

	var ch *legend.Chart
	switch {
	case (opt.caseName == "") == (opt.input == ""):
		return nil, errUsage
	case opt.caseName != "":
		tc, err := findCase(opt.caseName)
		if err != nil {
			return nil, err
		}
		ch, err = tc.Chart(opts...)
		if err != nil {
			return nil, err
		}
	default:
		list, err := series.LoadWorkbook(opt.input)
		if err != nil {
			return nil, err
		}
		ch = legend.NewChart(opts...)
		for _, l := range list {
			ch.Add(l.Series, l.Label, legend.AddOptions{})
		}
	}

	if err := configure(ch, opt); err != nil {
		return nil, err
	}
	return ch, nil
}

func configure(ch *legend.Chart, opt *options) error {
	if opt.legendSize != nil {
		if len(opt.legendSize) != 2 {
			return errors.New("--legend-size needs two values")
		}
		if err := ch.SetLegendSize(opt.legendSize[0], opt.legendSize[1]); err != nil {
			return err
		}
	}
	if opt.anchor != "" && opt.position != nil {
		return errors.New("--anchor and --position are mutually exclusive")
	}
	if opt.anchor != "" {
		a, err := legend.ParseAnchor(opt.anchor)
		if err != nil {
			return err
		}
		ch.SetLegendAnchor(a, true)
	}
	if opt.position != nil {
		if len(opt.position) != 4 {
			return errors.New("--position needs four values")
		}
		p := opt.position
		r := rect.Rect{LLx: p[0], LLy: p[1], URx: p[2], URy: p[3]}
		if err := ch.SetLegendPosition(r, true); err != nil {
			return err
		}
	}
	if opt.yRange != nil {
		if len(opt.yRange) != 2 {
			return errors.New("--y-range needs two values")
		}
		if err := ch.SetYAxisRange(opt.yRange[0], opt.yRange[1]); err != nil {
			return err
		}
	}
	if opt.title != "" {
		ch.SetTitles(legend.Titles{Title: opt.title})
	}
	if opt.stats {
		if err := ch.ShowStats(legend.StatsBox{Show: true}); err != nil {
			return err
		}
	}
	ch.ShowLegend(!opt.noLegend)
	return nil
}

func findCase(name string) (testcases.Case, error) {
	for category, list := range testcases.All {
		for _, tc := range list {
			if category+"_"+tc.Name == name {
				return tc, nil
			}
		}
	}
	return testcases.Case{}, fmt.Errorf("unknown case %q, use --list", name)
}
