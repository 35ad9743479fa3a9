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

// Package testcases holds chart scenarios shared by the package tests,
// the PDF/PNG gallery generator and the JSON exporter.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/series"
)

// Case is one chart scenario together with the expected outcome of the
// legend placement.
type Case struct {
	Name   string  // lowercase a-z and _ only
	Width  float64 // legend width in box space
	Height float64 // legend height in box space
	Series []Input

	// FixedY, if set, pins the y axis range.
	FixedY *legend.Interval

	Want Want
}

// Input is one series of a scenario.
type Input struct {
	Label  string
	Series series.Series
	Opt    legend.AddOptions
}

// Want is the expected placement outcome.
// An Anchor of [legend.NoAnchor] accepts any anchor.
type Want struct {
	Anchor legend.Anchor
	State  legend.State
	Failed bool
}

// Chart builds a new chart for the scenario.
func (c Case) Chart(opts ...legend.Option) (*legend.Chart, error) {
	opts = append([]legend.Option{legend.WithLegendSize(c.Width, c.Height)}, opts...)
	ch := legend.NewChart(opts...)
	for _, in := range c.Series {
		ch.Add(in.Series, in.Label, in.Opt)
	}
	if c.FixedY != nil {
		if err := ch.SetYAxisRange(c.FixedY.Min, c.FixedY.Max); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

func pts(xy ...float64) *series.PointSet {
	s := &series.PointSet{}
	for i := 0; i+1 < len(xy); i += 2 {
		s.Points = append(s.Points, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return s
}

// grid returns an n×n grid of points covering [x0, x1]×[y0, y1].
func grid(n int, x0, x1, y0, y1 float64) *series.PointSet {
	lerp := func(a, b float64, i int) float64 {
		if i == n-1 {
			return b
		}
		return a + (b-a)*float64(i)/float64(n-1)
	}
	s := &series.PointSet{}
	for i := range n {
		for j := range n {
			s.Points = append(s.Points, vec.Vec2{X: lerp(x0, x1, i), Y: lerp(y0, y1, j)})
		}
	}
	return s
}

// gauss returns a histogram of the standard normal density, scaled to
// total.
func gauss(n int, lo, hi, total float64) *series.Histogram {
	h, err := series.NewHistogram(n, lo, hi)
	if err != nil {
		panic(err)
	}
	w := (hi - lo) / float64(n)
	for i := range n {
		x := h.Center(i)
		h.Contents[i] = math.Round(total * w * math.Exp(-x*x/2) / math.Sqrt(2*math.Pi))
	}
	return h
}

// ramp returns a profile of y = x with spread growing along x.
func ramp(n int) *series.Profile {
	p, err := series.NewProfile(n, 0, 1)
	if err != nil {
		panic(err)
	}
	for i := range n {
		x := p.Center(i)
		for _, d := range []float64{-1, 0, 1} {
			p.Fill(x, x+d*0.05*x, 1)
		}
	}
	return p
}
