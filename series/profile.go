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

package series

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Profile is a binned series which records the mean and spread of y
// values per x bin.
type Profile struct {
	Edges []float64

	entries []float64 // sum of weights
	sumY    []float64
	sumY2   []float64
}

// NewProfile returns an empty profile with n equal-width bins covering
// [lo, hi).
func NewProfile(n int, lo, hi float64) (*Profile, error) {
	h, err := NewHistogram(n, lo, hi)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Edges:   h.Edges,
		entries: make([]float64, n),
		sumY:    make([]float64, n),
		sumY2:   make([]float64, n),
	}, nil
}

// Fill records the value y at position x with weight w.
// Values outside the binning are ignored.
func (p *Profile) Fill(x, y, w float64) {
	h := Histogram{Edges: p.Edges, Contents: p.entries}
	i := h.Bin(x)
	if i < 0 || i >= len(p.entries) {
		return
	}
	p.entries[i] += w
	p.sumY[i] += w * y
	p.sumY2[i] += w * y * y
}

// NBins returns the number of bins.
func (p *Profile) NBins() int {
	return len(p.entries)
}

// Entries returns the total weight recorded in bin i.
func (p *Profile) Entries(i int) float64 {
	return p.entries[i]
}

// Mean returns the weighted mean of bin i, or 0 for an empty bin.
func (p *Profile) Mean(i int) float64 {
	if p.entries[i] == 0 {
		return 0
	}
	return p.sumY[i] / p.entries[i]
}

// Spread returns the weighted standard deviation of bin i.
func (p *Profile) Spread(i int) float64 {
	if p.entries[i] == 0 {
		return 0
	}
	m := p.Mean(i)
	v := p.sumY2[i]/p.entries[i] - m*m
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Populated reports whether bin i has entries and a finite mean.
func (p *Profile) Populated(i int) bool {
	return p.entries[i] != 0 && finite(p.Mean(i))
}

// Center returns the centre of bin i.
func (p *Profile) Center(i int) float64 {
	return (p.Edges[i] + p.Edges[i+1]) / 2
}

// Kind implements the [Series] interface.
func (*Profile) Kind() Kind { return KindProfile }

// SamplePoints implements the [Series] interface.
// It returns (bin centre, bin mean) for every populated bin.
func (p *Profile) SamplePoints() []vec.Vec2 {
	var out []vec.Vec2
	for i := range p.entries {
		if !p.Populated(i) {
			continue
		}
		out = append(out, vec.Vec2{X: p.Center(i), Y: p.Mean(i)})
	}
	return out
}

// Extent implements the [Series] interface.
func (p *Profile) Extent() (rect.Rect, bool) {
	means := make([]float64, len(p.entries))
	for i := range means {
		means[i] = p.Mean(i)
	}
	return binnedExtent(p.Edges, means, p.Populated)
}
