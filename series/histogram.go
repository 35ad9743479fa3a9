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
	"slices"

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Histogram is a one-dimensional binned histogram.
//
// Bin i covers the half-open interval [Edges[i], Edges[i+1]).
// Values outside the binning are counted in Underflow and Overflow and
// are not drawn.
type Histogram struct {
	Edges    []float64
	Contents []float64

	Underflow, Overflow float64
}

// NewHistogram returns an empty histogram with n equal-width bins
// covering [lo, hi).
func NewHistogram(n int, lo, hi float64) (*Histogram, error) {
	if n < 1 || !(lo < hi) {
		return nil, ErrBadBins
	}
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	edges[n] = hi
	return &Histogram{
		Edges:    edges,
		Contents: make([]float64, n),
	}, nil
}

// NewHistogramEdges returns an empty histogram with the given bin edges,
// which must be strictly increasing.
func NewHistogramEdges(edges []float64) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, ErrBadBins
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i-1] < edges[i]) {
			return nil, ErrBadBins
		}
	}
	return &Histogram{
		Edges:    slices.Clone(edges),
		Contents: make([]float64, len(edges)-1),
	}, nil
}

// NBins returns the number of bins.
func (h *Histogram) NBins() int {
	return len(h.Contents)
}

// Bin returns the index of the bin containing x, or -1 for underflow and
// NBins() for overflow.
func (h *Histogram) Bin(x float64) int {
	n := len(h.Contents)
	if x < h.Edges[0] {
		return -1
	}
	if x >= h.Edges[n] {
		return n
	}
	i, found := slices.BinarySearch(h.Edges, x)
	if found {
		return i
	}
	return i - 1
}

// Fill adds weight w at position x.
func (h *Histogram) Fill(x, w float64) {
	switch i := h.Bin(x); {
	case i < 0:
		h.Underflow += w
	case i >= len(h.Contents):
		h.Overflow += w
	default:
		h.Contents[i] += w
	}
}

// Center returns the centre of bin i.
func (h *Histogram) Center(i int) float64 {
	return (h.Edges[i] + h.Edges[i+1]) / 2
}

// Kind implements the [Series] interface.
func (*Histogram) Kind() Kind { return KindHistogram }

// Populated reports whether bin i has a finite, non-zero content.
func (h *Histogram) Populated(i int) bool {
	c := h.Contents[i]
	return c != 0 && finite(c)
}

// SamplePoints implements the [Series] interface.
// It returns (bin centre, bin content) for every populated bin.
func (h *Histogram) SamplePoints() []vec.Vec2 {
	var out []vec.Vec2
	for i, c := range h.Contents {
		if !h.Populated(i) {
			continue
		}
		out = append(out, vec.Vec2{X: h.Center(i), Y: c})
	}
	return out
}

// Extent implements the [Series] interface.
// The x extent runs from the low edge of the first populated bin to the
// high edge of the last one. The y extent covers the populated contents.
func (h *Histogram) Extent() (rect.Rect, bool) {
	return binnedExtent(h.Edges, h.Contents, h.Populated)
}

func binnedExtent(edges, values []float64, populated func(int) bool) (rect.Rect, bool) {
	first, last := -1, -1
	var ys []float64
	for i, v := range values {
		if !populated(i) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		ys = append(ys, v)
	}
	if first < 0 {
		return rect.Rect{}, false
	}
	yMin, yMax := stats.Bounds(ys)
	return rect.Rect{
		LLx: edges[first],
		LLy: yMin,
		URx: edges[last+1],
		URy: yMax,
	}, true
}
