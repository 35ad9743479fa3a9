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

// Package series defines the data series which can be plotted on a chart,
// together with a store which owns them for the lifetime of a chart.
//
// Every series reports its representative sample points in data space.
// These points are what the legend placement avoids.
package series

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the variant of a series.
type Kind int

const (
	KindPoints Kind = iota
	KindHistogram
	KindProfile
	KindErrorBars
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindHistogram:
		return "histogram"
	case KindProfile:
		return "profile"
	case KindErrorBars:
		return "errorbars"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Series is one plotted data entity.
type Series interface {
	// Kind returns the variant of the series.
	Kind() Kind

	// SamplePoints returns the representative points of the series in
	// data space. The slice is freshly computed on every call and may be
	// modified by the caller.
	SamplePoints() []vec.Vec2

	// Extent returns the data-space bounding box the series needs to be
	// fully visible. The second return value is false if the series has
	// nothing to show.
	Extent() (rect.Rect, bool)
}

var (
	// ErrLengthMismatch indicates that coordinate slices have different lengths.
	ErrLengthMismatch = errors.New("series: coordinate slices differ in length")

	// ErrBadBins indicates an invalid histogram binning.
	ErrBadBins = errors.New("series: invalid binning")
)

// Store owns the series of one chart, in insertion order.
//
// A Store is not safe for concurrent use.
type Store struct {
	list []Series
}

// Add appends s to the store and returns its index.
func (st *Store) Add(s Series) int {
	st.list = append(st.list, s)
	return len(st.list) - 1
}

// All returns the series in insertion order.
// The returned slice is a copy and stays stable while the store changes.
func (st *Store) All() []Series {
	out := make([]Series, len(st.list))
	copy(out, st.list)
	return out
}

// Len returns the number of series in the store.
func (st *Store) Len() int {
	return len(st.list)
}

// At returns the i-th series.
func (st *Store) At(i int) Series {
	return st.list[i]
}

// pointsExtent returns the bounding box of the finite points in pts.
func pointsExtent(pts []vec.Vec2) (rect.Rect, bool) {
	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return rect.Rect{}, false
	}
	xMin, xMax := stats.Bounds(xs)
	yMin, yMax := stats.Bounds(ys)
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}, true
}

// finitePoints returns a new slice with the points of pts which have
// finite coordinates.
func finitePoints(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(pts))
	for _, p := range pts {
		if finite(p.X) && finite(p.Y) {
			out = append(out, p)
		}
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
