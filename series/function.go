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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultSamples is the number of evaluations used for a [Function]
// which does not set Samples.
const DefaultSamples = 100

// Function is a real function sampled over a closed domain.
type Function struct {
	F        func(float64) float64
	Min, Max float64 // domain

	// Samples is the number of evenly spaced evaluations, including both
	// end points of the domain. Zero means DefaultSamples.
	Samples int
}

// Kind implements the [Series] interface.
func (*Function) Kind() Kind { return KindFunction }

// SamplePoints implements the [Series] interface.
// Evaluations which are not finite are left out.
func (f *Function) SamplePoints() []vec.Vec2 {
	n := f.Samples
	if n <= 0 {
		n = DefaultSamples
	}
	if n == 1 || f.Min == f.Max {
		x := (f.Min + f.Max) / 2
		if y := f.F(x); finite(y) {
			return []vec.Vec2{{X: x, Y: y}}
		}
		return nil
	}

	out := make([]vec.Vec2, 0, n)
	step := (f.Max - f.Min) / float64(n-1)
	for i := range n {
		x := f.Min + float64(i)*step
		if i == n-1 {
			x = f.Max
		}
		y := f.F(x)
		if !finite(y) {
			continue
		}
		out = append(out, vec.Vec2{X: x, Y: y})
	}
	return out
}

// Extent implements the [Series] interface.
// The x extent is the declared domain.
func (f *Function) Extent() (rect.Rect, bool) {
	r, ok := pointsExtent(f.SamplePoints())
	if !ok {
		return rect.Rect{}, false
	}
	r.LLx = min(f.Min, f.Max)
	r.URx = max(f.Min, f.Max)
	return r, true
}
