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

package legend

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/legend/series"
)

// Axis identifies one of the two chart axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "invalid"
	}
}

// Interval is a closed range of data values.
type Interval struct {
	Min, Max float64
}

// Width returns Max - Min.
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

func (iv Interval) valid() bool {
	return iv.Max > iv.Min && !math.IsInf(iv.Min, 0) && !math.IsInf(iv.Max, 0)
}

// padded widens a zero-width interval around its value.
func (iv Interval) padded() Interval {
	if iv.Max > iv.Min {
		return iv
	}
	v := iv.Min
	d := 0.5 * math.Abs(v)
	if d == 0 {
		d = 0.5
	}
	return Interval{Min: v - d, Max: v + d}
}

// AxisRange is the visible data range of a chart.
type AxisRange struct {
	X, Y Interval
}

// DefaultRange is used when there is no data.
var DefaultRange = AxisRange{X: Interval{0, 1}, Y: Interval{0, 1}}

// Get returns the interval for axis a.
func (r AxisRange) Get(a Axis) Interval {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// With returns a copy of r with the interval for axis a replaced.
func (r AxisRange) With(a Axis, iv Interval) AxisRange {
	if a == AxisX {
		r.X = iv
	} else {
		r.Y = iv
	}
	return r
}

// Padded returns a copy of r where zero-width axes are widened by half
// their magnitude on each side (or by 0.5 if the value is zero), so
// that the range can be used for coordinate mapping.
func (r AxisRange) Padded() AxisRange {
	return AxisRange{X: r.X.padded(), Y: r.Y.padded()}
}

// ComputeRange returns the union of the data extents of all series in
// list. Series without an extent are ignored. If nothing in list has
// an extent, DefaultRange is returned.
//
// The result may have zero width on either axis; use [AxisRange.Padded]
// before mapping coordinates.
func ComputeRange(list []series.Series) AxisRange {
	var xs, ys []float64
	for _, s := range list {
		ext, ok := s.Extent()
		if !ok {
			continue
		}
		xs = append(xs, ext.LLx, ext.URx)
		ys = append(ys, ext.LLy, ext.URy)
	}
	if len(xs) == 0 {
		return DefaultRange
	}

	var r AxisRange
	r.X.Min, r.X.Max = stats.Bounds(xs)
	r.Y.Min, r.Y.Max = stats.Bounds(ys)
	return r
}
