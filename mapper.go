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

	"github.com/aclements/go-moremath/scale"

	"seehuhn.de/go/geom/vec"
)

// Margins are the insets of the plot area inside the unit square, in
// box space.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// DefaultMargins leaves room for tick labels on the left and at the
// bottom.
var DefaultMargins = Margins{Left: 0.12, Right: 0.05, Bottom: 0.16, Top: 0.07}

// Validate checks that all insets are non-negative and that the plot
// area is not empty.
func (m Margins) Validate() error {
	for _, v := range []float64{m.Left, m.Right, m.Bottom, m.Top} {
		if !(v >= 0) || math.IsInf(v, 0) {
			return ErrInvalidMargins
		}
	}
	if m.Left+m.Right >= 1 || m.Bottom+m.Top >= 1 {
		return ErrInvalidMargins
	}
	return nil
}

// Mapper converts between data coordinates and box space for one
// axis range. The zero value is not usable; use [NewMapper].
type Mapper struct {
	x, y scale.Linear
	m    Margins
}

// NewMapper returns a Mapper for the range r and the margins m.
// Both axes of r must have positive, finite width.
func NewMapper(r AxisRange, m Margins) (Mapper, error) {
	for _, a := range []Axis{AxisX, AxisY} {
		iv := r.Get(a)
		if !iv.valid() {
			return Mapper{}, &AxisError{Axis: a, Min: iv.Min, Max: iv.Max}
		}
	}
	if err := m.Validate(); err != nil {
		return Mapper{}, err
	}
	return Mapper{
		x: scale.Linear{Min: r.X.Min, Max: r.X.Max},
		y: scale.Linear{Min: r.Y.Min, Max: r.Y.Max},
		m: m,
	}, nil
}

// ToBox maps a data point to box space.
func (mp Mapper) ToBox(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: mp.m.Left + (1-mp.m.Left-mp.m.Right)*mp.x.Map(p.X),
		Y: mp.m.Bottom + (1-mp.m.Bottom-mp.m.Top)*mp.y.Map(p.Y),
	}
}

// ToData maps a point in box space to data coordinates.
func (mp Mapper) ToData(f vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: mp.x.Unmap((f.X - mp.m.Left) / (1 - mp.m.Left - mp.m.Right)),
		Y: mp.y.Unmap((f.Y - mp.m.Bottom) / (1 - mp.m.Bottom - mp.m.Top)),
	}
}
