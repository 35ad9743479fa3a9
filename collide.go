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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/legend/series"
)

// Overlaps reports whether any sample point of any series in list falls
// inside box, when the data is shown with range r and margins m.
// Points on the boundary of box count as inside.
func Overlaps(box rect.Rect, list []series.Series, r AxisRange, m Margins) (bool, error) {
	mp, err := NewMapper(r, m)
	if err != nil {
		return false, err
	}
	for _, s := range list {
		if anyInside(box, s.SamplePoints(), mp) {
			return true, nil
		}
	}
	return false, nil
}

func anyInside(box rect.Rect, pts []vec.Vec2, mp Mapper) bool {
	for _, p := range pts {
		f := mp.ToBox(p)
		if f.X >= box.LLx && f.X <= box.URx && f.Y >= box.LLy && f.Y <= box.URy {
			return true
		}
	}
	return false
}

// Collider runs repeated overlap tests against a fixed list of series.
// The sample points are taken once, when the first test runs, so the
// series must not change while a Collider is in use.
type Collider struct {
	Series  []series.Series
	Margins Margins

	// Evaluations counts the calls to Overlaps.
	Evaluations int

	samples [][]vec.Vec2
	mapper  Mapper
	mapped  AxisRange
	ready   bool
}

// Overlaps is like the package-level [Overlaps], for the series and
// margins of c.
func (c *Collider) Overlaps(box rect.Rect, r AxisRange) (bool, error) {
	c.Evaluations++

	if !c.ready || c.mapped != r {
		mp, err := NewMapper(r, c.Margins)
		if err != nil {
			return false, err
		}
		c.mapper = mp
		c.mapped = r
		c.ready = true
	}
	if c.samples == nil {
		c.samples = make([][]vec.Vec2, len(c.Series))
		for i, s := range c.Series {
			c.samples[i] = s.SamplePoints()
		}
	}

	for _, pts := range c.samples {
		if anyInside(box, pts, c.mapper) {
			return true, nil
		}
	}
	return false, nil
}
