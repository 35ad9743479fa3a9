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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/legend/series"
)

func TestComputeRange(t *testing.T) {
	if r := ComputeRange(nil); r != DefaultRange {
		t.Errorf("empty list: got %v, want %v", r, DefaultRange)
	}

	h, _ := series.NewHistogram(4, 0, 4)
	if r := ComputeRange([]series.Series{h}); r != DefaultRange {
		t.Errorf("empty histogram: got %v", r)
	}
	h.Fill(1.5, 3)
	h.Fill(2.5, 1)

	pts := &series.PointSet{Points: []vec.Vec2{{X: -2, Y: 0.5}, {X: 0, Y: 7}}}
	fn := &series.Function{F: func(x float64) float64 { return -x }, Min: 0, Max: 5}

	got := ComputeRange([]series.Series{h, pts, fn})
	want := AxisRange{X: Interval{-2, 5}, Y: Interval{-5, 7}}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPadded(t *testing.T) {
	cases := []struct {
		in, want Interval
	}{
		{Interval{1, 2}, Interval{1, 2}},
		{Interval{4, 4}, Interval{2, 6}},
		{Interval{-2, -2}, Interval{-3, -1}},
		{Interval{0, 0}, Interval{-0.5, 0.5}},
	}
	for _, c := range cases {
		r := AxisRange{X: c.in, Y: c.in}.Padded()
		if r.X != c.want || r.Y != c.want {
			t.Errorf("Padded(%v) = %v, want %v", c.in, r, c.want)
		}
	}
}

func TestMapper(t *testing.T) {
	r := AxisRange{X: Interval{0, 10}, Y: Interval{-1, 1}}
	mp, err := NewMapper(r, DefaultMargins)
	if err != nil {
		t.Fatal(err)
	}

	const eps = 1e-12
	cases := []struct {
		data, box vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: -1}, vec.Vec2{X: 0.12, Y: 0.16}},
		{vec.Vec2{X: 10, Y: 1}, vec.Vec2{X: 0.95, Y: 0.93}},
		{vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 0.535, Y: 0.545}},
	}
	for _, c := range cases {
		got := mp.ToBox(c.data)
		if got.Sub(c.box).Length() > eps {
			t.Errorf("ToBox(%v) = %v, want %v", c.data, got, c.box)
		}
		back := mp.ToData(got)
		if back.Sub(c.data).Length() > eps {
			t.Errorf("ToData(ToBox(%v)) = %v", c.data, back)
		}
	}
}

func TestMapperErrors(t *testing.T) {
	_, err := NewMapper(AxisRange{X: Interval{0, 1}, Y: Interval{2, 2}}, DefaultMargins)
	if !errors.Is(err, ErrDegenerateAxis) {
		t.Fatalf("got %v, want ErrDegenerateAxis", err)
	}
	var ae *AxisError
	if !errors.As(err, &ae) || ae.Axis != AxisY {
		t.Errorf("got %v, want an AxisError for the y axis", err)
	}

	_, err = NewMapper(AxisRange{X: Interval{0, math.Inf(1)}, Y: Interval{0, 1}}, DefaultMargins)
	if !errors.Is(err, ErrDegenerateAxis) {
		t.Errorf("infinite range: got %v", err)
	}

	_, err = NewMapper(DefaultRange, Margins{Left: 0.6, Right: 0.4})
	if !errors.Is(err, ErrInvalidMargins) {
		t.Errorf("got %v, want ErrInvalidMargins", err)
	}
}

func TestOverlaps(t *testing.T) {
	box := rectOf(0.5, 0.5, 0.7, 0.7)
	on := &series.PointSet{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0.7, Y: 0.6}}}
	off := &series.PointSet{Points: []vec.Vec2{{X: 0.71, Y: 0.6}, {X: 0.6, Y: 0.49}}}

	cases := []struct {
		name string
		list []series.Series
		want bool
	}{
		{"empty", nil, false},
		{"boundary", []series.Series{on}, true},
		{"outside", []series.Series{off}, false},
		{"mixed", []series.Series{off, on}, true},
	}
	for _, c := range cases {
		got, err := Overlaps(box, c.list, DefaultRange, Margins{})
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%s: got %t, want %t", c.name, got, c.want)
		}
	}

	_, err := Overlaps(box, []series.Series{on}, AxisRange{X: Interval{1, 1}, Y: Interval{0, 1}}, Margins{})
	if !errors.Is(err, ErrDegenerateAxis) {
		t.Errorf("got %v, want ErrDegenerateAxis", err)
	}
}

func TestColliderCounts(t *testing.T) {
	s := &series.PointSet{Points: []vec.Vec2{{X: 0.1, Y: 0.1}}}
	c := &Collider{Series: []series.Series{s}}
	for range 3 {
		if _, err := c.Overlaps(rectOf(0, 0, 0.5, 0.5), DefaultRange); err != nil {
			t.Fatal(err)
		}
	}
	if c.Evaluations != 3 {
		t.Errorf("got %d evaluations, want 3", c.Evaluations)
	}
}
