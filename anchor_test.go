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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func rectOf(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

func nearRect(a, b rect.Rect) bool {
	const eps = 1e-12
	return math.Abs(a.LLx-b.LLx) < eps && math.Abs(a.LLy-b.LLy) < eps &&
		math.Abs(a.URx-b.URx) < eps && math.Abs(a.URy-b.URy) < eps
}

func TestAnchorRect(t *testing.T) {
	cases := []struct {
		a    Anchor
		want rect.Rect
	}{
		{UpperRight, rectOf(0.63, 0.71, 0.93, 0.91)},
		{UpperLeft, rectOf(0.14, 0.71, 0.44, 0.91)},
		{UpperCenter, rectOf(0.385, 0.71, 0.685, 0.91)},
		{LowerRight, rectOf(0.63, 0.18, 0.93, 0.38)},
		{LowerLeft, rectOf(0.14, 0.18, 0.44, 0.38)},
		{LowerCenter, rectOf(0.385, 0.18, 0.685, 0.38)},
	}
	for _, c := range cases {
		got := AnchorRect(c.a, DefaultMargins, 0.3, 0.2, DefaultInset)
		if !nearRect(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.a, got, c.want)
		}
		if c.a.Upper() != (c.want.URy > 0.5) {
			t.Errorf("%s: Upper() = %t", c.a, c.a.Upper())
		}
	}
}

func TestSearchOrder(t *testing.T) {
	want := []Anchor{UpperRight, UpperLeft, UpperCenter, LowerRight, LowerLeft, LowerCenter}
	got := append(append([]Anchor{}, upperAnchors...), lowerAnchors...)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("search order %v, want %v", got, want)
		}
	}
}

func TestParseAnchor(t *testing.T) {
	for a := UpperLeft; a <= LowerRight; a++ {
		got, err := ParseAnchor(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAnchor(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAnchor("middle"); err == nil {
		t.Error("unknown name accepted")
	}
	if NoAnchor.String() != "none" {
		t.Errorf("NoAnchor.String() = %q", NoAnchor.String())
	}
}
