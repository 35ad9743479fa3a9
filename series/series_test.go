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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestHistogramSamplePoints(t *testing.T) {
	h, err := NewHistogram(4, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	h.Fill(0.5, 1)
	h.Fill(2.5, 3)
	h.Fill(2.2, 1)
	h.Fill(-1, 7)
	h.Fill(4, 5) // upper edge is exclusive

	got := h.SamplePoints()
	want := []vec.Vec2{{X: 0.5, Y: 1}, {X: 2.5, Y: 4}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if h.Underflow != 7 || h.Overflow != 5 {
		t.Errorf("underflow/overflow = %g/%g, want 7/5", h.Underflow, h.Overflow)
	}

	ext, ok := h.Extent()
	if !ok {
		t.Fatal("populated histogram has no extent")
	}
	wantExt := rect.Rect{LLx: 0, LLy: 1, URx: 3, URy: 4}
	if ext != wantExt {
		t.Errorf("extent = %v, want %v", ext, wantExt)
	}
}

func TestHistogramBin(t *testing.T) {
	h, err := NewHistogramEdges([]float64{0, 1, 3, 7})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x    float64
		want int
	}{
		{-0.1, -1},
		{0, 0},
		{0.99, 0},
		{1, 1},
		{2.5, 1},
		{3, 2},
		{6.999, 2},
		{7, 3},
	}
	for _, c := range cases {
		if got := h.Bin(c.x); got != c.want {
			t.Errorf("Bin(%g) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestBadBins(t *testing.T) {
	if _, err := NewHistogram(0, 0, 1); !errors.Is(err, ErrBadBins) {
		t.Errorf("zero bins: got %v", err)
	}
	if _, err := NewHistogram(3, 1, 1); !errors.Is(err, ErrBadBins) {
		t.Errorf("empty range: got %v", err)
	}
	if _, err := NewHistogramEdges([]float64{0, 2, 1}); !errors.Is(err, ErrBadBins) {
		t.Errorf("decreasing edges: got %v", err)
	}
}

func TestEmptyHistogramExtent(t *testing.T) {
	h, _ := NewHistogram(10, 0, 1)
	if _, ok := h.Extent(); ok {
		t.Error("empty histogram reports an extent")
	}
	if pts := h.SamplePoints(); len(pts) != 0 {
		t.Errorf("empty histogram has %d sample points", len(pts))
	}
}

func TestProfile(t *testing.T) {
	p, err := NewProfile(2, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.Fill(0.5, 1, 1)
	p.Fill(0.5, 3, 1)
	p.Fill(5, 100, 1) // outside, ignored

	pts := p.SamplePoints()
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	if pts[0] != (vec.Vec2{X: 0.5, Y: 2}) {
		t.Errorf("got %v, want (0.5, 2)", pts[0])
	}
	if s := p.Spread(0); math.Abs(s-1) > 1e-12 {
		t.Errorf("spread = %g, want 1", s)
	}
	ext, _ := p.Extent()
	if ext.LLx != 0 || ext.URx != 1 || ext.LLy != 2 || ext.URy != 2 {
		t.Errorf("extent = %v", ext)
	}
}

func TestFunctionSamples(t *testing.T) {
	f := &Function{F: func(x float64) float64 { return x * x }, Min: -1, Max: 2}
	pts := f.SamplePoints()
	if len(pts) != DefaultSamples {
		t.Fatalf("got %d samples, want %d", len(pts), DefaultSamples)
	}
	if pts[0].X != -1 || pts[len(pts)-1].X != 2 {
		t.Errorf("end points %g, %g", pts[0].X, pts[len(pts)-1].X)
	}

	ext, ok := f.Extent()
	if !ok {
		t.Fatal("no extent")
	}
	if ext.LLx != -1 || ext.URx != 2 || ext.URy != 4 {
		t.Errorf("extent = %v", ext)
	}
	// the minimum of x² is only approximated by the sampling
	if ext.LLy < 0 || ext.LLy > 1e-3 {
		t.Errorf("y min = %g", ext.LLy)
	}
}

func TestFunctionSkipsNonFinite(t *testing.T) {
	f := &Function{F: func(x float64) float64 { return 1 / x }, Min: 0, Max: 1, Samples: 11}
	pts := f.SamplePoints()
	if len(pts) != 10 {
		t.Errorf("got %d samples, want 10", len(pts))
	}
	for _, p := range pts {
		if math.IsInf(p.Y, 0) {
			t.Errorf("non-finite sample %v", p)
		}
	}
}

func TestPointSetExtentSkipsNaN(t *testing.T) {
	s, err := NewPointSet([]float64{1, math.NaN(), 3}, []float64{-2, 0, 5})
	if err != nil {
		t.Fatal(err)
	}
	ext, ok := s.Extent()
	if !ok {
		t.Fatal("no extent")
	}
	want := rect.Rect{LLx: 1, LLy: -2, URx: 3, URy: 5}
	if ext != want {
		t.Errorf("extent = %v, want %v", ext, want)
	}
}

func TestErrorBars(t *testing.T) {
	_, err := NewErrorBars([]float64{1, 2}, []float64{1, 2}, nil, []float64{0.1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}

	s, err := NewErrorBars([]float64{1, 2}, []float64{3, 4}, nil, []float64{0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if e := s.ErrorAt(1); e != (vec.Vec2{X: 0, Y: 0.25}) {
		t.Errorf("ErrorAt(1) = %v", e)
	}
	// errors do not widen the extent
	ext, _ := s.Extent()
	if ext.LLy != 3 || ext.URy != 4 {
		t.Errorf("extent = %v", ext)
	}
}

func TestSamplePointsAreCopies(t *testing.T) {
	s := &PointSet{Points: []vec.Vec2{{X: 1, Y: 1}}}
	pts := s.SamplePoints()
	pts[0].X = 99
	if s.Points[0].X != 1 {
		t.Error("SamplePoints exposes internal storage")
	}
}

func TestStore(t *testing.T) {
	var st Store
	a := &PointSet{}
	b := &Function{F: math.Sin, Max: 1}
	if i := st.Add(a); i != 0 {
		t.Errorf("first index %d", i)
	}
	if i := st.Add(b); i != 1 {
		t.Errorf("second index %d", i)
	}
	all := st.All()
	st.Add(&PointSet{})
	if len(all) != 2 || all[0] != Series(a) || all[1] != Series(b) {
		t.Errorf("All() = %v", all)
	}
	if st.Len() != 3 || st.At(1) != Series(b) {
		t.Error("Len/At mismatch")
	}
}

func TestHistogramNonFinite(t *testing.T) {
	h, err := NewHistogram(4, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	h.Fill(0.5, 2)
	h.Fill(1.5, math.Inf(1))
	h.Fill(2.5, math.NaN())
	h.Fill(3.5, 1)

	if h.Populated(1) || h.Populated(2) || !h.Populated(0) {
		t.Errorf("populated bins wrong: %v", h.Contents)
	}
	got := h.SamplePoints()
	want := []vec.Vec2{{X: 0.5, Y: 2}, {X: 3.5, Y: 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
	ext, ok := h.Extent()
	if !ok || ext != (rect.Rect{LLx: 0, LLy: 1, URx: 4, URy: 2}) {
		t.Errorf("extent %v (ok=%t)", ext, ok)
	}
}

func TestProfileNonFinite(t *testing.T) {
	p, err := NewProfile(2, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.Fill(0.5, 3, 1)
	p.Fill(1.5, math.Inf(-1), 1)

	if p.Populated(1) {
		t.Errorf("bin with mean %g counted as populated", p.Mean(1))
	}
	got := p.SamplePoints()
	if len(got) != 1 || got[0] != (vec.Vec2{X: 0.5, Y: 3}) {
		t.Errorf("got %v", got)
	}
	ext, ok := p.Extent()
	if !ok || ext != (rect.Rect{LLx: 0, LLy: 3, URx: 1, URy: 3}) {
		t.Errorf("extent %v (ok=%t)", ext, ok)
	}
}

func TestSamplePointsFinite(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 1}, {X: math.NaN(), Y: 2}, {X: 3, Y: math.Inf(1)}, {X: 4, Y: 5}}
	want := []vec.Vec2{{X: 0, Y: 1}, {X: 4, Y: 5}}
	for _, s := range []Series{
		&PointSet{Points: pts},
		&ErrorBars{Points: pts, Errors: make([]vec.Vec2, len(pts))},
	} {
		got := s.SamplePoints()
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("%s: got %v, want %v", s.Kind(), got, want)
		}
	}
}
