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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects emitted coverage into a map, and checks that nothing is
// emitted outside the clip rectangle.
type grid struct {
	t    *testing.T
	clip rect.Rect
	pix  map[[2]int]float32
}

func newGrid(t *testing.T, clip rect.Rect) *grid {
	return &grid{t: t, clip: clip, pix: make(map[[2]int]float32)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	for i, c := range coverage {
		x := xMin + i
		if float64(x) < g.clip.LLx || float64(x) >= g.clip.URx ||
			float64(y) < g.clip.LLy || float64(y) >= g.clip.URy {
			g.t.Errorf("pixel (%d, %d) outside clip %v", x, y, g.clip)
		}
		if c < 0 || c > 1 {
			g.t.Errorf("pixel (%d, %d): coverage %g out of range", x, y, c)
		}
		g.pix[[2]int{x, y}] = c
	}
}

func (g *grid) total() float64 {
	var sum float64
	for _, c := range g.pix {
		sum += float64(c)
	}
	return sum
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage checks exact coverage values for a triangle with
// the diagonal edge y = x/10. Pixel X should have coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	clip := rect.Rect{URx: 10, URy: 1}
	g := newGrid(t, clip)
	NewRasteriser(clip).FillNonZero(triangle, g.emit)

	for x := range 10 {
		want := float64(2*x+1) / 20
		got := float64(g.pix[[2]int{x, 0}])
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("pixel %d: got %.4f, want %.4f", x, got, want)
		}
	}
}

func TestHalfPixelRectangle(t *testing.T) {
	clip := rect.Rect{URx: 6, URy: 4}
	g := newGrid(t, clip)
	NewRasteriser(clip).FillNonZero(rectPath(1.5, 1, 3.5, 2), g.emit)

	want := map[int]float32{1: 0.5, 2: 1, 3: 0.5}
	for x, c := range want {
		if got := g.pix[[2]int{x, 1}]; math.Abs(float64(got-c)) > 1e-6 {
			t.Errorf("pixel (%d, 1): got %g, want %g", x, got, c)
		}
	}
	if math.Abs(g.total()-2) > 1e-5 {
		t.Errorf("total coverage %g, want 2", g.total())
	}
}

func TestFillArea(t *testing.T) {
	const k = 0.5522847498
	disc := func(c vec.Vec2, r float64) *path.Data {
		kr := k * r
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
			CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + kr}, vec.Vec2{X: c.X + kr, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
			CubeTo(vec.Vec2{X: c.X - kr, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + kr}, vec.Vec2{X: c.X - r, Y: c.Y}).
			CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - kr}, vec.Vec2{X: c.X - kr, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
			CubeTo(vec.Vec2{X: c.X + kr, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - kr}, vec.Vec2{X: c.X + r, Y: c.Y}).
			Close()
	}
	cases := []struct {
		name string
		p    *path.Data
		area float64
		tol  float64
	}{
		{"triangle", (&path.Data{}).
			MoveTo(vec.Vec2{X: 1, Y: 1}).
			LineTo(vec.Vec2{X: 17.3, Y: 2.2}).
			LineTo(vec.Vec2{X: 4.1, Y: 15.7}), 117.945, 1e-3},
		{"disc", disc(vec.Vec2{X: 20, Y: 20}, 12.5), math.Pi * 12.5 * 12.5, 10},
		{"quad", (&path.Data{}).
			MoveTo(vec.Vec2{X: 2, Y: 30}).
			QuadTo(vec.Vec2{X: 20, Y: 2}, vec.Vec2{X: 38, Y: 30}).
			Close(), 2.0 / 3 * 36 * 14, 6},
	}
	clip := rect.Rect{URx: 40, URy: 40}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newGrid(t, clip)
			NewRasteriser(clip).FillNonZero(c.p, g.emit)
			if got := g.total(); math.Abs(got-c.area) > c.tol {
				t.Errorf("total coverage %g, want %g", got, c.area)
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := rectPath(0, 0, 8, 8)
	p.MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 2, Y: 6}).
		Close()

	clip := rect.Rect{URx: 8, URy: 8}
	r := NewRasteriser(clip)

	nz := newGrid(t, clip)
	r.Fill(p, NonZero, nz.emit)
	if got := nz.total(); math.Abs(got-64) > 1e-4 {
		t.Errorf("nonzero: total %g, want 64", got)
	}

	eo := newGrid(t, clip)
	r.Fill(p, EvenOdd, eo.emit)
	if got := eo.total(); math.Abs(got-48) > 1e-4 {
		t.Errorf("even-odd: total %g, want 48", got)
	}
	if c := eo.pix[[2]int{4, 4}]; c != 0 {
		t.Errorf("even-odd: hole has coverage %g", c)
	}
}

func TestClipAndCTM(t *testing.T) {
	clip := rect.Rect{URx: 4, URy: 4}
	g := newGrid(t, clip)
	NewRasteriser(clip).FillNonZero(rectPath(-5, -5, 5, 5), g.emit)
	if got := g.total(); math.Abs(got-16) > 1e-4 {
		t.Errorf("clipped total %g, want 16", got)
	}

	clip = rect.Rect{URx: 10, URy: 10}
	g = newGrid(t, clip)
	r := NewRasteriser(clip)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 0}
	r.FillNonZero(rectPath(1, 1, 2, 2), g.emit)
	if got := g.total(); math.Abs(got-4) > 1e-4 {
		t.Errorf("scaled total %g, want 4", got)
	}
	if c := g.pix[[2]int{3, 2}]; c != 1 {
		t.Errorf("pixel (3, 2): got %g, want 1", c)
	}
}

func TestStrokeLine(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 8, Y: 5})

	// an octagon of radius 1 has area 4·sin(π/4)
	octagon := 4 * math.Sin(math.Pi/4)
	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 12},
		{graphics.LineCapSquare, 16},
		{graphics.LineCapRound, 12 + octagon},
	}
	clip := rect.Rect{URx: 12, URy: 10}
	for _, c := range cases {
		g := newGrid(t, clip)
		r := NewRasteriser(clip)
		r.Width = 2
		r.Cap = c.cap
		r.Stroke(line, g.emit)
		if got := g.total(); math.Abs(got-c.area) > 1e-3 {
			t.Errorf("cap %v: total %g, want %g", c.cap, got, c.area)
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	square := rectPath(2, 2, 8, 8)
	cases := []struct {
		join graphics.LineJoinStyle
		area float64
	}{
		{graphics.LineJoinMiter, 48},
		{graphics.LineJoinBevel, 46},
	}
	clip := rect.Rect{URx: 10, URy: 10}
	for _, c := range cases {
		g := newGrid(t, clip)
		r := NewRasteriser(clip)
		r.Width = 2
		r.Join = c.join
		r.Stroke(square, g.emit)
		if got := g.total(); math.Abs(got-c.area) > 1e-3 {
			t.Errorf("join %v: total %g, want %g", c.join, got, c.area)
		}
		if cov := g.pix[[2]int{5, 5}]; cov != 0 {
			t.Errorf("join %v: interior has coverage %g", c.join, cov)
		}
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a sharp spike; the miter would be far longer than the limit
	spike := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 11}).
		LineTo(vec.Vec2{X: 2, Y: 12})

	clip := rect.Rect{URx: 200, URy: 30}
	g := newGrid(t, clip)
	r := NewRasteriser(clip)
	r.Width = 2
	r.Stroke(spike, g.emit)
	for p := range g.pix {
		if p[0] > 32 {
			t.Fatalf("miter beyond the limit reaches pixel %v", p)
		}
	}
}

func TestStrokeDot(t *testing.T) {
	dot := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 5, Y: 5})
	clip := rect.Rect{URx: 10, URy: 10}

	g := newGrid(t, clip)
	r := NewRasteriser(clip)
	r.Width = 2
	r.Stroke(dot, g.emit)
	if len(g.pix) != 0 {
		t.Errorf("butt cap: dot has %d pixels", len(g.pix))
	}

	r.Cap = graphics.LineCapSquare
	r.Stroke(dot, g.emit)
	if got := g.total(); math.Abs(got-4) > 1e-4 {
		t.Errorf("square cap: total %g, want 4", got)
	}

	// a lone MoveTo draws nothing
	g = newGrid(t, clip)
	r.Stroke((&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}), g.emit)
	if len(g.pix) != 0 {
		t.Errorf("lone MoveTo painted %d pixels", len(g.pix))
	}
}
