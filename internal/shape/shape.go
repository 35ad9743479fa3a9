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

// Package shape builds the device space paths which the output
// surfaces draw for series, markers and boxes.
package shape

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/series"
)

// Transform maps data coordinates to device coordinates.
type Transform func(vec.Vec2) vec.Vec2

// circleK places the control points of a cubic Bézier quarter circle.
const circleK = 0.5522847498

// Polyline connects pts in order. Non-finite points break the line.
func Polyline(pts []vec.Vec2, tr Transform) *path.Data {
	p := &path.Data{}
	open := false
	for _, pt := range pts {
		q := tr(pt)
		if !finite(q) {
			open = false
			continue
		}
		if open {
			p.LineTo(q)
		} else {
			p.MoveTo(q)
			open = true
		}
	}
	return p
}

// Marker returns the outline of a marker symbol centred at c, with
// the given radius, in device space.
func Marker(m legend.Marker, c vec.Vec2, radius float64) *path.Data {
	p := &path.Data{}
	switch m {
	case legend.MarkerSquare:
		r := radius * 0.886 // same area as the circle
		p.MoveTo(vec.Vec2{X: c.X - r, Y: c.Y - r}).
			LineTo(vec.Vec2{X: c.X + r, Y: c.Y - r}).
			LineTo(vec.Vec2{X: c.X + r, Y: c.Y + r}).
			LineTo(vec.Vec2{X: c.X - r, Y: c.Y + r}).
			Close()
	case legend.MarkerTriangle:
		for i := range 3 {
			phi := math.Pi/2 + 2*math.Pi*float64(i)/3
			q := vec.Vec2{X: c.X + radius*math.Cos(phi), Y: c.Y - radius*math.Sin(phi)}
			if i == 0 {
				p.MoveTo(q)
			} else {
				p.LineTo(q)
			}
		}
		p.Close()
	case legend.MarkerCross:
		w := radius / 3
		pts := []vec.Vec2{
			{X: -w, Y: -radius}, {X: w, Y: -radius}, {X: w, Y: -w},
			{X: radius, Y: -w}, {X: radius, Y: w}, {X: w, Y: w},
			{X: w, Y: radius}, {X: -w, Y: radius}, {X: -w, Y: w},
			{X: -radius, Y: w}, {X: -radius, Y: -w}, {X: -w, Y: -w},
		}
		for i, q := range pts {
			if i == 0 {
				p.MoveTo(c.Add(q))
			} else {
				p.LineTo(c.Add(q))
			}
		}
		p.Close()
	default:
		Circle(p, c, radius)
	}
	return p
}

// Circle appends a closed circle to p.
func Circle(p *path.Data, c vec.Vec2, r float64) {
	kr := circleK * r
	p.MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + kr}, vec.Vec2{X: c.X + kr, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
		CubeTo(vec.Vec2{X: c.X - kr, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + kr}, vec.Vec2{X: c.X - r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - kr}, vec.Vec2{X: c.X - kr, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
		CubeTo(vec.Vec2{X: c.X + kr, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - kr}, vec.Vec2{X: c.X + r, Y: c.Y}).
		Close()
}

// Rect returns the outline of r, with all coordinates passed through tr.
func Rect(r rect.Rect, tr Transform) *path.Data {
	return (&path.Data{}).
		MoveTo(tr(vec.Vec2{X: r.LLx, Y: r.LLy})).
		LineTo(tr(vec.Vec2{X: r.URx, Y: r.LLy})).
		LineTo(tr(vec.Vec2{X: r.URx, Y: r.URy})).
		LineTo(tr(vec.Vec2{X: r.LLx, Y: r.URy})).
		Close()
}

// Steps returns the outline of a histogram: horizontal segments at the
// bin contents, joined by vertical segments, starting and ending at
// zero. Bins without a finite content are drawn at zero.
func Steps(h *series.Histogram, tr Transform) *path.Data {
	p := &path.Data{}
	n := h.NBins()
	if n == 0 {
		return p
	}
	p.MoveTo(tr(vec.Vec2{X: h.Edges[0], Y: 0}))
	for i, c := range h.Contents {
		if !h.Populated(i) {
			c = 0
		}
		p.LineTo(tr(vec.Vec2{X: h.Edges[i], Y: c}))
		p.LineTo(tr(vec.Vec2{X: h.Edges[i+1], Y: c}))
	}
	p.LineTo(tr(vec.Vec2{X: h.Edges[n], Y: 0}))
	return p
}

// Errors returns the points of s which carry error estimates, together
// with the error half-widths. The last return value is false if s has
// no errors.
//
// Histogram errors are the square root of the bin contents, profile
// errors the spread of the y values in each bin.
func Errors(s series.Series) (pts, errs []vec.Vec2, ok bool) {
	switch s := s.(type) {
	case *series.ErrorBars:
		for i, pt := range s.Points {
			if !finite(pt) {
				continue
			}
			pts = append(pts, pt)
			errs = append(errs, s.ErrorAt(i))
		}
		return pts, errs, true
	case *series.Histogram:
		for i, c := range s.Contents {
			if !s.Populated(i) {
				continue
			}
			pts = append(pts, vec.Vec2{X: s.Center(i), Y: c})
			errs = append(errs, vec.Vec2{Y: math.Sqrt(math.Abs(c))})
		}
		return pts, errs, true
	case *series.Profile:
		for i := range s.NBins() {
			if !s.Populated(i) {
				continue
			}
			pts = append(pts, vec.Vec2{X: s.Center(i), Y: s.Mean(i)})
			errs = append(errs, vec.Vec2{Y: s.Spread(i)})
		}
		return pts, errs, true
	}
	return nil, nil, false
}

// ErrorBars returns one open subpath per error bar: a vertical bar for
// every point, and a horizontal one where the x error is non-zero.
func ErrorBars(pts, errs []vec.Vec2, tr Transform) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		e := errs[i]
		if e.Y != 0 {
			p.MoveTo(tr(vec.Vec2{X: pt.X, Y: pt.Y - e.Y})).
				LineTo(tr(vec.Vec2{X: pt.X, Y: pt.Y + e.Y}))
		}
		if e.X != 0 {
			p.MoveTo(tr(vec.Vec2{X: pt.X - e.X, Y: pt.Y})).
				LineTo(tr(vec.Vec2{X: pt.X + e.X, Y: pt.Y}))
		}
	}
	return p
}

// Band returns the closed region between pts-errs and pts+errs.
func Band(pts, errs []vec.Vec2, tr Transform) *path.Data {
	p := &path.Data{}
	if len(pts) < 2 {
		return p
	}
	for i, pt := range pts {
		q := tr(vec.Vec2{X: pt.X, Y: pt.Y + errs[i].Y})
		if i == 0 {
			p.MoveTo(q)
		} else {
			p.LineTo(q)
		}
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p.LineTo(tr(vec.Vec2{X: pts[i].X, Y: pts[i].Y - errs[i].Y}))
	}
	p.Close()
	return p
}

func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
