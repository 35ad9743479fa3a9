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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// The charts in this module use it to draw markers, polylines, error
// bands and the legend box onto an RGBA image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how the interior of a self-overlapping path is found.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// EmitFunc receives the coverage of one row of pixels, starting at
// column xMin. Coverage values range from 0 (outside) to 1 (inside).
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasteriser turns paths into coverage values, one scanline at a time.
// Buffers are kept between calls, so reusing a Rasteriser for many
// paths avoids allocations.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap selects the shape of open subpath ends when stroking.
	Cap graphics.LineCapStyle

	// Join selects the shape of corners when stroking.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// device space bounding box of r.edges
	bbox    rect.Rect
	hasBBox bool

	// stroke outline polygons in user space, all stored back to back
	outline        []vec.Vec2
	outlineOffsets []int
	poly           []vec.Vec2
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity CTM and PDF default stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill computes the coverage of the interior of p. Open subpaths are
// closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, true, r.addEdge)
	r.sweep(rule, emit)
}

// FillNonZero is a shortcut for Fill(p, NonZero, emit).
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// walk visits the line segments of p in user space, flattening curves.
// If closeAll is set, every subpath is closed.
func (r *Rasteriser) walk(p *path.Data, closeAll bool, seg func(a, b vec.Vec2)) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if closeAll && open && cur != start {
				seg(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			next := p.Coords[k]
			seg(cur, next)
			cur = next
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], seg)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], seg)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				seg(cur, start)
			}
			cur = start
			open = false
		}
	}
	if closeAll && open && cur != start {
		seg(cur, start)
	}
}

// deviceLength returns the length of v after applying the linear part
// of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		seg(prev, q)
		prev = q
	}
}

func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, seg func(a, b vec.Vec2)) {
	// Wang's bound on the second differences
	dev := max(r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		seg(prev, q)
		prev = q
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// addEdge transforms a user space segment to device space and records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	e := edge{x0: x0, y0: y0, x1: x1, y1: y1, dir: 1}
	if y1 < y0 {
		e = edge{x0: x1, y0: y1, x1: x0, y1: y0, dir: -1}
	}
	r.edges = append(r.edges, e)

	box := rect.Rect{LLx: min(x0, x1), LLy: e.y0, URx: max(x0, x1), URy: e.y1}
	if !r.hasBBox {
		r.bbox = box
		r.hasBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// sweep runs over the scanlines touched by r.edges, accumulates signed
// area per pixel and emits the resulting coverage.
func (r *Rasteriser) sweep(rule FillRule, emit EmitFunc) {
	if !r.hasBBox {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].y1 <= float64(yMin) {
		next++
	}
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bot {
			if r.edges[next].y1 > top {
				r.active = append(r.active, next)
			}
			next++
		}

		// drop finished edges
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			if next >= len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e between the scanline
// boundaries top and bot. Pixel column x is stored at index x-xMin;
// everything left of xMin is folded into index 0.
func (r *Rasteriser) accumulate(e *edge, top, bot float64, xMin int) {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return
	}
	slope := (e.x1 - e.x0) / (e.y1 - e.y0)
	xa := e.x0 + slope*(ya-e.y0)
	xb := e.x0 + slope*(yb-e.y0)

	if math.Floor(xa) == math.Floor(xb) {
		r.addCell(xa, xb, yb-ya, e.dir, xMin)
		return
	}

	// Walk from (xa, ya) to (xb, yb), splitting at pixel column boundaries.
	dydx := (yb - ya) / (xb - xa)
	var step, bx float64
	if xb > xa {
		step = 1
		bx = math.Floor(xa) + 1
	} else {
		step = -1
		bx = math.Ceil(xa) - 1
	}
	px, py := xa, ya
	for (step > 0 && bx < xb) || (step < 0 && bx > xb) {
		ny := ya + (bx-xa)*dydx
		r.addCell(px, bx, ny-py, e.dir, xMin)
		px, py = bx, ny
		bx += step
	}
	r.addCell(px, xb, yb-py, e.dir, xMin)
}

// addCell records a piece of an edge which stays inside one pixel
// column, running from x-position xa to xb with vertical extent dy.
func (r *Rasteriser) addCell(xa, xb, dy float64, dir float32, xMin int) {
	if dy <= 0 {
		return
	}
	mid := (xa + xb) / 2
	col := int(math.Floor(mid))
	c := dir * float32(dy)
	i := col - xMin
	switch {
	case i < 0:
		r.cover[0] += c
		r.area[0] += c
	case i < len(r.cover):
		r.cover[i] += c
		r.area[i] += c * float32(1-(mid-float64(col)))
	}
}

// integrateNonZero turns accumulated cover/area into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area into coverage, in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips leading and trailing zero coverage.
func trimZeros(c []float32) ([]float32, int) {
	lo := 0
	for lo < len(c) && c[lo] == 0 {
		lo++
	}
	if lo == len(c) {
		return nil, 0
	}
	hi := len(c)
	for c[hi-1] == 0 {
		hi--
	}
	return c[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent for an
	// edge to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
