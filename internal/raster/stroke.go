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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the outline of p, using r.Width,
// r.Cap, r.Join and r.MiterLimit.
//
// The outline is built as a union of polygons (one quadrilateral per
// segment, plus caps and joins), all with the same orientation, and
// filled with the nonzero rule.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	var pts []vec.Vec2
	closed, drawn := false, false
	flush := func() {
		if len(pts) > 1 || drawn {
			r.strokePolyline(pts, closed)
		}
		pts = pts[:0]
		closed, drawn = false, false
	}

	var cur, start vec.Vec2
	lineTo := func(_, b vec.Vec2) {
		if len(pts) == 0 {
			pts = append(pts, cur)
		}
		pts = appendDistinct(pts, b)
		drawn = true
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = p.Coords[k]
			start = cur
			pts = append(pts, cur)
			k++
		case path.CmdLineTo:
			lineTo(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], lineTo)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if len(pts) > 0 {
				lineTo(cur, start)
				closed = true
			}
			flush()
			cur = start
		}
	}
	flush()

	r.beginEdges()
	for i, from := range r.outlineOffsets {
		to := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			to = r.outlineOffsets[i+1]
		}
		poly := r.outline[from:to]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.sweep(NonZero, emit)
}

func appendDistinct(pts []vec.Vec2, p vec.Vec2) []vec.Vec2 {
	if n := len(pts); n > 0 && pts[n-1].Sub(p).Length() < zeroLengthThreshold {
		return pts
	}
	return append(pts, p)
}

// strokePolyline adds the outline polygons for one subpath.
func (r *Rasteriser) strokePolyline(pts []vec.Vec2, closed bool) {
	hw := r.Width / 2

	if len(pts) == 1 {
		// A degenerate subpath only shows with round or square caps.
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], hw)
		case graphics.LineCapSquare:
			p := pts[0]
			r.addPolygon(
				vec.Vec2{X: p.X - hw, Y: p.Y - hw},
				vec.Vec2{X: p.X + hw, Y: p.Y - hw},
				vec.Vec2{X: p.X + hw, Y: p.Y + hw},
				vec.Vec2{X: p.X - hw, Y: p.Y + hw},
			)
		}
		return
	}
	if closed && len(pts) > 2 && pts[0].Sub(pts[len(pts)-1]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}

	nSeg := len(pts) - 1
	if closed {
		nSeg = len(pts)
	}
	for i := range nSeg {
		a, b := pts[i], pts[(i+1)%len(pts)]
		d := b.Sub(a)
		d = d.Mul(1 / d.Length())
		if !closed && r.Cap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(d.Mul(hw))
			}
			if i == nSeg-1 {
				b = b.Add(d.Mul(hw))
			}
		}
		n := vec.Vec2{X: -d.Y * hw, Y: d.X * hw}
		r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}

	if !closed && r.Cap == graphics.LineCapRound {
		r.addDisc(pts[0], hw)
		r.addDisc(pts[len(pts)-1], hw)
	}

	// joins at interior vertices, and at the start of closed subpaths
	for i := range len(pts) {
		if !closed && (i == 0 || i == len(pts)-1) {
			continue
		}
		prev := pts[(i+len(pts)-1)%len(pts)]
		next := pts[(i+1)%len(pts)]
		r.addJoin(pts[i], unit(pts[i].Sub(prev)), unit(next.Sub(pts[i])), hw)
	}
}

// addJoin fills the wedge between two segments meeting at p, with unit
// directions t1 (incoming) and t2 (outgoing).
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, hw float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && t1.X*t2.X+t1.Y*t2.Y > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, hw)
		return
	}

	n1 := vec.Vec2{X: -t1.Y * hw, Y: t1.X * hw}
	n2 := vec.Vec2{X: -t2.Y * hw, Y: t2.X * hw}
	if cross > 0 {
		// left turn: the outer side is on the right
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	a, b := p.Add(n1), p.Add(n2)

	if r.Join == graphics.LineJoinMiter {
		cosTheta := t1.X*t2.X + t1.Y*t2.Y
		// miter length / width = 1 / sin(phi/2), phi the angle between segments
		sinHalf := math.Sqrt(max(0, (1+cosTheta)/2))
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit {
			mid := unit(n1.Add(n2))
			tip := p.Add(mid.Mul(hw / sinHalf))
			r.addPolygon(p, a, tip, b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addDisc adds a regular polygon approximating a disc around c.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	dev := r.deviceLength(vec.Vec2{X: radius})
	n := 8
	if dev > r.Flatness {
		n = int(math.Ceil(math.Pi / math.Acos(1-r.Flatness/dev)))
	}
	n = min(max(n, 8), 128)

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		})
	}
	r.addPolygon(r.poly...)
}

// addPolygon stores a polygon of the stroke outline, oriented so that
// its signed area is positive.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a == 0 {
		return
	}
	r.outlineOffsets = append(r.outlineOffsets, len(r.outline))
	if a > 0 {
		r.outline = append(r.outline, pts...)
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		r.outline = append(r.outline, pts[i])
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

const (
	// zeroLengthThreshold is the shortest segment which is stroked.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects consecutive segments which continue
	// in the same direction, so that no join is needed.
	collinearityThreshold = 1e-6
)
