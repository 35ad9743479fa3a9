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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PointSet is a set of (x, y) points, drawn as markers and/or a polyline.
type PointSet struct {
	Points []vec.Vec2
}

// NewPointSet builds a point set from separate coordinate slices.
func NewPointSet(x, y []float64) (*PointSet, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	pts := make([]vec.Vec2, len(x))
	for i := range x {
		pts[i] = vec.Vec2{X: x[i], Y: y[i]}
	}
	return &PointSet{Points: pts}, nil
}

// Kind implements the [Series] interface.
func (*PointSet) Kind() Kind { return KindPoints }

// SamplePoints implements the [Series] interface.
// Points with a non-finite coordinate are left out.
func (s *PointSet) SamplePoints() []vec.Vec2 {
	return finitePoints(s.Points)
}

// Extent implements the [Series] interface.
func (s *PointSet) Extent() (rect.Rect, bool) {
	return pointsExtent(s.Points)
}

// ErrorBars is a point set with symmetric per-point errors.
// The errors are drawn, but only the central points take part in
// legend collision tests and in the axis range.
type ErrorBars struct {
	Points []vec.Vec2
	Errors []vec.Vec2 // half-widths in x and y, same length as Points
}

// NewErrorBars builds an error-bar set. ex may be nil for points
// without horizontal errors.
func NewErrorBars(x, y, ex, ey []float64) (*ErrorBars, error) {
	n := len(x)
	if len(y) != n || len(ey) != n || (ex != nil && len(ex) != n) {
		return nil, ErrLengthMismatch
	}
	s := &ErrorBars{
		Points: make([]vec.Vec2, n),
		Errors: make([]vec.Vec2, n),
	}
	for i := range n {
		s.Points[i] = vec.Vec2{X: x[i], Y: y[i]}
		s.Errors[i].Y = ey[i]
		if ex != nil {
			s.Errors[i].X = ex[i]
		}
	}
	return s, nil
}

// Kind implements the [Series] interface.
func (*ErrorBars) Kind() Kind { return KindErrorBars }

// SamplePoints implements the [Series] interface.
// Points with a non-finite coordinate are left out.
func (s *ErrorBars) SamplePoints() []vec.Vec2 {
	return finitePoints(s.Points)
}

// Extent implements the [Series] interface.
func (s *ErrorBars) Extent() (rect.Rect, bool) {
	return pointsExtent(s.Points)
}

// ErrorAt returns the error half-widths of point i, or zero if none were given.
func (s *ErrorBars) ErrorAt(i int) vec.Vec2 {
	if i < len(s.Errors) {
		return s.Errors[i]
	}
	return vec.Vec2{}
}
