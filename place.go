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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/legend/series"
)

// Viewport is the part of a drawing surface which the placement search
// needs: the plot area margins, and a way to change the visible range.
type Viewport interface {
	Margins() Margins
	ApplyAxisRange(axis Axis, min, max float64)
}

// State describes the progress of one placement search.
type State int

const (
	Idle State = iota
	TryingCanonical
	ExpandingRange
	Placed
	FailedFallback
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TryingCanonical:
		return "trying canonical anchors"
	case ExpandingRange:
		return "expanding range"
	case Placed:
		return "placed"
	case FailedFallback:
		return "failed"
	default:
		return "invalid"
	}
}

// Default search parameters.
const (
	DefaultInset       = 0.02
	DefaultMaxAttempts = 10
	DefaultStep        = 0.1
)

// Request describes one placement problem.
type Request struct {
	Series []series.Series

	// Box is the current legend rectangle. If Box.Held is set, no search
	// is performed.
	Box Box

	// Width and Height give the legend size in box space.
	Width, Height float64

	// FixedX and FixedY, if non-nil, replace the data extent of the
	// corresponding axis.
	FixedX, FixedY *Interval
}

// Result is the outcome of a placement search.
type Result struct {
	Box    Box
	Anchor Anchor // NoAnchor if Held

	// Range is the axis range the chart should be drawn with. After a
	// successful range expansion it differs from Original.
	Range    AxisRange
	Original AxisRange

	State  State
	Failed bool
	Held   bool

	// Attempts is the number of range expansions tried.
	Attempts int

	// Evaluations is the number of anchor rectangles tested.
	Evaluations int
}

// Err returns ErrPlacementFailed if no free position was found, and nil
// otherwise.
func (r Result) Err() error {
	if r.Failed {
		return ErrPlacementFailed
	}
	return nil
}

// Event is passed to [Placer.Trace]. Either State changes, or one anchor
// rectangle has been tested.
type Event struct {
	State State

	// The following fields are only set for anchor tests.
	Anchor   Anchor
	Rect     rect.Rect
	Range    AxisRange
	Attempt  int // -1 for the canonical anchors
	Collides bool
}

// Placer finds a legend position which does not cover any data.
//
// Every expansion attempt retests a full row of three anchors, so one
// search tests at most 6 + 3·MaxAttempts rectangles. The sample points
// of the series are read once per call to Place.
//
// A Placer is not safe for concurrent use.
type Placer struct {
	// Inset is the distance between the legend and the plot area edges.
	Inset float64

	// MaxAttempts bounds the number of range expansions.
	MaxAttempts int

	// Step is the relative amount by which each pair of expansion
	// attempts grows the y range.
	Step float64

	// Trace, if not nil, is called for every state change and every
	// anchor test.
	Trace func(Event)

	view Viewport
}

// NewPlacer returns a Placer with the default parameters, which uses
// the margins of v and changes the y range of v while searching.
func NewPlacer(v Viewport) *Placer {
	return &Placer{
		Inset:       DefaultInset,
		MaxAttempts: DefaultMaxAttempts,
		Step:        DefaultStep,
		view:        v,
	}
}

// Range returns the axis range the series of req are shown with before
// any expansion.
func (p *Placer) Range(req Request) AxisRange {
	r := ComputeRange(req.Series)
	if req.FixedX != nil {
		r.X = *req.FixedX
	}
	if req.FixedY != nil {
		r.Y = *req.FixedY
	}
	return r.Padded()
}

// Place runs the search.
//
// The canonical anchors are tried first: the upper row, then the lower
// row. If all of them cover data, the y range is enlarged, alternating
// between the top (retrying the upper row) and the bottom (retrying the
// lower row), each attempt reaching further than the previous one of
// the same kind. A successful expansion is kept and applied to the
// viewport. If all attempts fail, the original y range is restored and
// the legend is put at the upper right.
//
// An error is only returned if the range or the margins are unusable,
// or if the legend does not fit inside the canvas at every anchor.
func (p *Placer) Place(req Request) (Result, error) {
	r := p.Range(req)
	res := Result{
		Box:      req.Box,
		Anchor:   NoAnchor,
		Range:    r,
		Original: r,
		State:    Idle,
	}
	if req.Box.Held {
		res.Held = true
		return res, nil
	}
	if !(req.Width > 0 && req.Width <= 1 && req.Height > 0 && req.Height <= 1) {
		return res, ErrInvalidSize
	}

	m := p.view.Margins()
	if err := m.Validate(); err != nil {
		return res, err
	}
	frame := anchorFrame{m: m, w: req.Width, h: req.Height, inset: p.Inset}
	rects := frame.rects()
	for _, build := range rects {
		if !(Box{Rect: build()}).Valid() {
			return res, ErrInvalidSize
		}
	}

	if len(req.Series) == 0 {
		res.place(UpperRight, rects[UpperRight]())
		p.transition(&res, Placed)
		return res, nil
	}

	c := &Collider{Series: req.Series, Margins: m}
	try := func(row []Anchor, cur AxisRange, attempt int) (bool, error) {
		for _, a := range row {
			box := rects[a]()
			hit, err := c.Overlaps(box, cur)
			res.Evaluations = c.Evaluations
			if err != nil {
				return false, err
			}
			if p.Trace != nil {
				p.Trace(Event{
					State:    res.State,
					Anchor:   a,
					Rect:     box,
					Range:    cur,
					Attempt:  attempt,
					Collides: hit,
				})
			}
			if !hit {
				res.place(a, box)
				return true, nil
			}
		}
		return false, nil
	}

	p.transition(&res, TryingCanonical)
	for _, row := range [][]Anchor{upperAnchors, lowerAnchors} {
		ok, err := try(row, r, -1)
		if err != nil {
			return res, err
		}
		if ok {
			p.transition(&res, Placed)
			return res, nil
		}
	}

	p.transition(&res, ExpandingRange)
	for a := range p.MaxAttempts {
		res.Attempts = a + 1
		k := p.Step * float64(a/2+1)

		cur := r
		row := upperAnchors
		if a%2 == 0 {
			cur.Y.Max = r.Y.Max + math.Abs(r.Y.Max)*k
		} else {
			cur.Y.Min = r.Y.Min - math.Abs(r.Y.Min)*k
			row = lowerAnchors
		}
		p.view.ApplyAxisRange(AxisY, cur.Y.Min, cur.Y.Max)

		ok, err := try(row, cur, a)
		if err != nil {
			p.view.ApplyAxisRange(AxisY, r.Y.Min, r.Y.Max)
			return res, err
		}
		if ok {
			res.Range = cur
			p.transition(&res, Placed)
			return res, nil
		}
	}

	p.view.ApplyAxisRange(AxisY, r.Y.Min, r.Y.Max)
	res.place(UpperRight, rects[UpperRight]())
	res.Range = r
	res.Failed = true
	p.transition(&res, FailedFallback)
	return res, nil
}

func (res *Result) place(a Anchor, box rect.Rect) {
	res.Anchor = a
	res.Box = Box{Rect: box}
}

func (p *Placer) transition(res *Result, s State) {
	res.State = s
	if p.Trace != nil {
		p.Trace(Event{State: s, Anchor: NoAnchor, Attempt: -1})
	}
}
