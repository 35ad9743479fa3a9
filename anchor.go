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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Anchor is one of the six canonical legend positions.
type Anchor int

const (
	UpperLeft Anchor = iota
	UpperCenter
	UpperRight
	LowerLeft
	LowerCenter
	LowerRight

	// NoAnchor marks a legend which was positioned by hand.
	NoAnchor Anchor = -1
)

var anchorNames = [...]string{
	UpperLeft:   "upper-left",
	UpperCenter: "upper-center",
	UpperRight:  "upper-right",
	LowerLeft:   "lower-left",
	LowerCenter: "lower-center",
	LowerRight:  "lower-right",
}

func (a Anchor) String() string {
	if a >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "none"
}

// Upper reports whether a is in the top row of the plot area.
func (a Anchor) Upper() bool {
	return a >= UpperLeft && a <= UpperRight
}

// ParseAnchor converts a name like "upper-right" back to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range anchorNames {
		if s == name {
			return Anchor(a), nil
		}
	}
	return NoAnchor, fmt.Errorf("unknown legend anchor %q", s)
}

// The search tries the anchors of one row in this order.
var (
	upperAnchors = []Anchor{UpperRight, UpperLeft, UpperCenter}
	lowerAnchors = []Anchor{LowerRight, LowerLeft, LowerCenter}
)

// anchorFrame holds what is needed to compute an anchor rectangle.
type anchorFrame struct {
	m     Margins
	w, h  float64
	inset float64
}

func (f anchorFrame) left() (float64, float64) {
	x1 := f.m.Left + f.inset
	return x1, x1 + f.w
}

func (f anchorFrame) center() (float64, float64) {
	x1 := f.m.Left + (1-f.m.Left-f.m.Right-f.w)/2
	return x1, x1 + f.w
}

func (f anchorFrame) right() (float64, float64) {
	x2 := 1 - f.m.Right - f.inset
	return x2 - f.w, x2
}

func (f anchorFrame) upper() (float64, float64) {
	y2 := 1 - f.m.Top - f.inset
	return y2 - f.h, y2
}

func (f anchorFrame) lower() (float64, float64) {
	y1 := f.m.Bottom + f.inset
	return y1, y1 + f.h
}

func combine(h, v func() (float64, float64)) func() rect.Rect {
	return func() rect.Rect {
		x1, x2 := h()
		y1, y2 := v()
		return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
	}
}

// rects returns the rectangle builders for all anchors, indexed by Anchor.
func (f anchorFrame) rects() [6]func() rect.Rect {
	return [...]func() rect.Rect{
		UpperLeft:   combine(f.left, f.upper),
		UpperCenter: combine(f.center, f.upper),
		UpperRight:  combine(f.right, f.upper),
		LowerLeft:   combine(f.left, f.lower),
		LowerCenter: combine(f.center, f.lower),
		LowerRight:  combine(f.right, f.lower),
	}
}

// AnchorRect returns the box space rectangle of a legend with width w
// and height h at anchor a, inset from the plot area edges by inset.
func AnchorRect(a Anchor, m Margins, w, h, inset float64) rect.Rect {
	if a < 0 || int(a) >= len(anchorNames) {
		a = UpperRight
	}
	return anchorFrame{m: m, w: w, h: h, inset: inset}.rects()[a]()
}
