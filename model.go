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
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Entry is one line of the legend.
type Entry struct {
	Label string
	Style *SeriesStyle
}

// Box is the legend rectangle in box space. If Held is set, automatic
// placement leaves the rectangle alone.
type Box struct {
	Rect rect.Rect
	Held bool
}

// Valid reports whether the rectangle is non-empty and lies inside the
// unit square.
func (b Box) Valid() bool {
	r := b.Rect
	for _, v := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) {
			return false
		}
	}
	return 0 <= r.LLx && r.LLx < r.URx && r.URx <= 1 &&
		0 <= r.LLy && r.LLy < r.URy && r.URy <= 1
}

// defaultBox is used until the legend is placed for the first time.
var defaultBox = rect.Rect{LLx: 0.7, LLy: 0.7, URx: 0.9, URy: 0.9}

// Model holds the legend entries, in the order they were added, and
// the legend rectangle.
type Model struct {
	entries []Entry
	box     Box
}

// NewModel returns an empty legend.
func NewModel() *Model {
	return &Model{box: Box{Rect: defaultBox}}
}

// Append adds an entry at the end of the legend and returns its index.
func (m *Model) Append(label string, st *SeriesStyle) int {
	m.entries = append(m.entries, Entry{Label: label, Style: st})
	return len(m.entries) - 1
}

// Len returns the number of entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// Snapshot returns a copy of the entries.
func (m *Model) Snapshot() []Entry {
	return slices.Clone(m.entries)
}

// Box returns the current legend rectangle.
func (m *Model) Box() Box {
	return m.box
}

// SetPosition places the legend at r. If hold is set, automatic
// placement will not move the legend until [Model.Release] is called.
// A call with hold == false does not clear an existing hold.
func (m *Model) SetPosition(r rect.Rect, hold bool) error {
	b := Box{Rect: r}
	if !b.Valid() {
		return ErrInvalidBox
	}
	m.box.Rect = r
	if hold {
		m.box.Held = true
	}
	return nil
}

// SetAnchor places the legend at one of the canonical positions.
func (m *Model) SetAnchor(a Anchor, w, h float64, mg Margins, inset float64, hold bool) error {
	if !(w > 0 && w <= 1 && h > 0 && h <= 1) {
		return ErrInvalidSize
	}
	return m.SetPosition(AnchorRect(a, mg, w, h, inset), hold)
}

// Release allows automatic placement again.
func (m *Model) Release() {
	m.box.Held = false
}

// setBox stores the result of automatic placement.
func (m *Model) setBox(r rect.Rect) {
	if !m.box.Held {
		m.box.Rect = r
	}
}
