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

// Package legend places the legend box of a multi-series 2D chart so
// that it does not cover any plotted data.
//
// Placement works in box space, where (0, 0) is the lower left and
// (1, 1) the upper right corner of the canvas, and the plot area is the
// unit square shrunk by the [Margins]. A [Placer] first tries six
// canonical [Anchor] positions and then, if all of them cover data,
// enlarges the visible y range step by step to make room.
//
// A [Chart] ties the pieces together: it owns the series, the legend
// entries and the style, and draws everything onto a [Surface].
package legend

//go:generate go run ./testcases/export
