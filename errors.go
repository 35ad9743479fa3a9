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
	"errors"
	"fmt"
)

// ErrDegenerateAxis indicates an axis range with zero width, reversed
// bounds or non-finite bounds.
var ErrDegenerateAxis = errors.New("degenerate axis range")

// ErrPlacementFailed indicates that no legend position without overlap
// was found. The legend is then shown at the upper right anyway.
var ErrPlacementFailed = errors.New("legend covers plotted data")

// ErrNothingToDraw is returned by [Chart.Draw] for a chart without series.
var ErrNothingToDraw = errors.New("nothing to draw")

// ErrInvalidBox indicates a legend rectangle outside the unit square.
var ErrInvalidBox = errors.New("invalid legend box")

// ErrInvalidMargins indicates margins which leave no plot area.
var ErrInvalidMargins = errors.New("invalid margins")

// ErrInvalidSize indicates a legend width or height outside (0, 1], or
// a legend which does not fit into the plot area.
var ErrInvalidSize = errors.New("invalid legend size")

// AxisError reports a degenerate range for one axis.
type AxisError struct {
	Axis     Axis
	Min, Max float64
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s axis [%g, %g]: %v", e.Axis, e.Min, e.Max, ErrDegenerateAxis)
}

func (e *AxisError) Unwrap() error {
	return ErrDegenerateAxis
}
