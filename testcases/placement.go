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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/series"
)

var cornerCases = []Case{
	{
		Name:   "free_upper_right",
		Width:  0.3,
		Height: 0.2,
		Series: []Input{
			{Label: "rising", Series: pts(0, 0, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1, 1)},
			{Label: "falling", Series: pts(0.1, 0.9, 0.3, 0.6, 0.5, 0.2, 0.7, 0.4, 0.9, 0.1)},
			{Label: "diagonal", Series: pts(0, 1, 0.25, 0.75, 0.5, 0.5, 0.75, 0.25, 1, 0)},
		},
		Want: Want{Anchor: legend.UpperRight, State: legend.Placed},
	},
	{
		Name:   "lower_right",
		Width:  0.3,
		Height: 0.2,
		Series: []Input{
			{Label: "band", Series: grid(11, 0, 1, 0.6, 1)},
			{Label: "origin", Series: pts(0, 0)},
		},
		Want: Want{Anchor: legend.LowerRight, State: legend.Placed},
	},
	{
		Name:   "gaussian",
		Width:  0.3,
		Height: 0.2,
		Series: []Input{
			{Label: "N(0,1)", Series: gauss(40, -4, 4, 1000)},
		},
		Want: Want{Anchor: legend.NoAnchor, State: legend.Placed},
	},
}

func init() {
	// a dense block in the upper right, with the y range taken from the
	// data, leaves no free corner until the range grows
	dense := grid(7, 0.6, 1, 0.6, 1)
	dense.Points = append(dense.Points, vec.Vec2{X: 0.8, Y: 0.8})
	expandCases = append(expandCases, Case{
		Name:   "dense_block",
		Width:  0.3,
		Height: 0.2,
		Series: []Input{{Label: "block", Series: dense}},
		Want:   Want{Anchor: legend.UpperRight, State: legend.Placed},
	})
}

var expandCases []Case

var fallbackCases = []Case{
	{
		Name:   "two_bands",
		Width:  0.3,
		Height: 0.35,
		Series: []Input{
			{Label: "upper", Series: grid(21, 0, 1, 0.5, 1)},
			{Label: "lower", Series: grid(21, 0, 1, 0, 0.5)},
		},
		Want: Want{Anchor: legend.UpperRight, State: legend.FailedFallback, Failed: true},
	},
}

var kindCases = []Case{
	{
		Name:   "all_kinds",
		Width:  0.3,
		Height: 0.25,
		Series: []Input{
			{Label: "profile", Series: ramp(10)},
			{Label: "errors", Series: mustErrorBars(
				[]float64{0.1, 0.3, 0.5, 0.7},
				[]float64{0.5, 0.45, 0.4, 0.35},
				nil,
				[]float64{0.05, 0.05, 0.05, 0.05})},
			{Label: "sine", Series: &series.Function{
				F:   func(x float64) float64 { return 0.3 + 0.1*math.Sin(8*x) },
				Min: 0,
				Max: 1,
			}},
		},
		FixedY: &legend.Interval{Min: 0, Max: 2},
		Want:   Want{Anchor: legend.UpperRight, State: legend.Placed},
	},
}

func mustErrorBars(x, y, ex, ey []float64) *series.ErrorBars {
	s, err := series.NewErrorBars(x, y, ex, ey)
	if err != nil {
		panic(err)
	}
	return s
}
