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
	"image/color"

	"seehuhn.de/go/legend/series"
)

// Marker selects the symbol drawn at data points.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
	MarkerTriangle
	MarkerCross
)

// DrawOptions select which elements are drawn for a series.
type DrawOptions struct {
	Markers   bool // a symbol at every sample point
	Line      bool // a polyline through the sample points
	Steps     bool // a histogram outline
	ErrorBars bool // vertical (and horizontal) error bars
	Band      bool // a filled band between the lower and upper errors
}

// IsZero reports whether no element is selected.
func (o DrawOptions) IsZero() bool {
	return o == DrawOptions{}
}

// DefaultDrawOptions returns the elements drawn for a series of kind k
// unless the caller asks for something else.
func DefaultDrawOptions(k series.Kind) DrawOptions {
	switch k {
	case series.KindHistogram:
		return DrawOptions{Steps: true, ErrorBars: true}
	case series.KindPoints:
		return DrawOptions{Markers: true, Line: true}
	case series.KindErrorBars, series.KindProfile:
		return DrawOptions{Markers: true, Line: true, Band: true}
	default:
		return DrawOptions{Line: true}
	}
}

// Style collects the visual parameters shared by all series of a chart.
// Sizes are in device units of the output surface, relative to a canvas
// height of 600.
type Style struct {
	Palette []color.NRGBA

	Marker      Marker
	MarkerSize  float64
	MarkerAlpha float64
	LineWidth   float64
	FillAlpha   float64

	// Text sizes as fractions of the canvas height.
	TitleSize     float64
	AxisTitleSize float64
	LabelSize     float64
}

// DefaultStyle returns the standard chart style.
func DefaultStyle() Style {
	return Style{
		Palette: []color.NRGBA{
			{R: 0xcc, G: 0x33, B: 0x66, A: 0xff}, // pink
			{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, // azure
			{R: 0xff, G: 0x66, B: 0x33, A: 0xff}, // orange
			{R: 0x33, G: 0xcc, B: 0x33, A: 0xff}, // green
			{R: 0x00, G: 0x00, B: 0x99, A: 0xff}, // blue
			{R: 0xcc, G: 0x00, B: 0xff, A: 0xff}, // violet
			{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, // gray
			{R: 0x33, G: 0x99, B: 0xff, A: 0xff}, // light azure
			{R: 0x99, G: 0x99, B: 0x33, A: 0xff}, // olive
			{R: 0x00, G: 0x99, B: 0x99, A: 0xff}, // cyan
			{R: 0xcc, G: 0x99, B: 0xcc, A: 0xff}, // magenta
			{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
			{R: 0x66, G: 0x99, B: 0x99, A: 0xff}, // teal
			{R: 0xff, G: 0x33, B: 0x00, A: 0xff}, // dark orange
			{R: 0x99, G: 0x33, B: 0x33, A: 0xff}, // brown
		},
		Marker:        MarkerCircle,
		MarkerSize:    4,
		MarkerAlpha:   0.95,
		LineWidth:     2,
		FillAlpha:     0.5,
		TitleSize:     0.07,
		AxisTitleSize: 0.05,
		LabelSize:     0.03,
	}
}

// SeriesStyle is the resolved style of one series. Legend entries
// refer to it, so that the legend can show a matching swatch.
type SeriesStyle struct {
	Kind        series.Kind
	Color       color.NRGBA
	Marker      Marker
	MarkerSize  float64
	MarkerAlpha float64
	LineWidth   float64
	FillAlpha   float64
	Draw        DrawOptions
}

// seriesStyle resolves the style for the i-th palette colour.
func (st *Style) seriesStyle(k series.Kind, colorIndex int, opt DrawOptions) *SeriesStyle {
	if opt.IsZero() {
		opt = DefaultDrawOptions(k)
	}
	var col color.NRGBA
	if n := len(st.Palette); n > 0 {
		col = st.Palette[colorIndex%n]
	} else {
		col = color.NRGBA{A: 0xff}
	}
	return &SeriesStyle{
		Kind:        k,
		Color:       col,
		Marker:      st.Marker,
		MarkerSize:  st.MarkerSize,
		MarkerAlpha: st.MarkerAlpha,
		LineWidth:   st.LineWidth,
		FillAlpha:   st.FillAlpha,
		Draw:        opt,
	}
}
