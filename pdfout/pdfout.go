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

// Package pdfout draws charts into a single page PDF file.
//
// The output uses the DeviceGray colour space only. Series colours are
// converted to their luminance, and text is not drawn.
package pdfout

import (
	"image/color"

	"github.com/aclements/go-moremath/scale"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/internal/shape"
	"seehuhn.de/go/legend/series"
)

// Writer is a chart surface backed by one PDF page.
// Close must be called to complete the file.
type Writer struct {
	page *document.Page

	width, height float64 // page size in PDF points
	margins       legend.Margins
	ranges        legend.AxisRange
}

// Create starts a new PDF file with a page of the given size, in PDF
// points.
func Create(fname string, width, height float64, m legend.Margins) (*Writer, error) {
	if !(width > 0 && height > 0) {
		return nil, legend.ErrInvalidSize
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return &Writer{
		page:    page,
		width:   width,
		height:  height,
		margins: m,
		ranges:  legend.DefaultRange,
	}, nil
}

// Close writes the page and closes the file.
func (w *Writer) Close() error {
	return w.page.Close()
}

// Margins implements [legend.Viewport].
func (w *Writer) Margins() legend.Margins {
	return w.margins
}

// ApplyAxisRange implements [legend.Viewport].
func (w *Writer) ApplyAxisRange(axis legend.Axis, min, max float64) {
	w.ranges = w.ranges.With(axis, legend.Interval{Min: min, Max: max})
}

// box maps box space to PDF user space. Both have the origin at the
// bottom left.
func (w *Writer) box(f vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: f.X * w.width, Y: f.Y * w.height}
}

// unit is the number of points per style unit.
func (w *Writer) unit() float64 {
	return w.height / 600
}

// gray converts col to a DeviceGray level, blended onto white with the
// given opacity.
func gray(col color.NRGBA, alpha float64) float64 {
	lum := (0.299*float64(col.R) + 0.587*float64(col.G) + 0.114*float64(col.B)) / 255
	a := alpha * float64(col.A) / 255
	return 1 - (1-lum)*a
}

// emit appends the segments of p to the current PDF path.
func (w *Writer) emit(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.page.ClosePath()
		}
	}
}

func (w *Writer) fill(p *path.Data, level float64) {
	if len(p.Cmds) == 0 {
		return
	}
	w.page.SetFillColor(pdfcolor.DeviceGray(level))
	w.emit(p)
	w.page.Fill()
}

func (w *Writer) stroke(p *path.Data, level, width float64) {
	if len(p.Cmds) == 0 {
		return
	}
	w.page.SetStrokeColor(pdfcolor.DeviceGray(level))
	w.page.SetLineWidth(width)
	w.emit(p)
	w.page.Stroke()
}

const (
	black = 0.0
	white = 1.0
)

// DrawFrame implements [legend.Surface]. Ticks are drawn, tick labels
// and titles are not.
func (w *Writer) DrawFrame(r legend.AxisRange, _ legend.Titles) {
	w.page.SetLineCap(graphics.LineCapButt)
	w.page.SetLineJoin(graphics.LineJoinMiter)

	area := rect.Rect{
		LLx: w.margins.Left, LLy: w.margins.Bottom,
		URx: 1 - w.margins.Right, URy: 1 - w.margins.Top,
	}
	w.stroke(shape.Rect(area, w.box), black, w.unit())

	mp, err := legend.NewMapper(r, w.margins)
	if err != nil {
		return
	}
	major := 8 * w.unit()
	ticks := &path.Data{}
	addX := func(vals []float64, length float64) {
		for _, v := range vals {
			p := w.box(mp.ToBox(vec.Vec2{X: v, Y: r.Y.Min}))
			ticks.MoveTo(p).LineTo(vec.Vec2{X: p.X, Y: p.Y + length})
		}
	}
	addY := func(vals []float64, length float64) {
		for _, v := range vals {
			p := w.box(mp.ToBox(vec.Vec2{X: r.X.Min, Y: v}))
			ticks.MoveTo(p).LineTo(vec.Vec2{X: p.X + length, Y: p.Y})
		}
	}
	xs := scale.Linear{Min: r.X.Min, Max: r.X.Max}
	ys := scale.Linear{Min: r.Y.Min, Max: r.Y.Max}
	xMajor, xMinor := xs.Ticks(scale.TickOptions{Max: 8})
	yMajor, yMinor := ys.Ticks(scale.TickOptions{Max: 8})
	addX(xMajor, major)
	addX(xMinor, major/2)
	addY(yMajor, major)
	addY(yMinor, major/2)
	w.stroke(ticks, black, w.unit()/2)

	w.page.SetLineCap(graphics.LineCapRound)
	w.page.SetLineJoin(graphics.LineJoinRound)
}

// DrawSeries implements [legend.Surface].
func (w *Writer) DrawSeries(s series.Series, st *legend.SeriesStyle) {
	mp, err := legend.NewMapper(w.ranges, w.margins)
	if err != nil {
		return
	}
	tr := func(v vec.Vec2) vec.Vec2 { return w.box(mp.ToBox(v)) }
	lw := st.LineWidth * w.unit()

	pts, errs, hasErrors := shape.Errors(s)
	if st.Draw.Band && hasErrors {
		w.fill(shape.Band(pts, errs, tr), gray(st.Color, st.FillAlpha))
	}
	if st.Draw.Steps {
		if h, ok := s.(*series.Histogram); ok {
			w.stroke(shape.Steps(h, tr), gray(st.Color, 1), lw)
		}
	}
	if st.Draw.ErrorBars && hasErrors {
		w.stroke(shape.ErrorBars(pts, errs, tr), gray(st.Color, 1), lw/2)
	}
	samples := s.SamplePoints()
	if st.Draw.Line {
		w.stroke(shape.Polyline(samples, tr), gray(st.Color, 1), lw)
	}
	if st.Draw.Markers {
		markers := &path.Data{}
		radius := st.MarkerSize * w.unit()
		for _, p := range samples {
			m := shape.Marker(st.Marker, tr(p), radius)
			markers.Cmds = append(markers.Cmds, m.Cmds...)
			markers.Coords = append(markers.Coords, m.Coords...)
		}
		w.fill(markers, gray(st.Color, st.MarkerAlpha))
	}
}

// DrawLegend implements [legend.Surface]. Each entry is shown by its
// swatch only.
func (w *Writer) DrawLegend(r rect.Rect, entries []legend.Entry) {
	frame := shape.Rect(r, w.box)
	w.fill(frame, white)
	w.stroke(frame, black, w.unit())
	if len(entries) == 0 {
		return
	}

	ll, ur := w.box(vec.Vec2{X: r.LLx, Y: r.LLy}), w.box(vec.Vec2{X: r.URx, Y: r.URy})
	rowHeight := (ur.Y - ll.Y) / float64(len(entries))
	swatch := min(30*w.unit(), (ur.X-ll.X)/4)
	x0 := ll.X + 6*w.unit()
	for i, e := range entries {
		st := e.Style
		if st == nil {
			continue
		}
		y := ur.Y - rowHeight*(float64(i)+0.5)
		if st.Draw.Band || st.Draw.Steps {
			h := min(rowHeight/2, 10*w.unit())
			box := rect.Rect{LLx: x0, LLy: y - h/2, URx: x0 + swatch, URy: y + h/2}
			w.fill(shape.Rect(box, func(v vec.Vec2) vec.Vec2 { return v }), gray(st.Color, 0.25))
		}
		if st.Draw.Line || st.Draw.Steps {
			line := (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y}).LineTo(vec.Vec2{X: x0 + swatch, Y: y})
			w.stroke(line, gray(st.Color, 1), st.LineWidth*w.unit())
		}
		if st.Draw.Markers {
			c := vec.Vec2{X: x0 + swatch/2, Y: y}
			w.fill(shape.Marker(st.Marker, c, st.MarkerSize*w.unit()), gray(st.Color, st.MarkerAlpha))
		}
	}
}

// DrawStats implements [legend.Surface]. Only the box is drawn.
func (w *Writer) DrawStats(r rect.Rect, _ []string) {
	frame := shape.Rect(r, w.box)
	w.fill(frame, white)
	w.stroke(frame, black, w.unit())
}
