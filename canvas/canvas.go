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

// Package canvas draws charts onto an RGBA image.
//
// The Canvas type implements [legend.Surface]. Paths are converted to
// pixel coverage by the anti-aliased rasteriser in internal/raster,
// text uses the fixed 7x13 bitmap font from golang.org/x/image.
package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/internal/raster"
	"seehuhn.de/go/legend/internal/shape"
	"seehuhn.de/go/legend/series"
)

// Canvas is a raster chart surface.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	margins legend.Margins
	ranges  legend.AxisRange

	// boxToDevice maps box space to pixel coordinates, with the origin
	// at the top left.
	boxToDevice matrix.Matrix

	// unit is the number of pixels per style unit
	unit float64

	r    *raster.Rasteriser
	face font.Face
}

// New returns a white canvas of the given size in pixels.
func New(width, height int, m legend.Margins) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, legend.ErrInvalidSize
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	w, h := float64(width), float64(height)
	return &Canvas{
		Image:       img,
		margins:     m,
		ranges:      legend.DefaultRange,
		boxToDevice: matrix.Matrix{w, 0, 0, -h, 0, h},
		unit:        h / 600,
		r:           raster.NewRasteriser(rect.Rect{URx: w, URy: h}),
		face:        basicfont.Face7x13,
	}, nil
}

// Margins implements [legend.Viewport].
func (c *Canvas) Margins() legend.Margins {
	return c.margins
}

// ApplyAxisRange implements [legend.Viewport].
func (c *Canvas) ApplyAxisRange(axis legend.Axis, min, max float64) {
	c.ranges = c.ranges.With(axis, legend.Interval{Min: min, Max: max})
}

// Range returns the axis range used for drawing series.
func (c *Canvas) Range() legend.AxisRange {
	return c.ranges
}

// box converts a point in box space to pixel coordinates.
func (c *Canvas) box(f vec.Vec2) vec.Vec2 {
	m := c.boxToDevice
	return vec.Vec2{
		X: m[0]*f.X + m[2]*f.Y + m[4],
		Y: m[1]*f.X + m[3]*f.Y + m[5],
	}
}

// plotArea returns the plot area in pixel coordinates.
func (c *Canvas) plotArea() rect.Rect {
	ll := c.box(vec.Vec2{X: c.margins.Left, Y: c.margins.Bottom})
	ur := c.box(vec.Vec2{X: 1 - c.margins.Right, Y: 1 - c.margins.Top})
	return rect.Rect{LLx: ll.X, LLy: ur.Y, URx: ur.X, URy: ll.Y}
}

// paint returns an emit function which blends col into the image,
// scaled by the pixel coverage and by alpha.
func (c *Canvas) paint(col color.NRGBA, alpha float64) raster.EmitFunc {
	a := float64(col.A) / 255 * alpha
	return func(y, xMin int, coverage []float32) {
		row := c.Image.Pix[y*c.Image.Stride+4*xMin:]
		for i, cov := range coverage {
			k := a * float64(cov)
			if k <= 0 {
				continue
			}
			px := row[4*i : 4*i+4]
			px[0] = blend(px[0], col.R, k)
			px[1] = blend(px[1], col.G, k)
			px[2] = blend(px[2], col.B, k)
			px[3] = blend(px[3], 255, k)
		}
	}
}

func blend(dst, src uint8, k float64) uint8 {
	v := float64(dst)*(1-k) + float64(src)*k
	return uint8(math.Round(min(max(v, 0), 255)))
}

func (c *Canvas) fill(p *path.Data, col color.NRGBA, alpha float64) {
	c.r.Reset(c.r.Clip)
	c.r.FillNonZero(p, c.paint(col, alpha))
}

func (c *Canvas) stroke(p *path.Data, col color.NRGBA, alpha, width float64) {
	c.r.Reset(c.r.Clip)
	c.r.Width = width
	c.r.Cap = graphics.LineCapRound
	c.r.Join = graphics.LineJoinRound
	c.r.Stroke(p, c.paint(col, alpha))
}

// clipTo restricts drawing to the rectangle r, in pixel coordinates.
func (c *Canvas) clipTo(r rect.Rect) {
	c.r.Clip = rect.Rect{
		LLx: math.Floor(r.LLx),
		LLy: math.Floor(r.LLy),
		URx: math.Ceil(r.URx),
		URy: math.Ceil(r.URy),
	}
}

func (c *Canvas) unclip() {
	b := c.Image.Bounds()
	c.r.Clip = rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
}

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// text draws s with its baseline starting at (x, y).
func (c *Canvas) text(s string, x, y float64, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

func (c *Canvas) textWidth(s string) float64 {
	return float64(font.MeasureString(c.face, s).Ceil())
}

// DrawFrame implements [legend.Surface]. It draws the plot area border,
// ticks with labels on the left and bottom axes, and the titles.
func (c *Canvas) DrawFrame(r legend.AxisRange, t legend.Titles) {
	c.unclip()
	area := c.plotArea()
	lw := max(1, c.unit)
	c.stroke(shape.Rect(area, func(v vec.Vec2) vec.Vec2 { return v }), black, 1, lw)

	mp, err := legend.NewMapper(r, c.margins)
	if err != nil {
		return
	}
	ascent := float64(c.face.Metrics().Ascent.Ceil())
	major := 8 * c.unit
	ticks := &path.Data{}

	xs := scale.Linear{Min: r.X.Min, Max: r.X.Max}
	xMajor, xMinor := xs.Ticks(scale.TickOptions{Max: 8})
	for _, v := range xMajor {
		p := c.box(mp.ToBox(vec.Vec2{X: v, Y: r.Y.Min}))
		ticks.MoveTo(vec.Vec2{X: p.X, Y: area.URy}).LineTo(vec.Vec2{X: p.X, Y: area.URy - major})
		label := formatTick(v)
		c.text(label, p.X-c.textWidth(label)/2, area.URy+4+ascent, black)
	}
	for _, v := range xMinor {
		p := c.box(mp.ToBox(vec.Vec2{X: v, Y: r.Y.Min}))
		ticks.MoveTo(vec.Vec2{X: p.X, Y: area.URy}).LineTo(vec.Vec2{X: p.X, Y: area.URy - major/2})
	}

	ys := scale.Linear{Min: r.Y.Min, Max: r.Y.Max}
	yMajor, yMinor := ys.Ticks(scale.TickOptions{Max: 8})
	for _, v := range yMajor {
		p := c.box(mp.ToBox(vec.Vec2{X: r.X.Min, Y: v}))
		ticks.MoveTo(vec.Vec2{X: area.LLx, Y: p.Y}).LineTo(vec.Vec2{X: area.LLx + major, Y: p.Y})
		label := formatTick(v)
		c.text(label, area.LLx-4-c.textWidth(label), p.Y+ascent/2, black)
	}
	for _, v := range yMinor {
		p := c.box(mp.ToBox(vec.Vec2{X: r.X.Min, Y: v}))
		ticks.MoveTo(vec.Vec2{X: area.LLx, Y: p.Y}).LineTo(vec.Vec2{X: area.LLx + major/2, Y: p.Y})
	}
	c.clipTo(area)
	c.stroke(ticks, black, 1, lw)
	c.unclip()

	if t.Title != "" {
		c.text(t.Title, (area.LLx+area.URx-c.textWidth(t.Title))/2, area.LLy-6, black)
	}
	if t.X != "" {
		c.text(t.X, area.URx-c.textWidth(t.X), area.URy+2*ascent+10, black)
	}
	if t.Y != "" {
		c.text(t.Y, max(2, area.LLx-c.textWidth(t.Y)/2), area.LLy-6-ascent-4, black)
	}
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// DrawSeries implements [legend.Surface].
func (c *Canvas) DrawSeries(s series.Series, st *legend.SeriesStyle) {
	mp, err := legend.NewMapper(c.ranges, c.margins)
	if err != nil {
		return
	}
	tr := func(v vec.Vec2) vec.Vec2 { return c.box(mp.ToBox(v)) }

	c.clipTo(c.plotArea())
	defer c.unclip()

	lw := st.LineWidth * c.unit
	pts, errs, hasErrors := shape.Errors(s)
	if st.Draw.Band && hasErrors {
		c.fill(shape.Band(pts, errs, tr), st.Color, st.FillAlpha)
	}
	if st.Draw.Steps {
		if h, ok := s.(*series.Histogram); ok {
			c.stroke(shape.Steps(h, tr), st.Color, 1, lw)
		}
	}
	if st.Draw.ErrorBars && hasErrors {
		c.stroke(shape.ErrorBars(pts, errs, tr), st.Color, 1, max(1, lw/2))
	}
	samples := s.SamplePoints()
	if st.Draw.Line {
		c.stroke(shape.Polyline(samples, tr), st.Color, 1, lw)
	}
	if st.Draw.Markers {
		radius := st.MarkerSize * c.unit
		for _, p := range samples {
			c.fill(shape.Marker(st.Marker, tr(p), radius), st.Color, st.MarkerAlpha)
		}
	}
}

// DrawLegend implements [legend.Surface].
func (c *Canvas) DrawLegend(r rect.Rect, entries []legend.Entry) {
	c.unclip()
	frame := shape.Rect(r, c.box)
	c.fill(frame, white, 1)
	c.stroke(frame, black, 1, max(1, c.unit))
	if len(entries) == 0 {
		return
	}

	ll, ur := c.box(vec.Vec2{X: r.LLx, Y: r.LLy}), c.box(vec.Vec2{X: r.URx, Y: r.URy})
	rowHeight := (ll.Y - ur.Y) / float64(len(entries))
	swatch := min(30*c.unit, (ur.X-ll.X)/4)
	ascent := float64(c.face.Metrics().Ascent.Ceil())
	for i, e := range entries {
		mid := ur.Y + rowHeight*(float64(i)+0.5)
		x0 := ll.X + 6*c.unit
		c.drawSwatch(e.Style, x0, x0+swatch, mid, rowHeight)
		c.text(e.Label, x0+swatch+6*c.unit, mid+ascent/2-1, black)
	}
}

// drawSwatch draws the legend symbol for one series between x0 and x1,
// centred vertically at y.
func (c *Canvas) drawSwatch(st *legend.SeriesStyle, x0, x1, y, rowHeight float64) {
	if st == nil {
		return
	}
	if st.Draw.Band || st.Draw.Steps {
		h := min(rowHeight*0.5, 10*c.unit)
		box := rect.Rect{LLx: x0, LLy: y - h/2, URx: x1, URy: y + h/2}
		alpha := st.FillAlpha
		if !st.Draw.Band {
			alpha = 0.25
		}
		c.fill(shape.Rect(box, func(v vec.Vec2) vec.Vec2 { return v }), st.Color, alpha)
	}
	if st.Draw.Line || st.Draw.Steps {
		line := (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y}).LineTo(vec.Vec2{X: x1, Y: y})
		c.stroke(line, st.Color, 1, st.LineWidth*c.unit)
	}
	if st.Draw.Markers {
		centre := vec.Vec2{X: (x0 + x1) / 2, Y: y}
		c.fill(shape.Marker(st.Marker, centre, st.MarkerSize*c.unit), st.Color, st.MarkerAlpha)
	}
}

// DrawStats implements [legend.Surface].
func (c *Canvas) DrawStats(r rect.Rect, lines []string) {
	c.unclip()
	frame := shape.Rect(r, c.box)
	c.fill(frame, white, 1)
	c.stroke(frame, black, 1, max(1, c.unit))

	ll, ur := c.box(vec.Vec2{X: r.LLx, Y: r.LLy}), c.box(vec.Vec2{X: r.URx, Y: r.URy})
	lineHeight := float64(c.face.Metrics().Height.Ceil()) + 2
	for i, line := range lines {
		y := ur.Y + lineHeight*float64(i+1)
		if y > ll.Y {
			break
		}
		c.text(line, ll.X+4, y, black)
	}
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image)
}

// SavePNG writes the image to a PNG file.
func (c *Canvas) SavePNG(fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(f)
}
