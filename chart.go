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
	"math"

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/legend/series"
)

// Surface is an output device for a chart.
type Surface interface {
	Viewport

	// DrawFrame draws the axes, ticks and titles for the range r.
	DrawFrame(r AxisRange, t Titles)

	// DrawSeries draws one series with the given style.
	DrawSeries(s series.Series, st *SeriesStyle)

	// DrawLegend draws the legend box r (in box space) with the given
	// entries.
	DrawLegend(r rect.Rect, entries []Entry)

	// DrawStats draws a box with summary statistics.
	DrawStats(r rect.Rect, lines []string)
}

// Titles are the texts drawn around the plot area.
type Titles struct {
	Title string
	X, Y  string
}

// StatsBox controls the summary statistics box of the first series.
type StatsBox struct {
	Show bool
	Rect rect.Rect
}

// DefaultStatsRect is the position of the statistics box, in box space.
var DefaultStatsRect = rect.Rect{LLx: 0.7, LLy: 0.6, URx: 0.9, URy: 0.9}

// Config holds the settings of a chart.
type Config struct {
	LegendWidth, LegendHeight float64
	ShowLegend                bool

	// Inset, MaxAttempts and Step configure the placement search, see
	// [Placer].
	Inset       float64
	MaxAttempts int
	Step        float64

	Style Style

	// Trace, if set, is installed as [Placer.Trace].
	Trace func(Event)
}

// DefaultConfig returns the default chart settings.
func DefaultConfig() Config {
	return Config{
		LegendWidth:  0.3,
		LegendHeight: 0.2,
		ShowLegend:   true,
		Inset:        DefaultInset,
		MaxAttempts:  DefaultMaxAttempts,
		Step:         DefaultStep,
		Style:        DefaultStyle(),
	}
}

// Option modifies the configuration of a new chart.
type Option func(*Config)

// WithLegendSize sets the legend size in box space.
func WithLegendSize(w, h float64) Option {
	return func(c *Config) {
		c.LegendWidth, c.LegendHeight = w, h
	}
}

// WithStyle sets the chart style.
func WithStyle(st Style) Option {
	return func(c *Config) {
		c.Style = st
	}
}

// WithSearch sets the parameters of the placement search.
func WithSearch(inset float64, maxAttempts int, step float64) Option {
	return func(c *Config) {
		c.Inset, c.MaxAttempts, c.Step = inset, maxAttempts, step
	}
}

// WithTrace installs a hook which observes the placement search.
func WithTrace(fn func(Event)) Option {
	return func(c *Config) {
		c.Trace = fn
	}
}

// AddOptions control how a series is added to a chart.
type AddOptions struct {
	// NoLegend omits the series from the legend.
	NoLegend bool

	// SameColor reuses the colour of the previous series instead of
	// taking the next one from the palette.
	SameColor bool

	// Draw selects the drawn elements. The zero value selects the
	// default for the kind of series.
	Draw DrawOptions
}

type pendingAnchor struct {
	a    Anchor
	hold bool
}

// Chart is a set of series drawn onto one pair of axes, together with
// a legend.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	cfg    Config
	store  series.Store
	styles []*SeriesStyle
	labels []string
	legend *Model

	colors int // number of palette colours used so far

	fixedX, fixedY *Interval
	titles         Titles
	stats          StatsBox
	anchor         *pendingAnchor

	state State
}

// NewChart returns an empty chart.
func NewChart(opts ...Option) *Chart {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Chart{
		cfg:    cfg,
		legend: NewModel(),
		stats:  StatsBox{Rect: DefaultStatsRect},
	}
}

// Add appends a series to the chart. The return value is the index of
// the legend entry, or -1 if opt.NoLegend is set.
func (c *Chart) Add(s series.Series, label string, opt AddOptions) int {
	idx := c.colors
	if opt.SameColor && c.colors > 0 {
		idx = c.colors - 1
	} else {
		c.colors++
	}
	st := c.cfg.Style.seriesStyle(s.Kind(), idx, opt.Draw)

	c.store.Add(s)
	c.styles = append(c.styles, st)
	c.labels = append(c.labels, label)
	c.state = Idle

	if opt.NoLegend {
		return -1
	}
	return c.legend.Append(label, st)
}

// Len returns the number of series.
func (c *Chart) Len() int {
	return c.store.Len()
}

// State returns the state of the last placement search, or Idle if the
// chart changed since.
func (c *Chart) State() State {
	return c.state
}

// Legend returns the legend model.
func (c *Chart) Legend() *Model {
	return c.legend
}

// SetLegendSize sets the legend size used for automatic placement.
func (c *Chart) SetLegendSize(w, h float64) error {
	if !(w > 0 && w <= 1 && h > 0 && h <= 1) {
		return ErrInvalidSize
	}
	c.cfg.LegendWidth, c.cfg.LegendHeight = w, h
	c.state = Idle
	return nil
}

// SetLegendPosition places the legend by hand, see [Model.SetPosition].
func (c *Chart) SetLegendPosition(r rect.Rect, hold bool) error {
	c.anchor = nil
	return c.legend.SetPosition(r, hold)
}

// SetLegendAnchor places the legend at a canonical position. The
// rectangle is computed from the margins of the surface when the chart
// is drawn.
func (c *Chart) SetLegendAnchor(a Anchor, hold bool) {
	c.anchor = &pendingAnchor{a: a, hold: hold}
}

// ShowLegend turns the legend on or off.
func (c *Chart) ShowLegend(show bool) {
	c.cfg.ShowLegend = show
}

// SetXAxisRange fixes the visible x range.
func (c *Chart) SetXAxisRange(min, max float64) error {
	iv := Interval{Min: min, Max: max}
	if !iv.valid() {
		return &AxisError{Axis: AxisX, Min: min, Max: max}
	}
	c.fixedX = &iv
	c.state = Idle
	return nil
}

// SetYAxisRange fixes the visible y range. The placement search may
// still enlarge it.
func (c *Chart) SetYAxisRange(min, max float64) error {
	iv := Interval{Min: min, Max: max}
	if !iv.valid() {
		return &AxisError{Axis: AxisY, Min: min, Max: max}
	}
	c.fixedY = &iv
	c.state = Idle
	return nil
}

// SetTitles sets the chart and axis titles.
func (c *Chart) SetTitles(t Titles) {
	c.titles = t
}

// ShowStats configures the statistics box. A zero rectangle selects
// DefaultStatsRect.
func (c *Chart) ShowStats(sb StatsBox) error {
	if sb.Rect == (rect.Rect{}) {
		sb.Rect = DefaultStatsRect
	}
	if sb.Show && !(Box{Rect: sb.Rect}).Valid() {
		return ErrInvalidBox
	}
	c.stats = sb
	return nil
}

// Draw places the legend and draws the chart onto s.
//
// If the legend could not be placed without covering data, the chart
// is still drawn and the returned Result reports the failure.
func (c *Chart) Draw(s Surface) (Result, error) {
	if c.store.Len() == 0 {
		return Result{}, ErrNothingToDraw
	}

	if c.anchor != nil {
		err := c.legend.SetAnchor(c.anchor.a, c.cfg.LegendWidth, c.cfg.LegendHeight,
			s.Margins(), c.cfg.Inset, c.anchor.hold)
		if err != nil {
			return Result{}, err
		}
		c.anchor = nil
	}

	p := NewPlacer(s)
	p.Inset = c.cfg.Inset
	p.MaxAttempts = c.cfg.MaxAttempts
	p.Step = c.cfg.Step
	p.Trace = c.cfg.Trace

	all := c.store.All()
	req := Request{
		Series: all,
		Box:    c.legend.Box(),
		Width:  c.cfg.LegendWidth,
		Height: c.cfg.LegendHeight,
		FixedX: c.fixedX,
		FixedY: c.fixedY,
	}

	var res Result
	if c.cfg.ShowLegend {
		var err error
		res, err = p.Place(req)
		if err != nil {
			return res, err
		}
		c.legend.setBox(res.Box.Rect)
	} else {
		r := p.Range(req)
		res = Result{Box: req.Box, Anchor: NoAnchor, Range: r, Original: r, Held: req.Box.Held}
	}
	c.state = res.State

	s.ApplyAxisRange(AxisX, res.Range.X.Min, res.Range.X.Max)
	s.ApplyAxisRange(AxisY, res.Range.Y.Min, res.Range.Y.Max)
	s.DrawFrame(res.Range, c.titles)
	for i, ser := range all {
		s.DrawSeries(ser, c.styles[i])
	}
	if c.cfg.ShowLegend && c.legend.Len() > 0 {
		s.DrawLegend(c.legend.Box().Rect, c.legend.Snapshot())
	}
	if c.stats.Show {
		s.DrawStats(c.stats.Rect, statsLines(c.labels[0], all[0]))
	}
	return res, nil
}

// statsLines summarises the x distribution of s. The standard deviation
// is the population value, with bins weighted by their contents.
func statsLines(label string, s series.Series) []string {
	var sample stats.Sample
	switch s := s.(type) {
	case *series.Histogram:
		for i, w := range s.Contents {
			if !s.Populated(i) {
				continue
			}
			sample.Xs = append(sample.Xs, s.Center(i))
			sample.Weights = append(sample.Weights, max(w, 0))
		}
	case *series.Profile:
		for i := range s.NBins() {
			if !s.Populated(i) {
				continue
			}
			sample.Xs = append(sample.Xs, s.Center(i))
			sample.Weights = append(sample.Weights, s.Entries(i))
		}
	default:
		for _, p := range s.SamplePoints() {
			sample.Xs = append(sample.Xs, p.X)
		}
	}

	mean := sample.Mean()
	sd := math.NaN()
	if w := sample.Weight(); w > 0 {
		// Sample.StdDev is the unweighted n-1 estimate
		var sum float64
		for i, x := range sample.Xs {
			wi := 1.0
			if sample.Weights != nil {
				wi = sample.Weights[i]
			}
			sum += wi * (x - mean) * (x - mean)
		}
		sd = math.Sqrt(sum / w)
	}

	return []string{
		label,
		fmt.Sprintf("Entries  %g", sample.Weight()),
		fmt.Sprintf("Mean     %.4g", mean),
		fmt.Sprintf("Std Dev  %.4g", sd),
	}
}
