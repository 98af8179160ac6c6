// Package streamplot is an interactive 2D plotting engine. It maps a logical
// data rectangle ("bounds") onto a fixed-size drawing surface, and keeps that
// mapping consistent under pan, zoom, resize and streaming data ("follow").
// The engine draws through the Canvas interface; hosts supply a surface
// implementation (see src/chartimg for a raster one) plus gesture events.
package streamplot

import (
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Sample is one data point in logical space.
type Sample struct {
	X float64
	Y float64
}

// Offset is a logical-space translation subtracted from every sample of a
// series before the viewport transform, so a series can plot relative to a
// custom origin ("null offset").
type Offset struct {
	X float64
	Y float64
}

// SeriesType selects how a series' primary data is drawn.
type SeriesType int

const (
	Line SeriesType = iota
	Scatter
	Bar
	Area
)

func (t SeriesType) String() string {
	switch t {
	case Scatter:
		return "scatter"
	case Bar:
		return "bar"
	case Area:
		return "area"
	default:
		return "line"
	}
}

// FuncLine is a continuous scalar function sampled and drawn as a curve over
// the visible x range. Step is a multiplier on the per-pixel-column sampling
// step; zero means use the plot-wide default.
type FuncLine struct {
	Fn    func(x float64) float64
	Step  float64
	Color drawing.Color
	Width float64
}

// Marker is a discrete overlay point with optional label.
type Marker struct {
	At          Sample
	Color       drawing.Color
	Size        float64
	Label       string
	LabelOffset Offset
}

// Parametric is a parametric curve t -> (x, y) sampled over [TMin, TMax].
type Parametric struct {
	Fn    func(t float64) Sample
	TMin  float64
	TMax  float64
	Steps int
	Color drawing.Color
	Width float64
}

// AxisSide names an edge of the drawing surface for secondary axes.
type AxisSide int

const (
	AxisLeft AxisSide = iota
	AxisRight
	AxisTop
	AxisBottom
)

// SecondaryAxis configures a per-series axis drawn along one or more edges,
// ticked with the nice-number ticker.
type SecondaryAxis struct {
	Placements  []AxisSide
	Visible     bool
	Color       drawing.Color
	Width       float64
	TickCount   int
	TickLength  float64
	LabelOffset float64
}

// SeriesStyle carries the visual attributes of a series.
type SeriesStyle struct {
	Color     drawing.Color
	LineWidth float64
	PointSize float64
	// Area gradient, top stop then bottom stop. Zero values fall back to a
	// translucent-to-solid ramp of Color.
	AreaTop    drawing.Color
	AreaBottom drawing.Color
	// Bar width factor (fraction of the derived spacing, default 1) and the
	// pixel gap subtracted from each bar.
	BarWidthFactor float64
	BarGap         float64
}

// Series ("buffer") is one named data set on the shared viewport. Mutations
// must go through Plot.UpdateSeries, which replaces the whole record by value
// so a concurrently triggered render never observes a half-updated series.
type Series struct {
	Data    []Sample
	Type    SeriesType
	Visible bool
	Offset  Offset

	Lines       []FuncLine
	Points      []Marker
	Parametrics []Parametric

	Style SeriesStyle
	Axis  SecondaryAxis

	// Retention: when MaxDataLength > 0 a recurring task keeps only the
	// newest MaxDataLength samples. Managed via Plot.SetSeriesDiscardOptions.
	MaxDataLength   int
	DiscardInterval time.Duration
}

// NewSeries returns a visible line series with default styling.
func NewSeries(data ...Sample) *Series {
	return &Series{
		Data:    data,
		Type:    Line,
		Visible: true,
		Style: SeriesStyle{
			Color:          drawing.Color{R: 0x33, G: 0x99, B: 0xff, A: 0xff},
			LineWidth:      1,
			PointSize:      3,
			BarWidthFactor: 1,
			BarGap:         1,
		},
	}
}

// clone returns a shallow copy used for the copy-then-replace update
// discipline. Slices keep their backing arrays; update funcs that append
// re-slice into fresh storage when needed.
func (s *Series) clone() *Series {
	c := *s
	return &c
}

// latest returns the sample with the greatest x, or false when empty.
func (s *Series) latest() (Sample, bool) {
	if len(s.Data) == 0 {
		return Sample{}, false
	}
	best := s.Data[0]
	for _, p := range s.Data[1:] {
		if p.X > best.X {
			best = p
		}
	}
	return best, true
}
