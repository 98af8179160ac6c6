package streamplot

import (
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// drawSeries renders one series onto the canvas: the primary data according
// to the series type, then function lines, point markers and parametric
// curves. A series with no samples contributes no primary draw but its
// overlays still render.
func drawSeries(c Canvas, v *Viewport, s *Series, defaultStep float64) {
	if len(s.Data) > 0 {
		switch s.Type {
		case Scatter:
			drawScatterSeries(c, v, s)
		case Bar:
			drawBarSeries(c, v, s)
		case Area:
			drawAreaSeries(c, v, s)
		default:
			drawLineSeries(c, v, s)
		}
	}
	drawFuncLines(c, v, s, defaultStep)
	drawMarkers(c, v, s)
	drawParametrics(c, v, s)
}

// drawLineSeries connects consecutive transformed points in input order with
// one stroke call. Input order defines connectivity; the data is not sorted.
func drawLineSeries(c Canvas, v *Viewport, s *Series) {
	for i, p := range s.Data {
		x := v.PixelX(p.X, s.Offset.X)
		y := v.PixelY(p.Y, s.Offset.Y)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.Stroke(StrokeStyle{Color: s.Style.Color, Width: s.Style.LineWidth})
}

func drawScatterSeries(c Canvas, v *Viewport, s *Series) {
	r := s.Style.PointSize
	if r <= 0 {
		r = 3
	}
	for _, p := range s.Data {
		c.Circle(v.PixelX(p.X, s.Offset.X), v.PixelY(p.Y, s.Offset.Y), r, s.Style.Color)
	}
}

// drawBarSeries sorts samples by x before deriving a uniform bar width from
// the pixel spacing of the first two sorted samples; a lone sample gets
// width/count. Bars run from the zero baseline, upward for positive values
// and downward for negative ones.
func drawBarSeries(c Canvas, v *Viewport, s *Series) {
	pts := make([]Sample, len(s.Data))
	copy(pts, s.Data)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	var spacing float64
	if len(pts) >= 2 {
		spacing = math.Abs(v.PixelX(pts[1].X, s.Offset.X) - v.PixelX(pts[0].X, s.Offset.X))
	} else {
		spacing = v.Width / float64(len(pts))
	}
	factor := s.Style.BarWidthFactor
	if factor <= 0 {
		factor = 1
	}
	w := spacing*factor - s.Style.BarGap
	if w < 1 {
		w = 1
	}
	base := v.PixelY(0, s.Offset.Y)
	for _, p := range pts {
		cx := v.PixelX(p.X, s.Offset.X)
		py := v.PixelY(p.Y, s.Offset.Y)
		top := math.Min(py, base)
		c.Rect(cx-w/2, top, w, math.Abs(base-py), s.Style.Color)
	}
}

// drawAreaSeries fills the region between the polyline and the transformed
// y=0 baseline with a vertical gradient, then strokes the open outline on
// top. The fill is emitted as per-column gradient strips so the blend spans
// the whole filled region, not each strip in isolation.
func drawAreaSeries(c Canvas, v *Viewport, s *Series) {
	top, bottom := s.areaColors()
	base := v.PixelY(0, s.Offset.Y)

	// Overall pixel y extent of the filled region, for the global ramp.
	gMin, gMax := base, base
	px := make([]float64, len(s.Data))
	py := make([]float64, len(s.Data))
	for i, p := range s.Data {
		px[i] = v.PixelX(p.X, s.Offset.X)
		py[i] = v.PixelY(p.Y, s.Offset.Y)
		gMin = math.Min(gMin, py[i])
		gMax = math.Max(gMax, py[i])
	}
	ramp := gMax - gMin
	colorAt := func(y float64) drawing.Color {
		if ramp <= 0 {
			return bottom
		}
		return lerpColor(top, bottom, (y-gMin)/ramp)
	}
	for i := 0; i+1 < len(px); i++ {
		cols := int(math.Abs(px[i+1] - px[i]))
		if cols < 1 {
			cols = 1
		}
		for j := 0; j < cols; j++ {
			t := float64(j) / float64(cols)
			x := px[i] + (px[i+1]-px[i])*t
			y := py[i] + (py[i+1]-py[i])*t
			hi := math.Min(y, base)
			h := math.Abs(base - y)
			if h <= 0 {
				continue
			}
			c.GradientRect(x, hi, math.Abs(px[i+1]-px[i])/float64(cols)+1, h, colorAt(hi), colorAt(hi+h))
		}
	}

	// Outline stroked separately, not closed down to the baseline.
	for i := range px {
		if i == 0 {
			c.MoveTo(px[i], py[i])
		} else {
			c.LineTo(px[i], py[i])
		}
	}
	c.Stroke(StrokeStyle{Color: s.Style.Color, Width: s.Style.LineWidth})
}

func (s *Series) areaColors() (top, bottom drawing.Color) {
	top = s.Style.AreaTop
	bottom = s.Style.AreaBottom
	if top.A == 0 && bottom.A == 0 {
		top = s.Style.Color
		top.A = 0x40
		bottom = s.Style.Color
	}
	return top, bottom
}

// drawFuncLines samples each function across the visible x range in steps of
// step/scale.x (about one pixel column per unit step). Out-of-bounds samples
// are skipped with one scale-unit of slack, and the subpath is broken after a
// skipped sample so discontinuities never connect across the gap.
func drawFuncLines(c Canvas, v *Viewport, s *Series, defaultStep float64) {
	if len(s.Lines) == 0 {
		return
	}
	sx, sy := v.Scale()
	slack := 1 / sy
	for _, ln := range s.Lines {
		if ln.Fn == nil {
			continue
		}
		step := ln.Step
		if step <= 0 {
			step = defaultStep
		}
		if step <= 0 {
			step = 1
		}
		dx := step / sx
		pen := false
		drew := false
		for x := v.Bounds.X.Min + s.Offset.X; x <= v.Bounds.X.Max+s.Offset.X; x += dx {
			y := ln.Fn(x)
			ay := y - s.Offset.Y
			if math.IsNaN(ay) || math.IsInf(ay, 0) || ay < v.Bounds.Y.Min-slack || ay > v.Bounds.Y.Max+slack {
				pen = false
				continue
			}
			pxx := v.PixelX(x, s.Offset.X)
			pyy := v.PixelY(y, s.Offset.Y)
			if !pen {
				c.MoveTo(pxx, pyy)
				pen = true
			} else {
				c.LineTo(pxx, pyy)
			}
			drew = true
		}
		if drew {
			c.Stroke(StrokeStyle{Color: styleColor(ln.Color, s.Style.Color), Width: styleWidth(ln.Width, s.Style.LineWidth)})
		}
	}
}

func drawMarkers(c Canvas, v *Viewport, s *Series) {
	for _, m := range s.Points {
		r := m.Size
		if r <= 0 {
			r = s.Style.PointSize
		}
		if r <= 0 {
			r = 3
		}
		col := styleColor(m.Color, s.Style.Color)
		x := v.PixelX(m.At.X, s.Offset.X)
		y := v.PixelY(m.At.Y, s.Offset.Y)
		c.Circle(x, y, r, col)
		if m.Label != "" {
			c.Text(m.Label, x+m.LabelOffset.X, y+m.LabelOffset.Y, col)
		}
	}
}

// drawParametrics marches each curve's parameter over its domain (defaults
// t in [0, 10], 1000 steps) and connects in-bounds runs as separate subpaths.
func drawParametrics(c Canvas, v *Viewport, s *Series) {
	if len(s.Parametrics) == 0 {
		return
	}
	sx, sy := v.Scale()
	slackX := 1 / sx
	slackY := 1 / sy
	for _, pc := range s.Parametrics {
		if pc.Fn == nil {
			continue
		}
		tMin, tMax := pc.TMin, pc.TMax
		if tMax <= tMin {
			tMin, tMax = 0, 10
		}
		steps := pc.Steps
		if steps <= 0 {
			steps = 1000
		}
		dt := (tMax - tMin) / float64(steps)
		pen := false
		drew := false
		for t := tMin; t <= tMax; t += dt {
			p := pc.Fn(t)
			ax := p.X - s.Offset.X
			ay := p.Y - s.Offset.Y
			out := math.IsNaN(ax) || math.IsNaN(ay) ||
				ax < v.Bounds.X.Min-slackX || ax > v.Bounds.X.Max+slackX ||
				ay < v.Bounds.Y.Min-slackY || ay > v.Bounds.Y.Max+slackY
			if out {
				pen = false
				continue
			}
			pxx := v.PixelX(p.X, s.Offset.X)
			pyy := v.PixelY(p.Y, s.Offset.Y)
			if !pen {
				c.MoveTo(pxx, pyy)
				pen = true
			} else {
				c.LineTo(pxx, pyy)
			}
			drew = true
		}
		if drew {
			c.Stroke(StrokeStyle{Color: styleColor(pc.Color, s.Style.Color), Width: styleWidth(pc.Width, s.Style.LineWidth)})
		}
	}
}

func styleColor(c, fallback drawing.Color) drawing.Color {
	if c.A == 0 {
		return fallback
	}
	return c
}

func styleWidth(w, fallback float64) float64 {
	if w <= 0 {
		if fallback <= 0 {
			return 1
		}
		return fallback
	}
	return w
}
