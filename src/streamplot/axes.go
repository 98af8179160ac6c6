package streamplot

import "math"

// Approximate glyph width used to keep axis labels inside the surface; the
// raster backends draw with a small fixed-pitch face.
const labelGlyphWidth = 7

// drawGrid draws vertical gridlines at primary x ticks and horizontal
// gridlines at primary y ticks. Tick positions come from TickInterval (the
// interval-only algorithm), starting from a rounded multiple of the step.
func drawGrid(c Canvas, v *Viewport, g GridOptions) {
	if !g.Show {
		return
	}
	style := StrokeStyle{Color: g.Color, Width: g.Width}

	step := TickInterval(v.Bounds.X.Min, v.Bounds.X.Max)
	if step > 0 {
		start := gridStart(v.Bounds.X.Min, step)
		for x := start; x <= v.Bounds.X.Max; x += step {
			px := v.PixelX(x, 0)
			c.MoveTo(px, 0)
			c.LineTo(px, v.Height)
		}
		c.Stroke(style)
	}

	step = TickInterval(v.Bounds.Y.Min, v.Bounds.Y.Max)
	if step > 0 {
		start := gridStart(v.Bounds.Y.Min, step)
		for y := start; y <= v.Bounds.Y.Max; y += step {
			py := v.PixelY(y, 0)
			c.MoveTo(0, py)
			c.LineTo(v.Width, py)
		}
		c.Stroke(style)
	}
}

func gridStart(min, step float64) float64 {
	return math.Ceil(min/step) * step
}

// drawZeroAxes draws the x=0 and y=0 axis lines, each only when its pixel
// position falls inside the visible surface.
func drawZeroAxes(c Canvas, v *Viewport, a AxisOptions) {
	if !a.Show {
		return
	}
	style := StrokeStyle{Color: a.Color, Width: a.Width}
	drew := false
	if px := v.PixelX(0, 0); px >= 0 && px <= v.Width {
		c.MoveTo(px, 0)
		c.LineTo(px, v.Height)
		drew = true
	}
	if py := v.PixelY(0, 0); py >= 0 && py <= v.Height {
		c.MoveTo(0, py)
		c.LineTo(v.Width, py)
		drew = true
	}
	if drew {
		c.Stroke(style)
	}
}

// drawSecondaryAxis draws a series' own axis along each configured edge: a
// full-length edge line, tick marks from the nice-number ticker and numeric
// labels re-aligned near the corners so they never overflow the surface.
func drawSecondaryAxis(c Canvas, v *Viewport, s *Series) {
	ax := s.Axis
	if !ax.Visible || len(ax.Placements) == 0 {
		return
	}
	count := ax.TickCount
	if count < 2 {
		count = 5
	}
	tickLen := ax.TickLength
	if tickLen <= 0 {
		tickLen = 6
	}
	labelOff := ax.LabelOffset
	if labelOff <= 0 {
		labelOff = 4
	}
	style := StrokeStyle{Color: styleColor(ax.Color, s.Style.Color), Width: styleWidth(ax.Width, 1)}

	// Labels are emitted after each side's path is stroked so text never
	// interleaves with an open path.
	type label struct {
		text string
		x, y float64
	}

	for _, side := range ax.Placements {
		var labels []label
		switch side {
		case AxisLeft, AxisRight:
			edgeX := 0.0
			dir := 1.0
			if side == AxisRight {
				edgeX = v.Width
				dir = -1
			}
			c.MoveTo(edgeX, 0)
			c.LineTo(edgeX, v.Height)
			ticks, err := TickValues(v.Bounds.Y.Min, v.Bounds.Y.Max, count)
			if err != nil {
				break
			}
			for _, t := range ticks {
				if t < v.Bounds.Y.Min || t > v.Bounds.Y.Max {
					continue
				}
				py := v.PixelY(t, 0)
				c.MoveTo(edgeX, py)
				c.LineTo(edgeX+dir*tickLen, py)
				text := formatTick(t)
				lx := edgeX + dir*(tickLen+labelOff)
				if side == AxisRight {
					lx -= float64(len(text) * labelGlyphWidth)
				}
				labels = append(labels, label{text: text, x: clampLabelX(lx, text, v.Width), y: clampLabelY(py+4, v.Height)})
			}
		case AxisTop, AxisBottom:
			edgeY := 0.0
			dir := 1.0
			if side == AxisBottom {
				edgeY = v.Height
				dir = -1
			}
			c.MoveTo(0, edgeY)
			c.LineTo(v.Width, edgeY)
			ticks, err := TickValues(v.Bounds.X.Min, v.Bounds.X.Max, count)
			if err != nil {
				break
			}
			for _, t := range ticks {
				if t < v.Bounds.X.Min || t > v.Bounds.X.Max {
					continue
				}
				px := v.PixelX(t, 0)
				c.MoveTo(px, edgeY)
				c.LineTo(px, edgeY+dir*tickLen)
				text := formatTick(t)
				lx := px - float64(len(text)*labelGlyphWidth)/2
				ly := edgeY + dir*(tickLen+labelOff)
				if side == AxisTop {
					ly += 8
				}
				labels = append(labels, label{text: text, x: clampLabelX(lx, text, v.Width), y: clampLabelY(ly, v.Height)})
			}
		}
		c.Stroke(style)
		for _, l := range labels {
			c.Text(l.text, l.x, l.y, style.Color)
		}
	}
}

// clampLabelX keeps a label's estimated extent inside [0, width].
func clampLabelX(x float64, label string, width float64) float64 {
	w := float64(len(label) * labelGlyphWidth)
	if x < 2 {
		return 2
	}
	if x+w > width-2 {
		return width - 2 - w
	}
	return x
}

func clampLabelY(y, height float64) float64 {
	if y < 10 {
		return 10
	}
	if y > height-2 {
		return height - 2
	}
	return y
}
