package streamplot

import "github.com/wcharczuk/go-chart/v2/drawing"

// StrokeStyle styles a path stroke.
type StrokeStyle struct {
	Color drawing.Color
	Width float64
}

// Canvas is the immediate-mode drawing surface the engine renders onto. The
// engine only produces these geometry and styling calls; rasterization is the
// host's concern. Path state: MoveTo begins a new subpath, Stroke/Fill
// consume and reset the accumulated path.
type Canvas interface {
	// Clear resets the surface to its background.
	Clear()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Stroke draws the accumulated path outline and resets the path.
	Stroke(s StrokeStyle)
	// Fill fills the accumulated path and resets it.
	Fill(c drawing.Color)

	// Circle draws a filled circle, independent of the current path.
	Circle(x, y, r float64, c drawing.Color)
	// Rect fills an axis-aligned rectangle.
	Rect(x, y, w, h float64, c drawing.Color)
	// GradientRect fills an axis-aligned rectangle with a vertical blend
	// from top at its upper edge to bottom at its lower edge.
	GradientRect(x, y, w, h float64, top, bottom drawing.Color)
	// Text draws a label with its baseline-left anchor at (x, y).
	Text(s string, x, y float64, c drawing.Color)
}

// lerpColor blends two colors component-wise, t in [0, 1].
func lerpColor(a, b drawing.Color, t float64) drawing.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return drawing.Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
