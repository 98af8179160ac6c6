package streamplot

// Viewport owns the current logical bounds and the physical surface size, and
// provides the bidirectional mapping between data coordinates and surface
// pixels. Pixel y grows downward while data y grows upward, so the y mapping
// is flipped.
type Viewport struct {
	Bounds Bounds
	Width  float64
	Height float64
}

// Scale returns pixels per data unit on each axis. Callers must guard
// against zero-range bounds before dividing by the result.
func (v *Viewport) Scale() (sx, sy float64) {
	return v.Width / v.Bounds.X.span(), v.Height / v.Bounds.Y.span()
}

// degenerate reports whether either axis range is exactly zero, in which
// case the whole draw pass is skipped.
func (v *Viewport) degenerate() bool {
	return v.Bounds.X.span() == 0 || v.Bounds.Y.span() == 0 || !v.Bounds.Valid()
}

// PixelX maps a data x (with the owning series' null offset) to a pixel
// column.
func (v *Viewport) PixelX(dataX, offX float64) float64 {
	sx, _ := v.Scale()
	return (dataX - offX - v.Bounds.X.Min) * sx
}

// PixelY maps a data y to a pixel row (flipped).
func (v *Viewport) PixelY(dataY, offY float64) float64 {
	_, sy := v.Scale()
	return v.Height - (dataY-offY-v.Bounds.Y.Min)*sy
}

// DataAt is the inverse mapping from surface pixels to offset-adjusted data
// space.
func (v *Viewport) DataAt(px, py float64) Sample {
	sx, sy := v.Scale()
	return Sample{
		X: v.Bounds.X.Min + px/sx,
		Y: v.Bounds.Y.Min + (v.Height-py)/sy,
	}
}

// Resize sets the physical size and re-aspects the bounds so data never
// appears stretched: the axis that is too narrow for the new width/height
// ratio is expanded about the bounds' center, preserving the larger of the
// two implied ranges.
func (v *Viewport) Resize(w, h float64) {
	v.Width = w
	v.Height = h
	v.AspectCorrect()
}

// AspectCorrect expands one axis range so the bounds' aspect ratio matches
// the surface's, recentered on the previous center.
func (v *Viewport) AspectCorrect() {
	if v.Width <= 0 || v.Height <= 0 || !v.Bounds.Valid() {
		return
	}
	rx := v.Bounds.X.span()
	ry := v.Bounds.Y.span()
	if rx <= 0 || ry <= 0 {
		return
	}
	aspect := v.Width / v.Height
	if rx < ry*aspect {
		cx := (v.Bounds.X.Min + v.Bounds.X.Max) / 2
		half := ry * aspect / 2
		v.Bounds.X = Range{Min: cx - half, Max: cx + half}
	} else if ry < rx/aspect {
		cy := (v.Bounds.Y.Min + v.Bounds.Y.Max) / 2
		half := rx / aspect / 2
		v.Bounds.Y = Range{Min: cy - half, Max: cy + half}
	}
}

// Pan translates the bounds by a pixel delta, preserving range widths. The
// x data delta is inverted versus the pixel delta (dragging right moves the
// window left) and y is inverted again by the flipped pixel axis.
func (v *Viewport) Pan(dpx, dpy float64) {
	if v.degenerate() {
		return
	}
	sx, sy := v.Scale()
	dx := -dpx / sx
	dy := dpy / sy
	v.Bounds.X.Min += dx
	v.Bounds.X.Max += dx
	v.Bounds.Y.Min += dy
	v.Bounds.Y.Max += dy
}

// Zoom scales both axis ranges about the data point under the given pixel
// focus, so that point keeps its pixel position. factor > 1 zooms out,
// factor < 1 zooms in.
func (v *Viewport) Zoom(px, py, factor float64) {
	if v.degenerate() || factor <= 0 {
		return
	}
	f := v.DataAt(px, py)
	v.Bounds.X.Min = f.X - (f.X-v.Bounds.X.Min)*factor
	v.Bounds.X.Max = f.X + (v.Bounds.X.Max-f.X)*factor
	v.Bounds.Y.Min = f.Y - (f.Y-v.Bounds.Y.Min)*factor
	v.Bounds.Y.Max = f.Y + (v.Bounds.Y.Max-f.Y)*factor
}

// FocusOn recenters the bounds on the given data point, scaling the current
// range widths by zoomFactor (1 keeps the zoom level, recenter only).
func (v *Viewport) FocusOn(p Sample, zoomFactor float64) {
	if !v.Bounds.Valid() || zoomFactor <= 0 {
		return
	}
	hx := v.Bounds.X.span() * zoomFactor / 2
	hy := v.Bounds.Y.span() * zoomFactor / 2
	v.Bounds.X = Range{Min: p.X - hx, Max: p.X + hx}
	v.Bounds.Y = Range{Min: p.Y - hy, Max: p.Y + hy}
}
