package uihelpers

import (
	"math"
	"strconv"
)

// ComputeCanvasDimensions applies the width/height clamp rules used for the
// plot surface. Input: desired raw width (e.g., window width). Returns clamped
// width & height.
func ComputeCanvasDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.6)
	if h < 360 {
		h = 360
	}
	if h > 900 {
		h = 900
	}
	return w, h
}

// ZoomFactorForScroll maps a wheel delta to a zoom factor: scrolling up
// (positive dy) zooms in, down zooms out, one notch per event.
func ZoomFactorForScroll(dy float32) float64 {
	if dy > 0 {
		return 1.0 / 1.15
	}
	if dy < 0 {
		return 1.15
	}
	return 1.0
}

// ClampRetain steps the retained-sample count by delta and clamps it to a
// usable range.
func ClampRetain(n, delta int) int {
	n += delta
	if n < 500 {
		n = 500
	}
	if n > 20000 {
		n = 20000
	}
	return n
}

// FormatCoord provides a compact label for a data coordinate, more digits as
// magnitude shrinks.
func FormatCoord(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}
