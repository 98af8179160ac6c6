package streamplot

import "math"

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) span() float64 { return r.Max - r.Min }

// Bounds is the logical data rectangle currently mapped onto the surface.
type Bounds struct {
	X Range
	Y Range
	// FixedWindowSize clamps the x-range width while following; zero means
	// the window grows with the data.
	FixedWindowSize float64
}

// Valid reports whether both ranges are finite and non-inverted. The
// degenerate "no data" result of ComputeBounds (+Inf/-Inf) fails this check
// and callers fall back to the canvas pixel dimensions.
func (b Bounds) Valid() bool {
	for _, v := range []float64{b.X.Min, b.X.Max, b.Y.Min, b.Y.Max} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return b.X.Min <= b.X.Max && b.Y.Min <= b.Y.Max
}

// ComputeBounds derives the rectangle enclosing all eligible series: a series
// is skipped when its data is empty, its own Visible flag is false, or its
// key is hidden via the override map. Each series' null offset is subtracted
// before taking min/max and is not added back — bounds live in
// offset-adjusted space, and every draw path subtracts the offset again
// before mapping to pixels. With no eligible series the result is
// {+Inf, -Inf} on both axes.
func ComputeBounds(series map[string]*Series, hidden map[string]bool) Bounds {
	b := Bounds{
		X: Range{Min: math.Inf(1), Max: math.Inf(-1)},
		Y: Range{Min: math.Inf(1), Max: math.Inf(-1)},
	}
	for key, s := range series {
		if s == nil || len(s.Data) == 0 || !s.Visible || hidden[key] {
			continue
		}
		for _, p := range s.Data {
			x := p.X - s.Offset.X
			y := p.Y - s.Offset.Y
			if x < b.X.Min {
				b.X.Min = x
			}
			if x > b.X.Max {
				b.X.Max = x
			}
			if y < b.Y.Min {
				b.Y.Min = y
			}
			if y > b.Y.Max {
				b.Y.Max = y
			}
		}
	}
	return b
}
