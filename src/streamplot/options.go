package streamplot

import (
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// YAdjust selects how the follow tick treats the y bounds.
type YAdjust string

const (
	// YKeep leaves the y bounds untouched while following.
	YKeep YAdjust = "keep"
	// YAuto resets the y bounds to the freshly computed data range on every
	// follow tick.
	YAuto YAdjust = "auto"
)

// AxisOptions styles the primary zero-axis lines.
type AxisOptions struct {
	Show  bool
	Color drawing.Color
	Width float64
}

// GridOptions styles the primary gridlines.
type GridOptions struct {
	Show  bool
	Color drawing.Color
	Width float64
}

// FollowOptions configures the follow-latest policy.
type FollowOptions struct {
	// Interval between follow ticks. Zero means the 1s default.
	Interval time.Duration
	// JumpOffsetX is added to the freshest data x when advancing x.max, so
	// incoming samples land slightly inside the right edge.
	JumpOffsetX float64
	AdjustY     YAdjust
	// DisableOnInteraction pauses following during a drag or wheel gesture
	// and always re-engages it when the gesture ends, whatever state the
	// controller was in before.
	DisableOnInteraction bool
}

// Options is the per-plot configuration aggregate.
type Options struct {
	Axis   AxisOptions
	Grid   GridOptions
	Follow FollowOptions
	// Step is the default sampling step multiplier for function lines
	// (1 = one sample per pixel column).
	Step float64
	// HiddenSeries hides series by key without touching their own Visible
	// flag (plot-local visibility override).
	HiddenSeries map[string]bool
	// NormalizeBounds recomputes bounds from the data on every render.
	NormalizeBounds bool
}

// DefaultOptions returns the settings a zero-config plot runs with.
func DefaultOptions() Options {
	return Options{
		Axis: AxisOptions{
			Show:  true,
			Color: drawing.Color{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
			Width: 1,
		},
		Grid: GridOptions{
			Show:  true,
			Color: drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
			Width: 1,
		},
		Follow: FollowOptions{
			Interval: time.Second,
			AdjustY:  YKeep,
		},
		Step: 1,
	}
}

// OptionsPatch is a shallow update: each non-nil section replaces the
// existing section wholesale. There is deliberately no deep merge; callers
// that want to tweak one field of a section must supply the whole section
// ("last update wins per top-level section").
type OptionsPatch struct {
	Axis            *AxisOptions
	Grid            *GridOptions
	Follow          *FollowOptions
	Step            *float64
	HiddenSeries    map[string]bool
	NormalizeBounds *bool
}

func (o *Options) apply(p OptionsPatch) {
	if p.Axis != nil {
		o.Axis = *p.Axis
	}
	if p.Grid != nil {
		o.Grid = *p.Grid
	}
	if p.Follow != nil {
		o.Follow = *p.Follow
	}
	if p.Step != nil {
		o.Step = *p.Step
	}
	if p.HiddenSeries != nil {
		o.HiddenSeries = p.HiddenSeries
	}
	if p.NormalizeBounds != nil {
		o.NormalizeBounds = *p.NormalizeBounds
	}
}
