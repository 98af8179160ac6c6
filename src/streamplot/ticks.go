package streamplot

import (
	"fmt"
	"math"
)

// NiceNumber returns a value of the form f*10^e with f in {1, 2, 5, 10} close
// to rng. With round=true the nearest member is picked (thresholds 1.5, 3, 7);
// with round=false the smallest member not below the fraction is picked, which
// yields a spacing that never exceeds the actual range.
func NiceNumber(rng float64, round bool) float64 {
	exp := math.Floor(math.Log10(rng))
	frac := rng / math.Pow(10, exp)
	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// TickValues computes tick positions for [min, max] using the nice-number
// scheme: a raw spacing from the full range, a tick spacing near
// range/(tickCount-1), then every multiple of that spacing from
// floor(min/d)*d to ceil(max/d)*d inclusive. tickCount below 2 is a usage
// error (the spacing denominator would be zero).
func TickValues(min, max float64, tickCount int) ([]float64, error) {
	if tickCount < 2 {
		return nil, fmt.Errorf("tick values: tickCount must be >= 2, got %d", tickCount)
	}
	raw := NiceNumber(max-min, false)
	d := NiceNumber(raw/float64(tickCount-1), true)
	lo := math.Floor(min/d) * d
	hi := math.Ceil(max/d) * d
	var out []float64
	for v := lo; v <= hi+d/2; v += d {
		out = append(out, v)
	}
	return out, nil
}

// TickInterval is the simpler interval-only algorithm used by the primary
// axes: divide the range by ten and snap up to the smallest of {1, 2, 5, 10}
// times the order of magnitude that exceeds the rough size. It rounds
// differently from NiceNumber (strict snap-up versus nearest neighbor) and is
// kept separate on purpose.
func TickInterval(min, max float64) float64 {
	rough := (max - min) / 10
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	for _, f := range []float64{1, 2, 5, 10} {
		if f*mag >= rough {
			return f * mag
		}
	}
	return 10 * mag
}

// formatTick provides a compact numeric label.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
