package streamplot

import (
	"math"
	"testing"
)

func TestComputeBoundsSkipsHidden(t *testing.T) {
	hidden := NewSeries(Sample{X: -100, Y: -100}, Sample{X: 100, Y: 100})
	hidden.Visible = false
	shown := NewSeries(Sample{X: 0, Y: 0}, Sample{X: 10, Y: 5})
	b := ComputeBounds(map[string]*Series{"hidden": hidden, "shown": shown}, nil)
	if b.X.Min != 0 || b.X.Max != 10 || b.Y.Min != 0 || b.Y.Max != 5 {
		t.Fatalf("bounds %+v, want x [0,10] y [0,5]", b)
	}
}

func TestComputeBoundsVisibilityOverride(t *testing.T) {
	a := NewSeries(Sample{X: 0, Y: 0}, Sample{X: 1, Y: 1})
	b := NewSeries(Sample{X: 50, Y: 50})
	got := ComputeBounds(map[string]*Series{"a": a, "b": b}, map[string]bool{"b": true})
	if got.X.Max != 1 || got.Y.Max != 1 {
		t.Fatalf("override-hidden series leaked into bounds: %+v", got)
	}
}

func TestComputeBoundsSubtractsOffset(t *testing.T) {
	s := NewSeries(Sample{X: 10, Y: 4})
	s.Offset = Offset{X: 5, Y: 2}
	b := ComputeBounds(map[string]*Series{"s": s}, nil)
	if b.X.Min != 5 || b.X.Max != 5 || b.Y.Min != 2 || b.Y.Max != 2 {
		t.Fatalf("bounds %+v, want offset-adjusted point (5,2)", b)
	}
}

func TestComputeBoundsNoData(t *testing.T) {
	empty := NewSeries()
	b := ComputeBounds(map[string]*Series{"empty": empty}, nil)
	if !math.IsInf(b.X.Min, 1) || !math.IsInf(b.X.Max, -1) {
		t.Fatalf("expected infinite sentinel bounds, got %+v", b)
	}
	if b.Valid() {
		t.Fatalf("sentinel bounds must not be valid")
	}
}

func TestComputeBoundsUnion(t *testing.T) {
	a := NewSeries(Sample{X: -5, Y: 1}, Sample{X: 2, Y: 3})
	b := NewSeries(Sample{X: 0, Y: -4}, Sample{X: 9, Y: 2})
	got := ComputeBounds(map[string]*Series{"a": a, "b": b}, nil)
	if got.X.Min != -5 || got.X.Max != 9 || got.Y.Min != -4 || got.Y.Max != 3 {
		t.Fatalf("union bounds %+v", got)
	}
}
