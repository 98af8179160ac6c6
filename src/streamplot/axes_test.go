package streamplot

import "testing"

func TestDrawGridLineCounts(t *testing.T) {
	c := &recorderCanvas{}
	v := &Viewport{
		Bounds: Bounds{X: Range{Min: 0, Max: 100}, Y: Range{Min: 0, Max: 100}},
		Width:  500,
		Height: 500,
	}
	drawGrid(c, v, GridOptions{Show: true, Width: 1})
	// TickInterval(0,100) = 10: eleven lines per axis, one stroke per axis.
	if got := c.count("moveto"); got != 22 {
		t.Fatalf("gridline segments = %d, want 22", got)
	}
	if got := c.count("stroke"); got != 2 {
		t.Fatalf("grid strokes = %d, want 2", got)
	}
}

func TestDrawGridDisabled(t *testing.T) {
	c := &recorderCanvas{}
	v := &Viewport{Bounds: Bounds{X: Range{Min: 0, Max: 1}, Y: Range{Min: 0, Max: 1}}, Width: 100, Height: 100}
	drawGrid(c, v, GridOptions{Show: false})
	if len(c.ops) != 0 {
		t.Fatalf("disabled grid drew %d ops", len(c.ops))
	}
}

func TestZeroAxesOnlyWhenVisible(t *testing.T) {
	// x=0 is left of the viewport; only the horizontal y=0 line should draw.
	c := &recorderCanvas{}
	v := &Viewport{
		Bounds: Bounds{X: Range{Min: 1, Max: 10}, Y: Range{Min: -5, Max: 5}},
		Width:  100,
		Height: 100,
	}
	drawZeroAxes(c, v, AxisOptions{Show: true, Width: 1})
	if got := c.count("moveto"); got != 1 {
		t.Fatalf("axis segments = %d, want 1 (y=0 only)", got)
	}

	// Both axes inside the viewport.
	c = &recorderCanvas{}
	v.Bounds.X = Range{Min: -5, Max: 5}
	drawZeroAxes(c, v, AxisOptions{Show: true, Width: 1})
	if got := c.count("moveto"); got != 2 {
		t.Fatalf("axis segments = %d, want 2", got)
	}

	// Neither axis inside.
	c = &recorderCanvas{}
	v.Bounds = Bounds{X: Range{Min: 1, Max: 10}, Y: Range{Min: 1, Max: 10}}
	drawZeroAxes(c, v, AxisOptions{Show: true, Width: 1})
	if len(c.ops) != 0 {
		t.Fatalf("axes drawn outside viewport: %d ops", len(c.ops))
	}
}

func TestSecondaryAxisTicksAndLabels(t *testing.T) {
	c := &recorderCanvas{}
	v := &Viewport{
		Bounds: Bounds{X: Range{Min: 0, Max: 100}, Y: Range{Min: 0, Max: 50}},
		Width:  300,
		Height: 200,
	}
	s := NewSeries(Sample{0, 0})
	s.Axis = SecondaryAxis{Visible: true, Placements: []AxisSide{AxisLeft, AxisBottom}}
	drawSecondaryAxis(c, v, s)
	if got := c.count("stroke"); got != 2 {
		t.Fatalf("secondary axis strokes = %d, want 2 (one per side)", got)
	}
	if got := c.count("text"); got == 0 {
		t.Fatalf("secondary axis produced no labels")
	}
	for _, op := range c.ops {
		if op.kind != "text" {
			continue
		}
		if op.x < 0 || op.x > v.Width || op.y < 0 || op.y > v.Height {
			t.Fatalf("label %q escapes surface at (%v,%v)", op.text, op.x, op.y)
		}
	}
}

func TestSecondaryAxisHiddenWithoutPlacement(t *testing.T) {
	c := &recorderCanvas{}
	v := &Viewport{Bounds: Bounds{X: Range{Min: 0, Max: 1}, Y: Range{Min: 0, Max: 1}}, Width: 100, Height: 100}
	s := NewSeries(Sample{0, 0})
	s.Axis.Visible = true // no placements
	drawSecondaryAxis(c, v, s)
	if len(c.ops) != 0 {
		t.Fatalf("axis without placements drew %d ops", len(c.ops))
	}
}

func TestClampLabelX(t *testing.T) {
	if got := clampLabelX(-10, "100", 200); got != 2 {
		t.Fatalf("left clamp = %v, want 2", got)
	}
	if got := clampLabelX(195, "100", 200); got != 200-2-21 {
		t.Fatalf("right clamp = %v, want %v", got, 200-2-21)
	}
	if got := clampLabelX(50, "100", 200); got != 50 {
		t.Fatalf("in-range label moved to %v", got)
	}
}
