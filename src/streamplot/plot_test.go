package streamplot

import (
	"testing"
	"time"
)

func TestNewFallsBackToPixelBounds(t *testing.T) {
	p, _ := newTestPlot(nil, nil)
	defer p.Close()
	b := p.Bounds()
	if b.X.Min != 0 || b.X.Max != 100 || b.Y.Min != 0 || b.Y.Max != 100 {
		t.Fatalf("empty plot bounds %+v, want pixel rectangle 0..100", b)
	}
}

func TestNewDrawsSortedThenAppended(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"zeta": rampSeries(2), "alpha": rampSeries(2)}, nil)
	defer p.Close()
	p.SetSeries("middle", rampSeries(2))
	p.mu.Lock()
	order := append([]string{}, p.order...)
	p.mu.Unlock()
	want := []string{"alpha", "zeta", "middle"}
	for i, k := range want {
		if order[i] != k {
			t.Fatalf("draw order %v, want %v", order, want)
		}
	}
}

func TestUpdateOptionsReplacesSectionWholesale(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	p.UpdateOptions(OptionsPatch{Follow: &FollowOptions{JumpOffsetX: 5}})
	o := p.Options()
	if o.Follow.JumpOffsetX != 5 {
		t.Fatalf("patched JumpOffsetX %v, want 5", o.Follow.JumpOffsetX)
	}
	// Whole section replaced: the default interval and y policy are gone.
	if o.Follow.Interval != 0 || o.Follow.AdjustY != "" {
		t.Fatalf("patch merged instead of replacing: %+v", o.Follow)
	}
	// Untouched sections survive.
	if !o.Axis.Show || o.Step != 1 {
		t.Fatalf("unrelated sections changed: axis=%+v step=%v", o.Axis, o.Step)
	}
}

func TestRenderModes(t *testing.T) {
	p, c := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()

	before := c.count("clear")
	p.Append("s", Sample{X: 3, Y: 3})
	if c.count("clear") != before+1 {
		t.Fatalf("auto mode did not redraw on append")
	}

	p.SetRenderMode("manual")
	before = c.count("clear")
	p.Append("s", Sample{X: 4, Y: 4})
	if c.count("clear") != before {
		t.Fatalf("manual mode redrew implicitly")
	}
	p.Render()
	if c.count("clear") != before+1 {
		t.Fatalf("explicit Render did not redraw in manual mode")
	}
}

func TestSetRenderModeRejectsUnknown(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	p.SetRenderMode("manual")
	p.SetRenderMode("sometimes")
	p.mu.Lock()
	mode := p.renderMode
	p.mu.Unlock()
	if mode != RenderManual {
		t.Fatalf("invalid mode changed state to %q", mode)
	}
}

func TestUpdateSeriesUnknownKeyIsNoop(t *testing.T) {
	p, c := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	before := c.count("clear")
	called := false
	p.UpdateSeries("nope", func(s *Series) { called = true })
	if called {
		t.Fatalf("mutator ran for an unknown series")
	}
	if c.count("clear") != before {
		t.Fatalf("unknown-key update triggered a redraw")
	}
}

func TestUpdateSeriesSwapsCopy(t *testing.T) {
	orig := rampSeries(3)
	p, _ := newTestPlot(map[string]*Series{"s": orig}, nil)
	defer p.Close()
	p.UpdateSeries("s", func(s *Series) { s.Style.LineWidth = 7 })
	p.mu.Lock()
	cur := p.series["s"]
	p.mu.Unlock()
	if cur == orig {
		t.Fatalf("update mutated the stored record in place")
	}
	if orig.Style.LineWidth == 7 {
		t.Fatalf("original record was written through")
	}
	if cur.Style.LineWidth != 7 {
		t.Fatalf("mutation lost: width %v", cur.Style.LineWidth)
	}
}

func TestSetSeriesNilRemoves(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"a": rampSeries(3), "b": rampSeries(3)}, nil)
	defer p.Close()
	p.SetSeriesDiscardOptions("a", DiscardOptions{MaxDataLength: 2, Interval: time.Hour})
	p.mu.Lock()
	h := p.retention["a"]
	p.mu.Unlock()

	p.SetSeries("a", nil)
	p.mu.Lock()
	_, exists := p.series["a"]
	order := append([]string{}, p.order...)
	p.mu.Unlock()
	if exists {
		t.Fatalf("nil SetSeries left the series in place")
	}
	if len(order) != 1 || order[0] != "b" {
		t.Fatalf("draw order after removal: %v", order)
	}
	select {
	case <-h.stopc:
	default:
		t.Fatalf("removal left the retention task running")
	}
}

func TestQueryDataPosition(t *testing.T) {
	s := rampSeries(3)
	s.Offset = Offset{X: 2, Y: -1}
	p, _ := newTestPlot(
		map[string]*Series{"s": s},
		&InitialBounds{X: &Range{Min: 0, Max: 100}, Y: &Range{Min: 0, Max: 100}},
	)
	defer p.Close()

	pos, ok := p.QueryDataPosition(50, 50)
	if !ok {
		t.Fatalf("query failed on valid bounds")
	}
	if !approx(pos.X, 50) || !approx(pos.Y, 50) {
		t.Fatalf("center pixel maps to (%v,%v), want (50,50)", pos.X, pos.Y)
	}
	if !approx(pos.ScaleX, 1) || !approx(pos.ScaleY, 1) {
		t.Fatalf("scale (%v,%v), want (1,1)", pos.ScaleX, pos.ScaleY)
	}
	off, ok := pos.Offsets["s"]
	if !ok || off.X != 2 || off.Y != -1 {
		t.Fatalf("offsets %+v, want s:{2,-1}", pos.Offsets)
	}
}

func TestQueryDataPositionDegenerate(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	p.SetRenderMode("manual")
	p.SetBounds(Bounds{X: Range{Min: 5, Max: 5}, Y: Range{Min: 0, Max: 10}})
	if _, ok := p.QueryDataPosition(50, 50); ok {
		t.Fatalf("query succeeded on a zero-width range")
	}
}

func TestRenderSkipsDegenerateBounds(t *testing.T) {
	p, c := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	p.SetRenderMode("manual")
	p.SetBounds(Bounds{X: Range{Min: 5, Max: 5}, Y: Range{Min: 0, Max: 10}})
	before := c.count("clear")
	p.Render()
	if c.count("clear") != before {
		t.Fatalf("degenerate bounds still cleared the surface")
	}
}

func TestOnRenderFiresAfterRedraw(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"s": rampSeries(3)}, nil)
	defer p.Close()
	fired := 0
	p.OnRender(func() { fired++ })
	p.Render()
	if fired != 1 {
		t.Fatalf("render callback fired %d times, want 1", fired)
	}
	p.Append("s", Sample{X: 3, Y: 0})
	if fired != 2 {
		t.Fatalf("auto redraw did not notify: fired=%d", fired)
	}
}

func TestFocusOnPointLatest(t *testing.T) {
	p, _ := newTestPlot(
		map[string]*Series{"s": rampSeries(51)},
		&InitialBounds{X: &Range{Min: 0, Max: 10}, Y: &Range{Min: 0, Max: 10}},
	)
	defer p.Close()
	p.FocusOnPoint("s", -1, 1)
	b := p.Bounds()
	cx := (b.X.Min + b.X.Max) / 2
	cy := (b.Y.Min + b.Y.Max) / 2
	// Latest sample is x=50, y=50%7=1.
	if !approx(cx, 50) || !approx(cy, 1) {
		t.Fatalf("focused center (%v,%v), want (50,1)", cx, cy)
	}
	if !approx(b.X.Max-b.X.Min, 10) {
		t.Fatalf("focus at factor 1 changed the span: %v", b.X.Max-b.X.Min)
	}
}

func TestFocusOnPointSubtractsOffset(t *testing.T) {
	s := rampSeries(3)
	s.Offset = Offset{X: 100, Y: 10}
	p, _ := newTestPlot(
		map[string]*Series{"s": s},
		&InitialBounds{X: &Range{Min: 0, Max: 10}, Y: &Range{Min: 0, Max: 10}},
	)
	defer p.Close()
	p.FocusOnPoint("s", 2, 1)
	b := p.Bounds()
	// Sample (2,2) in offset-adjusted space is (-98,-8).
	if cx := (b.X.Min + b.X.Max) / 2; !approx(cx, -98) {
		t.Fatalf("focused x center %v, want -98", cx)
	}
	if cy := (b.Y.Min + b.Y.Max) / 2; !approx(cy, -8) {
		t.Fatalf("focused y center %v, want -8", cy)
	}
}

func TestFocusOnPointRejectsBadIndex(t *testing.T) {
	p, _ := newTestPlot(
		map[string]*Series{"s": rampSeries(3)},
		&InitialBounds{X: &Range{Min: 0, Max: 10}, Y: &Range{Min: 0, Max: 10}},
	)
	defer p.Close()
	before := p.Bounds()
	p.FocusOnPoint("s", 99, 1)
	p.FocusOnPoint("nope", 0, 1)
	if after := p.Bounds(); after != before {
		t.Fatalf("usage error moved the view: %+v -> %+v", before, after)
	}
}

func TestNormalizeBoundsRefitsEveryRender(t *testing.T) {
	p, _ := newTestPlot(map[string]*Series{"s": rampSeries(11)}, nil)
	defer p.Close()
	norm := true
	p.UpdateOptions(OptionsPatch{NormalizeBounds: &norm})
	p.Append("s", Sample{X: 40, Y: 3})
	b := p.Bounds()
	if b.X.Max < 40 {
		t.Fatalf("normalized bounds did not expand to the new sample: %+v", b)
	}
}
