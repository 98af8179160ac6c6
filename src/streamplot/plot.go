package streamplot

import (
	"sort"
	"sync"
)

// RenderMode selects whether mutating operations redraw implicitly.
type RenderMode string

const (
	// RenderAuto redraws after every mutating operation.
	RenderAuto RenderMode = "auto"
	// RenderManual requires an explicit Render call.
	RenderManual RenderMode = "manual"
)

// SizeFunc reports the current physical surface size in pixels. The host's
// container provides it; the engine queries it on every render.
type SizeFunc func() (w, h float64)

// InitialBounds supplies any subset of the starting bounds; missing fields
// are filled from the data (or the pixel dimensions when there is no data).
type InitialBounds struct {
	X               *Range
	Y               *Range
	FixedWindowSize float64
}

// DataPosition is the result of an inverse-transform query, for hover and
// tooltip use by the host.
type DataPosition struct {
	X       float64
	Y       float64
	ScaleX  float64
	ScaleY  float64
	Offsets map[string]Offset
}

// Plot owns the series map, the viewport and the recurring follow/retention
// tasks. All public operations are synchronous; usage errors are logged and
// the operation no-ops. A single mutex guards the series map and bounds
// because the recurring tasks run on their own goroutines.
type Plot struct {
	mu sync.Mutex

	canvas Canvas
	sizer  SizeFunc

	series map[string]*Series
	order  []string // draw order; insertion order of keys

	opts Options
	view Viewport

	renderMode RenderMode

	dragging    bool
	lastPointer Sample // authoritative last known pointer position, pixels
	pinchDist   float64

	following    bool
	followHandle *task

	retention map[string]*task

	onRender      []func()
	onFollowStart []func()
	onFollowStop  []func()
}

// New builds a plot over the given canvas and size provider. The initial
// series map is adopted as-is; keys are drawn in sorted order initially and
// series added later draw after them. Missing bounds fields fall back to the
// computed data bounds, or to the pixel dimensions when no series has data.
func New(canvas Canvas, size SizeFunc, series map[string]*Series, opts Options, initial *InitialBounds) *Plot {
	if series == nil {
		series = map[string]*Series{}
	}
	p := &Plot{
		canvas:     canvas,
		sizer:      size,
		series:     series,
		opts:       opts,
		renderMode: RenderAuto,
		retention:  map[string]*task{},
	}
	for key := range series {
		p.order = append(p.order, key)
	}
	sort.Strings(p.order)

	w, h := 0.0, 0.0
	if size != nil {
		w, h = size()
	}
	p.view.Width = w
	p.view.Height = h

	b := ComputeBounds(series, opts.HiddenSeries)
	if !b.Valid() {
		b = Bounds{X: Range{Min: 0, Max: w}, Y: Range{Min: 0, Max: h}}
	}
	if initial != nil {
		if initial.X != nil {
			b.X = *initial.X
		}
		if initial.Y != nil {
			b.Y = *initial.Y
		}
		b.FixedWindowSize = initial.FixedWindowSize
	}
	p.view.Bounds = b
	p.view.AspectCorrect()

	for key, s := range series {
		if s != nil && s.MaxDataLength > 0 {
			p.startRetentionLocked(key, s)
		}
	}
	return p
}

// Close cancels every recurring task owned by the plot.
func (p *Plot) Close() {
	p.mu.Lock()
	h := p.followHandle
	p.followHandle = nil
	p.following = false
	tasks := make([]*task, 0, len(p.retention))
	for key, t := range p.retention {
		tasks = append(tasks, t)
		delete(p.retention, key)
	}
	p.mu.Unlock()
	h.Stop()
	for _, t := range tasks {
		t.Stop()
	}
}

// OnRender registers a callback fired after every completed redraw. The
// callback must not call back into the plot.
func (p *Plot) OnRender(fn func()) {
	p.mu.Lock()
	p.onRender = append(p.onRender, fn)
	p.mu.Unlock()
}

// SetRenderMode switches between "auto" and "manual"; anything else is a
// usage error and leaves the mode unchanged.
func (p *Plot) SetRenderMode(mode string) {
	switch RenderMode(mode) {
	case RenderAuto, RenderManual:
		p.mu.Lock()
		p.renderMode = RenderMode(mode)
		p.mu.Unlock()
	default:
		warnf("setRenderMode: invalid mode %q (want %q or %q)", mode, RenderAuto, RenderManual)
	}
}

// Render redraws explicitly, regardless of render mode.
func (p *Plot) Render() {
	p.mu.Lock()
	cbs := p.renderAndCallbacksLocked()
	p.mu.Unlock()
	fire(cbs)
}

// SetSeries adds or replaces a series under key; new keys append to the draw
// order. A nil series removes the key and cancels its retention task.
func (p *Plot) SetSeries(key string, s *Series) {
	p.mu.Lock()
	if s == nil {
		if _, ok := p.series[key]; !ok {
			p.mu.Unlock()
			warnf("setSeries: unknown series %q", key)
			return
		}
		delete(p.series, key)
		for i, k := range p.order {
			if k == key {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
		h := p.retention[key]
		delete(p.retention, key)
		cbs := p.maybeRenderLocked()
		p.mu.Unlock()
		h.Stop()
		fire(cbs)
		return
	}
	if _, ok := p.series[key]; !ok {
		p.order = append(p.order, key)
	}
	p.series[key] = s
	old := p.retention[key]
	delete(p.retention, key)
	if s.MaxDataLength > 0 {
		p.startRetentionLocked(key, s)
	}
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	old.Stop()
	fire(cbs)
}

// UpdateSeries applies fn to a copy of the series and swaps the copy in, so a
// render triggered between field writes never sees a torn record. Unknown
// keys are a usage error.
func (p *Plot) UpdateSeries(key string, fn func(*Series)) {
	p.mu.Lock()
	s, ok := p.series[key]
	if !ok {
		p.mu.Unlock()
		warnf("updateSeries: unknown series %q", key)
		return
	}
	c := s.clone()
	fn(c)
	p.series[key] = c
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// Append adds samples to a series, the common streaming path.
func (p *Plot) Append(key string, samples ...Sample) {
	p.UpdateSeries(key, func(s *Series) {
		s.Data = append(s.Data, samples...)
	})
}

// UpdateOptions shallow-merges a patch: each non-nil top-level section
// replaces the current one wholesale.
func (p *Plot) UpdateOptions(patch OptionsPatch) {
	p.mu.Lock()
	p.opts.apply(patch)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// Options returns a copy of the current configuration.
func (p *Plot) Options() Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts
}

// Bounds returns a copy of the current bounds rectangle.
func (p *Plot) Bounds() Bounds {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.Bounds
}

// SetBounds replaces the bounds rectangle explicitly.
func (p *Plot) SetBounds(b Bounds) {
	p.mu.Lock()
	p.view.Bounds = b
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// FitToView recomputes bounds from the visible data and aspect-corrects,
// falling back to pixel bounds when there is no data.
func (p *Plot) FitToView() {
	p.mu.Lock()
	p.fitLocked()
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// ResetView restores the auto-fitted view; identical effect to FitToView.
func (p *Plot) ResetView() { p.FitToView() }

func (p *Plot) fitLocked() {
	fw := p.view.Bounds.FixedWindowSize
	b := ComputeBounds(p.series, p.opts.HiddenSeries)
	if !b.Valid() {
		b = Bounds{X: Range{Min: 0, Max: p.view.Width}, Y: Range{Min: 0, Max: p.view.Height}}
	}
	b.FixedWindowSize = fw
	p.view.Bounds = b
	p.view.AspectCorrect()
}

// FocusOnPoint recenters the view on one sample of a series (index -1 means
// the latest, greatest-x, sample), scaling the current range by zoomFactor
// (1 keeps the zoom level). Unknown keys and out-of-range indexes are usage
// errors.
func (p *Plot) FocusOnPoint(key string, index int, zoomFactor float64) {
	p.mu.Lock()
	s, ok := p.series[key]
	if !ok {
		p.mu.Unlock()
		warnf("focusOnPoint: unknown series %q", key)
		return
	}
	var pt Sample
	if index < 0 {
		latest, ok := s.latest()
		if !ok {
			p.mu.Unlock()
			warnf("focusOnPoint: series %q has no data", key)
			return
		}
		pt = latest
	} else {
		if index >= len(s.Data) {
			p.mu.Unlock()
			warnf("focusOnPoint: index %d out of range for series %q (len %d)", index, key, len(s.Data))
			return
		}
		pt = s.Data[index]
	}
	// Bounds live in offset-adjusted space.
	p.view.FocusOn(Sample{X: pt.X - s.Offset.X, Y: pt.Y - s.Offset.Y}, zoomFactor)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// Resize updates the physical size and re-aspects the bounds.
func (p *Plot) Resize(w, h float64) {
	p.mu.Lock()
	p.view.Resize(w, h)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// QueryDataPosition inverse-maps a pixel position into data space, returning
// the point, the current scale and every series' null offset so the host can
// resolve per-series positions. ok is false while bounds are degenerate.
func (p *Plot) QueryDataPosition(px, py float64) (DataPosition, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.view.degenerate() {
		return DataPosition{}, false
	}
	pt := p.view.DataAt(px, py)
	sx, sy := p.view.Scale()
	offs := make(map[string]Offset, len(p.series))
	for key, s := range p.series {
		offs[key] = s.Offset
	}
	return DataPosition{X: pt.X, Y: pt.Y, ScaleX: sx, ScaleY: sy, Offsets: offs}, true
}

// renderAndCallbacksLocked redraws unconditionally; maybeRenderLocked honors
// the render mode. Both return the callbacks to fire after unlock.
func (p *Plot) renderAndCallbacksLocked() []func() {
	if !p.renderLocked() {
		return nil
	}
	return append([]func(){}, p.onRender...)
}

func (p *Plot) maybeRenderLocked() []func() {
	if p.renderMode != RenderAuto {
		return nil
	}
	return p.renderAndCallbacksLocked()
}

// renderLocked runs the full pipeline: size, bounds, axes, then each visible
// series in draw order. Returns false when the pass was skipped.
func (p *Plot) renderLocked() bool {
	if p.canvas == nil {
		return false
	}
	if p.sizer != nil {
		if w, h := p.sizer(); w > 0 && h > 0 && (w != p.view.Width || h != p.view.Height) {
			p.view.Resize(w, h)
		}
	}
	if p.opts.NormalizeBounds || !p.view.Bounds.Valid() {
		p.fitLocked()
	}
	if p.view.degenerate() {
		debugf("render skipped: degenerate bounds x=[%g,%g] y=[%g,%g]",
			p.view.Bounds.X.Min, p.view.Bounds.X.Max, p.view.Bounds.Y.Min, p.view.Bounds.Y.Max)
		return false
	}
	p.canvas.Clear()
	drawGrid(p.canvas, &p.view, p.opts.Grid)
	drawZeroAxes(p.canvas, &p.view, p.opts.Axis)
	for _, key := range p.order {
		s := p.series[key]
		if s == nil || !s.Visible || p.opts.HiddenSeries[key] {
			continue
		}
		drawSecondaryAxis(p.canvas, &p.view, s)
	}
	for _, key := range p.order {
		s := p.series[key]
		if s == nil || !s.Visible || p.opts.HiddenSeries[key] {
			continue
		}
		drawSeries(p.canvas, &p.view, s, p.opts.Step)
	}
	return true
}

func fire(cbs []func()) {
	for _, fn := range cbs {
		fn()
	}
}
