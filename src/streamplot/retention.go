package streamplot

import "time"

// DiscardOptions configures per-series retention: keep at most MaxDataLength
// samples, checked every Interval (zero means the 1s default, negative
// disables the task outright).
type DiscardOptions struct {
	MaxDataLength int
	Interval      time.Duration
}

// SetSeriesDiscardOptions reconfigures a series' retention policy. The
// existing recurring task is cancelled and a new one established atomically;
// the first configuration also starts a task immediately. Unknown keys are a
// usage error.
func (p *Plot) SetSeriesDiscardOptions(key string, opts DiscardOptions) {
	p.mu.Lock()
	s, ok := p.series[key]
	if !ok {
		p.mu.Unlock()
		warnf("setSeriesDiscardOptions: unknown series %q", key)
		return
	}
	c := s.clone()
	c.MaxDataLength = opts.MaxDataLength
	c.DiscardInterval = opts.Interval
	p.series[key] = c

	old := p.retention[key]
	delete(p.retention, key)
	if c.MaxDataLength > 0 && opts.Interval >= 0 {
		p.startRetentionLocked(key, c)
	}
	p.mu.Unlock()
	old.Stop()
}

// startRetentionLocked establishes the recurring eviction task for a series.
// Caller holds the lock and has already cleared any previous handle.
func (p *Plot) startRetentionLocked(key string, s *Series) {
	interval := s.DiscardInterval
	if interval == 0 {
		interval = time.Second
	}
	if interval < 0 {
		return
	}
	p.retention[key] = startTask(interval, func() { p.discardTick(key) })
}

// discardTick truncates a series to its newest MaxDataLength samples. The
// slice is replaced by value, never trimmed in place, so a concurrent render
// sees either the old or the new record.
func (p *Plot) discardTick(key string) {
	p.mu.Lock()
	s, ok := p.series[key]
	if !ok || s.MaxDataLength <= 0 || len(s.Data) <= s.MaxDataLength {
		p.mu.Unlock()
		return
	}
	c := s.clone()
	kept := make([]Sample, s.MaxDataLength)
	copy(kept, s.Data[len(s.Data)-s.MaxDataLength:])
	c.Data = kept
	p.series[key] = c
	debugf("retention: series %q truncated to %d samples", key, s.MaxDataLength)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}
