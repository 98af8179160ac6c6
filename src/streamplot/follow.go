package streamplot

import "time"

// StartFollowingLatest engages the follow policy: a recurring tick advances
// the viewport to track the newest data. Idempotent; the start observers fire
// exactly once per Idle -> Following transition, synchronously.
func (p *Plot) StartFollowingLatest() {
	p.mu.Lock()
	if p.following {
		p.mu.Unlock()
		return
	}
	p.following = true
	interval := p.opts.Follow.Interval
	if interval <= 0 {
		interval = time.Second
	}
	p.followHandle = startTask(interval, p.followTick)
	cbs := append([]func(){}, p.onFollowStart...)
	p.mu.Unlock()
	fire(cbs)
}

// StopFollowingLatest cancels the recurring tick. Idempotent; stop observers
// fire exactly once per Following -> Idle transition.
func (p *Plot) StopFollowingLatest() {
	p.mu.Lock()
	if !p.following {
		p.mu.Unlock()
		return
	}
	p.following = false
	h := p.followHandle
	p.followHandle = nil
	cbs := append([]func(){}, p.onFollowStop...)
	p.mu.Unlock()
	h.Stop()
	fire(cbs)
}

// Following reports the controller state.
func (p *Plot) Following() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.following
}

// OnFollowStart registers an observer for Idle -> Following transitions.
func (p *Plot) OnFollowStart(fn func()) {
	p.mu.Lock()
	p.onFollowStart = append(p.onFollowStart, fn)
	p.mu.Unlock()
}

// OnFollowStop registers an observer for Following -> Idle transitions.
func (p *Plot) OnFollowStop(fn func()) {
	p.mu.Lock()
	p.onFollowStop = append(p.onFollowStop, fn)
	p.mu.Unlock()
}

func (p *Plot) followTick() {
	p.mu.Lock()
	if !p.following || p.dragging {
		p.mu.Unlock()
		return
	}
	p.followLocked()
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// followLocked advances the x window to the freshest data: x.max becomes the
// newest adjusted x plus the jump offset; a fixed window size derives x.min
// from it; y is only reset when AdjustY is "auto".
func (p *Plot) followLocked() {
	fresh := ComputeBounds(p.series, p.opts.HiddenSeries)
	if !fresh.Valid() {
		return
	}
	b := &p.view.Bounds
	b.X.Max = fresh.X.Max + p.opts.Follow.JumpOffsetX
	if b.FixedWindowSize > 0 {
		b.X.Min = b.X.Max - b.FixedWindowSize
	}
	if p.opts.Follow.AdjustY == YAuto {
		b.Y = fresh.Y
	}
}
