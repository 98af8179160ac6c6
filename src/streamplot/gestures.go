package streamplot

import "math"

// Gesture handlers. The host wires its pointer/touch/wheel events to these;
// each documents its effect on the transform. Positions are surface pixels.

// PointerDown begins a drag at the given position. With DisableOnInteraction
// set, following pauses for the duration of the gesture.
func (p *Plot) PointerDown(x, y float64) {
	p.mu.Lock()
	p.dragging = true
	p.lastPointer = Sample{X: x, Y: y}
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if disable {
		p.StopFollowingLatest()
	}
}

// PointerMove updates the authoritative pointer position and, while a drag is
// engaged, pans the viewport by the pixel delta since the last position.
func (p *Plot) PointerMove(x, y float64) {
	p.mu.Lock()
	last := p.lastPointer
	p.lastPointer = Sample{X: x, Y: y}
	if !p.dragging {
		p.mu.Unlock()
		return
	}
	p.view.Pan(x-last.X, y-last.Y)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// PointerUp ends the drag. With DisableOnInteraction set, the controller is
// left Following regardless of its state before the gesture.
func (p *Plot) PointerUp(x, y float64) {
	p.mu.Lock()
	p.dragging = false
	p.lastPointer = Sample{X: x, Y: y}
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if disable {
		p.StartFollowingLatest()
	}
}

// PointerLeave is treated as the end of any drag in progress.
func (p *Plot) PointerLeave() {
	p.mu.Lock()
	wasDragging := p.dragging
	p.dragging = false
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if wasDragging && disable {
		p.StartFollowingLatest()
	}
}

// Wheel zooms about the pointer position; factor > 1 zooms out, < 1 zooms
// in, and the data point under the pointer keeps its pixel position. With
// DisableOnInteraction set the wheel gesture pauses following and the
// gesture end re-engages it.
func (p *Plot) Wheel(x, y, factor float64) {
	p.mu.Lock()
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if disable {
		p.StopFollowingLatest()
	}
	p.mu.Lock()
	p.lastPointer = Sample{X: x, Y: y}
	p.view.Zoom(x, y, factor)
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
	if disable {
		p.StartFollowingLatest()
	}
}

// TouchStart begins a one-finger drag or a two-finger pinch.
func (p *Plot) TouchStart(points []Sample) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p.PointerDown(points[0].X, points[0].Y)
		return
	}
	p.mu.Lock()
	p.dragging = false
	p.pinchDist = touchDist(points[0], points[1])
	p.lastPointer = touchMid(points[0], points[1])
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if disable {
		p.StopFollowingLatest()
	}
}

// TouchMove pans on one finger and zooms about the pinch midpoint on two;
// spreading the fingers zooms in.
func (p *Plot) TouchMove(points []Sample) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p.PointerMove(points[0].X, points[0].Y)
		return
	}
	p.mu.Lock()
	dist := touchDist(points[0], points[1])
	mid := touchMid(points[0], points[1])
	if p.pinchDist > 0 && dist > 0 {
		p.view.Zoom(mid.X, mid.Y, p.pinchDist/dist)
	}
	p.pinchDist = dist
	p.lastPointer = mid
	cbs := p.maybeRenderLocked()
	p.mu.Unlock()
	fire(cbs)
}

// TouchEnd finishes the gesture; with DisableOnInteraction set the controller
// is left Following.
func (p *Plot) TouchEnd() {
	p.mu.Lock()
	p.dragging = false
	p.pinchDist = 0
	disable := p.opts.Follow.DisableOnInteraction
	p.mu.Unlock()
	if disable {
		p.StartFollowingLatest()
	}
}

// TouchCancel has the same transform effect as TouchEnd.
func (p *Plot) TouchCancel() { p.TouchEnd() }

func touchDist(a, b Sample) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func touchMid(a, b Sample) Sample {
	return Sample{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
