package streamplot

import (
	"sync"
	"time"
)

// task is an owned handle to a recurring tick. Handles are cancelled and
// replaced atomically on reconfiguration so orphaned tickers never
// accumulate; Stop is idempotent and safe on a nil handle.
type task struct {
	stopc    chan struct{}
	stopOnce sync.Once
}

// startTask runs fn every interval on its own goroutine until Stop.
func startTask(interval time.Duration, fn func()) *task {
	t := &task{stopc: make(chan struct{})}
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-t.stopc:
				return
			case <-tick.C:
				fn()
			}
		}
	}()
	return t
}

func (t *task) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() { close(t.stopc) })
}
