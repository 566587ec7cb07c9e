package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Clock drives ticks from a single goroutine. The wait length is sampled
// from interval before every wait; tick reports whether to keep going.
//
// Start on a running clock cancels and joins the old loop first, so at most
// one tick task is ever active.
type Clock struct {
	interval func() time.Duration
	tick     func() bool
	after    func(time.Duration) <-chan time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	active atomic.Int32
}

func NewClock(interval func() time.Duration, tick func() bool) *Clock {
	return &Clock{
		interval: interval,
		tick:     tick,
		after:    time.After,
	}
}

// Start launches a fresh tick loop bound to ctx, replacing any loop that is
// already running. Must not be called from inside the tick callback.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.active.Add(1)
	go c.run(loopCtx, done)
}

// Stop cancels the pending wait and blocks until the loop has exited. A tick
// that is already executing completes first.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Clock) stopLocked() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

// Active returns the number of live tick loops (0 or 1).
func (c *Clock) Active() int {
	return int(c.active.Load())
}

func (c *Clock) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer c.active.Add(-1)

	log.Debug("clock started")
	for {
		d := c.interval()
		select {
		case <-ctx.Done():
			log.Debug("clock cancelled")
			return
		case <-c.after(d):
		}
		if ctx.Err() != nil {
			log.Debug("clock cancelled")
			return
		}
		if !c.tick() {
			log.Debug("clock halted")
			return
		}
	}
}
