package quiz

import (
	"sync"
	"time"
)

// Countdown is the session's one-second pulse. It wraps a ticker whose stop is
// idempotent, so every exit path (finish, abandonment, interrupt) can release
// it without coordinating.
type Countdown struct {
	ticker   *time.Ticker
	stopOnce sync.Once
}

// NewCountdown starts a ticker at the given interval.
func NewCountdown(interval time.Duration) *Countdown {
	return &Countdown{ticker: time.NewTicker(interval)}
}

// C returns the tick channel.
func (c *Countdown) C() <-chan time.Time {
	return c.ticker.C
}

// Stop halts the ticker. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		c.ticker.Stop()
	})
}
