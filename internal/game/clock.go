package game

import "time"

// Clock supplies wall time for the shoot cooldown and rapid-fire window.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Single goroutine use.
type ManualClock struct {
	t time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

func (c *ManualClock) Now() time.Time { return c.t }

func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
