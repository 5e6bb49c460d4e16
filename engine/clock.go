package engine

import (
	"sync"
	"time"
)

// Clock is a source of the current time
type Clock interface {
	Now() time.Time
}

// WallClock reads time.Now, keeping the monotonic reading
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to
type ManualClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
	return c.t
}
