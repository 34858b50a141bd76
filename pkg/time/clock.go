package time

import (
	"sync"
	"time"
)

type (
	Clock interface {
		Now() time.Time
	}

	AdjustableClock interface {
		Clock
		Set(time.Time)
		Add(time.Duration)
	}

	systemClock struct{}

	adjustableClock struct {
		mu  sync.RWMutex
		now time.Time
	}
)

func NewClock() Clock {
	return systemClock{}
}

// NewAdjustableClock returns a clock frozen at t until it is moved explicitly.
func NewAdjustableClock(t time.Time) AdjustableClock {
	return &adjustableClock{now: t}
}

func (c systemClock) Now() time.Time {
	return time.Now()
}

func (c *adjustableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *adjustableClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *adjustableClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
