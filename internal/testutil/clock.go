package testutil

import (
	"sync"
	"time"
)

// FixedClock returns a pinned calendar date.
//
// Unlike law.SystemClock, FixedClock can be re-pinned for test reuse.
// This enables the same scenario to run against different dates (for
// example, on and off the citee's birthday) with identical machinery.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu   sync.Mutex
	date time.Time
}

// NewFixedClock creates a clock pinned to the given date.
func NewFixedClock(date time.Time) *FixedClock {
	return &FixedClock{date: date}
}

// Date creates a clock pinned to a year/month/day, midnight UTC.
//
// This is the usual test constructor:
//
//	clock := testutil.Date(2024, time.March, 15)
func Date(year int, month time.Month, day int) *FixedClock {
	return NewFixedClock(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the pinned date. Implements law.Clock.
func (c *FixedClock) Today() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

// Set re-pins the clock to a new date.
func (c *FixedClock) Set(date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = date
}
