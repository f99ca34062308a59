package core

import "time"

// Clock reports monotonic elapsed seconds since Start. Readings never go
// backwards, even when the underlying source does.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  float64
}

// NewClock returns a Clock backed by time.Now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource returns a Clock reading time from now. Tests use it to
// drive the clock by hand.
func NewClockWithSource(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start (re)sets the reference point. Elapsed calls before Start start the
// clock implicitly.
func (c *Clock) Start() {
	c.start = c.now()
	c.last = 0
}

// Elapsed returns seconds since Start.
func (c *Clock) Elapsed() float64 {
	if c.start.IsZero() {
		c.Start()
	}
	elapsed := c.now().Sub(c.start).Seconds()
	if elapsed < c.last {
		return c.last
	}
	c.last = elapsed
	return elapsed
}
