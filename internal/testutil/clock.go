package testutil

import "time"

// Clock provides deterministic, monotonically increasing timestamps for
// store operations under test.
type Clock struct {
	current time.Time
	step    time.Duration
}

// NewClock returns a clock initialized to a fixed UTC start time.
func NewClock() *Clock {
	return &Clock{
		current: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		step:    time.Second,
	}
}

// Now advances the clock one step and returns the new time. It matches the
// store's clock function signature.
func (c *Clock) Now() time.Time {
	c.current = c.current.Add(c.step)

	return c.current
}
