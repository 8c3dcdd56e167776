package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so that search timing can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// StepClock is a test clock that advances by a fixed step on every call to Now.
// A zero step makes it a frozen clock. It is safe for concurrent use.
type StepClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewStepClock creates a StepClock starting at start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{current: start, step: step}
}

// Now returns the current reading and then advances the clock by one step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

var (
	_ Clock = RealClock{}
	_ Clock = (*StepClock)(nil)
)
