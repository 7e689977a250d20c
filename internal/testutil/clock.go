package testutil

import (
	"sync"
	"time"
)

// Epoch is the base instant used by the test clocks.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// StepClock is a deterministic clock that advances by Step on every read.
// The first read returns Start.
type StepClock struct {
	mu    sync.Mutex
	Start time.Time
	Step  time.Duration
	reads int
}

// NewStepClock creates a StepClock starting at Epoch and advancing one second per read.
func NewStepClock() *StepClock {
	return &StepClock{Start: Epoch, Step: time.Second}
}

// Now returns the next instant. Pass c.Now wherever a clock function is expected.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	at := c.Start.Add(time.Duration(c.reads) * c.Step)
	c.reads++
	return at
}

// At returns the instant the n-th read (zero-based) reports.
func (c *StepClock) At(n int) time.Time {
	return c.Start.Add(time.Duration(n) * c.Step)
}

// Reads returns how many times the clock has been read.
func (c *StepClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
