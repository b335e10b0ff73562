package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/boxpusher/parameter"
)

// TimeProvider abstracts the clock so ticks can be driven deterministically in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// StepClock only moves when stepped. Headless runs advance it one game tick
// per applied move so animation frames and digests are reproducible
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	tick  time.Duration
	steps int64
}

// NewStepClock starts at start; tick <= 0 selects parameter.GameUpdateInterval
func NewStepClock(start time.Time, tick time.Duration) *StepClock {
	if tick <= 0 {
		tick = parameter.GameUpdateInterval
	}
	return &StepClock{now: start, tick: tick}
}

func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// TickInterval is the duration of one Step
func (c *StepClock) TickInterval() time.Duration {
	return c.tick
}

// Step advances one tick and returns the new reading
func (c *StepClock) Step() time.Time {
	return c.StepN(1)
}

// StepN advances n ticks; n <= 0 leaves the clock unchanged
func (c *StepClock) StepN(n int) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > 0 {
		c.now = c.now.Add(time.Duration(n) * c.tick)
		c.steps += int64(n)
	}
	return c.now
}

// Steps counts ticks taken through Step and StepN
func (c *StepClock) Steps() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps
}

// Advance moves the clock by an arbitrary offset without counting a step
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
