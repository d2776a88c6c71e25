package core

import "time"

// Clock reports monotonic timestamps relative to its creation.
type Clock struct {
	origin time.Time
}

// NewClock starts a clock at the current instant.
func NewClock() *Clock { return &Clock{origin: time.Now()} }

// Now returns the time elapsed since the clock started.
func (c *Clock) Now() time.Duration { return time.Since(c.origin) }

// FixedStep produces synthetic timestamps at a steady ticks-per-second rate,
// for headless runs that must not depend on wall time.
type FixedStep struct {
	step time.Duration
	now  time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the configured tick length.
func (f *FixedStep) Step() time.Duration { return f.step }

// Now returns the current synthetic timestamp.
func (f *FixedStep) Now() time.Duration { return f.now }

// Next advances by one tick and returns the new timestamp.
func (f *FixedStep) Next() time.Duration {
	f.now += f.step
	return f.now
}
