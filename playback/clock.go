package playback

import (
	"time"
)

// Sample is the state of the current step at one instant.
type Sample struct {
	ElapsedMs   int64
	RemainingMs int64
	Elapsed     int // whole seconds, rounded down
	Remaining   int // whole seconds, rounded up
}

// Exhausted reports whether the step has run its full duration.
func (s Sample) Exhausted() bool {
	return s.RemainingMs == 0
}

// Clock measures the current step against the wall clock. Elapsed time is
// always derived from the step start time and a fresh reading of now, never
// accumulated tick by tick, so late or skipped ticks cannot make it drift.
type Clock struct {
	start    time.Time
	now      func() time.Time
	duration time.Duration
	frozen   int
	paused   bool
}

// NewClock returns a clock reading time from now, or time.Now if now is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}

	return &Clock{
		now: now,
	}
}

// Reset starts timing a new step of the given length.
func (c *Clock) Reset(duration time.Duration) {
	c.duration = duration
	c.start = c.now()
	c.frozen = 0
	c.paused = false
}

// ResetPaused prepares a new step of the given length without starting it.
func (c *Clock) ResetPaused(duration time.Duration) {
	c.duration = duration
	c.frozen = 0
	c.paused = true
}

// Sample reads the clock.
func (c *Clock) Sample() Sample {
	var elapsedMs int64

	if c.paused {
		elapsedMs = int64(c.frozen) * 1000
	} else {
		elapsedMs = max(0, c.now().Sub(c.start).Milliseconds())
	}

	durationMs := c.duration.Milliseconds()
	remainingMs := max(0, durationMs-elapsedMs)

	return Sample{
		ElapsedMs:   elapsedMs,
		RemainingMs: remainingMs,
		Elapsed:     int(elapsedMs / 1000),
		Remaining:   int((remainingMs + 999) / 1000),
	}
}

// Pause freezes the clock at the whole number of seconds elapsed so far.
func (c *Clock) Pause() {
	if c.paused {
		return
	}

	c.frozen = c.Sample().Elapsed
	c.paused = true
}

// Resume restarts the clock so that the seconds elapsed before the pause are
// preserved exactly.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}

	c.start = c.now().Add(-time.Duration(c.frozen) * time.Second)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}
