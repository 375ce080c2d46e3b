package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockSample(t *testing.T) {
	testCases := []struct {
		name    string
		elapsed time.Duration
		want    Sample
	}{
		{
			name: "step start",
			want: Sample{ElapsedMs: 0, RemainingMs: 10000, Elapsed: 0, Remaining: 10},
		},
		{
			name:    "first tick",
			elapsed: 100 * time.Millisecond,
			want:    Sample{ElapsedMs: 100, RemainingMs: 9900, Elapsed: 0, Remaining: 10},
		},
		{
			name:    "whole second",
			elapsed: time.Second,
			want:    Sample{ElapsedMs: 1000, RemainingMs: 9000, Elapsed: 1, Remaining: 9},
		},
		{
			name:    "mid second",
			elapsed: 7500 * time.Millisecond,
			want:    Sample{ElapsedMs: 7500, RemainingMs: 2500, Elapsed: 7, Remaining: 3},
		},
		{
			name:    "exhausted",
			elapsed: 10 * time.Second,
			want:    Sample{ElapsedMs: 10000, RemainingMs: 0, Elapsed: 10, Remaining: 0},
		},
		{
			name:    "overshoot",
			elapsed: 12300 * time.Millisecond,
			want:    Sample{ElapsedMs: 12300, RemainingMs: 0, Elapsed: 12, Remaining: 0},
		},
		{
			name:    "clock went backwards",
			elapsed: -2 * time.Second,
			want:    Sample{ElapsedMs: 0, RemainingMs: 10000, Elapsed: 0, Remaining: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := newFakeClock()
			c := NewClock(fake.Now)
			c.Reset(10 * time.Second)

			fake.Advance(tc.elapsed)

			got := c.Sample()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.RemainingMs == 0, got.Exhausted())
		})
	}
}

func TestClockDoesNotDriftWithSlowTicks(t *testing.T) {
	fake := newFakeClock()
	c := NewClock(fake.Now)
	c.Reset(30 * time.Second)

	// 30 irregular ticks, then one more to land on exactly 20 seconds
	for i := range 30 {
		if i%2 == 0 {
			fake.Advance(700 * time.Millisecond)
		} else {
			fake.Advance(433 * time.Millisecond)
		}

		c.Sample()
	}

	fake.Advance(20*time.Second - (15*700+15*433)*time.Millisecond)

	s := c.Sample()
	assert.Equal(t, 20, s.Elapsed)
	assert.Equal(t, 10, s.Remaining)
}

func TestClockPauseResume(t *testing.T) {
	fake := newFakeClock()
	c := NewClock(fake.Now)
	c.Reset(10 * time.Second)

	fake.Advance(3400 * time.Millisecond)

	before := c.Sample()
	assert.Equal(t, 7, before.Remaining)

	c.Pause()
	assert.True(t, c.Paused())

	paused := c.Sample()
	assert.Equal(t, before.Remaining, paused.Remaining)
	assert.Equal(t, 3, paused.Elapsed)

	fake.Advance(time.Hour)
	assert.Equal(t, paused, c.Sample())

	c.Resume()
	assert.False(t, c.Paused())
	assert.Equal(t, paused.Remaining, c.Sample().Remaining)

	fake.Advance(2 * time.Second)
	assert.Equal(t, 5, c.Sample().Elapsed)
	assert.Equal(t, 5, c.Sample().Remaining)

	// repeated calls are no-ops
	c.Resume()
	assert.Equal(t, 5, c.Sample().Elapsed)

	c.Pause()
	c.Pause()
	fake.Advance(time.Second)
	assert.Equal(t, 5, c.Sample().Elapsed)
}

func TestClockResetPaused(t *testing.T) {
	fake := newFakeClock()
	c := NewClock(fake.Now)
	c.Reset(10 * time.Second)
	fake.Advance(4 * time.Second)

	c.ResetPaused(20 * time.Second)
	fake.Advance(5 * time.Second)

	s := c.Sample()
	assert.Equal(t, 0, s.Elapsed)
	assert.Equal(t, 20, s.Remaining)

	c.Resume()
	fake.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, c.Sample().Elapsed)
	assert.Equal(t, 19, c.Sample().Remaining)
}
