package playback

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/interval/internal/workout"
)

// steppingClock moves forward by a fixed amount every time it is read, so a
// runner with a real ticker gets through a workout quickly.
type steppingClock struct {
	t    time.Time
	step time.Duration
	mu   sync.Mutex
}

func (s *steppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t = s.t.Add(s.step)

	return s.t
}

func TestRunnerPlaysToTheEnd(t *testing.T) {
	clock := &steppingClock{step: 250 * time.Millisecond}
	player := &recorder{}

	c := Start(
		buildWorkout([]int{1, 2}, []int{2, 1}),
		WithClock(clock.Now),
		WithPlayer(player, "beep", "beep_long"),
	)

	r := NewRunner(c, time.Millisecond)

	var positions []workout.Position

	r.Subscribe(func(s Snapshot) {
		if !s.Finished() && (len(positions) == 0 || positions[len(positions)-1] != s.Position) {
			positions = append(positions, s.Position)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, r.Run(ctx))

	assert.Equal(t, Finished, c.State())
	assert.Equal(t, []workout.Position{pos(0, 0, 1), pos(1, 0, 1), pos(1, 0, 2)}, positions)
	assert.Equal(t, 3, player.count("beep_long"))

	// commands after Run has returned do not block
	r.Pause()
	r.SkipNext()
}

func TestRunnerCancelWhilePaused(t *testing.T) {
	clock := newFakeClock()
	c := Start(scenario(), WithClock(clock.Now))
	r := NewRunner(c, 0)

	r.Pause()
	r.SkipNext()

	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)

	go func() {
		errc <- r.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	s := c.Snapshot()
	assert.Equal(t, Paused, s.State)
	assert.Equal(t, pos(1, 0, 1), s.Position)
}

func TestRunnerCommands(t *testing.T) {
	clock := newFakeClock()
	c := Start(scenario(), WithClock(clock.Now))
	r := NewRunner(c, time.Millisecond)

	states := make(chan State, 16)

	last := State(-1)

	r.Subscribe(func(s Snapshot) {
		if s.State != last {
			last = s.State
			states <- s.State
		}
	})
	<-states

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = r.Run(ctx)
	}()

	waitFor := func(want State) {
		t.Helper()

		deadline := time.After(5 * time.Second)

		for {
			select {
			case got := <-states:
				if got == want {
					return
				}
			case <-deadline:
				t.Fatalf("never reached %s", want)
			}
		}
	}

	r.Toggle()
	waitFor(Paused)

	r.Resume()
	waitFor(Running)

	r.SkipPrev()
	r.SkipNext()
	waitFor(Paused)
}
