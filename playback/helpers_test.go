package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/ayoisaiah/interval/internal/models"
	"github.com/ayoisaiah/interval/internal/workout"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t  time.Time
	mu sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		t: time.Date(2024, time.March, 9, 7, 30, 0, 0, time.UTC),
	}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.t = f.t.Add(d)
}

// recorder is a Player that remembers every cue it was asked to play.
type recorder struct {
	err    error
	loaded []string
	played []string
	mu     sync.Mutex
}

var errNoAudio = errors.New("audio device unavailable")

func (r *recorder) LoadCue(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = append(r.loaded, name)

	return r.err
}

func (r *recorder) PlayCue(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.played = append(r.played, name)

	return r.err
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int

	for _, v := range r.played {
		if v == name {
			n++
		}
	}

	return n
}

// buildWorkout creates a workout from per-block sets and step durations.
func buildWorkout(blocks ...[]int) *workout.Workout {
	m := &models.Workout{ID: 1, Name: "test"}

	id := int64(1)

	for _, shape := range blocks {
		id++

		b := models.Block{ID: id, Sets: shape[0]}

		for _, d := range shape[1:] {
			id++

			b.SubBlocks = append(b.SubBlocks, models.SubBlock{
				ID:       id,
				Label:    "step",
				Duration: d,
				Color:    "#ff8800",
			})
		}

		m.Blocks = append(m.Blocks, b)
	}

	return workout.FromModel(m)
}

// scenario is 5s, then 3 x (10s + 10s), then 60s.
func scenario() *workout.Workout {
	return buildWorkout([]int{1, 5}, []int{3, 10, 10}, []int{1, 60})
}

func startScenario(w *workout.Workout) (*Controller, *fakeClock, *recorder) {
	clock := newFakeClock()
	player := &recorder{}

	c := Start(
		w,
		WithClock(clock.Now),
		WithPlayer(player, "beep", "beep_long"),
	)

	return c, clock, player
}
