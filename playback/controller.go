// Package playback plays a workout back as a live countdown. The Controller
// is a state machine advanced by Tick; the timer that calls Tick is supplied
// by the caller (see Runner, or the TUI in package timer).
package playback

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/interval/internal/events"
	"github.com/ayoisaiah/interval/internal/workout"
)

// State is the playback state of a Controller.
type State int

const (
	Running State = iota
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}

	return "unknown"
}

// Player plays cue sounds. PlayCue must not block.
type Player interface {
	LoadCue(name string) error
	PlayCue(name string) error
}

// Snapshot is what observers need to render the current state of playback.
type Snapshot struct {
	WorkoutName  string
	Label        string
	Color        string
	NextLabel    string
	State        State
	Position     workout.Position
	Set          int
	Sets         int
	Duration     int
	Elapsed      int
	Remaining    int
	RemainingMs  int64
	ElapsedTotal int
	Total        int
	HasNext      bool
	HasPrev      bool
}

// Paused reports whether playback is paused.
func (s Snapshot) Paused() bool {
	return s.State == Paused
}

// Finished reports whether playback has ended.
func (s Snapshot) Finished() bool {
	return s.State == Finished
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock makes the controller read time from now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.clock = NewClock(now)
	}
}

// WithPlayer sets the player used for cues and the sound names it should
// use for the tick and long cues.
func WithPlayer(p Player, tickSound, longSound string) Option {
	return func(c *Controller) {
		c.player = p
		c.sounds = map[Cue]string{
			CueTick: tickSound,
			CueLong: longSound,
		}
	}
}

// WithLogger sets the logger used to report cue failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller plays one workout from start to finish. A finished controller
// cannot be restarted; start a new one instead.
type Controller struct {
	player  Player
	workout *workout.Workout
	clock   *Clock
	feed    *events.Feed[Snapshot]
	log     *slog.Logger
	sounds  map[Cue]string
	cues    CueDispatcher
	sample  Sample
	pos     workout.Position
	next    workout.Position
	prev    workout.Position
	state   State
	hasNext bool
	hasPrev bool
}

// Start begins playback of a private copy of w at its first playable
// position. If w has no playable block the controller starts out Finished.
func Start(w *workout.Workout, opts ...Option) *Controller {
	c := &Controller{
		workout: w.Clone(),
		feed:    events.NewFeed[Snapshot](true),
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = NewClock(nil)
	}

	c.loadCues()

	first, ok := c.workout.FirstPosition()
	if !ok {
		c.log.Info("workout has nothing to play", slog.Int64("workout_id", w.ID))
		c.finish()
		c.publish()

		return c
	}

	c.state = Running
	c.enter(first)
	c.publish()

	return c
}

func (c *Controller) loadCues() {
	if c.player == nil {
		return
	}

	for _, cue := range []Cue{CueTick, CueLong} {
		name := c.sounds[cue]
		if name == "" {
			continue
		}

		if err := c.player.LoadCue(name); err != nil {
			c.log.Warn(
				"unable to load cue",
				slog.String("cue", string(cue)),
				slog.String("sound", name),
				slog.Any("error", err),
			)
		}
	}
}

// Tick samples the clock, fires any due cue and advances to the next step
// once the current one runs out. It does nothing unless playback is Running.
func (c *Controller) Tick() {
	if c.state != Running {
		return
	}

	c.sample = c.clock.Sample()

	if c.cues.Tick(c.sample.Remaining) {
		c.play(CueTick)
	}

	if c.cues.Long(c.sample) {
		c.play(CueLong)

		if c.hasNext {
			c.enter(c.next)
		} else {
			c.finish()
		}
	}

	c.publish()
}

// Pause freezes playback on the current step.
func (c *Controller) Pause() {
	if c.state != Running {
		return
	}

	c.clock.Pause()
	c.sample = c.clock.Sample()
	c.state = Paused

	c.publish()
}

// Resume continues a paused step with the time it had left.
func (c *Controller) Resume() {
	if c.state != Paused {
		return
	}

	c.clock.Resume()
	c.sample = c.clock.Sample()
	c.state = Running

	c.publish()
}

// Toggle pauses running playback and resumes paused playback.
func (c *Controller) Toggle() {
	switch c.state {
	case Running:
		c.Pause()
	case Paused:
		c.Resume()
	case Finished:
	}
}

// SkipNext pauses playback at the start of the next step. It does nothing if
// the current step is the last one.
func (c *Controller) SkipNext() {
	if c.state == Finished || !c.hasNext {
		return
	}

	c.state = Paused
	c.enter(c.next)

	c.publish()
}

// SkipPrev pauses playback at the start of the current step if any of it has
// elapsed, otherwise at the start of the previous step.
func (c *Controller) SkipPrev() {
	if c.state == Finished {
		return
	}

	switch {
	case c.clock.Sample().Elapsed != 0:
		c.state = Paused
		c.enter(c.pos)
	case c.hasPrev:
		c.state = Paused
		c.enter(c.prev)
	default:
		return
	}

	c.publish()
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// Subscribe registers fn to be called with a new snapshot after every tick
// and command. fn is called right away with the latest snapshot.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return c.feed.Subscribe(fn)
}

// Snapshot returns the current state of playback.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		WorkoutName: c.workout.Name,
		State:       c.state,
		Position:    c.pos,
		Total:       c.workout.TotalDuration(),
		HasNext:     c.state != Finished && c.hasNext,
	}

	if c.state == Finished {
		s.ElapsedTotal = s.Total
		return s
	}

	sub := c.workout.SubBlockAt(c.pos)
	block := c.workout.Blocks[c.pos.BlockIndex]

	s.Label = sub.Label
	s.Color = sub.Color
	s.Set = c.pos.Set
	s.Sets = block.Sets()
	s.Duration = sub.Duration()
	s.Elapsed = min(c.sample.Elapsed, s.Duration)
	s.Remaining = c.sample.Remaining
	s.RemainingMs = c.sample.RemainingMs
	s.ElapsedTotal = c.workout.DurationBefore(c.pos) + s.Elapsed
	s.HasPrev = c.hasPrev || c.sample.Elapsed != 0

	if c.hasNext {
		s.NextLabel = c.workout.SubBlockAt(c.next).Label
	}

	return s
}

// enter makes p the current step with nothing elapsed. The clock runs only
// if playback is Running.
func (c *Controller) enter(p workout.Position) {
	sub := c.workout.SubBlockAt(p)
	if sub == nil {
		c.log.Error("position out of range", slog.String("position", p.String()))
		c.finish()

		return
	}

	c.pos = p

	d := time.Duration(sub.Duration()) * time.Second
	if c.state == Running {
		c.clock.Reset(d)
	} else {
		c.clock.ResetPaused(d)
	}

	c.cues.Reset()
	c.sample = c.clock.Sample()
	c.next, c.hasNext = c.workout.NextPosition(p)
	c.prev, c.hasPrev = c.workout.PrevPosition(p)
}

func (c *Controller) finish() {
	c.state = Finished
	c.hasNext = false
	c.hasPrev = false

	c.log.Info("workout finished", slog.Int64("workout_id", c.workout.ID))
}

func (c *Controller) play(cue Cue) {
	if c.player == nil {
		return
	}

	name := c.sounds[cue]
	if name == "" {
		return
	}

	if err := c.player.PlayCue(name); err != nil {
		c.log.Warn(
			"unable to play cue",
			slog.String("cue", string(cue)),
			slog.Any("error", err),
		)
	}
}

func (c *Controller) publish() {
	c.feed.Publish(c.Snapshot())
}
