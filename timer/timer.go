// Package timer plays a workout in the terminal with bubbletea
package timer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/hook"
	"github.com/ayoisaiah/interval/playback"
)

// FinishFunc is called once when the workout ends.
type FinishFunc func(ctx context.Context, s playback.Snapshot) error

// Timer is the bubbletea model of the workout player.
type Timer struct {
	ctrl     *playback.Controller
	cfg      *config.Config
	now      func() time.Time
	onFinish FinishFunc
	snap     playback.Snapshot
	help     help.Model
	progress progress.Model
	keys     keymap
	gen      int
	width    int
	finished bool
}

// tickMsg drives the controller. Ticks from an older generation are stale
// and dropped, which cancels the pending tick on pause or skip.
type tickMsg struct {
	gen int
}

// finishedMsg reports the result of the finish hook.
type finishedMsg struct {
	err error
}

// Option configures a Timer.
type Option func(*Timer)

// WithFinishFunc replaces the default finish hook.
func WithFinishFunc(fn FinishFunc) Option {
	return func(t *Timer) {
		t.onFinish = fn
	}
}

// WithClock sets the time source used for the projected end time.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New returns a Timer showing c.
func New(c *playback.Controller, cfg *config.Config, opts ...Option) *Timer {
	t := &Timer{
		ctrl:     c,
		cfg:      cfg,
		now:      time.Now,
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill("#FFFFFF"), progress.WithoutPercentage()),
		keys:     defaultKeymap,
	}

	t.onFinish = t.defaultFinish

	for _, opt := range opts {
		opt(t)
	}

	c.Subscribe(func(s playback.Snapshot) {
		t.snap = s
	})

	return t
}

// defaultFinish shows a desktop notification and runs the finish command.
func (t *Timer) defaultFinish(ctx context.Context, s playback.Snapshot) error {
	return hook.Finish(ctx, t.cfg, hook.Finished{
		Name:  s.WorkoutName,
		Total: s.Total,
	})
}

func (t *Timer) interval() time.Duration {
	if t.cfg.Playback.TickInterval > 0 {
		return t.cfg.Playback.TickInterval
	}

	return playback.DefaultTickInterval
}

// tick schedules the next tick of the current generation.
func (t *Timer) tick() tea.Cmd {
	gen := t.gen

	return tea.Tick(t.interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// rearm drops any pending tick and schedules a new one if playback is
// running.
func (t *Timer) rearm() tea.Cmd {
	t.gen++

	if t.snap.State != playback.Running {
		return nil
	}

	return t.tick()
}

// finish runs the finish hook once.
func (t *Timer) finish() tea.Cmd {
	if t.finished {
		return nil
	}

	t.finished = true
	t.gen++

	s := t.snap
	fn := t.onFinish

	return func() tea.Msg {
		return finishedMsg{err: fn(context.Background(), s)}
	}
}

func (t *Timer) Init() tea.Cmd {
	if t.snap.Finished() {
		return t.finish()
	}

	return t.tick()
}
