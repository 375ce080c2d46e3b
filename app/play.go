package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/hook"
	"github.com/ayoisaiah/interval/internal/sound"
	"github.com/ayoisaiah/interval/internal/timeutil"
	"github.com/ayoisaiah/interval/internal/workout"
	"github.com/ayoisaiah/interval/playback"
	"github.com/ayoisaiah/interval/timer"
)

// newPlayer returns the cue player for cfg.
func newPlayer(cfg *config.Config) playback.Player {
	if !cfg.Sound.Enabled {
		return sound.Nop{}
	}

	return sound.NewPlayer()
}

func startPlayback(cfg *config.Config, w *workout.Workout) *playback.Controller {
	return playback.Start(
		w,
		playback.WithPlayer(newPlayer(cfg), cfg.Sound.TickCue, cfg.Sound.LongCue),
		playback.WithLogger(slog.Default()),
	)
}

// pick asks the user to choose one of the stored workouts.
func (l *library) pick() (*workout.Workout, error) {
	all, err := l.workouts()
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return nil, errNoWorkouts
	}

	options := make([]huh.Option[*workout.Workout], len(all))

	for i, w := range all {
		options[i] = huh.NewOption(
			fmt.Sprintf("%s (%s)", w.Name, timeutil.Clock(w.TotalDuration())),
			w,
		)
	}

	var chosen *workout.Workout

	err = huh.NewSelect[*workout.Workout]().
		Title("Which workout do you want to play?").
		Options(options...).
		Value(&chosen).
		Run()
	if err != nil {
		return nil, err
	}

	return chosen, nil
}

// pickOrFind resolves ref, or asks the user to pick a workout if ref is
// empty.
func (l *library) pickOrFind(ref string) (*workout.Workout, error) {
	if ref == "" {
		return l.pick()
	}

	return l.find(ref)
}

// play runs w in the full screen player.
func (l *library) play(w *workout.Workout) error {
	ctrl := startPlayback(l.cfg, w)

	t := timer.New(ctrl, l.cfg)

	p := tea.NewProgram(t)

	_, err := p.Run()

	return err
}

// playHeadless runs w on a Runner until it finishes or the process is
// interrupted, printing each step as it starts.
func (l *library) playHeadless(ctx context.Context, w *workout.Workout) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := startPlayback(l.cfg, w)
	r := playback.NewRunner(ctrl, l.cfg.Playback.TickInterval)

	printer := &progressPrinter{w: l.out}
	r.Subscribe(printer.print)

	go readCommands(config.Stdin, r)

	if err := r.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("playback interrupted", slog.String("workout", w.Name))
			return nil
		}

		return err
	}

	s := ctrl.Snapshot()

	return hook.Finish(ctx, l.cfg, hook.Finished{
		Name:  s.WorkoutName,
		Total: s.Total,
	})
}

// readCommands forwards the commands typed on in to r, one per line: p or an
// empty line toggles pause, n skips forward and b skips back.
func readCommands(in io.Reader, r *playback.Runner) {
	s := bufio.NewScanner(in)

	for s.Scan() {
		switch strings.TrimSpace(s.Text()) {
		case "", "p":
			r.Toggle()
		case "n":
			r.SkipNext()
		case "b":
			r.SkipPrev()
		}
	}
}

// progressPrinter prints a line whenever playback enters a new step or
// changes state.
type progressPrinter struct {
	w       io.Writer
	last    playback.Snapshot
	started bool
}

func (p *progressPrinter) print(s playback.Snapshot) {
	changed := !p.started ||
		s.State != p.last.State ||
		s.Position != p.last.Position

	p.started = true
	p.last = s

	if !changed {
		return
	}

	switch s.State {
	case playback.Finished:
		if s.Total == 0 {
			pterm.Fprintln(p.w, fmt.Sprintf("%s has nothing to play", s.WorkoutName))
			return
		}

		pterm.Fprintln(p.w, fmt.Sprintf(
			"%s finished in %s",
			s.WorkoutName,
			timeutil.Clock(s.Total),
		))
	case playback.Paused:
		pterm.Fprintln(p.w, fmt.Sprintf(
			"[%s / %s] %s paused",
			timeutil.Clock(s.ElapsedTotal),
			timeutil.Clock(s.Total),
			s.Label,
		))
	case playback.Running:
		pterm.Fprintln(p.w, fmt.Sprintf(
			"[%s / %s] %s (set %d / %d) %s",
			timeutil.Clock(s.ElapsedTotal),
			timeutil.Clock(s.Total),
			s.Label,
			s.Set,
			s.Sets,
			timeutil.Clock(s.Duration),
		))
	}
}
