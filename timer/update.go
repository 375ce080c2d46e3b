package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/interval/playback"
)

// handleTick advances the controller and schedules the next tick.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != t.gen || t.snap.State != playback.Running {
		return t, nil
	}

	t.ctrl.Tick()

	if t.snap.Finished() {
		return t, t.finish()
	}

	return t, t.tick()
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.quit):
		return t, tea.Quit

	case key.Matches(msg, t.keys.help):
		t.help.ShowAll = !t.help.ShowAll
		return t, nil
	}

	if t.snap.Finished() {
		return t, nil
	}

	switch {
	case key.Matches(msg, t.keys.togglePlay):
		t.ctrl.Toggle()

	case key.Matches(msg, t.keys.next):
		t.ctrl.SkipNext()

	case key.Matches(msg, t.keys.prev):
		t.ctrl.SkipPrev()

	default:
		return t, nil
	}

	return t, t.rearm()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case finishedMsg:
		if msg.err != nil {
			slog.Error("finish hook failed", slog.Any("error", msg.err))
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.help.Width = msg.Width
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return t, nil
}
