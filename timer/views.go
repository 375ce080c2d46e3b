package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/interval/internal/timeutil"
	"github.com/ayoisaiah/interval/playback"
)

// stepPercent is how much of the current step has been played.
func stepPercent(s playback.Snapshot) float64 {
	if s.Duration <= 0 {
		return 0
	}

	total := float64(s.Duration) * 1000

	return 1 - float64(s.RemainingMs)/total
}

// header is "name  elapsed / total".
func (t *Timer) header(st style) string {
	s := t.snap

	return st.title.Render(s.WorkoutName) +
		st.hint.Render(fmt.Sprintf(
			"  %s / %s",
			timeutil.Clock(s.ElapsedTotal),
			timeutil.Clock(s.Total),
		))
}

func (t *Timer) status(st style) string {
	s := t.snap

	if s.Paused() {
		return st.secondary.Render("[Paused]")
	}

	end := t.now().Add(time.Duration(s.Total-s.ElapsedTotal) * time.Second)

	return st.hint.Render(
		"ends at " + timeutil.TimeOfDay(end, t.cfg.Settings.TwentyFourHour),
	)
}

func (t *Timer) playerView() string {
	s := t.snap
	st := newStyle(s.Color, t.cfg.Display.DarkTheme, t.cfg.Display.NoColor)

	var b strings.Builder

	b.WriteString(t.header(st))
	b.WriteString("\n\n")

	label := s.Label
	if label == "" {
		label = "Step"
	}

	b.WriteString(st.label.Render(label))
	b.WriteString(st.hint.Render(fmt.Sprintf("  Set %d / %d", s.Set, s.Sets)))
	b.WriteString("\n\n")
	b.WriteString(st.countdown.Render(timeutil.Clock(s.Remaining)))
	b.WriteString("  ")
	b.WriteString(t.status(st))
	b.WriteString("\n\n")
	b.WriteString(t.progress.ViewAs(stepPercent(s)))

	if s.HasNext {
		b.WriteString("\n\n" + st.secondary.Render("Next: "+s.NextLabel))
	}

	b.WriteString("\n\n" + t.help.View(t.keys))

	return st.base.Render(b.String())
}

func (t *Timer) finishedView() string {
	s := t.snap
	st := newStyle("", t.cfg.Display.DarkTheme, t.cfg.Display.NoColor)

	var b strings.Builder

	b.WriteString(st.title.Render("Workout complete"))
	b.WriteString("\n\n")

	if s.Total == 0 {
		b.WriteString(st.secondary.Render(s.WorkoutName + " has nothing to play"))
	} else {
		b.WriteString(st.secondary.Render(fmt.Sprintf(
			"%s finished in %s",
			s.WorkoutName,
			timeutil.Humanize(s.Total),
		)))
	}

	b.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{t.keys.quit}))

	return st.base.Render(b.String())
}

func (t *Timer) View() string {
	if t.snap.Finished() {
		return t.finishedView()
	}

	return t.playerView()
}
