package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/models"
	"github.com/ayoisaiah/interval/internal/sound"
	"github.com/ayoisaiah/interval/internal/workout"
	"github.com/ayoisaiah/interval/playback"
)

func TestNewPlayer(t *testing.T) {
	cfg := config.Default()

	assert.IsType(t, &sound.Player{}, newPlayer(cfg))

	cfg.Sound.Enabled = false
	assert.Equal(t, sound.Nop{}, newPlayer(cfg))
}

func TestProgressPrinter(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var out bytes.Buffer

	p := &progressPrinter{w: &out}

	w := workout.FromModel(tabataRecord())
	first, _ := w.FirstPosition()
	second, _ := w.NextPosition(first)

	step := playback.Snapshot{
		WorkoutName: "Tabata",
		Label:       "Prepare",
		State:       playback.Running,
		Position:    first,
		Set:         1,
		Sets:        1,
		Duration:    10,
		Total:       250,
	}

	p.print(step)

	step.Elapsed = 4
	step.ElapsedTotal = 4
	p.print(step)

	step.State = playback.Paused
	p.print(step)

	step.State = playback.Running
	p.print(step)

	next := playback.Snapshot{
		WorkoutName:  "Tabata",
		Label:        "Work",
		State:        playback.Running,
		Position:     second,
		Set:          1,
		Sets:         8,
		Duration:     20,
		ElapsedTotal: 10,
		Total:        250,
	}
	p.print(next)

	p.print(playback.Snapshot{
		WorkoutName:  "Tabata",
		State:        playback.Finished,
		ElapsedTotal: 250,
		Total:        250,
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "[0:00 / 4:10] Prepare (set 1 / 1) 0:10", lines[0])
	assert.Equal(t, "[0:04 / 4:10] Prepare paused", lines[1])
	assert.Equal(t, "[0:04 / 4:10] Prepare (set 1 / 1) 0:10", lines[2])
	assert.Equal(t, "[0:10 / 4:10] Work (set 1 / 8) 0:20", lines[3])
	assert.Equal(t, "Tabata finished in 4:10", lines[4])
}

func TestProgressPrinterNothingToPlay(t *testing.T) {
	var out bytes.Buffer

	p := &progressPrinter{w: &out}
	p.print(playback.Snapshot{WorkoutName: "Empty", State: playback.Finished})

	assert.Equal(t, "Empty has nothing to play\n", out.String())
}

func TestAnswersOptions(t *testing.T) {
	opts, err := defaultAnswers("Tabata").options()
	require.NoError(t, err)

	w := workout.NewInterval(opts)
	assert.Equal(t, workout.NewTemplate("Tabata").TotalDuration(), w.TotalDuration())

	a := defaultAnswers("Legs")
	a.Prepare = ""
	a.Cooldown = " "
	a.Work = "1m"
	a.Sets = "4"

	opts, err = a.options()
	require.NoError(t, err)
	assert.Equal(t, workout.IntervalOptions{Name: "Legs", Sets: 4, Work: 60, Rest: 10}, opts)

	a.Name = " "
	_, err = a.options()
	assert.ErrorIs(t, err, errEmptyName)

	a = defaultAnswers("Legs")
	a.Sets = "three"
	_, err = a.options()
	assert.ErrorIs(t, err, errInvalidNumber)

	a = defaultAnswers("Legs")
	a.Rest = "a while"
	_, err = a.options()
	assert.ErrorIs(t, err, errInvalidNumber)
}

func TestPlayHeadlessInterrupted(t *testing.T) {
	orig := config.Stdin
	config.Stdin = strings.NewReader("")

	t.Cleanup(func() {
		config.Stdin = orig
	})

	l, out := newTestLibrary(t)
	l.cfg.Sound.Enabled = false
	l.cfg.Notifications.Enabled = false
	// fails if the finish command runs
	l.cfg.Settings.Cmd = "false"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, l.playHeadless(ctx, workout.FromModel(tabataRecord())))
	assert.NotContains(t, out.String(), "finished in")

	empty := workout.FromModel(&models.Workout{ID: 1, Name: "Empty"})
	assert.Error(t, l.playHeadless(context.Background(), empty))
}
