package hook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/interval/internal/config"
)

func TestRunEmpty(t *testing.T) {
	assert.NoError(t, Run(context.Background(), "", Finished{}))
	assert.NoError(t, Run(context.Background(), "   ", Finished{}))
}

func TestRunParseError(t *testing.T) {
	err := Run(context.Background(), `echo "unterminated`, Finished{})
	assert.ErrorIs(t, err, errParseCmd)
}

func TestRunEnvironment(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}

	out := filepath.Join(t.TempDir(), "out.txt")

	err := Run(
		context.Background(),
		`/bin/sh -c 'echo "$INTERVAL_WORKOUT:$INTERVAL_TOTAL" > "$0"' `+out,
		Finished{Name: "Leg day", Total: 125},
	)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Leg day:125", strings.TrimSpace(string(b)))
}

func TestNotify(t *testing.T) {
	var title, message string

	orig := notify
	notify = func(ti, msg, _ string) error {
		title, message = ti, msg
		return nil
	}

	t.Cleanup(func() { notify = orig })

	require.NoError(t, Notify(Finished{Name: "Tabata"}))
	assert.Equal(t, "Workout complete", title)
	assert.Contains(t, message, "Tabata")
}

func TestFinish(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}

	var notified []string

	orig := notify
	notify = func(_, msg, _ string) error {
		notified = append(notified, msg)
		return errors.New("no notification daemon")
	}

	t.Cleanup(func() { notify = orig })

	out := filepath.Join(t.TempDir(), "out.txt")

	cfg := config.Default()
	cfg.Notifications.Enabled = true
	cfg.Settings.Cmd = `/bin/sh -c 'echo "$INTERVAL_WORKOUT" >> "$0"' ` + out

	// a failed notification does not stop the finish command
	require.NoError(t, Finish(context.Background(), cfg, Finished{Name: "Tabata", Total: 250}))
	require.Len(t, notified, 1)

	cfg.Notifications.Enabled = false
	require.NoError(t, Finish(context.Background(), cfg, Finished{Name: "Legs", Total: 60}))
	assert.Len(t, notified, 1)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Tabata\nLegs", strings.TrimSpace(string(b)))

	cfg.Settings.Cmd = "false"
	assert.Error(t, Finish(context.Background(), cfg, Finished{Name: "Legs"}))
}
