// Package hook runs the user's finish command and desktop notification when
// a workout ends.
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/interval/internal/apperr"
	"github.com/ayoisaiah/interval/internal/config"
)

var errParseCmd = &apperr.Error{
	Message: "unable to parse the finish command %q",
}

// Finished describes the workout that just ended.
type Finished struct {
	Name  string
	Total int // seconds
}

func (f Finished) env() []string {
	return append(
		os.Environ(),
		"INTERVAL_WORKOUT="+f.Name,
		"INTERVAL_TOTAL="+strconv.Itoa(f.Total),
	)
}

// Run executes command with the details of the finished workout in its
// environment. An empty command does nothing.
func Run(ctx context.Context, command string, f Finished) error {
	if command == "" {
		return nil
	}

	args, err := shellquote.Split(command)
	if err != nil {
		return errParseCmd.Fmt(command).Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = f.env()

	return cmd.Run()
}

// notify is replaced in tests.
var notify = beeep.Notify

// Notify shows a desktop notification for the finished workout.
func Notify(f Finished) error {
	return notify(
		"Workout complete",
		fmt.Sprintf("%s is finished. Great work!", f.Name),
		"",
	)
}

// Finish shows the completion notification when it is enabled and runs the
// configured finish command. A failed notification is only logged.
func Finish(ctx context.Context, cfg *config.Config, f Finished) error {
	if cfg.Notifications.Enabled {
		if err := Notify(f); err != nil {
			slog.Warn("unable to show notification", slog.Any("error", err))
		}
	}

	return Run(ctx, cfg.Settings.Cmd, f)
}
