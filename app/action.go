package app

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/osutil"
	"github.com/ayoisaiah/interval/internal/pathutil"
	"github.com/ayoisaiah/interval/internal/ui"
	"github.com/ayoisaiah/interval/internal/workout"
	"github.com/ayoisaiah/interval/report"
	"github.com/ayoisaiah/interval/store"
)

const (
	envNoColor         = "NO_COLOR"
	envIntervalNoColor = "INTERVAL_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// noColorEnv reports whether colour output is disabled in the environment.
func noColorEnv() bool {
	for _, env := range []string{envNoColor, envIntervalNoColor} {
		if _, exists := os.LookupEnv(env); exists {
			return true
		}
	}

	return false
}

// applyDisplay carries the display settings over to the output helpers.
func applyDisplay(cfg *config.Config) {
	if noColorEnv() {
		cfg.Display.NoColor = true
	}

	ui.DarkTheme = cfg.Display.DarkTheme
}

// loadConfig reads the configuration, asking for it first if this is the
// first run.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// openLibrary loads the configuration and opens the workout store it names.
func openLibrary(ctx *cli.Context) (*library, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	applyDisplay(cfg)

	db, err := store.Open(
		cfg.Storage.Driver,
		pathutil.DBFilePath(cfg.Storage.Driver),
		slog.Default(),
	)
	if err != nil {
		return nil, err
	}

	return &library{
		db:  db,
		cfg: cfg,
		out: config.Stdout,
	}, nil
}

// withLibrary adapts fn into an action that has the workout store open for
// its duration.
func withLibrary(fn func(*cli.Context, *library) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		l, err := openLibrary(ctx)
		if err != nil {
			return err
		}

		defer func() {
			if err := l.Close(); err != nil {
				slog.Error("unable to close database", slog.Any("error", err))
			}
		}()

		return fn(ctx, l)
	}
}

// arg returns the nth argument of the command or an error naming it.
func arg(ctx *cli.Context, n int, name string) (string, error) {
	if ctx.NArg() <= n {
		return "", errMissingArg.Fmt(name)
	}

	return ctx.Args().Get(n), nil
}

// playAction plays the named workout, or one picked from a list when no
// workout is named.
func playAction(ctx *cli.Context, l *library) error {
	wk, err := l.pickOrFind(ctx.Args().First())
	if err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"playing workout",
		slog.Int64("workout_id", wk.ID),
		slog.Bool("headless", ctx.Bool("headless")),
	)

	if ctx.Bool("headless") {
		return l.playHeadless(ctx.Context, wk)
	}

	return l.play(wk)
}

func listAction(ctx *cli.Context, l *library) error {
	return l.list(ctx.Bool("json"))
}

func showAction(ctx *cli.Context, l *library) error {
	ref, err := arg(ctx, 0, "workout")
	if err != nil {
		return err
	}

	return l.show(ref, ctx.Bool("json"))
}

// newAction creates a workout from the answers to a form, or the default
// template with --template.
func newAction(ctx *cli.Context, l *library) error {
	name := firstNonEmptyString(ctx.String("name"), ctx.Args().First())

	if ctx.Bool("template") {
		w := workout.NewTemplate(name)
		if err := l.save(w); err != nil {
			return err
		}

		report.WorkoutSaved(w.Name)

		return nil
	}

	opts, err := askInterval(name)
	if err != nil {
		return err
	}

	w := workout.NewInterval(opts)
	if err := l.save(w); err != nil {
		return err
	}

	report.WorkoutSaved(w.Name)

	return nil
}

func renameAction(ctx *cli.Context, l *library) error {
	ref, err := arg(ctx, 0, "workout")
	if err != nil {
		return err
	}

	name, err := arg(ctx, 1, "name")
	if err != nil {
		return err
	}

	w, err := l.rename(ref, name)
	if err != nil {
		return err
	}

	report.WorkoutSaved(w.Name)

	return nil
}

func deleteAction(ctx *cli.Context, l *library) error {
	ref, err := arg(ctx, 0, "workout")
	if err != nil {
		return err
	}

	w, err := l.find(ref)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		ok, err := confirm(pterm.Sprintf("Delete %s permanently?", w.Name))
		if err != nil || !ok {
			return err
		}
	}

	if err := l.remove(w); err != nil {
		return err
	}

	report.WorkoutDeleted(w.Name)

	return nil
}

func exportAction(ctx *cli.Context, l *library) error {
	ref, err := arg(ctx, 0, "workout")
	if err != nil {
		return err
	}

	return l.export(ref, ctx.Args().Get(1))
}

func importAction(ctx *cli.Context, l *library) error {
	path, err := arg(ctx, 0, "file")
	if err != nil {
		return err
	}

	n, err := l.importFile(path)
	if err != nil {
		return err
	}

	report.WorkoutImported(n)

	return nil
}

// editAction applies fn to the workout named by the first argument and
// saves it.
func editAction(fn func(ctx *cli.Context) (func(*workout.Workout) error, error)) cli.ActionFunc {
	return withLibrary(func(ctx *cli.Context, l *library) error {
		ref, err := arg(ctx, 0, "workout")
		if err != nil {
			return err
		}

		change, err := fn(ctx)
		if err != nil {
			return err
		}

		w, err := l.edit(ref, change)
		if err != nil {
			return err
		}

		report.WorkoutSaved(w.Name)

		return nil
	})
}

// args returns the arguments of the command after the workout, failing if
// any of the named ones is missing.
func args(ctx *cli.Context, names ...string) ([]string, error) {
	out := make([]string, len(names))

	for i, name := range names {
		v, err := arg(ctx, i+1, name)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func stepChangeFromFlags(ctx *cli.Context) stepChange {
	return stepChange{
		Label:    ctx.String("label"),
		Duration: ctx.String("duration"),
		Color:    ctx.String("color"),
	}
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if noColorEnv() || ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	logger, closer := newLogger(pathutil.LogFilePath())
	slog.SetDefault(logger)

	ctx.App.Metadata = map[string]any{"log": closer}

	slog.DebugContext(ctx.Context, "starting interval", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting interval")

	if c, ok := ctx.App.Metadata["log"].(io.Closer); ok {
		return c.Close()
	}

	return nil
}
