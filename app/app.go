package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/workout"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func blockCommand() *cli.Command {
	return &cli.Command{
		Name:  "block",
		Usage: "Add, remove or reorder the blocks of a workout",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append an empty block",
				ArgsUsage: "<workout>",
				Flags:     []cli.Flag{setsFlag},
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					return addBlock(ctx.Int("sets")), nil
				}),
			},
			{
				Name:      "rm",
				Usage:     "Remove a block and its steps",
				ArgsUsage: "<workout> <block>",
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block")
					if err != nil {
						return nil, err
					}

					return removeBlock(a[0]), nil
				}),
			},
			{
				Name:      "move",
				Usage:     "Move a block to another position",
				ArgsUsage: "<workout> <from> <to>",
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "from", "to")
					if err != nil {
						return nil, err
					}

					return moveBlock(a[0], a[1]), nil
				}),
			},
			{
				Name:      "sets",
				Usage:     "Change how many times a block is repeated",
				ArgsUsage: "<workout> <block> <sets>",
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block", "sets")
					if err != nil {
						return nil, err
					}

					return setBlockSets(a[0], a[1]), nil
				}),
			},
		},
	}
}

func stepCommand() *cli.Command {
	return &cli.Command{
		Name:  "step",
		Usage: "Add, remove, reorder or change the steps of a block",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append a step to a block",
				ArgsUsage: "<workout> <block>",
				Flags:     []cli.Flag{labelFlag, durationFlag, colorFlag},
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block")
					if err != nil {
						return nil, err
					}

					return addStep(a[0], stepChangeFromFlags(ctx)), nil
				}),
			},
			{
				Name:      "rm",
				Usage:     "Remove a step",
				ArgsUsage: "<workout> <block> <step>",
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block", "step")
					if err != nil {
						return nil, err
					}

					return removeStep(a[0], a[1]), nil
				}),
			},
			{
				Name:      "move",
				Usage:     "Move a step within its block",
				ArgsUsage: "<workout> <block> <from> <to>",
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block", "from", "to")
					if err != nil {
						return nil, err
					}

					return moveStep(a[0], a[1], a[2]), nil
				}),
			},
			{
				Name:      "set",
				Usage:     "Change the label, duration or colour of a step",
				ArgsUsage: "<workout> <block> <step>",
				Flags:     []cli.Flag{labelFlag, durationFlag, colorFlag},
				Action: editAction(func(ctx *cli.Context) (func(*workout.Workout) error, error) {
					a, err := args(ctx, "block", "step")
					if err != nil {
						return nil, err
					}

					return updateStep(a[0], a[1], stepChangeFromFlags(ctx)), nil
				}),
			},
		},
	}
}

// Get retrieves the interval app instance.
func Get() *cli.App {
	intervalApp := &cli.App{
		Name: "interval",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Interval is a workout timer for the command-line. A workout is a list of
		blocks, each made of timed steps and repeated for a number of sets.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "Play a workout. Asks which one if none is given",
				ArgsUsage: "[workout]",
				Flags:     []cli.Flag{headlessFlag},
				Action:    withLibrary(playAction),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the saved workouts",
				Flags:   []cli.Flag{jsonFlag},
				Action:  withLibrary(listAction),
			},
			{
				Name:      "show",
				Usage:     "Print the blocks of a workout and the order its steps are played in",
				ArgsUsage: "<workout>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    withLibrary(showAction),
			},
			{
				Name:      "new",
				Usage:     "Create a workout",
				ArgsUsage: "[name]",
				Flags:     []cli.Flag{nameFlag, templateFlag},
				Action:    withLibrary(newAction),
			},
			{
				Name:      "rename",
				Usage:     "Rename a workout",
				ArgsUsage: "<workout> <name>",
				Action:    withLibrary(renameAction),
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a workout",
				ArgsUsage: "<workout>",
				Flags:     []cli.Flag{yesFlag},
				Action:    withLibrary(deleteAction),
			},
			blockCommand(),
			stepCommand(),
			{
				Name:      "export",
				Usage:     "Write a workout as JSON to a file or the standard output",
				ArgsUsage: "<workout> [file]",
				Action:    withLibrary(exportAction),
			},
			{
				Name:      "import",
				Usage:     "Save the workouts in a JSON file",
				ArgsUsage: "<file>",
				Action:    withLibrary(importAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			tickFlag,
			muteFlag,
			disableNotificationFlag,
			cmdFlag,
			noColorFlag,
			dbDriverFlag,
		},
		Action: withLibrary(playAction),
		Before: beforeAction,
		After:  afterAction,
	}

	return intervalApp
}
