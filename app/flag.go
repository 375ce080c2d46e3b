package app

import "github.com/urfave/cli/v2"

var (
	tickFlag = &cli.StringFlag{
		Name:  "tick",
		Usage: "How often the countdown is refreshed, e.g. 250ms (default: 100ms)",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play the countdown beeps",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a workout is completed",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after a workout is completed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	dbDriverFlag = &cli.StringFlag{
		Name:  "db-driver",
		Usage: "Database used to store workouts: bolt or sqlite (default: bolt)",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Play without the full screen player, printing each step as it starts",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the new workout",
	}

	templateFlag = &cli.BoolFlag{
		Name:  "template",
		Usage: "Create the default workout instead of answering the prompts",
	}

	setsFlag = &cli.IntFlag{
		Name:    "sets",
		Aliases: []string{"s"},
		Usage:   "Number of times the block is repeated",
		Value:   1,
	}

	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Label shown while the step is playing",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"t"},
		Usage:   "Length of the step, e.g. 45s, 1m30s or 90",
	}

	colorFlag = &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "Background colour of the step as a hex value, e.g. #ff8800",
	}
)
