package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Cmd           string
	DBDriver      string
	Tick          string
	Mute          bool
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Tick:          ctx.String("tick"),
			Cmd:           ctx.String("cmd"),
			DBDriver:      ctx.String("db-driver"),
			Mute:          ctx.Bool("mute"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Tick != "" {
		d, err := parseDuration(opts.Tick)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Tick).Wrap(err)
		}

		c.Playback.TickInterval = d
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	if opts.DBDriver != "" {
		c.Storage.Driver = opts.DBDriver
	}

	if opts.Mute {
		c.Sound.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	return nil
}
