package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗███╗   ██╗████████╗███████╗██████╗ ██╗   ██╗ █████╗ ██╗
██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗██║   ██║██╔══██╗██║
██║██╔██╗ ██║   ██║   █████╗  ██████╔╝██║   ██║███████║██║
██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗╚██╗ ██╔╝██╔══██║██║
██║██║ ╚████║   ██║   ███████╗██║  ██║ ╚████╔╝ ██║  ██║███████╗
╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝  ╚═══╝  ╚═╝  ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Driver       string
	TickInterval int // milliseconds
	Sound        bool
	Notify       bool
}

// WithPromptConfig returns an Option that asks for the main settings on the
// first run, before the config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Sound:  true,
		Notify: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure interval for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'interval edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a beep during the last seconds of each step?").
				Value(&opts.Sound),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a workout ends?").
				Value(&opts.Notify),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Countdown refresh rate").
				Options(
					huh.NewOption("10 times a second", 100).Selected(true),
					huh.NewOption("4 times a second", 250),
					huh.NewOption("Twice a second", 500),
				).
				Value(&opts.TickInterval),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("bbolt", "bolt").Selected(true),
					huh.NewOption("SQLite", "sqlite"),
				).
				Value(&opts.Driver),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Sound.Enabled = opts.Sound
	c.Notifications.Enabled = opts.Notify

	if opts.TickInterval > 0 {
		c.Playback.TickInterval = time.Duration(opts.TickInterval) * time.Millisecond
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}
}
