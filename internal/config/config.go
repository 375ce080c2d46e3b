// Package config loads interval's settings from the config file and the
// command line
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Playback      PlaybackConfig     `mapstructure:"playback"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Storage       StorageConfig      `mapstructure:"storage"`
	}

	// PlaybackConfig holds playback settings
	PlaybackConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
	}

	// SoundConfig holds the cue sounds. A cue is a built-in sound name or a
	// path to an audio file.
	SoundConfig struct {
		TickCue string `mapstructure:"tick_cue"`
		LongCue string `mapstructure:"long_cue"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		NoColor   bool `mapstructure:"-"`
	}

	// StorageConfig selects the database driver
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			TickInterval: 100 * time.Millisecond,
		},
		Sound: SoundConfig{
			Enabled: true,
			TickCue: "beep",
			LongCue: "beep_long",
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Storage: StorageConfig{
			Driver: "bolt",
		},
	}
}
