package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/interval/internal/config"
)

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "interval", "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	for _, want := range []string{
		"tick_interval: 100ms",
		"tick_cue: beep",
		"long_cue: beep_long",
		"driver: bolt",
		"24hr_clock: false",
	} {
		assert.Contains(t, string(b), want)
	}

	// reading back the written file gives the same config
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := `playback:
  tick_interval: 250ms
sound:
  enabled: false
  long_cue: gong
notifications:
  enabled: false
settings:
  cmd: notify-send done
  24hr_clock: true
storage:
  driver: sqlite
`

	require.NoError(t, os.WriteFile(configPath, []byte(modified), 0o644))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Playback: config.PlaybackConfig{
			TickInterval: 250 * time.Millisecond,
		},
		Sound: config.SoundConfig{
			Enabled: false,
			TickCue: "beep",
			LongCue: "gong",
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Settings: config.SettingsConfig{
			Cmd:            "notify-send done",
			TwentyFourHour: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Storage: config.StorageConfig{
			Driver: "sqlite",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestValidate(t *testing.T) {
	soundFile := filepath.Join(t.TempDir(), "cue.mp3")
	require.NoError(t, os.WriteFile(soundFile, nil, 0o644))

	testCases := []struct {
		modify  func(c *config.Config)
		name    string
		wantErr bool
	}{
		{name: "defaults", modify: func(*config.Config) {}},
		{
			name:    "tick too fast",
			modify:  func(c *config.Config) { c.Playback.TickInterval = time.Millisecond },
			wantErr: true,
		},
		{
			name:    "tick too slow",
			modify:  func(c *config.Config) { c.Playback.TickInterval = 2 * time.Second },
			wantErr: true,
		},
		{
			name:   "tick at upper bound",
			modify: func(c *config.Config) { c.Playback.TickInterval = 500 * time.Millisecond },
		},
		{
			name:    "tick once a second",
			modify:  func(c *config.Config) { c.Playback.TickInterval = time.Second },
			wantErr: true,
		},
		{
			name:    "unknown driver",
			modify:  func(c *config.Config) { c.Storage.Driver = "mongo" },
			wantErr: true,
		},
		{
			name:    "unknown built-in sound",
			modify:  func(c *config.Config) { c.Sound.TickCue = "gong" },
			wantErr: true,
		},
		{
			name: "unknown sound while muted",
			modify: func(c *config.Config) {
				c.Sound.TickCue = "gong"
				c.Sound.Enabled = false
			},
		},
		{
			name:   "sound file",
			modify: func(c *config.Config) { c.Sound.LongCue = soundFile },
		},
		{
			name:    "missing sound file",
			modify:  func(c *config.Config) { c.Sound.LongCue = soundFile + ".ogg" },
			wantErr: true,
		},
		{
			name:    "unsupported sound format",
			modify:  func(c *config.Config) { c.Sound.LongCue = "cue.aiff" },
			wantErr: true,
		},
		{
			name:    "empty sound",
			modify:  func(c *config.Config) { c.Sound.TickCue = "" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func runCLI(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	var (
		cfg    *config.Config
		cfgErr error
	)

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tick"},
			&cli.StringFlag{Name: "cmd"},
			&cli.StringFlag{Name: "db-driver"},
			&cli.BoolFlag{Name: "mute"},
			&cli.BoolFlag{Name: "disable-notification"},
			&cli.BoolFlag{Name: "no-color"},
		},
		Action: func(ctx *cli.Context) error {
			cfg, cfgErr = config.New(config.WithCLIConfig(ctx))
			return nil
		},
	}

	require.NoError(t, app.Run(append([]string{"interval"}, args...)))

	return cfg, cfgErr
}

func TestCLIConfig(t *testing.T) {
	cfg, err := runCLI(
		t,
		"--tick", "250ms",
		"--cmd", "say done",
		"--db-driver", "sqlite",
		"--mute",
		"--disable-notification",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, "say done", cfg.Settings.Cmd)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.False(t, cfg.Sound.Enabled)
	assert.False(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Display.NoColor)

	cfg, err = runCLI(t, "--tick", "500")
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Playback.TickInterval)

	cfg, err = runCLI(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestCLIConfigErrors(t *testing.T) {
	_, err := runCLI(t, "--tick", "soon")
	assert.Error(t, err)

	_, err = runCLI(t, "--tick", "5s")
	assert.Error(t, err)
}
