package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/interval/internal/osutil"
)

const (
	keyTickInterval         = "playback.tick_interval"
	keySoundEnabled         = "sound.enabled"
	keyTickCue              = "sound.tick_cue"
	keyLongCue              = "sound.long_cue"
	keyNotificationsEnabled = "notifications.enabled"
	keyCmd                  = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyStorageDriver        = "storage.driver"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setDefaults seeds viper with the current values of c, so that options
// applied earlier (such as the first run prompt) end up in the written file.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault(keyTickInterval, c.Playback.TickInterval.String())
	v.SetDefault(keySoundEnabled, c.Sound.Enabled)
	v.SetDefault(keyTickCue, c.Sound.TickCue)
	v.SetDefault(keyLongCue, c.Sound.LongCue)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyCmd, c.Settings.Cmd)
	v.SetDefault(keyTwentyFourHour, c.Settings.TwentyFourHour)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyStorageDriver, c.Storage.Driver)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
