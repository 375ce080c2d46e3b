package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/interval/internal/static"
)

var (
	minTickInterval = 10 * time.Millisecond
	maxTickInterval = 500 * time.Millisecond

	drivers   = []string{"bolt", "sqlite"}
	soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Playback.TickInterval < minTickInterval ||
		c.Playback.TickInterval > maxTickInterval {
		return errInvalidTick.Fmt(
			c.Playback.TickInterval,
			minTickInterval,
			maxTickInterval,
		)
	}

	if !slices.Contains(drivers, c.Storage.Driver) {
		return errInvalidDriver.Fmt(c.Storage.Driver)
	}

	if !c.Sound.Enabled {
		return nil
	}

	if err := validateSound(c.Sound.TickCue); err != nil {
		return err
	}

	return validateSound(c.Sound.LongCue)
}

// validateSound accepts a built-in sound name or a path to an audio file.
func validateSound(sound string) error {
	if sound == "" {
		return errEmptySound
	}

	ext := filepath.Ext(sound)
	if ext == "" {
		if !static.IsSound(sound) {
			return errUnknownSound.Fmt(sound, strings.Join(static.Sounds(), ", "))
		}

		return nil
	}

	if !slices.Contains(soundExts, strings.ToLower(ext)) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	if _, err := os.Stat(sound); errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return nil
}

// parseDuration accepts a duration string, or a plain number of
// milliseconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "ms")
}
