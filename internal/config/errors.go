package config

import "github.com/ayoisaiah/interval/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid tick interval %q",
	}

	errInvalidTick = &apperr.Error{
		Message: "tick interval (%v) must be between %v and %v",
	}

	errInvalidDriver = &apperr.Error{
		Message: "unknown storage driver %q (must be bolt or sqlite)",
	}

	errEmptySound = &apperr.Error{
		Message: "cue sound cannot be empty: set sound.enabled to false to mute cues",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown sound: %s (built-in sounds: %s)",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}
)
