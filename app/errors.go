package app

import "github.com/ayoisaiah/interval/internal/apperr"

var (
	errWorkoutNotFound = &apperr.Error{
		Message: "no workout matches %q",
	}

	errAmbiguousWorkout = &apperr.Error{
		Message: "%q matches %d workouts: use the workout id instead",
	}

	errNoWorkouts = &apperr.Error{
		Message: "there are no saved workouts: create one with 'interval new'",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidIndex = &apperr.Error{
		Message: "invalid %s %q: must be a number between 1 and %d",
	}

	errInvalidNumber = &apperr.Error{
		Message: "invalid %s %q",
	}

	errEmptyName = &apperr.Error{
		Message: "workout name cannot be empty",
	}

	errReadImport = &apperr.Error{
		Message: "unable to read workouts from %s",
	}

	errWriteExport = &apperr.Error{
		Message: "unable to write workout to %s",
	}
)
