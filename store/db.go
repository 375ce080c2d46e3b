// Package store persists the workout collection. The collection is kept as a
// single ordered list under one key and every save rewrites the whole list.
package store

import (
	"log/slog"

	"github.com/ayoisaiah/interval/internal/models"
)

// Storage drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// workoutsKey is the key the collection is stored under.
const workoutsKey = "workouts"

// DB is the database storage interface.
type DB interface {
	// Workouts returns the stored collection in order. Malformed data is
	// logged and reported as an empty collection.
	Workouts() ([]models.Workout, error)
	// ReplaceWorkouts overwrites the stored collection.
	ReplaceWorkouts(workouts []models.Workout) error
	// SaveWorkout replaces the stored workout with the same id, or appends w
	// if there is none.
	SaveWorkout(w *models.Workout) error
	// DeleteWorkout removes a workout. A missing id is not an error.
	DeleteWorkout(id int64) error
	// Close ends the database connection
	Close() error
}

// backend reads and writes the raw value of a single key.
type backend interface {
	// view calls fn with the current value of key, or nil if it is unset.
	view(key string, fn func(value []byte) error) error
	// update replaces the value of key with the result of fn in a single
	// transaction.
	update(key string, fn func(value []byte) ([]byte, error)) error
	Close() error
}

// Open opens the database at path with the named driver.
func Open(driver, path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	var (
		b   backend
		err error
	)

	switch driver {
	case DriverBolt, "":
		b, err = openBolt(path)
	case DriverSQLite:
		b, err = openSQLite(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	log.Debug(
		"database opened",
		slog.String("driver", driver),
		slog.String("path", path),
	)

	return &Store{b: b, log: log}, nil
}
