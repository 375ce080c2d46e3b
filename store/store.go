package store

import (
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/ayoisaiah/interval/internal/models"
)

// Store is a DB backed by bbolt or SQLite.
type Store struct {
	b   backend
	log *slog.Logger
}

var _ DB = (*Store)(nil)

// decode parses a stored collection. Malformed data yields an empty
// collection so that the app can still start.
func (s *Store) decode(value []byte) []models.Workout {
	if len(value) == 0 {
		return nil
	}

	var workouts []models.Workout

	if err := json.Unmarshal(value, &workouts); err != nil {
		s.log.Error(
			"ignoring malformed workout data",
			slog.Int("bytes", len(value)),
			slog.Any("error", err),
		)

		return nil
	}

	return workouts
}

func (s *Store) Workouts() ([]models.Workout, error) {
	var workouts []models.Workout

	err := s.b.view(workoutsKey, func(value []byte) error {
		workouts = s.decode(value)
		return nil
	})

	return workouts, err
}

// modify reads the collection, applies fn and writes the result back.
func (s *Store) modify(fn func([]models.Workout) []models.Workout) error {
	return s.b.update(workoutsKey, func(value []byte) ([]byte, error) {
		workouts := fn(s.decode(value))
		if workouts == nil {
			workouts = []models.Workout{}
		}

		return json.Marshal(workouts)
	})
}

func (s *Store) ReplaceWorkouts(workouts []models.Workout) error {
	return s.modify(func([]models.Workout) []models.Workout {
		return workouts
	})
}

func (s *Store) SaveWorkout(w *models.Workout) error {
	return s.modify(func(workouts []models.Workout) []models.Workout {
		i := slices.IndexFunc(workouts, func(v models.Workout) bool {
			return v.ID == w.ID
		})

		if i == -1 {
			return append(workouts, *w)
		}

		workouts[i] = *w

		return workouts
	})
}

func (s *Store) DeleteWorkout(id int64) error {
	return s.modify(func(workouts []models.Workout) []models.Workout {
		return slices.DeleteFunc(workouts, func(v models.Workout) bool {
			return v.ID == id
		})
	})
}

func (s *Store) Close() error {
	return s.b.Close()
}
