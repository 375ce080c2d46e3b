package store

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/interval/internal/models"
)

func workout(id int64, name string) models.Workout {
	return models.Workout{
		ID:   id,
		Name: name,
		Blocks: []models.Block{
			{
				ID:   id + 1,
				Sets: 3,
				SubBlocks: []models.SubBlock{
					{ID: id + 2, Label: "Work", Duration: 20, Color: "#ff0000"},
					{ID: id + 3, Label: "Rest", Duration: 10, Color: "#00ff00"},
				},
			},
		},
	}
}

func openTestDB(t *testing.T, driver string, log *slog.Logger) *Store {
	t.Helper()

	s, err := Open(driver, filepath.Join(t.TempDir(), "interval.db"), log)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

var drivers = []string{DriverBolt, DriverSQLite}

func names(t *testing.T, s *Store) []string {
	t.Helper()

	workouts, err := s.Workouts()
	require.NoError(t, err)

	out := []string{}
	for _, w := range workouts {
		out = append(out, w.Name)
	}

	return out
}

func TestEmptyCollection(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := openTestDB(t, driver, nil)

			workouts, err := s.Workouts()
			require.NoError(t, err)
			assert.Empty(t, workouts)
		})
	}
}

func TestSaveWorkout(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := openTestDB(t, driver, nil)

			a, b := workout(100, "Tabata"), workout(200, "Legs")

			require.NoError(t, s.SaveWorkout(&a))
			require.NoError(t, s.SaveWorkout(&b))
			assert.Equal(t, []string{"Tabata", "Legs"}, names(t, s))

			a.Name = "Tabata x2"
			a.Blocks[0].Sets = 6
			require.NoError(t, s.SaveWorkout(&a))
			assert.Equal(t, []string{"Tabata x2", "Legs"}, names(t, s))

			got, err := s.Workouts()
			require.NoError(t, err)

			if diff := cmp.Diff([]models.Workout{a, b}, got); diff != "" {
				t.Errorf("stored workouts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteWorkout(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := openTestDB(t, driver, nil)

			require.NoError(t, s.ReplaceWorkouts([]models.Workout{
				workout(1, "a"),
				workout(10, "b"),
				workout(20, "c"),
			}))

			require.NoError(t, s.DeleteWorkout(10))
			assert.Equal(t, []string{"a", "c"}, names(t, s))

			require.NoError(t, s.DeleteWorkout(12345))
			assert.Equal(t, []string{"a", "c"}, names(t, s))

			require.NoError(t, s.DeleteWorkout(1))
			require.NoError(t, s.DeleteWorkout(20))
			assert.Empty(t, names(t, s))
		})
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "interval.db")

			s, err := Open(driver, path, nil)
			require.NoError(t, err)

			w := workout(7, "Core")
			require.NoError(t, s.SaveWorkout(&w))
			require.NoError(t, s.Close())

			s, err = Open(driver, path, nil)
			require.NoError(t, err)

			defer s.Close()

			got, err := s.Workouts()
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, w, got[0])
		})
	}
}

func TestMalformedDataIsEmpty(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			var logs bytes.Buffer

			s := openTestDB(t, driver, slog.New(slog.NewTextHandler(&logs, nil)))

			err := s.b.update(workoutsKey, func([]byte) ([]byte, error) {
				return []byte(`{"not":"a list"`), nil
			})
			require.NoError(t, err)

			workouts, err := s.Workouts()
			require.NoError(t, err)
			assert.Empty(t, workouts)
			assert.Contains(t, logs.String(), "ignoring malformed workout data")

			w := workout(1, "fresh")
			require.NoError(t, s.SaveWorkout(&w))
			assert.Equal(t, []string{"fresh"}, names(t, s))
		})
	}
}

func TestUnknownDriver(t *testing.T) {
	_, err := Open("mongo", filepath.Join(t.TempDir(), "x.db"), nil)
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interval.db")

	s, err := Open(DriverBolt, path, nil)
	require.NoError(t, err)

	defer s.Close()

	_, err = Open(DriverBolt, path, nil)
	assert.ErrorIs(t, err, errDBLocked)
}

func TestBoltMigratesWorkoutBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interval.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte(workoutsKey))
		if err != nil {
			return err
		}

		if err := b.Put([]byte("1"), []byte(`{"id":1,"name":"first","blocks":[]}`)); err != nil {
			return err
		}

		return b.Put([]byte("2"), []byte(`{"id":2,"name":"second","blocks":[]}`))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(DriverBolt, path, nil)
	require.NoError(t, err)

	defer s.Close()

	assert.Equal(t, []string{"first", "second"}, names(t, s))

	client, ok := s.b.(*BoltClient)
	require.True(t, ok)

	err = client.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket([]byte(workoutsKey)))
		assert.Equal(t, uint64(len(migrations)), schemaVersion(tx))

		return nil
	})
	require.NoError(t, err)
}

func TestBoltNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interval.db")

	s, err := Open(DriverBolt, path, nil)
	require.NoError(t, err)

	client := s.b.(*BoltClient)

	err = client.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(metaBucket)).Put(
			[]byte(versionKey),
			[]byte{0, 0, 0, 0, 0, 0, 0, 99},
		)
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(DriverBolt, path, nil)
	assert.ErrorIs(t, err, errNewerSchema)
}
