package store

import (
	"encoding/binary"
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

const versionKey = "schema_version"

// migrations upgrade a bbolt database one schema version at a time. The
// database is at version len(migrations) once they have all run.
var migrations = []func(tx *bolt.Tx) error{
	createBuckets,
	mergeWorkoutBucket,
}

func createBuckets(tx *bolt.Tx) error {
	for _, name := range []string{dataBucket, metaBucket} {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return err
		}
	}

	return nil
}

// mergeWorkoutBucket moves workouts stored one per key in a "workouts"
// bucket into the single collection value.
func mergeWorkoutBucket(tx *bolt.Tx) error {
	old := tx.Bucket([]byte(workoutsKey))
	if old == nil {
		return nil
	}

	var workouts []json.RawMessage

	err := old.ForEach(func(k, v []byte) error {
		if _, err := strconv.ParseInt(string(k), 10, 64); err != nil {
			return nil
		}

		workouts = append(workouts, append(json.RawMessage(nil), v...))

		return nil
	})
	if err != nil {
		return err
	}

	if len(workouts) > 0 {
		b, err := json.Marshal(workouts)
		if err != nil {
			return err
		}

		err = tx.Bucket([]byte(dataBucket)).Put([]byte(workoutsKey), b)
		if err != nil {
			return err
		}
	}

	return tx.DeleteBucket([]byte(workoutsKey))
}

func schemaVersion(tx *bolt.Tx) uint64 {
	meta := tx.Bucket([]byte(metaBucket))
	if meta == nil {
		return 0
	}

	v := meta.Get([]byte(versionKey))
	if len(v) != 8 {
		return 0
	}

	return binary.BigEndian.Uint64(v)
}

func (c *BoltClient) migrate(tx *bolt.Tx) error {
	current := schemaVersion(tx)
	latest := uint64(len(migrations))

	if current > latest {
		return errNewerSchema.Fmt(current, latest)
	}

	for _, m := range migrations[current:] {
		if err := m(tx); err != nil {
			return err
		}
	}

	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, latest)

	return tx.Bucket([]byte(metaBucket)).Put([]byte(versionKey), v)
}
