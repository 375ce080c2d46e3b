package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dataBucket = "data"
	metaBucket = "meta"
)

// BoltClient is a bbolt database client.
type BoltClient struct {
	*bolt.DB
}

func (c *BoltClient) view(key string, fn func([]byte) error) error {
	return c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(dataBucket)).Get([]byte(key))

		// bbolt values are only valid for the life of the transaction
		return fn(append([]byte(nil), v...))
	})
}

func (c *BoltClient) update(key string, fn func([]byte) ([]byte, error)) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(dataBucket))

		v, err := fn(append([]byte(nil), b.Get([]byte(key))...))
		if err != nil {
			return err
		}

		return b.Put([]byte(key), v)
	})
}

// openBolt creates or opens a database and locks it.
func openBolt(path string) (*BoltClient, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDBLocked
		}

		return nil, errOpenDB.Fmt(path).Wrap(err)
	}

	c := &BoltClient{db}

	if err := db.Update(c.migrate); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
