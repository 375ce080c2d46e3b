package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "modernc.org/sqlite"
)

// sqliteSchemaVersion is stored in PRAGMA user_version.
const sqliteSchemaVersion = 1

// SQLiteClient is a SQLite database client. Values live in a single
// key/value table so both drivers share one storage layout.
type SQLiteClient struct {
	db *sql.DB
}

func openSQLite(path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errOpenDB.Fmt(path).Wrap(err)
	}

	// a single connection serialises writers
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 1000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errOpenDB.Fmt(path).Wrap(err)
		}
	}

	c := &SQLiteClient{db: db}

	if err := c.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

func (c *SQLiteClient) migrate() error {
	var version int

	if err := c.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return c.wrap(err)
	}

	if version > sqliteSchemaVersion {
		return errNewerSchema.Fmt(version, sqliteSchemaVersion)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);

		PRAGMA user_version = 1;
	`

	if _, err := c.db.Exec(schema); err != nil {
		return c.wrap(err)
	}

	return nil
}

func (c *SQLiteClient) wrap(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "database is locked") {
		return errDBLocked
	}

	return err
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q queryer, key string) ([]byte, error) {
	var value []byte

	err := q.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return value, err
}

func (c *SQLiteClient) view(key string, fn func([]byte) error) error {
	value, err := get(context.Background(), c.db, key)
	if err != nil {
		return c.wrap(err)
	}

	return fn(value)
}

func (c *SQLiteClient) update(key string, fn func([]byte) ([]byte, error)) error {
	ctx := context.Background()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return c.wrap(err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	value, err := get(ctx, tx, key)
	if err != nil {
		return c.wrap(err)
	}

	value, err = fn(value)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)
	if err != nil {
		return c.wrap(err)
	}

	return c.wrap(tx.Commit())
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
