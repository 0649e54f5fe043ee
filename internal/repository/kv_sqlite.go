package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	_ "github.com/mattn/go-sqlite3"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/pkg/cleanup"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteKV is a single table key-value store in a local sqlite file.
type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(path string) *SQLiteKV {
	kv, err := OpenSQLiteKV(path)
	if err != nil {
		log.Fatal(err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite kv store",
		F:    kv.Close,
	})
	return kv
}

func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.New("opening sqlite kv store error: " + err.Error())
	}
	// in-memory databases live per connection
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, errors.New("initializing sqlite kv schema error: " + err.Error())
	}
	return &SQLiteKV{db: db}, nil
}

func (skv *SQLiteKV) Close() error {
	return skv.db.Close()
}

func (skv *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := skv.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrKeyNotFound
		}
		return nil, errors.New("sqlite get error: " + err.Error())
	}
	return value, nil
}

func (skv *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := skv.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		key, value,
	)
	if err != nil {
		return errors.New("sqlite set error: " + err.Error())
	}
	return nil
}
