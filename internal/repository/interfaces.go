package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/moodboard/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . MoodEntriesRepositoryI

type MoodEntriesRepositoryI interface {
	// Stores a new entry. ID, CreatedAt and UpdatedAt must already be set
	Insert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error)
	// Replaces variant fields and updated_at of the entry with id
	Update(ctx context.Context, id string, entry *entity.MoodEntry) (*entity.MoodEntry, error)
	// Lists every stored entry, most recent entry_date first, then most recent created_at
	ListAll(ctx context.Context) ([]*entity.MoodEntry, error)
}

// KVStore is a flat key-value storage, the server side counterpart of browser local storage.
type KVStore interface {
	// Returns ErrKeyNotFound when nothing is stored under key
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
