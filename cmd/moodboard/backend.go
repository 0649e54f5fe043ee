package main

import (
	"fmt"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/internal/repository"
	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/pkg/config"
)

const (
	backendPostgres = "postgres"
	backendRedis    = "redis"
	backendSQLite   = "sqlite"
	backendMemory   = "memory"
)

// newRepository opens the entry store named by backend.
// Local stores get local-style ids, the hosted one keeps uuids.
func newRepository(cfg *config.Config, backend string) (repository.MoodEntriesRepositoryI, []service.Option, error) {
	localIDs := []service.Option{service.WithIDGenerator(repository.GenerateLocalID)}
	switch backend {
	case backendPostgres:
		return repository.NewMoodEntriesRepo(postgresConfig(cfg)), nil, nil
	case backendRedis:
		kv := repository.NewRedisKV(&repository.RedisCfg{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return repository.NewLocalEntriesRepo(kv), localIDs, nil
	case backendSQLite:
		return repository.NewLocalEntriesRepo(repository.NewSQLiteKV(cfg.SQLitePath)), localIDs, nil
	case backendMemory:
		return repository.NewLocalEntriesRepo(repository.NewMemoryKV()), localIDs, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownStore, backend)
	}
}

func postgresConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
		SSLMode:  cfg.Postgres.SSLMode,
	}
}
