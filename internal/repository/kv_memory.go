package repository

import (
	"context"
	"sync"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
)

// MemoryKV is a process local KVStore, used for development runs and tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

func (mkv *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	mkv.mu.RLock()
	defer mkv.mu.RUnlock()
	value, ok := mkv.values[key]
	if !ok {
		return nil, errorvalues.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (mkv *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	mkv.mu.Lock()
	defer mkv.mu.Unlock()
	mkv.values[key] = append([]byte(nil), value...)
	return nil
}
