package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/internal/repository"
)

func testKVStore(t *testing.T, kv repository.KVStore) {
	ctx := context.Background()
	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, errorvalues.ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", []byte("first")))
	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), value)

	require.NoError(t, kv.Set(ctx, "k", []byte("second")))
	value, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)
}

func TestMemoryKV(t *testing.T) {
	testKVStore(t, repository.NewMemoryKV())
}

func TestSQLiteKV(t *testing.T) {
	kv, err := repository.OpenSQLiteKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	testKVStore(t, kv)

	t.Run("local repository on sqlite", func(t *testing.T) {
		ctx := context.Background()
		repo := repository.NewLocalEntriesRepo(kv)
		_, err := repo.Insert(ctx, morningEntry())
		require.NoError(t, err)
		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, *morningEntry(), *entries[0])
	})
}
