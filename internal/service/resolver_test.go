package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/pkg/entity"
)

func fixedID(id string) func() string {
	return func() string { return id }
}

func TestResolveUpsert(t *testing.T) {
	created := today.Add(-2 * time.Hour)
	stored := morning("m-1", "Alice", "2024-01-01")
	stored.CreatedAt = created
	stored.UpdatedAt = created
	entries := []*entity.MoodEntry{
		evening("e-1", "Alice", "2024-01-01", 4),
		stored,
	}

	t.Run("match updates details only", func(t *testing.T) {
		candidate := &entity.MoodEntry{
			PersonName: "alice",
			EntryDate:  "2024-01-01",
			Details:    entity.MorningDetails{PredictedMood: "🙂", EnergyLevel: 2, MoodColor: "#3b82f6"},
		}
		res := service.ResolveUpsert(candidate, entries, today, fixedID("unused"))
		require.True(t, res.Existing)
		assert.Equal(t, "m-1", res.Entry.ID)
		assert.Equal(t, "Alice", res.Entry.PersonName)
		assert.Equal(t, created, res.Entry.CreatedAt)
		assert.Equal(t, today, res.Entry.UpdatedAt)
		assert.Equal(t, candidate.Details, res.Entry.Details)
		// stored entries stay untouched
		assert.Equal(t, created, stored.UpdatedAt)
		details, _ := stored.Morning()
		assert.Equal(t, 4, details.EnergyLevel)
	})
	t.Run("other type on same day is new", func(t *testing.T) {
		candidate := evening("", "Bob", "2024-01-01", 5)
		res := service.ResolveUpsert(candidate, entries, today, fixedID("new-1"))
		assert.False(t, res.Existing)
		assert.Equal(t, "new-1", res.Entry.ID)
		assert.Equal(t, today, res.Entry.CreatedAt)
		assert.Equal(t, today, res.Entry.UpdatedAt)
	})
	t.Run("other day is new", func(t *testing.T) {
		candidate := morning("", "Alice", "2024-01-02")
		res := service.ResolveUpsert(candidate, entries, today, fixedID("new-2"))
		assert.False(t, res.Existing)
		assert.Equal(t, "new-2", res.Entry.ID)
		assert.Equal(t, entity.Date("2024-01-02"), res.Entry.EntryDate)
	})
	t.Run("empty collection", func(t *testing.T) {
		res := service.ResolveUpsert(morning("", "Alice", "2024-01-01"), nil, today, fixedID("new-3"))
		assert.False(t, res.Existing)
		assert.Equal(t, "new-3", res.Entry.ID)
	})
	t.Run("deterministic", func(t *testing.T) {
		candidate := morning("", "ALICE", "2024-01-01")
		first := service.ResolveUpsert(candidate, entries, today, fixedID("x"))
		second := service.ResolveUpsert(candidate, entries, today, fixedID("x"))
		assert.Equal(t, first, second)
	})
}

func TestSameIdentity(t *testing.T) {
	assert.True(t, service.SameIdentity(morning("", "Élodie", "2024-01-01"), morning("", "élodie", "2024-01-01")))
	assert.False(t, service.SameIdentity(morning("", "Alice", "2024-01-01"), evening("", "Alice", "2024-01-01", 3)))
	assert.False(t, service.SameIdentity(morning("", "Alice", "2024-01-01"), morning("", "Alicia", "2024-01-01")))
}
