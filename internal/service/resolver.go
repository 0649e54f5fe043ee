package service

import (
	"strings"
	"time"

	"github.com/limbo/moodboard/pkg/entity"
)

// Resolution is the outcome of matching a candidate against stored entries.
type Resolution struct {
	Entry *entity.MoodEntry
	// Existing is true when Entry replaces a stored record with the same identity
	Existing bool
}

// SameIdentity reports whether a and b are entries of the same person, day and type.
// Person names compare case-insensitively.
func SameIdentity(a, b *entity.MoodEntry) bool {
	return strings.EqualFold(a.PersonName, b.PersonName) &&
		a.EntryDate == b.EntryDate &&
		a.Type() == b.Type()
}

// FindByIdentity returns the first entry sharing candidate's identity, or nil.
func FindByIdentity(candidate *entity.MoodEntry, entries []*entity.MoodEntry) *entity.MoodEntry {
	for _, e := range entries {
		if e != nil && SameIdentity(candidate, e) {
			return e
		}
	}
	return nil
}

// ResolveUpsert decides between insert and update without touching any store.
// On a match the stored identity, id and creation time are kept and only details and
// UpdatedAt change. Otherwise a new entry gets newID() and now for both timestamps.
func ResolveUpsert(candidate *entity.MoodEntry, entries []*entity.MoodEntry, now time.Time, newID func() string) Resolution {
	if existing := FindByIdentity(candidate, entries); existing != nil {
		updated := *existing
		updated.Details = candidate.Details
		updated.UpdatedAt = now
		return Resolution{Entry: &updated, Existing: true}
	}
	created := *candidate
	created.ID = newID()
	created.CreatedAt = now
	created.UpdatedAt = now
	return Resolution{Entry: &created}
}
