package service

import (
	"iter"
	"slices"
	"strings"

	"github.com/limbo/moodboard/pkg/entity"
)

const RecentEntriesLimit = 10

// RecentEntries yields at most limit entries, newest day first and morning before
// evening within a day. The order among equal keys is the order of entries.
// Every iteration sorts a fresh copy, so the sequence can be ranged over again.
// Entries with a malformed date are left out.
func RecentEntries(entries []*entity.MoodEntry, limit int) iter.Seq[*entity.MoodEntry] {
	return func(yield func(*entity.MoodEntry) bool) {
		if limit <= 0 {
			return
		}
		sorted := make([]*entity.MoodEntry, 0, len(entries))
		for _, e := range entries {
			if e != nil && e.EntryDate.Valid() {
				sorted = append(sorted, e)
			}
		}
		slices.SortStableFunc(sorted, compareRecent)
		for i, e := range sorted {
			if i >= limit || !yield(e) {
				return
			}
		}
	}
}

func compareRecent(a, b *entity.MoodEntry) int {
	if c := strings.Compare(b.EntryDate.String(), a.EntryDate.String()); c != 0 {
		return c
	}
	return typeRank(a) - typeRank(b)
}

func typeRank(e *entity.MoodEntry) int {
	switch e.Type() {
	case entity.EntryTypeMorning:
		return 0
	case entity.EntryTypeEvening:
		return 1
	default:
		return 2
	}
}

// FilterByDate returns entries of the given day, in no particular order.
func FilterByDate(entries []*entity.MoodEntry, date entity.Date) []*entity.MoodEntry {
	result := make([]*entity.MoodEntry, 0)
	for _, e := range entries {
		if e != nil && e.EntryDate == date {
			result = append(result, e)
		}
	}
	return result
}

// FilterByPerson returns entries whose person name matches name ignoring case.
func FilterByPerson(entries []*entity.MoodEntry, name string) []*entity.MoodEntry {
	result := make([]*entity.MoodEntry, 0)
	for _, e := range entries {
		if e != nil && strings.EqualFold(e.PersonName, name) {
			result = append(result, e)
		}
	}
	return result
}
