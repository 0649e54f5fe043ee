package service

import (
	"sort"
	"time"

	"github.com/limbo/moodboard/pkg/entity"
)

const weeklyWindowDays = 7

// WeeklyAverage is the mean satisfaction of evening entries dated within the last
// seven UTC calendar days (inclusive) of today, rounded half-up to one decimal.
// Entries with a malformed date or an out of range rating are skipped. An empty
// window gives 0.
func WeeklyAverage(entries []*entity.MoodEntry, today time.Time) float64 {
	weekStart := entity.StartOfDay(today).AddDate(0, 0, -weeklyWindowDays)
	sum, count := 0, 0
	for _, e := range entries {
		if e == nil {
			continue
		}
		evening, ok := e.Evening()
		if !ok || evening.SatisfactionRating < 1 || evening.SatisfactionRating > 5 {
			continue
		}
		day, ok := e.EntryDate.Time()
		if !ok || day.Before(weekStart) {
			continue
		}
		sum += evening.SatisfactionRating
		count++
	}
	if count == 0 {
		return 0
	}
	// round(sum/count, 1) in integer tenths
	tenths := (20*sum + count) / (2 * count)
	return float64(tenths) / 10
}

// CurrentStreak counts consecutive UTC calendar days with at least one entry,
// going backwards from today. It is 0 when today has no entry.
func CurrentStreak(entries []*entity.MoodEntry, today time.Time) int {
	days := distinctDays(entries)
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	start := entity.StartOfDay(today)
	streak := 0
	for i, day := range days {
		if !day.Equal(start.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}
	return streak
}

// ComputeStats builds dashboard figures from the full collection.
// TotalEntries counts every record, malformed ones included.
func ComputeStats(entries []*entity.MoodEntry, today time.Time) entity.DashboardStats {
	return entity.DashboardStats{
		WeeklyAverage: WeeklyAverage(entries, today),
		TotalEntries:  len(entries),
		CurrentStreak: CurrentStreak(entries, today),
	}
}

func distinctDays(entries []*entity.MoodEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		day, ok := e.EntryDate.Time()
		if !ok {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days
}
