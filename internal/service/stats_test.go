package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/pkg/entity"
)

func TestWeeklyAverage(t *testing.T) {
	testCases := []struct {
		Desc     string
		Entries  []*entity.MoodEntry
		Expected float64
	}{
		{
			Desc:     "empty collection",
			Entries:  nil,
			Expected: 0,
		},
		{
			Desc: "only morning entries",
			Entries: []*entity.MoodEntry{
				morning("1", "Alice", daysAgo(0)),
			},
			Expected: 0,
		},
		{
			Desc: "three ratings",
			Entries: []*entity.MoodEntry{
				evening("1", "Alice", daysAgo(0), 3),
				evening("2", "Alice", daysAgo(1), 4),
				evening("3", "Bob", daysAgo(2), 5),
			},
			Expected: 4.0,
		},
		{
			Desc: "half rating",
			Entries: []*entity.MoodEntry{
				evening("1", "Alice", daysAgo(0), 3),
				evening("2", "Alice", daysAgo(1), 4),
			},
			Expected: 3.5,
		},
		{
			Desc: "rounds half up at tenths",
			Entries: []*entity.MoodEntry{
				evening("1", "A", daysAgo(0), 3),
				evening("2", "B", daysAgo(0), 3),
				evening("3", "C", daysAgo(0), 3),
				evening("4", "D", daysAgo(0), 4),
			},
			Expected: 3.3,
		},
		{
			Desc: "repeating decimal",
			Entries: []*entity.MoodEntry{
				evening("1", "A", daysAgo(0), 5),
				evening("2", "B", daysAgo(0), 5),
				evening("3", "C", daysAgo(0), 4),
			},
			Expected: 4.7,
		},
		{
			Desc: "window lower bound is inclusive",
			Entries: []*entity.MoodEntry{
				evening("1", "Alice", daysAgo(7), 2),
				evening("2", "Alice", daysAgo(8), 5),
			},
			Expected: 2,
		},
		{
			Desc: "malformed dates and ratings are skipped",
			Entries: []*entity.MoodEntry{
				evening("1", "Alice", "not-a-date", 1),
				evening("2", "Alice", "", 1),
				evening("3", "Alice", daysAgo(1), 0),
				evening("4", "Alice", daysAgo(1), 9),
				{ID: "5", PersonName: "Alice", EntryDate: daysAgo(1)},
				nil,
				evening("6", "Alice", daysAgo(1), 4),
			},
			Expected: 4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.WeeklyAverage(tc.Entries, today))
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		Desc     string
		Entries  []*entity.MoodEntry
		Expected int
	}{
		{
			Desc:     "empty collection",
			Expected: 0,
		},
		{
			Desc: "three days then a gap",
			Entries: []*entity.MoodEntry{
				morning("1", "Alice", daysAgo(0)),
				evening("2", "Alice", daysAgo(0), 3),
				evening("3", "Bob", daysAgo(1), 3),
				morning("4", "Alice", daysAgo(2)),
				morning("5", "Alice", daysAgo(4)),
				morning("6", "Alice", daysAgo(5)),
			},
			Expected: 3,
		},
		{
			Desc: "nothing today",
			Entries: []*entity.MoodEntry{
				morning("1", "Alice", daysAgo(1)),
				morning("2", "Alice", daysAgo(2)),
				morning("3", "Alice", daysAgo(3)),
			},
			Expected: 0,
		},
		{
			Desc: "only today",
			Entries: []*entity.MoodEntry{
				evening("1", "Alice", daysAgo(0), 5),
			},
			Expected: 1,
		},
		{
			Desc: "malformed dates are ignored",
			Entries: []*entity.MoodEntry{
				morning("1", "Alice", "garbage"),
				morning("2", "Alice", daysAgo(0)),
				morning("3", "Alice", daysAgo(1)),
				nil,
			},
			Expected: 2,
		},
		{
			Desc: "unordered input",
			Entries: []*entity.MoodEntry{
				morning("1", "Alice", daysAgo(1)),
				morning("2", "Alice", daysAgo(3)),
				morning("3", "Alice", daysAgo(0)),
				morning("4", "Alice", daysAgo(2)),
			},
			Expected: 4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.CurrentStreak(tc.Entries, today))
		})
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, entity.DashboardStats{}, service.ComputeStats(nil, today))

	entries := []*entity.MoodEntry{
		morning("1", "Alice", daysAgo(0)),
		evening("2", "Alice", daysAgo(0), 4),
		evening("3", "Alice", "broken", 1),
	}
	assert.Equal(t, entity.DashboardStats{
		WeeklyAverage: 4,
		TotalEntries:  3,
		CurrentStreak: 1,
	}, service.ComputeStats(entries, today))
}
