package service_test

import (
	"time"

	"github.com/limbo/moodboard/pkg/entity"
)

var today = time.Date(2024, time.January, 10, 15, 4, 5, 0, time.UTC)

func daysAgo(n int) entity.Date {
	return entity.DateOf(today.AddDate(0, 0, -n))
}

func morning(id, name string, date entity.Date) *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:         id,
		PersonName: name,
		EntryDate:  date,
		Details:    entity.MorningDetails{PredictedMood: "🙂", EnergyLevel: 4, MoodColor: "#3b82f6"},
	}
}

func evening(id, name string, date entity.Date, rating int) *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:         id,
		PersonName: name,
		EntryDate:  date,
		Details:    entity.EveningDetails{ActualFeeling: "😐", SatisfactionRating: rating},
	}
}
