package repository

import (
	"time"

	"github.com/limbo/moodboard/pkg/entity"
)

// moodEntryRow is the flat record shape shared by both backends.
// Field names follow the hosted mood_entries table.
type moodEntryRow struct {
	ID                 string    `json:"id"`
	EmployeeName       string    `json:"employee_name"`
	EntryType          string    `json:"entry_type"`
	PredictedMood      *string   `json:"predicted_mood,omitempty"`
	EnergyLevel        *int      `json:"energy_level,omitempty"`
	MoodColor          *string   `json:"mood_color,omitempty"`
	ActualFeeling      *string   `json:"actual_feeling,omitempty"`
	SatisfactionRating *int      `json:"satisfaction_rating,omitempty"`
	Comment            *string   `json:"comment,omitempty"`
	EntryDate          string    `json:"entry_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toRow(e *entity.MoodEntry) moodEntryRow {
	row := moodEntryRow{
		ID:           e.ID,
		EmployeeName: e.PersonName,
		EntryType:    string(e.Type()),
		EntryDate:    e.EntryDate.String(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	switch d := e.Details.(type) {
	case entity.MorningDetails:
		row.PredictedMood = &d.PredictedMood
		row.EnergyLevel = &d.EnergyLevel
		row.MoodColor = &d.MoodColor
	case entity.EveningDetails:
		row.ActualFeeling = &d.ActualFeeling
		row.SatisfactionRating = &d.SatisfactionRating
		if d.Comment != "" {
			row.Comment = &d.Comment
		}
	}
	return row
}

// fromRow never fails: rows with an unknown entry_type come back without details
// and missing columns become zero values, so readers can skip them.
func fromRow(row moodEntryRow) *entity.MoodEntry {
	e := &entity.MoodEntry{
		ID:         row.ID,
		PersonName: row.EmployeeName,
		EntryDate:  entity.Date(row.EntryDate),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	switch entity.EntryType(row.EntryType) {
	case entity.EntryTypeMorning:
		e.Details = entity.MorningDetails{
			PredictedMood: deref(row.PredictedMood),
			EnergyLevel:   deref(row.EnergyLevel),
			MoodColor:     deref(row.MoodColor),
		}
	case entity.EntryTypeEvening:
		e.Details = entity.EveningDetails{
			ActualFeeling:      deref(row.ActualFeeling),
			SatisfactionRating: deref(row.SatisfactionRating),
			Comment:            deref(row.Comment),
		}
	}
	return e
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
