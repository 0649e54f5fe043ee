package entity

import (
	"time"
)

type EntryType string

const (
	EntryTypeMorning EntryType = "morning"
	EntryTypeEvening EntryType = "evening"
)

// Details holds the variant-specific part of a mood entry.
// Implemented only by MorningDetails and EveningDetails.
type Details interface {
	EntryType() EntryType
	isDetails()
}

type MorningDetails struct {
	PredictedMood string `json:"predicted_mood" validate:"required,morning_mood"`
	EnergyLevel   int    `json:"energy_level" validate:"min=1,max=5"`
	MoodColor     string `json:"mood_color" validate:"required,palette_color"`
}

func (MorningDetails) EntryType() EntryType { return EntryTypeMorning }
func (MorningDetails) isDetails()           {}

type EveningDetails struct {
	ActualFeeling      string `json:"actual_feeling" validate:"required,evening_feeling"`
	SatisfactionRating int    `json:"satisfaction_rating" validate:"min=1,max=5"`
	Comment            string `json:"comment,omitempty" validate:"max=1000"`
}

func (EveningDetails) EntryType() EntryType { return EntryTypeEvening }
func (EveningDetails) isDetails()           {}

// MoodEntry is one morning or evening submission of a person for a calendar day.
// PersonName, EntryDate and the type of Details form its identity.
type MoodEntry struct {
	ID         string    `validate:"-"`
	PersonName string    `validate:"required,max=100"`
	EntryDate  Date      `validate:"required,entry_date"`
	Details    Details   `validate:"-"`
	CreatedAt  time.Time `validate:"-"`
	UpdatedAt  time.Time `validate:"-"`
}

// Type returns an empty EntryType when details are missing.
func (e *MoodEntry) Type() EntryType {
	if e.Details == nil {
		return ""
	}
	return e.Details.EntryType()
}

func (e *MoodEntry) Morning() (MorningDetails, bool) {
	d, ok := e.Details.(MorningDetails)
	return d, ok
}

func (e *MoodEntry) Evening() (EveningDetails, bool) {
	d, ok := e.Details.(EveningDetails)
	return d, ok
}

type DashboardStats struct {
	WeeklyAverage float64 `json:"weekly_average"`
	TotalEntries  int     `json:"total_entries"`
	CurrentStreak int     `json:"current_streak"`
}

type Dashboard struct {
	Stats  DashboardStats
	Recent []*MoodEntry
}
