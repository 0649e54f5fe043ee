package service

import (
	"context"

	"github.com/limbo/moodboard/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . MoodEntriesServiceI

type MorningRequest struct {
	PersonName    string `validate:"required,max=100"`
	EntryDate     string `validate:"omitempty,entry_date"`
	PredictedMood string `validate:"required,morning_mood"`
	EnergyLevel   int    `validate:"required,min=1,max=5"`
	MoodColor     string `validate:"required,palette_color"`
}

type EveningRequest struct {
	PersonName         string `validate:"required,max=100"`
	EntryDate          string `validate:"omitempty,entry_date"`
	ActualFeeling      string `validate:"required,evening_feeling"`
	SatisfactionRating int    `validate:"required,min=1,max=5"`
	Comment            string `validate:"max=1000"`
}

// SubmitResult tells whether the submission created a record or updated the existing one.
type SubmitResult struct {
	Entry   *entity.MoodEntry
	Updated bool
}

type MoodEntriesServiceI interface {
	// Validates morning submission and upserts it. Empty EntryDate means today
	SubmitMorning(ctx context.Context, req *MorningRequest) (*SubmitResult, error)
	// Validates evening submission and upserts it. Empty EntryDate means today
	SubmitEvening(ctx context.Context, req *EveningRequest) (*SubmitResult, error)
	// Computes stats and recent entries over the whole collection
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	GetRecentEntries(ctx context.Context, limit int) ([]*entity.MoodEntry, error)
	GetEntriesByDate(ctx context.Context, date entity.Date) ([]*entity.MoodEntry, error)
	GetEntriesByPerson(ctx context.Context, name string) ([]*entity.MoodEntry, error)
}
