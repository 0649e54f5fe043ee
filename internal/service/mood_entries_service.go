package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/internal/repository"
	"github.com/limbo/moodboard/pkg/entity"
)

type MoodEntriesService struct {
	repo  repository.MoodEntriesRepositoryI
	now   func() time.Time
	newID func() string
}

type Option func(*MoodEntriesService)

// WithClock replaces time.Now. Every date decision uses the UTC day of its result.
func WithClock(now func() time.Time) Option {
	return func(s *MoodEntriesService) {
		s.now = now
	}
}

// WithIDGenerator sets how ids of new entries are made. Defaults to random uuids.
func WithIDGenerator(newID func() string) Option {
	return func(s *MoodEntriesService) {
		s.newID = newID
	}
}

func NewMoodEntriesService(repo repository.MoodEntriesRepositoryI, opts ...Option) *MoodEntriesService {
	if repo == nil {
		log.Fatal("provided nil moodEntriesRepo")
	}
	InitValidator()
	serv := &MoodEntriesService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(serv)
	}
	return serv
}

func (serv *MoodEntriesService) SubmitMorning(ctx context.Context, req *MorningRequest) (*SubmitResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return serv.Upsert(ctx, &entity.MoodEntry{
		PersonName: req.PersonName,
		EntryDate:  serv.entryDate(req.EntryDate),
		Details: entity.MorningDetails{
			PredictedMood: req.PredictedMood,
			EnergyLevel:   req.EnergyLevel,
			MoodColor:     req.MoodColor,
		},
	})
}

func (serv *MoodEntriesService) SubmitEvening(ctx context.Context, req *EveningRequest) (*SubmitResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return serv.Upsert(ctx, &entity.MoodEntry{
		PersonName: req.PersonName,
		EntryDate:  serv.entryDate(req.EntryDate),
		Details: entity.EveningDetails{
			ActualFeeling:      req.ActualFeeling,
			SatisfactionRating: req.SatisfactionRating,
			Comment:            req.Comment,
		},
	})
}

// Upsert stores candidate, updating the entry with the same identity when there is one.
// When a concurrent submission stores the same identity between listing and inserting,
// the candidate is resolved once more against the fresh collection and becomes an update.
// Store failures come back wrapped in ErrPersistence.
func (serv *MoodEntriesService) Upsert(ctx context.Context, candidate *entity.MoodEntry) (*SubmitResult, error) {
	if err := ValidateEntry(candidate); err != nil {
		return nil, err
	}
	res, err := serv.upsertOnce(ctx, candidate)
	if errors.Is(err, errorvalues.ErrEntryExists) {
		res, err = serv.upsertOnce(ctx, candidate)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrPersistence, err)
	}
	return res, nil
}

func (serv *MoodEntriesService) upsertOnce(ctx context.Context, candidate *entity.MoodEntry) (*SubmitResult, error) {
	entries, err := serv.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resolution := ResolveUpsert(candidate, entries, serv.now().UTC(), serv.newID)
	var stored *entity.MoodEntry
	if resolution.Existing {
		stored, err = serv.repo.Update(ctx, resolution.Entry.ID, resolution.Entry)
	} else {
		stored, err = serv.repo.Insert(ctx, resolution.Entry)
	}
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Entry: stored, Updated: resolution.Existing}, nil
}

func (serv *MoodEntriesService) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	entries, err := serv.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.Dashboard{
		Stats:  ComputeStats(entries, serv.now()),
		Recent: collectRecent(entries, RecentEntriesLimit),
	}, nil
}

func (serv *MoodEntriesService) GetRecentEntries(ctx context.Context, limit int) ([]*entity.MoodEntry, error) {
	entries, err := serv.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return collectRecent(entries, limit), nil
}

func (serv *MoodEntriesService) GetEntriesByDate(ctx context.Context, date entity.Date) ([]*entity.MoodEntry, error) {
	entries, err := serv.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDate(entries, date), nil
}

func (serv *MoodEntriesService) GetEntriesByPerson(ctx context.Context, name string) ([]*entity.MoodEntry, error) {
	entries, err := serv.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByPerson(entries, name), nil
}

func (serv *MoodEntriesService) listAll(ctx context.Context) ([]*entity.MoodEntry, error) {
	entries, err := serv.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrPersistence, err)
	}
	return entries, nil
}

func collectRecent(entries []*entity.MoodEntry, limit int) []*entity.MoodEntry {
	recent := slices.Collect(RecentEntries(entries, limit))
	if recent == nil {
		return make([]*entity.MoodEntry, 0)
	}
	return recent
}

func (serv *MoodEntriesService) entryDate(raw string) entity.Date {
	if raw == "" {
		return entity.DateOf(serv.now())
	}
	return entity.Date(raw)
}
