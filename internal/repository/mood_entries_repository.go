package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/pkg/cleanup"
	"github.com/limbo/moodboard/pkg/entity"
)

const (
	insertEntryQuery = `INSERT INTO mood_entries (id, employee_name, entry_type, predicted_mood, energy_level, mood_color, actual_feeling, satisfaction_rating, comment, entry_date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	updateEntryQuery = `UPDATE mood_entries SET predicted_mood = $1, energy_level = $2, mood_color = $3, actual_feeling = $4, satisfaction_rating = $5, comment = $6, updated_at = $7 WHERE id = $8;`
	listEntriesQuery = `SELECT id, employee_name, entry_type, predicted_mood, energy_level, mood_color, actual_feeling, satisfaction_rating, comment, entry_date, created_at, updated_at FROM mood_entries ORDER BY entry_date DESC, created_at DESC;`
)

// MoodEntriesRepository keeps entries in the hosted PostgreSQL table mood_entries.
type MoodEntriesRepository struct {
	conn PgConnection
}

func NewMoodEntriesRepo(cfg DBConfig) *MoodEntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for moodEntriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for moodEntriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MoodEntriesRepository{
		conn: pool,
	}
}

func NewMoodEntriesRepoWithConn(conn PgConnection) *MoodEntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for moodEntriesRepo: " + err.Error())
	}
	return &MoodEntriesRepository{
		conn: conn,
	}
}

func (mr *MoodEntriesRepository) Insert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	row := toRow(entry)
	_, err := mr.conn.Exec(ctx, insertEntryQuery,
		row.ID,
		row.EmployeeName,
		row.EntryType,
		row.PredictedMood,
		row.EnergyLevel,
		row.MoodColor,
		row.ActualFeeling,
		row.SatisfactionRating,
		row.Comment,
		row.EntryDate,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (lower(employee_name), entry_date, entry_type)
			case "23505":
				return nil, errorvalues.ErrEntryExists
			}
		}
		return nil, errors.New("inserting mood entry error: " + err.Error())
	}
	stored := *entry
	return &stored, nil
}

func (mr *MoodEntriesRepository) Update(ctx context.Context, id string, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	row := toRow(entry)
	ct, err := mr.conn.Exec(ctx, updateEntryQuery,
		row.PredictedMood,
		row.EnergyLevel,
		row.MoodColor,
		row.ActualFeeling,
		row.SatisfactionRating,
		row.Comment,
		row.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, errors.New("updating mood entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return nil, errorvalues.ErrEntryNotFound
	}
	stored := *entry
	stored.ID = id
	return &stored, nil
}

func (mr *MoodEntriesRepository) ListAll(ctx context.Context) ([]*entity.MoodEntry, error) {
	rows, err := mr.conn.Query(ctx, listEntriesQuery)
	if err != nil {
		return nil, errors.New("listing mood entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.MoodEntry, 0)
	for rows.Next() {
		var (
			row       moodEntryRow
			entryDate time.Time
		)
		err = rows.Scan(
			&row.ID,
			&row.EmployeeName,
			&row.EntryType,
			&row.PredictedMood,
			&row.EnergyLevel,
			&row.MoodColor,
			&row.ActualFeeling,
			&row.SatisfactionRating,
			&row.Comment,
			&entryDate,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("mood entry row parsing error: " + err.Error())
		}
		row.EntryDate = entryDate.Format(entity.DateLayout)
		entries = append(entries, fromRow(row))
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mood entry rows error: " + err.Error())
	}
	return entries, nil
}
