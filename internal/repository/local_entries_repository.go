package repository

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/pkg/entity"
)

const LocalStorageKey = "moodboard:mood_entries"

// LocalEntriesRepository keeps the whole collection as one JSON array under a single key.
type LocalEntriesRepository struct {
	kv  KVStore
	key string
	mu  sync.Mutex
}

func NewLocalEntriesRepo(kv KVStore) *LocalEntriesRepository {
	return &LocalEntriesRepository{
		kv:  kv,
		key: LocalStorageKey,
	}
}

// GenerateLocalID builds an id from the current unix millis and a random suffix, both base36.
func GenerateLocalID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

func (lr *LocalEntriesRepository) Insert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	rows, err := lr.load(ctx)
	if err != nil {
		return nil, err
	}
	row := toRow(entry)
	for _, r := range rows {
		// same rule as the unique index of the hosted table
		if r.ID == row.ID || sameIdentityRow(r, row) {
			return nil, errorvalues.ErrEntryExists
		}
	}
	rows = append(rows, row)
	if err = lr.save(ctx, rows); err != nil {
		return nil, err
	}
	stored := *entry
	return &stored, nil
}

func (lr *LocalEntriesRepository) Update(ctx context.Context, id string, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	rows, err := lr.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, r := range rows {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errorvalues.ErrEntryNotFound
	}
	updated := toRow(entry)
	// identity and creation time stay as stored
	updated.ID = rows[idx].ID
	updated.EmployeeName = rows[idx].EmployeeName
	updated.EntryDate = rows[idx].EntryDate
	updated.EntryType = rows[idx].EntryType
	updated.CreatedAt = rows[idx].CreatedAt
	rows[idx] = updated
	if err = lr.save(ctx, rows); err != nil {
		return nil, err
	}
	return fromRow(updated), nil
}

func (lr *LocalEntriesRepository) ListAll(ctx context.Context) ([]*entity.MoodEntry, error) {
	lr.mu.Lock()
	rows, err := lr.load(ctx)
	lr.mu.Unlock()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EntryDate != rows[j].EntryDate {
			return rows[i].EntryDate > rows[j].EntryDate
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	entries := make([]*entity.MoodEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, fromRow(r))
	}
	return entries, nil
}

func sameIdentityRow(a, b moodEntryRow) bool {
	return strings.EqualFold(a.EmployeeName, b.EmployeeName) &&
		a.EntryDate == b.EntryDate &&
		a.EntryType == b.EntryType
}

func (lr *LocalEntriesRepository) load(ctx context.Context) ([]moodEntryRow, error) {
	payload, err := lr.kv.Get(ctx, lr.key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return []moodEntryRow{}, nil
		}
		return nil, errors.New("reading local entries error: " + err.Error())
	}
	var rows []moodEntryRow
	if err = sonic.Unmarshal(payload, &rows); err != nil {
		slog.Default().Error("corrupted local entries payload, reading as empty",
			slog.String("key", lr.key),
			slog.String("error", err.Error()),
		)
		return []moodEntryRow{}, nil
	}
	return rows, nil
}

func (lr *LocalEntriesRepository) save(ctx context.Context, rows []moodEntryRow) error {
	payload, err := sonic.Marshal(rows)
	if err != nil {
		return errors.New("encoding local entries error: " + err.Error())
	}
	if err = lr.kv.Set(ctx, lr.key, payload); err != nil {
		return errors.New("writing local entries error: " + err.Error())
	}
	return nil
}
