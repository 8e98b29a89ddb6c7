package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/sleepdiary/internal"
)

func newRecord(id, userID, date string, hours float64, mood string, score int) *internal.SleepRecord {
	now := time.Now().UTC()
	return &internal.SleepRecord{
		ID:         id,
		UserID:     userID,
		Date:       date,
		SleepHours: hours,
		Mood:       mood,
		SleepScore: score,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	rec := newRecord("r1", "u1", "2026-08-30", 7.5, internal.MoodGood, 4)
	require.NoError(t, s.Create(ctx, rec))

	got, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, *rec, *got)
}

func TestMemoryGetMissing(t *testing.T) {
	s := NewMemoryStorage()

	_, err := s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListOrderingAndIsolation(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newRecord("r1", "u1", "2026-08-10", 6, internal.MoodOkay, 3)))
	require.NoError(t, s.Create(ctx, newRecord("r2", "u1", "2026-08-20", 7, internal.MoodGood, 4)))
	require.NoError(t, s.Create(ctx, newRecord("r3", "u1", "2026-08-15", 8, internal.MoodGreat, 5)))
	require.NoError(t, s.Create(ctx, newRecord("x1", "u2", "2026-08-25", 5, internal.MoodBad, 2)))

	records, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"2026-08-20", "2026-08-15", "2026-08-10"},
		[]string{records[0].Date, records[1].Date, records[2].Date})
	for _, r := range records {
		assert.Equal(t, "u1", r.UserID)
	}

	empty, err := s.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryPartialUpdate(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	rec := newRecord("r1", "u1", "2026-08-30", 7.5, internal.MoodGood, 4)
	require.NoError(t, s.Create(ctx, rec))

	hours := 6.0
	updated, err := s.Update(ctx, "r1", internal.SleepRecordUpdate{SleepHours: &hours})
	require.NoError(t, err)

	assert.Equal(t, 6.0, updated.SleepHours)
	assert.Equal(t, internal.MoodGood, updated.Mood)
	assert.Equal(t, 4, updated.SleepScore)
	assert.Equal(t, "2026-08-30", updated.Date)
	assert.False(t, updated.UpdatedAt.Before(rec.UpdatedAt))
	assert.Equal(t, rec.CreatedAt, updated.CreatedAt)
}

func TestMemoryUpdateMissing(t *testing.T) {
	s := NewMemoryStorage()
	hours := 6.0

	_, err := s.Update(context.Background(), "nope", internal.SleepRecordUpdate{SleepHours: &hours})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteTwice(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newRecord("r1", "u1", "2026-08-30", 7.5, internal.MoodGood, 4)))

	removed, err := s.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = s.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, removed)

	records, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
