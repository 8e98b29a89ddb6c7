package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/sleepdiary/internal"
)

func TestFileStoragePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	ctx := context.Background()

	s, err := NewFileStorage(path, internal.NopLogger{})
	require.NoError(t, err)

	require.NoError(t, s.Create(ctx, newRecord("r1", "u1", "2026-08-30", 7.5, internal.MoodGood, 4)))
	require.NoError(t, s.Create(ctx, newRecord("r2", "u1", "2026-08-29", 6.0, internal.MoodBad, 2)))
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	reopened, err := NewFileStorage(path, internal.NopLogger{})
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-08-30", records[0].Date)
	assert.Equal(t, "2026-08-29", records[1].Date)
}

func TestFileStorageDeleteIsDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	ctx := context.Background()

	s, err := NewFileStorage(path, internal.NopLogger{})
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, newRecord("r1", "u1", "2026-08-30", 7.5, internal.MoodGood, 4)))

	removed, err := s.Delete(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, removed)
	require.NoError(t, s.Close())

	reopened, err := NewFileStorage(path, internal.NopLogger{})
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStorageStartsEmptyWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s, err := NewFileStorage(path, internal.NopLogger{})
	require.NoError(t, err)
	defer s.Close()

	records, err := s.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
