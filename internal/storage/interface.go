package storage

import (
	"context"
	"errors"

	"github.com/yourname/sleepdiary/internal"
)

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("storage: record not found")

// SleepRecordRepository is the persistence contract every backend satisfies.
// ListByUser orders by date descending, created_at descending on ties.
// Update applies only the non-nil fields and refreshes UpdatedAt; on SQL
// backends it runs as a single statement so concurrent updates to the same
// id resolve last-writer-wins.
type SleepRecordRepository interface {
	Create(ctx context.Context, rec *internal.SleepRecord) error
	GetByID(ctx context.Context, id string) (*internal.SleepRecord, error)
	ListByUser(ctx context.Context, userID string) ([]internal.SleepRecord, error)
	Update(ctx context.Context, id string, upd internal.SleepRecordUpdate) (*internal.SleepRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	Close() error
}
