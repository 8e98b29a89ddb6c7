package storage

import (
	"context"
	"sync"

	"github.com/yourname/sleepdiary/internal"
)

// MemoryStorage keeps all records in process memory. It is the default
// backend for development and the workhorse for tests.
type MemoryStorage struct {
	records   map[string]*internal.SleepRecord   // id -> record
	userIndex map[string][]*internal.SleepRecord // userID -> records, date desc
	mu        sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records:   make(map[string]*internal.SleepRecord),
		userIndex: make(map[string][]*internal.SleepRecord),
	}
}

// moreRecent reports whether a sorts before b in the index: later date
// first, later created_at first on equal dates.
func moreRecent(a, b *internal.SleepRecord) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *MemoryStorage) insertIndexed(rec *internal.SleepRecord) {
	logs := s.userIndex[rec.UserID]
	inserted := false
	for i, existing := range logs {
		if moreRecent(rec, existing) {
			logs = append(logs[:i], append([]*internal.SleepRecord{rec}, logs[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		logs = append(logs, rec)
	}
	s.userIndex[rec.UserID] = logs
}

func (s *MemoryStorage) removeIndexed(rec *internal.SleepRecord) {
	logs := s.userIndex[rec.UserID]
	for i, existing := range logs {
		if existing.ID == rec.ID {
			s.userIndex[rec.UserID] = append(logs[:i], logs[i+1:]...)
			return
		}
	}
}

func (s *MemoryStorage) Create(ctx context.Context, rec *internal.SleepRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *rec
	s.records[stored.ID] = &stored
	s.insertIndexed(&stored)
	return nil
}

func (s *MemoryStorage) GetByID(ctx context.Context, id string) (*internal.SleepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (s *MemoryStorage) ListByUser(ctx context.Context, userID string) ([]internal.SleepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logsPtr, ok := s.userIndex[userID]
	if !ok {
		return []internal.SleepRecord{}, nil
	}
	logs := make([]internal.SleepRecord, len(logsPtr))
	for i, l := range logsPtr {
		logs[i] = *l
	}
	return logs, nil
}

func (s *MemoryStorage) Update(ctx context.Context, id string, upd internal.SleepRecordUpdate) (*internal.SleepRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyUpdate(rec, upd)
	out := *rec
	return &out, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return false, nil
	}
	delete(s.records, id)
	s.removeIndexed(rec)
	return true, nil
}

func (s *MemoryStorage) Close() error { return nil }

// snapshot copies every record out under the read lock. Used by the
// file-backed store when flushing to disk.
func (s *MemoryStorage) snapshot() []internal.SleepRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.SleepRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, *rec)
	}
	return out
}

var _ SleepRecordRepository = (*MemoryStorage)(nil)
