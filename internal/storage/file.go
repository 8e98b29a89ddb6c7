package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/yourname/sleepdiary/internal"
)

// FileStorage is the memory store plus debounced JSON persistence. Writes
// are batched through a save worker so bursts of mutations hit disk once.
type FileStorage struct {
	mem          *MemoryStorage
	recordsFile  string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	saveDelay    time.Duration
	logger       internal.Logger
}

func NewFileStorage(recordsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		mem:          NewMemoryStorage(),
		recordsFile:  recordsFile,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load sleep records: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStorage) load() error {
	file, err := os.Open(s.recordsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var records []internal.SleepRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	ctx := context.Background()
	for i := range records {
		if err := s.mem.Create(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) save() error {
	return atomicWriteFileJSON(s.recordsFile, s.mem.snapshot())
}

// saveWorker batches save operations to avoid frequent disk writes.
func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving sleep records: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) signalSave() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

func (s *FileStorage) Create(ctx context.Context, rec *internal.SleepRecord) error {
	if err := s.mem.Create(ctx, rec); err != nil {
		return err
	}
	s.signalSave()
	return nil
}

func (s *FileStorage) GetByID(ctx context.Context, id string) (*internal.SleepRecord, error) {
	return s.mem.GetByID(ctx, id)
}

func (s *FileStorage) ListByUser(ctx context.Context, userID string) ([]internal.SleepRecord, error) {
	return s.mem.ListByUser(ctx, userID)
}

func (s *FileStorage) Update(ctx context.Context, id string, upd internal.SleepRecordUpdate) (*internal.SleepRecord, error) {
	rec, err := s.mem.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.signalSave()
	return rec, nil
}

func (s *FileStorage) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.mem.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.signalSave()
	}
	return removed, nil
}

// Close stops the save worker and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)
	return s.save()
}

var _ SleepRecordRepository = (*FileStorage)(nil)
