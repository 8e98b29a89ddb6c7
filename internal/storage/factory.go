package storage

import (
	"fmt"

	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/config"
)

// NewRepository builds the repository the configuration asks for.
func NewRepository(cfg *config.Config, logger internal.Logger) (SleepRecordRepository, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStorage(), nil
	case "file":
		return NewFileStorage(cfg.RecordsFile, logger)
	case "sqlite":
		return NewSQLiteStorage(cfg.SQLitePath, logger)
	case "postgres":
		return NewPostgresStorage(cfg.PostgresDSN, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
