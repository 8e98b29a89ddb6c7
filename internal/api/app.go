package api

import (
	"time"

	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/service"
	"github.com/yourname/sleepdiary/internal/storage"
)

// App is what the handlers need from the surrounding application.
type App interface {
	Logger() internal.Logger
	Records() storage.SleepRecordRepository
	Completer() service.Completer
	DefaultUser() string
	AdviceTimeout() time.Duration
}
