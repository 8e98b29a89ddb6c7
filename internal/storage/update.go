package storage

import (
	"time"

	"github.com/yourname/sleepdiary/internal"
)

// applyUpdate merges the non-nil fields into rec and refreshes UpdatedAt.
// Callers hold whatever lock protects rec.
func applyUpdate(rec *internal.SleepRecord, upd internal.SleepRecordUpdate) {
	if upd.SleepHours != nil {
		rec.SleepHours = *upd.SleepHours
	}
	if upd.Mood != nil {
		rec.Mood = *upd.Mood
	}
	if upd.SleepScore != nil {
		rec.SleepScore = *upd.SleepScore
	}
	rec.UpdatedAt = time.Now().UTC()
}
