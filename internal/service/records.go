package service

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/storage"
)

var validate = validator.New()

// DefaultRecentLimit is how many records the recent-stats view returns
// when the caller does not ask for a specific count.
const DefaultRecentLimit = 7

// MonthlyWindowDays is the size of the trailing averaging window.
const MonthlyWindowDays = 30

type CreateSleepRecordRequest struct {
	UserID     string  `json:"userId" validate:"required"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	SleepHours float64 `json:"sleepHours" validate:"gte=0,lte=24"`
	Mood       string  `json:"mood" validate:"required,oneof=great good okay bad awful"`
	SleepScore int     `json:"sleepScore" validate:"required,gte=1,lte=5"`
}

// UpdateSleepRecordRequest carries any subset of the mutable fields.
// Absent fields leave the stored values unchanged.
type UpdateSleepRecordRequest struct {
	SleepHours *float64 `json:"sleepHours" validate:"omitempty,gte=0,lte=24"`
	Mood       *string  `json:"mood" validate:"omitempty,oneof=great good okay bad awful"`
	SleepScore *int     `json:"sleepScore" validate:"omitempty,gte=1,lte=5"`
}

func ValidateCreateRequest(req *CreateSleepRecordRequest) error {
	return validate.Struct(req)
}

func ValidateUpdateRequest(req *UpdateSleepRecordRequest) error {
	return validate.Struct(req)
}

// CreateSleepRecord assigns the id and timestamps and persists the record.
func CreateSleepRecord(ctx context.Context, repo storage.SleepRecordRepository, req *CreateSleepRecordRequest) (*internal.SleepRecord, error) {
	now := time.Now().UTC()
	rec := &internal.SleepRecord{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Date:       req.Date,
		SleepHours: req.SleepHours,
		Mood:       req.Mood,
		SleepScore: req.SleepScore,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateSleepRecord merges the present fields into the stored record.
func UpdateSleepRecord(ctx context.Context, repo storage.SleepRecordRepository, id string, req *UpdateSleepRecordRequest) (*internal.SleepRecord, error) {
	upd := internal.SleepRecordUpdate{
		SleepHours: req.SleepHours,
		Mood:       req.Mood,
		SleepScore: req.SleepScore,
	}
	return repo.Update(ctx, id, upd)
}

// RecentByUser returns the limit most recent records by date. Fewer rows
// than limit simply returns them all; a user with no records gets an empty
// slice, not an error.
func RecentByUser(ctx context.Context, repo storage.SleepRecordRepository, userID string, limit int) ([]internal.SleepRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	records, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// MonthlyAverages computes the mean sleep hours and score over records
// dated within the trailing 30 calendar days of now, inclusive. A nil
// result means no records fall inside the window.
func MonthlyAverages(ctx context.Context, repo storage.SleepRecordRepository, userID string, now time.Time) (*internal.MonthlyAverages, error) {
	records, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// YYYY-MM-DD strings compare correctly lexicographically.
	cutoff := now.AddDate(0, 0, -MonthlyWindowDays).Format(internal.DateLayout)

	var hours, score float64
	count := 0
	for _, r := range records {
		if r.Date >= cutoff {
			hours += r.SleepHours
			score += float64(r.SleepScore)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return &internal.MonthlyAverages{
		AvgSleepHours: round1(hours / float64(count)),
		AvgSleepScore: round1(score / float64(count)),
	}, nil
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
