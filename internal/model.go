package internal

import "time"

// Mood labels a sleep record can carry. The set is closed; request
// validation rejects anything else.
const (
	MoodGreat = "great"
	MoodGood  = "good"
	MoodOkay  = "okay"
	MoodBad   = "bad"
	MoodAwful = "awful"
)

// Moods lists every accepted mood label.
var Moods = []string{MoodGreat, MoodGood, MoodOkay, MoodBad, MoodAwful}

// SleepRecord is one night of recorded sleep. Date is a plain YYYY-MM-DD
// string, not a timestamp. A user may have multiple records on the same
// date; no uniqueness is enforced on (UserID, Date).
type SleepRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	SleepHours float64   `json:"sleepHours"`
	Mood       string    `json:"mood"`
	SleepScore int       `json:"sleepScore"` // 1–5 scale
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SleepRecordUpdate carries the mutable fields of a record. Nil fields are
// left untouched by an update. Date and UserID are immutable after creation.
type SleepRecordUpdate struct {
	SleepHours *float64 `json:"sleepHours,omitempty"`
	Mood       *string  `json:"mood,omitempty"`
	SleepScore *int     `json:"sleepScore,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u SleepRecordUpdate) Empty() bool {
	return u.SleepHours == nil && u.Mood == nil && u.SleepScore == nil
}

// MonthlyAverages holds the trailing-30-day means for a user. A nil
// *MonthlyAverages means "no data in the window", which callers must keep
// distinct from legitimate zero averages.
type MonthlyAverages struct {
	AvgSleepHours float64 `json:"avgSleepHours"`
	AvgSleepScore float64 `json:"avgSleepScore"`
}

// DateLayout is the calendar-date format used throughout the store.
const DateLayout = "2006-01-02"
