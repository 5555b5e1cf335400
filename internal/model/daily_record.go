package model

import (
	"time"
)

// DateLayout is the calendar-date key format of daily records.
const DateLayout = "2006-01-02"

// DailyRecord holds one user's activity for one calendar date.
// At most one row exists per (user, date).
type DailyRecord struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"user_id"`
	Date               string    `db:"date" json:"date"`
	ExercisesCompleted int       `db:"exercises_completed" json:"exercises_completed"`
	MoodRating         *int      `db:"mood_rating" json:"mood_rating,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

func (d *DailyRecord) HasMood() bool {
	return d.MoodRating != nil
}
