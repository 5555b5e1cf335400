package model

import (
	"time"
)

type Lesson struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Order           int    `json:"order"`
	DurationMinutes int    `json:"duration_minutes"`
	Content         string `json:"-"`
	HTMLContent     string `json:"html_content,omitempty"`
}

// LessonCompletion is unique per (user, lesson).
type LessonCompletion struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	LessonID    string    `db:"lesson_id" json:"lesson_id"`
	Completed   bool      `db:"completed" json:"completed"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}
