package model

import (
	"time"
)

type ExerciseSession struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	ExerciseType string    `db:"exercise_type" json:"exercise_type"`
	Completed    bool      `db:"completed" json:"completed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
