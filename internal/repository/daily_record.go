package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/recoverly/recoverly/internal/model"
)

type DailyRecordRepository interface {
	// SetMood upserts the (user, date) row with the given rating.
	SetMood(ctx context.Context, userID, date string, rating int) error
	// Recent returns up to limit records, newest date first.
	Recent(ctx context.Context, userID string, limit int) ([]*model.DailyRecord, error)
}

type dailyRecordRepository struct {
	db *sqlx.DB
}

func NewDailyRecordRepository(db *sqlx.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

// addExercise upserts the (user, date) row, adding one to exercises_completed.
// It runs on the caller's transaction so the daily total moves with the session rows.
func addExercise(ctx context.Context, exec sqlx.ExecerContext, userID, date string) error {
	now := time.Now().UTC()
	query := `INSERT INTO daily_records (id, user_id, date, exercises_completed, created_at, updated_at)
	          VALUES ($1, $2, $3, 1, $4, $5)
	          ON CONFLICT (user_id, date)
	          DO UPDATE SET exercises_completed = daily_records.exercises_completed + excluded.exercises_completed,
	                        updated_at = excluded.updated_at`

	_, err := exec.ExecContext(ctx, query, uuid.New().String(), userID, date, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert daily record: %w", err)
	}

	return nil
}

func (r *dailyRecordRepository) SetMood(ctx context.Context, userID, date string, rating int) error {
	now := time.Now().UTC()
	query := `INSERT INTO daily_records (id, user_id, date, exercises_completed, mood_rating, created_at, updated_at)
	          VALUES ($1, $2, $3, 0, $4, $5, $6)
	          ON CONFLICT (user_id, date)
	          DO UPDATE SET mood_rating = excluded.mood_rating, updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), userID, date, rating, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert mood: %w", err)
	}

	return nil
}

func (r *dailyRecordRepository) Recent(ctx context.Context, userID string, limit int) ([]*model.DailyRecord, error) {
	if limit <= 0 {
		limit = 30
	}

	var records []*model.DailyRecord
	query := `SELECT * FROM daily_records WHERE user_id = $1 ORDER BY date DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &records, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily records: %w", err)
	}

	return records, nil
}
