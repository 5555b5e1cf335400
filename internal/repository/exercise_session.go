package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/recoverly/recoverly/internal/model"
)

type ExerciseSessionRepository interface {
	// Create inserts the session and adds it to the user's daily record for
	// date. Both writes commit together or not at all.
	Create(ctx context.Context, session *model.ExerciseSession, date string) error
	// CountCompleted counts completed sessions, optionally only those created at or after since.
	CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error)
}

type exerciseSessionRepository struct {
	db *sqlx.DB
}

func NewExerciseSessionRepository(db *sqlx.DB) ExerciseSessionRepository {
	return &exerciseSessionRepository{db: db}
}

func (r *exerciseSessionRepository) Create(ctx context.Context, session *model.ExerciseSession, date string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO exercise_sessions (id, user_id, exercise_type, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.ExerciseType,
		session.Completed,
		session.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create exercise session: %w", err)
	}

	if session.Completed {
		err = addExercise(ctx, tx, session.UserID, date)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *exerciseSessionRepository) CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error) {
	var count int
	var err error

	if since == nil {
		query := `SELECT COUNT(*) FROM exercise_sessions WHERE user_id = $1 AND completed = $2`
		err = r.db.GetContext(ctx, &count, query, userID, true)
	} else {
		query := `SELECT COUNT(*) FROM exercise_sessions WHERE user_id = $1 AND completed = $2 AND created_at >= $3`
		err = r.db.GetContext(ctx, &count, query, userID, true, since.UTC())
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count exercise sessions: %w", err)
	}

	return count, nil
}
