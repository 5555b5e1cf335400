package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/recoverly/recoverly/internal/model"
)

type LessonCompletionRepository interface {
	// Complete inserts or refreshes the (user, lesson) completion row.
	Complete(ctx context.Context, completion *model.LessonCompletion) error
	CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error)
}

type lessonCompletionRepository struct {
	db *sqlx.DB
}

func NewLessonCompletionRepository(db *sqlx.DB) LessonCompletionRepository {
	return &lessonCompletionRepository{db: db}
}

func (r *lessonCompletionRepository) Complete(ctx context.Context, completion *model.LessonCompletion) error {
	query := `INSERT INTO lesson_completions (id, user_id, lesson_id, completed, completed_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, lesson_id)
	          DO UPDATE SET completed = excluded.completed, completed_at = excluded.completed_at`

	_, err := r.db.ExecContext(ctx, query,
		completion.ID,
		completion.UserID,
		completion.LessonID,
		completion.Completed,
		completion.CompletedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lesson completion: %w", err)
	}

	return nil
}

func (r *lessonCompletionRepository) CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error) {
	var count int
	var err error

	if since == nil {
		query := `SELECT COUNT(*) FROM lesson_completions WHERE user_id = $1 AND completed = $2`
		err = r.db.GetContext(ctx, &count, query, userID, true)
	} else {
		query := `SELECT COUNT(*) FROM lesson_completions WHERE user_id = $1 AND completed = $2 AND completed_at >= $3`
		err = r.db.GetContext(ctx, &count, query, userID, true, since.UTC())
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count lesson completions: %w", err)
	}

	return count, nil
}

