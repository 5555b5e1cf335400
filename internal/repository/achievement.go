package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/recoverly/recoverly/internal/model"
)

var (
	ErrAchievementAlreadyUnlocked = errors.New("achievement already unlocked")
)

type AchievementRepository interface {
	// Unlock inserts the row if absent. ErrAchievementAlreadyUnlocked reports an existing row.
	Unlock(ctx context.Context, unlock *model.UnlockedAchievement) error
	// Unlocked maps achievement id to unlock time for a user.
	Unlocked(ctx context.Context, userID string) (map[string]time.Time, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Unlock(ctx context.Context, unlock *model.UnlockedAchievement) error {
	query := `INSERT INTO user_achievements (id, user_id, achievement_id, unlocked_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, achievement_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		unlock.ID,
		unlock.UserID,
		unlock.AchievementID,
		unlock.UnlockedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAchievementAlreadyUnlocked
		}
		return fmt.Errorf("failed to unlock achievement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAchievementAlreadyUnlocked
	}

	return nil
}

func (r *achievementRepository) Unlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	var rows []*model.UnlockedAchievement
	query := `SELECT * FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at ASC`

	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocked achievements: %w", err)
	}

	unlocked := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		unlocked[row.AchievementID] = row.UnlockedAt
	}

	return unlocked, nil
}
