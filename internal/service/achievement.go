package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recoverly/recoverly/internal/achievement"
	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/repository"
)

type AchievementService struct {
	repo         repository.AchievementRepository
	statsService *StatsService
}

func NewAchievementService(repo repository.AchievementRepository, statsService *StatsService) *AchievementService {
	return &AchievementService{
		repo:         repo,
		statsService: statsService,
	}
}

// EvaluateAndUnlock unlocks every catalog achievement the user newly qualifies
// for and returns their ids in catalog order. Unlocks are permanent: existing
// rows are never touched, and a duplicate insert from a concurrent pass is
// ignored.
func (s *AchievementService) EvaluateAndUnlock(ctx context.Context, userID string) []string {
	stats := s.statsService.Compute(ctx, userID)
	unlocked := s.unlocked(ctx, userID)
	now := s.statsService.now().UTC()

	newlyUnlocked := []string{}
	for _, def := range achievement.Catalog() {
		if _, ok := unlocked[def.ID]; ok {
			continue
		}

		if !achievement.Qualifies(def, stats) {
			continue
		}

		err := s.repo.Unlock(ctx, &model.UnlockedAchievement{
			ID:            uuid.New().String(),
			UserID:        userID,
			AchievementID: def.ID,
			UnlockedAt:    now,
		})
		if errors.Is(err, repository.ErrAchievementAlreadyUnlocked) {
			slog.Debug("achievement already unlocked", "user_id", userID, "achievement_id", def.ID)
			continue
		}
		if err != nil {
			slog.Error("failed to unlock achievement", "error", err, "user_id", userID, "achievement_id", def.ID)
			continue
		}

		slog.Info("achievement unlocked", "user_id", userID, "achievement_id", def.ID, "points", def.Points)
		newlyUnlocked = append(newlyUnlocked, def.ID)
	}

	return newlyUnlocked
}

// Progress reports every catalog entry with its unlock state and completion ratio.
func (s *AchievementService) Progress(ctx context.Context, userID string) model.AchievementSummary {
	return s.Summary(ctx, userID, s.statsService.Compute(ctx, userID))
}

// Summary is Progress against stats the caller already computed.
func (s *AchievementService) Summary(ctx context.Context, userID string, stats model.UserStats) model.AchievementSummary {
	return achievement.Report(achievement.Catalog(), stats, s.unlocked(ctx, userID))
}

// Definitions resolves catalog ids, skipping unknown ones.
func (s *AchievementService) Definitions(ids []string) []model.AchievementDefinition {
	defs := make([]model.AchievementDefinition, 0, len(ids))
	for _, id := range ids {
		def, ok := achievement.ByID(id)
		if ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// unlocked treats a failed read as "nothing unlocked"; the unique constraint
// still keeps a later insert from duplicating a row.
func (s *AchievementService) unlocked(ctx context.Context, userID string) map[string]time.Time {
	unlocked, err := s.repo.Unlocked(ctx, userID)
	if err != nil {
		slog.Warn("failed to load unlocked achievements", "error", err, "user_id", userID)
		return map[string]time.Time{}
	}
	return unlocked
}
