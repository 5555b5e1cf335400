package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/storage"
)

var (
	ErrExportDisabled = errors.New("progress export is not configured")
)

type ProgressReport struct {
	UserID        string                      `json:"user_id"`
	GeneratedAt   time.Time                   `json:"generated_at"`
	Stats         model.UserStats             `json:"stats"`
	Achievements  []model.AchievementProgress `json:"achievements"`
	UnlockedCount int                         `json:"unlocked_count"`
	TotalPoints   int                         `json:"total_points"`
}

// ExportService writes a user's progress report to object storage.
type ExportService struct {
	storage            storage.Storage
	statsService       *StatsService
	achievementService *AchievementService
}

func NewExportService(store storage.Storage, statsService *StatsService, achievementService *AchievementService) *ExportService {
	return &ExportService{
		storage:            store,
		statsService:       statsService,
		achievementService: achievementService,
	}
}

func (s *ExportService) Report(ctx context.Context, userID string) *ProgressReport {
	stats := s.statsService.Compute(ctx, userID)
	summary := s.achievementService.Summary(ctx, userID, stats)
	return &ProgressReport{
		UserID:        userID,
		GeneratedAt:   s.statsService.Now().UTC(),
		Stats:         stats,
		Achievements:  summary.Achievements,
		UnlockedCount: summary.UnlockedCount,
		TotalPoints:   summary.TotalPoints,
	}
}

// Export stores the report and returns a temporary download URL.
func (s *ExportService) Export(ctx context.Context, userID string) (string, error) {
	if s.storage == nil {
		return "", ErrExportDisabled
	}

	report := s.Report(ctx, userID)
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := fmt.Sprintf("exports/%s/%s.json", userID, uuid.New().String())
	err = s.storage.Save(ctx, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}

	url, err := s.storage.PresignedURL(ctx, path)
	if err != nil {
		return "", err
	}

	slog.Info("progress exported", "user_id", userID, "path", path)
	return url, nil
}
