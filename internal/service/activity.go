package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/recoverly/recoverly/internal/ctxkeys"
	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/repository"
	"github.com/recoverly/recoverly/internal/validation"
)

const (
	MinMoodRating = 1
	MaxMoodRating = 5
)

var (
	ErrInvalidExerciseType = errors.New("invalid exercise type")
	ErrInvalidMoodRating   = errors.New("mood rating must be between 1 and 5")
	ErrUnknownLesson       = errors.New("unknown lesson")
)

// LessonCatalog reports whether a lesson id exists.
type LessonCatalog interface {
	Exists(id string) bool
}

// UnlockNotifier tells a user about achievements they just earned.
type UnlockNotifier interface {
	SendAchievementsUnlocked(ctx context.Context, email string, defs []model.AchievementDefinition) error
}

// ActivityResult lists the achievements unlocked by the recorded activity.
type ActivityResult struct {
	NewlyUnlocked []model.AchievementDefinition `json:"newly_unlocked"`
}

// ActivityService records user activity and runs an evaluation pass after each write.
type ActivityService struct {
	sessionRepo        repository.ExerciseSessionRepository
	completionRepo     repository.LessonCompletionRepository
	dailyRepo          repository.DailyRecordRepository
	lessons            LessonCatalog
	statsService       *StatsService
	achievementService *AchievementService
	notifier           UnlockNotifier
}

func NewActivityService(
	sessionRepo repository.ExerciseSessionRepository,
	completionRepo repository.LessonCompletionRepository,
	dailyRepo repository.DailyRecordRepository,
	lessons LessonCatalog,
	statsService *StatsService,
	achievementService *AchievementService,
	notifier UnlockNotifier,
) *ActivityService {
	return &ActivityService{
		sessionRepo:        sessionRepo,
		completionRepo:     completionRepo,
		dailyRepo:          dailyRepo,
		lessons:            lessons,
		statsService:       statsService,
		achievementService: achievementService,
		notifier:           notifier,
	}
}

func (s *ActivityService) RecordExercise(ctx context.Context, userID, exerciseType string) (*ActivityResult, error) {
	exerciseType, err := validation.ExerciseType(exerciseType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExerciseType, err)
	}

	err = s.sessionRepo.Create(ctx, &model.ExerciseSession{
		ID:           uuid.New().String(),
		UserID:       userID,
		ExerciseType: exerciseType,
		Completed:    true,
		CreatedAt:    s.statsService.Now(),
	}, s.statsService.Today())
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, userID), nil
}

// CompleteLesson is idempotent per (user, lesson); repeating it refreshes completed_at.
func (s *ActivityService) CompleteLesson(ctx context.Context, userID, lessonID string) (*ActivityResult, error) {
	if s.lessons != nil && !s.lessons.Exists(lessonID) {
		return nil, ErrUnknownLesson
	}

	err := s.completionRepo.Complete(ctx, &model.LessonCompletion{
		ID:          uuid.New().String(),
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: s.statsService.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, userID), nil
}

func (s *ActivityService) LogMood(ctx context.Context, userID string, rating int) (*ActivityResult, error) {
	if rating < MinMoodRating || rating > MaxMoodRating {
		return nil, ErrInvalidMoodRating
	}

	err := s.dailyRepo.SetMood(ctx, userID, s.statsService.Today(), rating)
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, userID), nil
}

// evaluate runs an evaluation pass and, when the request carries the user's
// email, sends an unlock email for anything new. Email failures are logged only.
func (s *ActivityService) evaluate(ctx context.Context, userID string) *ActivityResult {
	ids := s.achievementService.EvaluateAndUnlock(ctx, userID)
	result := &ActivityResult{
		NewlyUnlocked: s.achievementService.Definitions(ids),
	}

	email := ctxkeys.UserEmail(ctx)
	if len(result.NewlyUnlocked) == 0 || email == "" || s.notifier == nil {
		return result
	}

	err := validation.ValidateEmail(email)
	if err != nil {
		slog.Warn("skipping unlock email", "error", err, "user_id", userID)
		return result
	}

	err = s.notifier.SendAchievementsUnlocked(ctx, email, result.NewlyUnlocked)
	if err != nil {
		slog.Error("failed to send unlock email", "error", err, "user_id", userID)
	}

	return result
}
