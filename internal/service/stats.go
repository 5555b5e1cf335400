package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/recoverly/recoverly/internal/achievement"
	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/repository"
)

type StatsService struct {
	sessionRepo    repository.ExerciseSessionRepository
	completionRepo repository.LessonCompletionRepository
	dailyRepo      repository.DailyRecordRepository
	location       *time.Location
	now            func() time.Time
}

func NewStatsService(
	sessionRepo repository.ExerciseSessionRepository,
	completionRepo repository.LessonCompletionRepository,
	dailyRepo repository.DailyRecordRepository,
	location *time.Location,
) *StatsService {
	if location == nil {
		location = time.Local
	}
	return &StatsService{
		sessionRepo:    sessionRepo,
		completionRepo: completionRepo,
		dailyRepo:      dailyRepo,
		location:       location,
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (s *StatsService) SetClock(now func() time.Time) {
	s.now = now
}

// Now is the current time in the user calendar.
func (s *StatsService) Now() time.Time {
	return s.now().In(s.location)
}

// Today is the current calendar-date key.
func (s *StatsService) Today() string {
	return achievement.LocalDate(s.Now())
}

// Compute returns the user's stats. Statistics are best effort: when any
// source fails the result is model.UnavailableStats() rather than an error.
func (s *StatsService) Compute(ctx context.Context, userID string) model.UserStats {
	now := s.Now()
	weekStart := achievement.WeekStart(now)

	var counts achievement.Counts
	var err error

	counts.TotalExercises, err = s.sessionRepo.CountCompleted(ctx, userID, nil)
	if err != nil {
		return s.unavailable(userID, "total_exercises", err)
	}

	counts.ExercisesThisWeek, err = s.sessionRepo.CountCompleted(ctx, userID, &weekStart)
	if err != nil {
		return s.unavailable(userID, "exercises_this_week", err)
	}

	counts.TotalLessons, err = s.completionRepo.CountCompleted(ctx, userID, nil)
	if err != nil {
		return s.unavailable(userID, "total_lessons", err)
	}

	counts.LessonsThisWeek, err = s.completionRepo.CountCompleted(ctx, userID, &weekStart)
	if err != nil {
		return s.unavailable(userID, "lessons_this_week", err)
	}

	records, err := s.dailyRepo.Recent(ctx, userID, achievement.RecentRecordLimit)
	if err != nil {
		return s.unavailable(userID, "daily_records", err)
	}

	stats := achievement.Aggregate(counts, records, now)
	slog.Debug("stats computed",
		"user_id", userID,
		"total_exercises", stats.TotalExercises,
		"current_streak", stats.CurrentStreak,
	)
	return stats
}

func (s *StatsService) unavailable(userID, source string, err error) model.UserStats {
	slog.Warn("stats unavailable", "error", err, "user_id", userID, "source", source)
	return model.UnavailableStats()
}
