package model

import (
	"time"
)

const (
	CategoryExercise    = "exercise"
	CategoryConsistency = "consistency"
	CategoryLearning    = "learning"
	CategoryMilestone   = "milestone"
	CategoryMood        = "mood"
	CategorySpecial     = "special"
)

// Metric names the UserStats counter an achievement is measured against.
type Metric string

const (
	MetricTotalExercises    Metric = "total_exercises"
	MetricTotalLessons      Metric = "total_lessons"
	MetricCurrentStreak     Metric = "current_streak"
	MetricLongestStreak     Metric = "longest_streak"
	MetricMoodTrackingDays  Metric = "mood_tracking_days"
	MetricExercisesThisWeek Metric = "exercises_this_week"
	MetricLessonsThisWeek   Metric = "lessons_this_week"
)

// Value returns the counter named by m, and false for an unknown metric.
func (s UserStats) Value(m Metric) (int, bool) {
	switch m {
	case MetricTotalExercises:
		return s.TotalExercises, true
	case MetricTotalLessons:
		return s.TotalLessons, true
	case MetricCurrentStreak:
		return s.CurrentStreak, true
	case MetricLongestStreak:
		return s.LongestStreak, true
	case MetricMoodTrackingDays:
		return s.MoodTrackingDays, true
	case MetricExercisesThisWeek:
		return s.ExercisesThisWeek, true
	case MetricLessonsThisWeek:
		return s.LessonsThisWeek, true
	default:
		return 0, false
	}
}

// AchievementDefinition is a static catalog entry. It is not stored per user.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Requirement string `json:"requirement"`
	Points      int    `json:"points"`
	Metric      Metric `json:"metric"`
	Threshold   int    `json:"threshold"`
}

// UnlockedAchievement is unique per (user, achievement).
type UnlockedAchievement struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	AchievementID string    `db:"achievement_id" json:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at" json:"unlocked_at"`
}

type AchievementProgress struct {
	AchievementDefinition
	IsUnlocked bool       `json:"is_unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	Progress   float64    `json:"progress"`
}

type AchievementSummary struct {
	Achievements  []AchievementProgress `json:"achievements"`
	UnlockedCount int                   `json:"unlocked_count"`
	TotalPoints   int                   `json:"total_points"`
}
