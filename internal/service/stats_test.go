package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/recoverly/recoverly/internal/model"
)

func TestStatsComputeFromRecords(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-01", 4)
	f.exerciseDay("u1", "2026-10-11", 1)
	f.exerciseDay("u1", "2026-10-12", 1)
	f.exerciseDay("u1", "2026-10-13", 1)
	f.moodDay("u1", "2026-10-12", 4)
	f.completions.completions["u1/intro"] = &model.LessonCompletion{UserID: "u1", LessonID: "intro", Completed: true, CompletedAt: fixedNow}
	f.completions.completions["u1/pacing"] = &model.LessonCompletion{UserID: "u1", LessonID: "pacing", Completed: true, CompletedAt: fixedNow.AddDate(0, 0, -20)}

	stats := f.stats.Compute(context.Background(), "u1")

	assert.Equal(t, model.UserStats{
		TotalExercises:    7,
		TotalLessons:      2,
		CurrentStreak:     3,
		LongestStreak:     4,
		MoodTrackingDays:  1,
		ExercisesThisWeek: 3,
		LessonsThisWeek:   1,
	}, stats)
}

func TestStatsComputeZeroData(t *testing.T) {
	f := newFixture()

	stats := f.stats.Compute(context.Background(), "nobody")

	assert.Equal(t, model.UserStats{}, stats)
	assert.False(t, stats.Unavailable)
}

func TestStatsComputeIsolatesUsers(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-13", 2)
	f.exerciseDay("u2", "2026-10-13", 5)

	assert.Equal(t, 2, f.stats.Compute(context.Background(), "u1").TotalExercises)
	assert.Equal(t, 5, f.stats.Compute(context.Background(), "u2").TotalExercises)
}

func TestStatsComputeUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		fail func(f *fixture)
	}{
		{"sessions", func(f *fixture) { f.sessions.err = errStoreDown }},
		{"completions", func(f *fixture) { f.completions.err = errStoreDown }},
		{"daily records", func(f *fixture) { f.daily.err = errStoreDown }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.exerciseDay("u1", "2026-10-13", 3)
			tt.fail(f)

			stats := f.stats.Compute(context.Background(), "u1")

			assert.Equal(t, model.UnavailableStats(), stats)
			assert.True(t, stats.Unavailable)
		})
	}
}

func TestStatsTodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	s := NewStatsService(&fakeSessions{}, newFakeCompletions(), newFakeDaily(), loc)
	s.SetClock(func() time.Time { return time.Date(2026, 10, 13, 2, 0, 0, 0, time.UTC) })

	assert.Equal(t, "2026-10-12", s.Today())
}
