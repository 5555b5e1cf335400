package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoverly/recoverly/internal/achievement"
	"github.com/recoverly/recoverly/internal/model"
)

// sevenExercisesThreeDayStreak is a user on their 7th exercise and 3rd
// consecutive day, with first_exercise already earned.
func sevenExercisesThreeDayStreak() *fixture {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-01", 4)
	f.exerciseDay("u1", "2026-10-11", 1)
	f.exerciseDay("u1", "2026-10-12", 1)
	f.exerciseDay("u1", "2026-10-13", 1)
	f.achievements.preset("u1", achievement.FirstExercise)
	return f
}

func TestEvaluateUnlocksStreakOnly(t *testing.T) {
	f := sevenExercisesThreeDayStreak()

	unlocked := f.achievement.EvaluateAndUnlock(context.Background(), "u1")

	assert.Equal(t, []string{achievement.ExerciseStreak3}, unlocked)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	ctx := context.Background()

	first := f.achievement.EvaluateAndUnlock(ctx, "u1")
	second := f.achievement.EvaluateAndUnlock(ctx, "u1")

	assert.Len(t, first, 1)
	assert.NotNil(t, second)
	assert.Empty(t, second)
	assert.Equal(t, 1, f.achievements.inserts)
}

func TestEvaluateFirstExerciseThreshold(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.Empty(t, f.achievement.EvaluateAndUnlock(ctx, "u1"))

	f.exerciseDay("u1", "2026-10-13", 1)
	assert.Equal(t, []string{achievement.FirstExercise}, f.achievement.EvaluateAndUnlock(ctx, "u1"))
}

func TestEvaluateUnlocksInCatalogOrder(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-11", 2)
	f.exerciseDay("u1", "2026-10-12", 2)
	f.exerciseDay("u1", "2026-10-13", 2)

	unlocked := f.achievement.EvaluateAndUnlock(context.Background(), "u1")

	assert.Equal(t, []string{achievement.FirstExercise, achievement.ExerciseStreak3, achievement.WeeklyWarrior}, unlocked)
}

func TestUnlocksArePermanent(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	ctx := context.Background()
	f.achievement.EvaluateAndUnlock(ctx, "u1")

	// The streak is broken and the underlying records are gone.
	f.daily.records = map[string]*model.DailyRecord{}
	f.sessions.sessions = nil

	assert.Empty(t, f.achievement.EvaluateAndUnlock(ctx, "u1"))

	summary := f.achievement.Progress(ctx, "u1")
	assert.Equal(t, 2, summary.UnlockedCount)
	for _, item := range summary.Achievements {
		if item.ID == achievement.ExerciseStreak3 || item.ID == achievement.FirstExercise {
			assert.True(t, item.IsUnlocked)
			assert.Equal(t, 1.0, item.Progress)
		}
	}
}

func TestEvaluateContinuesPastInsertFailure(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-11", 1)
	f.exerciseDay("u1", "2026-10-12", 1)
	f.exerciseDay("u1", "2026-10-13", 1)
	f.achievements.unlockErr[achievement.FirstExercise] = errStoreDown

	unlocked := f.achievement.EvaluateAndUnlock(context.Background(), "u1")

	assert.Equal(t, []string{achievement.ExerciseStreak3}, unlocked)
}

func TestEvaluateUnreadableUnlockedSet(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	f.achievements.readErr = errStoreDown

	unlocked := f.achievement.EvaluateAndUnlock(context.Background(), "u1")

	// first_exercise is retried, rejected as a duplicate and not reported.
	assert.Equal(t, []string{achievement.ExerciseStreak3}, unlocked)
	assert.Len(t, f.achievements.unlocked["u1"], 2)
}

func TestEvaluateWithUnavailableStatsUnlocksNothing(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	f.sessions.err = errStoreDown

	unlocked := f.achievement.EvaluateAndUnlock(context.Background(), "u1")

	assert.NotNil(t, unlocked)
	assert.Empty(t, unlocked)
}

func TestEvaluateConcurrentPassesUnlockOnce(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var all []string
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlocked := f.achievement.EvaluateAndUnlock(ctx, "u1")
			mu.Lock()
			all = append(all, unlocked...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{achievement.ExerciseStreak3}, all)
	assert.Equal(t, 1, f.achievements.inserts)
}

func TestProgressZeroData(t *testing.T) {
	f := newFixture()

	summary := f.achievement.Progress(context.Background(), "nobody")

	require.Len(t, summary.Achievements, len(achievement.Catalog()))
	assert.Zero(t, summary.UnlockedCount)
	assert.Zero(t, summary.TotalPoints)
	for _, item := range summary.Achievements {
		assert.False(t, item.IsUnlocked)
		assert.Nil(t, item.UnlockedAt)
		assert.Zero(t, item.Progress)
	}
}

func TestProgressRatiosAndPoints(t *testing.T) {
	f := sevenExercisesThreeDayStreak()
	ctx := context.Background()
	f.achievement.EvaluateAndUnlock(ctx, "u1")

	summary := f.achievement.Progress(ctx, "u1")

	byID := map[string]float64{}
	for _, item := range summary.Achievements {
		byID[item.ID] = item.Progress
	}
	assert.Equal(t, 0.7, byID[achievement.ExerciseMaster10])
	assert.InDelta(t, 3.0/7.0, byID[achievement.ExerciseStreak7], 1e-9)
	assert.Equal(t, 0.6, byID[achievement.WeeklyWarrior])
	assert.Equal(t, 1.0, byID[achievement.ExerciseStreak3])
	assert.Equal(t, 2, summary.UnlockedCount)

	first, _ := achievement.ByID(achievement.FirstExercise)
	streak, _ := achievement.ByID(achievement.ExerciseStreak3)
	assert.Equal(t, first.Points+streak.Points, summary.TotalPoints)
}

func TestDefinitionsSkipsUnknownIDs(t *testing.T) {
	f := newFixture()

	defs := f.achievement.Definitions([]string{achievement.FirstExercise, "missing", achievement.WeeklyWarrior})

	require.Len(t, defs, 2)
	assert.Equal(t, achievement.FirstExercise, defs[0].ID)
	assert.Equal(t, achievement.WeeklyWarrior, defs[1].ID)
}
