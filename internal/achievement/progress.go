package achievement

import (
	"time"

	"github.com/recoverly/recoverly/internal/model"
)

// Ratio is the completion fraction of a locked achievement, clamped to [0, 1].
func Ratio(def model.AchievementDefinition, stats model.UserStats) float64 {
	value, ok := stats.Value(def.Metric)
	if !ok || def.Threshold <= 0 {
		return 0
	}

	ratio := float64(value) / float64(def.Threshold)
	return min(max(ratio, 0), 1)
}

// Report pairs every definition with its unlock state and progress.
// Unlocked achievements always report exactly 1.
func Report(defs []model.AchievementDefinition, stats model.UserStats, unlocked map[string]time.Time) model.AchievementSummary {
	summary := model.AchievementSummary{
		Achievements: make([]model.AchievementProgress, 0, len(defs)),
	}

	for _, def := range defs {
		item := model.AchievementProgress{AchievementDefinition: def}

		if unlockedAt, ok := unlocked[def.ID]; ok {
			at := unlockedAt
			item.IsUnlocked = true
			item.UnlockedAt = &at
			item.Progress = 1
			summary.UnlockedCount++
			summary.TotalPoints += def.Points
		} else {
			item.Progress = Ratio(def, stats)
		}

		summary.Achievements = append(summary.Achievements, item)
	}

	return summary
}
