// Package achievement holds the achievement catalog and the pure rules that
// derive statistics from daily records and measure them against the catalog.
package achievement

import (
	"slices"

	"github.com/recoverly/recoverly/internal/model"
)

const (
	FirstExercise      = "first_exercise"
	ExerciseStreak3    = "exercise_streak_3"
	ExerciseStreak7    = "exercise_streak_7"
	ExerciseMaster10   = "exercise_master_10"
	ExerciseMaster25   = "exercise_master_25"
	ExerciseMaster50   = "exercise_master_50"
	LearningEnthusiast = "learning_enthusiast"
	LearningMaster     = "learning_master"
	MoodTracker7       = "mood_tracker_7"
	WeeklyWarrior      = "weekly_warrior"
)

// catalog is evaluated and reported in this order.
var catalog = []model.AchievementDefinition{
	{
		ID:          FirstExercise,
		Title:       "First Steps",
		Description: "Complete your very first exercise",
		Category:    model.CategoryMilestone,
		Requirement: "Complete 1 exercise",
		Points:      10,
		Metric:      model.MetricTotalExercises,
		Threshold:   1,
	},
	{
		ID:          ExerciseStreak3,
		Title:       "Building Momentum",
		Description: "Exercise three days in a row",
		Category:    model.CategoryConsistency,
		Requirement: "Reach a 3-day exercise streak",
		Points:      25,
		Metric:      model.MetricCurrentStreak,
		Threshold:   3,
	},
	{
		ID:          ExerciseStreak7,
		Title:       "Week of Strength",
		Description: "Exercise every day for a full week",
		Category:    model.CategoryConsistency,
		Requirement: "Reach a 7-day exercise streak",
		Points:      50,
		Metric:      model.MetricCurrentStreak,
		Threshold:   7,
	},
	{
		ID:          ExerciseMaster10,
		Title:       "Getting Stronger",
		Description: "Complete ten exercises",
		Category:    model.CategoryExercise,
		Requirement: "Complete 10 exercises",
		Points:      30,
		Metric:      model.MetricTotalExercises,
		Threshold:   10,
	},
	{
		ID:          ExerciseMaster25,
		Title:       "Dedicated Mover",
		Description: "Complete twenty-five exercises",
		Category:    model.CategoryExercise,
		Requirement: "Complete 25 exercises",
		Points:      60,
		Metric:      model.MetricTotalExercises,
		Threshold:   25,
	},
	{
		ID:          ExerciseMaster50,
		Title:       "Exercise Champion",
		Description: "Complete fifty exercises",
		Category:    model.CategoryExercise,
		Requirement: "Complete 50 exercises",
		Points:      100,
		Metric:      model.MetricTotalExercises,
		Threshold:   50,
	},
	{
		ID:          LearningEnthusiast,
		Title:       "Curious Mind",
		Description: "Finish five recovery lessons",
		Category:    model.CategoryLearning,
		Requirement: "Complete 5 lessons",
		Points:      40,
		Metric:      model.MetricTotalLessons,
		Threshold:   5,
	},
	{
		ID:          LearningMaster,
		Title:       "Knowledge Builder",
		Description: "Finish fifteen recovery lessons",
		Category:    model.CategoryLearning,
		Requirement: "Complete 15 lessons",
		Points:      80,
		Metric:      model.MetricTotalLessons,
		Threshold:   15,
	},
	{
		ID:          MoodTracker7,
		Title:       "In Touch",
		Description: "Log how you feel on seven days",
		Category:    model.CategoryMood,
		Requirement: "Record your mood on 7 days",
		Points:      35,
		Metric:      model.MetricMoodTrackingDays,
		Threshold:   7,
	},
	{
		ID:          WeeklyWarrior,
		Title:       "Weekly Warrior",
		Description: "Complete five exercises in a single week",
		Category:    model.CategoryConsistency,
		Requirement: "Complete 5 exercises this week",
		Points:      50,
		Metric:      model.MetricExercisesThisWeek,
		Threshold:   5,
	},
}

// Catalog returns a copy of the achievement definitions in catalog order.
func Catalog() []model.AchievementDefinition {
	return slices.Clone(catalog)
}

// ByID looks up a catalog entry.
func ByID(id string) (model.AchievementDefinition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return model.AchievementDefinition{}, false
}

// Qualifies reports whether stats meet the definition's threshold.
func Qualifies(def model.AchievementDefinition, stats model.UserStats) bool {
	value, ok := stats.Value(def.Metric)
	if !ok || def.Threshold <= 0 {
		return false
	}
	return value >= def.Threshold
}
