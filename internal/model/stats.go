package model

// UserStats is derived from a user's records on demand and never persisted.
type UserStats struct {
	TotalExercises    int `json:"total_exercises"`
	TotalLessons      int `json:"total_lessons"`
	CurrentStreak     int `json:"current_streak"`
	LongestStreak     int `json:"longest_streak"`
	MoodTrackingDays  int `json:"mood_tracking_days"`
	ExercisesThisWeek int `json:"exercises_this_week"`
	LessonsThisWeek   int `json:"lessons_this_week"`

	// Unavailable marks the zero snapshot returned when the data could not be read.
	Unavailable bool `json:"unavailable,omitempty"`
}

// UnavailableStats is the snapshot used in place of an error when statistics
// cannot be computed. All counters are zero.
func UnavailableStats() UserStats {
	return UserStats{Unavailable: true}
}
