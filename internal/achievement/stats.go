package achievement

import (
	"slices"
	"strings"
	"time"

	"github.com/recoverly/recoverly/internal/model"
)

// RecentRecordLimit is how many daily records feed streak and mood counts.
const RecentRecordLimit = 30

// Counts are the totals read from session and lesson storage.
type Counts struct {
	TotalExercises    int
	ExercisesThisWeek int
	TotalLessons      int
	LessonsThisWeek   int
}

// Aggregate builds a stats snapshot. now is interpreted in its own location,
// which is the user's local calendar.
func Aggregate(counts Counts, records []*model.DailyRecord, now time.Time) model.UserStats {
	sorted := SortByDateDesc(records)
	longest, moodDays := LongestStreakAndMoodDays(sorted)

	return model.UserStats{
		TotalExercises:    counts.TotalExercises,
		TotalLessons:      counts.TotalLessons,
		CurrentStreak:     CurrentStreak(sorted, now),
		LongestStreak:     longest,
		MoodTrackingDays:  moodDays,
		ExercisesThisWeek: counts.ExercisesThisWeek,
		LessonsThisWeek:   counts.LessonsThisWeek,
	}
}

// SortByDateDesc returns a copy of records ordered newest first.
func SortByDateDesc(records []*model.DailyRecord) []*model.DailyRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *model.DailyRecord) int {
		return strings.Compare(b.Date, a.Date)
	})
	return sorted
}

// CurrentStreak walks back one calendar day at a time from today. A day with
// no record or with zero exercises ends the walk, today included: a user who
// has not exercised yet today has a streak of 0.
func CurrentStreak(records []*model.DailyRecord, now time.Time) int {
	byDate := make(map[string]*model.DailyRecord, len(records))
	for _, record := range records {
		if _, ok := byDate[record.Date]; !ok {
			byDate[record.Date] = record
		}
	}

	// Noon keeps AddDate clear of DST transitions.
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	streak := 0
	for i := 0; i < len(records); i++ {
		expected := today.AddDate(0, 0, -i).Format(model.DateLayout)
		record, ok := byDate[expected]
		if !ok || record.ExercisesCompleted <= 0 {
			break
		}
		streak++
	}
	return streak
}

// LongestStreakAndMoodDays makes one pass over records sorted newest first.
// Neighbouring records count as consecutive days even when dates are missing
// between them; only a zero-exercise record resets the run.
func LongestStreakAndMoodDays(records []*model.DailyRecord) (longest, moodDays int) {
	run := 0
	for _, record := range records {
		if record.ExercisesCompleted > 0 {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}

		if record.HasMood() {
			moodDays++
		}
	}
	return longest, moodDays
}

// WeekStart is the most recent Sunday at local midnight, inclusive of t.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday())
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// LocalDate is the calendar-date key of t in its location.
func LocalDate(t time.Time) string {
	return t.Format(model.DateLayout)
}
