package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/repository"
)

var errStoreDown = errors.New("store down")

// fixedNow is a Tuesday; the week started on Sunday 2026-10-11.
var fixedNow = time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

type fakeSessions struct {
	mu       sync.Mutex
	sessions []*model.ExerciseSession
	daily    *fakeDaily
	err      error
	reads    int
}

// Create mirrors the repository transaction: the session is kept only when
// the daily record update succeeds too.
func (f *fakeSessions) Create(ctx context.Context, session *model.ExerciseSession, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.daily != nil && session.Completed {
		f.daily.mu.Lock()
		defer f.daily.mu.Unlock()
		if f.daily.err != nil {
			return f.daily.err
		}
		f.daily.record(session.UserID, date).ExercisesCompleted++
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessions) CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, s := range f.sessions {
		if s.UserID != userID || !s.Completed {
			continue
		}
		if since != nil && s.CreatedAt.Before(*since) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeSessions) add(userID string, at time.Time, n int) {
	for range n {
		f.sessions = append(f.sessions, &model.ExerciseSession{UserID: userID, ExerciseType: "breathing", Completed: true, CreatedAt: at})
	}
}

type fakeCompletions struct {
	mu          sync.Mutex
	completions map[string]*model.LessonCompletion
	err         error
}

func newFakeCompletions() *fakeCompletions {
	return &fakeCompletions{completions: map[string]*model.LessonCompletion{}}
}

func (f *fakeCompletions) Complete(ctx context.Context, completion *model.LessonCompletion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.completions[completion.UserID+"/"+completion.LessonID] = completion
	return nil
}

func (f *fakeCompletions) CountCompleted(ctx context.Context, userID string, since *time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, c := range f.completions {
		if c.UserID != userID || !c.Completed {
			continue
		}
		if since != nil && c.CompletedAt.Before(*since) {
			continue
		}
		count++
	}
	return count, nil
}

type fakeDaily struct {
	mu      sync.Mutex
	records map[string]*model.DailyRecord
	err     error
}

func newFakeDaily() *fakeDaily {
	return &fakeDaily{records: map[string]*model.DailyRecord{}}
}

func (f *fakeDaily) record(userID, date string) *model.DailyRecord {
	key := userID + "/" + date
	record, ok := f.records[key]
	if !ok {
		record = &model.DailyRecord{UserID: userID, Date: date}
		f.records[key] = record
	}
	return record
}

func (f *fakeDaily) SetMood(ctx context.Context, userID, date string, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.record(userID, date).MoodRating = &rating
	return nil
}

func (f *fakeDaily) Recent(ctx context.Context, userID string, limit int) ([]*model.DailyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.DailyRecord
	for _, r := range f.records {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAchievements struct {
	mu        sync.Mutex
	unlocked  map[string]map[string]time.Time
	readErr   error
	unlockErr map[string]error
	inserts   int
}

func newFakeAchievements() *fakeAchievements {
	return &fakeAchievements{
		unlocked:  map[string]map[string]time.Time{},
		unlockErr: map[string]error{},
	}
}

func (f *fakeAchievements) Unlock(ctx context.Context, unlock *model.UnlockedAchievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.unlockErr[unlock.AchievementID]; err != nil {
		return err
	}
	user, ok := f.unlocked[unlock.UserID]
	if !ok {
		user = map[string]time.Time{}
		f.unlocked[unlock.UserID] = user
	}
	if _, exists := user[unlock.AchievementID]; exists {
		return repository.ErrAchievementAlreadyUnlocked
	}
	user[unlock.AchievementID] = unlock.UnlockedAt
	f.inserts++
	return nil
}

func (f *fakeAchievements) Unlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := map[string]time.Time{}
	for id, at := range f.unlocked[userID] {
		out[id] = at
	}
	return out, nil
}

func (f *fakeAchievements) preset(userID string, ids ...string) {
	for _, id := range ids {
		if f.unlocked[userID] == nil {
			f.unlocked[userID] = map[string]time.Time{}
		}
		f.unlocked[userID][id] = fixedNow.Add(-48 * time.Hour)
	}
}

type fixture struct {
	sessions     *fakeSessions
	completions  *fakeCompletions
	daily        *fakeDaily
	achievements *fakeAchievements
	stats        *StatsService
	achievement  *AchievementService
}

func newFixture() *fixture {
	daily := newFakeDaily()
	f := &fixture{
		sessions:     &fakeSessions{daily: daily},
		completions:  newFakeCompletions(),
		daily:        daily,
		achievements: newFakeAchievements(),
	}
	f.stats = NewStatsService(f.sessions, f.completions, f.daily, time.UTC)
	f.stats.SetClock(func() time.Time { return fixedNow })
	f.achievement = NewAchievementService(f.achievements, f.stats)
	return f
}

// exerciseDay records n completed sessions and the matching daily total.
func (f *fixture) exerciseDay(userID, date string, n int) {
	day, _ := time.ParseInLocation(model.DateLayout, date, time.UTC)
	f.sessions.add(userID, day.Add(12*time.Hour), n)
	f.daily.record(userID, date).ExercisesCompleted += n
}

func (f *fixture) moodDay(userID, date string, rating int) {
	f.daily.record(userID, date).MoodRating = &rating
}
