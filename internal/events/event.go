// Package events turns activity notifications from the backend into
// achievement evaluation passes.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/recoverly/recoverly/internal/model"
	"github.com/recoverly/recoverly/internal/validation"
)

const (
	TypeExerciseCompleted = "exercise.completed"
	TypeLessonCompleted   = "lesson.completed"
	TypeMoodLogged        = "mood.logged"
)

var (
	ErrMissingUserID = errors.New("event has no user_id")
)

type ActivityEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Decode parses a JSON activity event.
func Decode(payload []byte) (*ActivityEvent, error) {
	var event ActivityEvent
	err := json.Unmarshal(payload, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	if event.UserID == "" {
		return nil, ErrMissingUserID
	}
	return &event, nil
}

type Evaluator interface {
	EvaluateAndUnlock(ctx context.Context, userID string) []string
	Definitions(ids []string) []model.AchievementDefinition
}

type Notifier interface {
	SendAchievementsUnlocked(ctx context.Context, email string, defs []model.AchievementDefinition) error
}

type Dispatcher struct {
	evaluator Evaluator
	notifier  Notifier
}

func NewDispatcher(evaluator Evaluator, notifier Notifier) *Dispatcher {
	return &Dispatcher{
		evaluator: evaluator,
		notifier:  notifier,
	}
}

// Dispatch runs an evaluation pass for activity events and returns the newly
// unlocked ids. Unknown event types are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, event *ActivityEvent) []string {
	switch event.Type {
	case TypeExerciseCompleted, TypeLessonCompleted, TypeMoodLogged:
	default:
		slog.Warn("unknown activity event type", "event_type", event.Type, "user_id", event.UserID)
		return []string{}
	}

	unlocked := d.evaluator.EvaluateAndUnlock(ctx, event.UserID)
	slog.Info("activity event processed", "event_type", event.Type, "user_id", event.UserID, "unlocked", len(unlocked))

	if len(unlocked) > 0 && event.Email != "" && d.notifier != nil {
		err := validation.ValidateEmail(event.Email)
		if err != nil {
			slog.Warn("skipping unlock email", "error", err, "user_id", event.UserID)
			return unlocked
		}

		err = d.notifier.SendAchievementsUnlocked(ctx, event.Email, d.evaluator.Definitions(unlocked))
		if err != nil {
			slog.Error("failed to send unlock email", "error", err, "user_id", event.UserID)
		}
	}

	return unlocked
}
