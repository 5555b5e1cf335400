package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/recoverly/recoverly/internal/events"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// WebhookService accepts signed activity notifications from the backend.
type WebhookService struct {
	secret     string
	dispatcher *events.Dispatcher
}

func NewWebhookService(secret string, dispatcher *events.Dispatcher) *WebhookService {
	return &WebhookService{
		secret:     secret,
		dispatcher: dispatcher,
	}
}

// HandleWebhook verifies and dispatches one activity event, returning the ids
// it unlocked.
func (s *WebhookService) HandleWebhook(ctx context.Context, payload []byte, headers http.Header) ([]string, error) {
	if s.secret == "" {
		slog.Warn("no webhook secret configured, skipping signature verification")
	} else {
		wh, err := standardwebhooks.NewWebhookRaw([]byte(s.secret))
		if err != nil {
			return nil, fmt.Errorf("failed to create webhook verifier: %w", err)
		}

		err = wh.Verify(payload, headers)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook signature: %w", err)
		}
	}

	event, err := events.Decode(payload)
	if err != nil {
		return nil, err
	}

	slog.Info("activity webhook received", "event_type", event.Type, "user_id", event.UserID)

	return s.dispatcher.Dispatch(ctx, event), nil
}
