package service

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoverly/recoverly/internal/achievement"
	"github.com/recoverly/recoverly/internal/events"
)

const testWebhookSecret = "test-webhook-secret-0123456789"

func signedHeaders(t *testing.T, payload []byte) http.Header {
	t.Helper()
	wh, err := standardwebhooks.NewWebhookRaw([]byte(testWebhookSecret))
	require.NoError(t, err)

	now := time.Now()
	signature, err := wh.Sign("msg_1", now, payload)
	require.NoError(t, err)

	headers := http.Header{}
	headers.Set("webhook-id", "msg_1")
	headers.Set("webhook-timestamp", strconv.FormatInt(now.Unix(), 10))
	headers.Set("webhook-signature", signature)
	return headers
}

func newWebhookService(f *fixture, secret string) *WebhookService {
	return NewWebhookService(secret, events.NewDispatcher(f.achievement, nil))
}

func TestWebhookVerifiedEventUnlocks(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-13", 1)
	s := newWebhookService(f, testWebhookSecret)
	payload := []byte(`{"type":"exercise.completed","user_id":"u1"}`)

	unlocked, err := s.HandleWebhook(context.Background(), payload, signedHeaders(t, payload))
	require.NoError(t, err)
	assert.Equal(t, []string{achievement.FirstExercise}, unlocked)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	f := newFixture()
	f.exerciseDay("u1", "2026-10-13", 1)
	s := newWebhookService(f, testWebhookSecret)
	payload := []byte(`{"type":"exercise.completed","user_id":"u1"}`)
	headers := signedHeaders(t, payload)

	_, err := s.HandleWebhook(context.Background(), []byte(`{"type":"exercise.completed","user_id":"u2"}`), headers)
	require.Error(t, err)
	assert.Zero(t, f.achievements.inserts)
}

func TestWebhookWithoutSecretSkipsVerification(t *testing.T) {
	f := newFixture()
	s := newWebhookService(f, "")

	unlocked, err := s.HandleWebhook(context.Background(), []byte(`{"type":"mood.logged","user_id":"u1"}`), http.Header{})
	require.NoError(t, err)
	assert.Empty(t, unlocked)

	_, err = s.HandleWebhook(context.Background(), []byte(`{"type":"mood.logged"}`), http.Header{})
	assert.ErrorIs(t, err, events.ErrMissingUserID)
}
