package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/recoverly/recoverly/internal/model"
	"github.com/resend/resend-go/v2"
)

var (
	ErrEmailNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appName   string
	enabled   bool
	isDev     bool
}

// NewEmailService returns a service that only sends when enabled. In
// development emails are logged instead of sent.
func NewEmailService(apiKey, fromEmail, appName string, enabled, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appName:   appName,
		enabled:   enabled,
		isDev:     isDev,
	}
}

func (s *EmailService) SendAchievementsUnlocked(ctx context.Context, email string, defs []model.AchievementDefinition) error {
	if !s.enabled || email == "" || len(defs) == 0 {
		return nil
	}

	subject, body := achievementsUnlockedEmailTemplate(defs, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "achievements_unlocked", "to", email, "subject", subject, "count", len(defs))
		return nil
	}

	if s.client == nil {
		return ErrEmailNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "achievements_unlocked", "to", email, "count", len(defs))
	}
	return err
}
