package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/recoverly/recoverly/internal/service"
)

type WebhookHandler struct {
	webhookService *service.WebhookService
}

func NewWebhookHandler(webhookService *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

func (h *WebhookHandler) Activity(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		slog.Error("failed to read webhook payload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read payload")
		return
	}
	defer func() {
		closeErr := r.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close request body", "error", closeErr)
		}
	}()

	unlocked, err := h.webhookService.HandleWebhook(r.Context(), payload, r.Header)
	if err != nil {
		slog.Error("failed to handle webhook", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to process webhook")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"received": true, "unlocked": unlocked})
}
