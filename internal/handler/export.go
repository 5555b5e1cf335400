package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/recoverly/recoverly/internal/ctxkeys"
	"github.com/recoverly/recoverly/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	url, err := h.exportService.Export(r.Context(), userID)
	if errors.Is(err, service.ErrExportDisabled) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to export progress", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to export progress")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
