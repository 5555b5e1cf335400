package handler

import (
	"net/http"

	"github.com/recoverly/recoverly/internal/ctxkeys"
	"github.com/recoverly/recoverly/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Stats always answers 200; an unreadable store yields the zero snapshot
// flagged as unavailable.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	writeJSON(w, http.StatusOK, h.statsService.Compute(r.Context(), userID))
}
