package handler

import (
	"net/http"

	"github.com/recoverly/recoverly/internal/ctxkeys"
	"github.com/recoverly/recoverly/internal/service"
)

type AchievementHandler struct {
	achievementService *service.AchievementService
}

func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	writeJSON(w, http.StatusOK, h.achievementService.Progress(r.Context(), userID))
}

func (h *AchievementHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	unlocked := h.achievementService.EvaluateAndUnlock(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string][]string{"unlocked": unlocked})
}
