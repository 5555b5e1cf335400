package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/recoverly/recoverly/internal/ctxkeys"
	"github.com/recoverly/recoverly/internal/service"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

type recordExerciseRequest struct {
	ExerciseType string `json:"exercise_type"`
}

type logMoodRequest struct {
	Rating int `json:"rating"`
}

func (h *ActivityHandler) RecordExercise(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req recordExerciseRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.activityService.RecordExercise(r.Context(), userID, req.ExerciseType)
	if err != nil {
		h.handleError(w, err, "failed to record exercise", userID)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *ActivityHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	lessonID := r.PathValue("id")

	result, err := h.activityService.CompleteLesson(r.Context(), userID, lessonID)
	if err != nil {
		h.handleError(w, err, "failed to complete lesson", userID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ActivityHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req logMoodRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.activityService.LogMood(r.Context(), userID, req.Rating)
	if err != nil {
		h.handleError(w, err, "failed to log mood", userID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, err error, msg, userID string) {
	switch {
	case errors.Is(err, service.ErrInvalidExerciseType), errors.Is(err, service.ErrInvalidMoodRating):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnknownLesson):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error(msg, "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to save activity")
	}
}
