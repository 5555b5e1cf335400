package handler

import (
	"net/http"

	"github.com/recoverly/recoverly/internal/service"
)

type LessonHandler struct {
	lessonService *service.LessonService
}

func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"lessons": h.lessonService.List()})
}

func (h *LessonHandler) Show(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.lessonService.ByID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	writeJSON(w, http.StatusOK, lesson)
}
