package routes

import (
	"net/http"

	"github.com/recoverly/recoverly/internal/app"
	"github.com/recoverly/recoverly/internal/handler"
	"github.com/recoverly/recoverly/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	stats := handler.NewStatsHandler(app.StatsService)
	achievements := handler.NewAchievementHandler(app.AchievementService)
	activity := handler.NewActivityHandler(app.ActivityService)
	lessons := handler.NewLessonHandler(app.LessonService)
	export := handler.NewExportHandler(app.ExportService)
	webhook := handler.NewWebhookHandler(app.WebhookService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// Backend activity notifications (signature-verified)
	mux.HandleFunc("POST /webhooks/activity", webhook.Activity)

	// ============================================================================
	// API ROUTES (bearer token required)
	// ============================================================================

	evaluateLimiter := middleware.RateLimit(app.EvaluationLimiter)

	// Progress
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(stats.Stats))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(achievements.List))
	mux.HandleFunc("POST /api/achievements/evaluate", middleware.RequireAuth(evaluateLimiter(achievements.Evaluate)))
	mux.HandleFunc("POST /api/export", middleware.RequireAuth(export.Export))

	// Activity
	mux.HandleFunc("POST /api/exercises", middleware.RequireAuth(activity.RecordExercise))
	mux.HandleFunc("POST /api/mood", middleware.RequireAuth(activity.LogMood))
	mux.HandleFunc("POST /api/lessons/{id}/complete", middleware.RequireAuth(activity.CompleteLesson))

	// Lessons
	mux.HandleFunc("GET /api/lessons", middleware.RequireAuth(lessons.List))
	mux.HandleFunc("GET /api/lessons/{id}", middleware.RequireAuth(lessons.Show))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Auth(app.Cfg.JWTSecret),
		middleware.RequestLogging,
	)
}
