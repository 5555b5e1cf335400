package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/recoverly/recoverly/internal/config"
	"github.com/recoverly/recoverly/internal/db"
	"github.com/recoverly/recoverly/internal/events"
	"github.com/recoverly/recoverly/internal/middleware"
	"github.com/recoverly/recoverly/internal/repository"
	"github.com/recoverly/recoverly/internal/service"
	"github.com/recoverly/recoverly/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	StatsService       *service.StatsService
	AchievementService *service.AchievementService
	ActivityService    *service.ActivityService
	LessonService      *service.LessonService
	EmailService       *service.EmailService
	ExportService      *service.ExportService
	WebhookService     *service.WebhookService
	Dispatcher         *events.Dispatcher
	// EvaluationLimiter throttles explicit evaluation requests; Close stops it.
	EvaluationLimiter *middleware.RateLimiter
	// Consumer is nil unless KAFKA_BROKERS is set.
	Consumer *events.Consumer
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	sessionRepository := repository.NewExerciseSessionRepository(database)
	completionRepository := repository.NewLessonCompletionRepository(database)
	dailyRecordRepository := repository.NewDailyRecordRepository(database)
	achievementRepository := repository.NewAchievementRepository(database)

	// Storage
	exportStorage, err := storage.New(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	lessonService := service.NewLessonService(cfg.ContentPath)
	err = lessonService.Load()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}

	statsService := service.NewStatsService(sessionRepository, completionRepository, dailyRecordRepository, cfg.Location())
	achievementService := service.NewAchievementService(achievementRepository, statsService)
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.UnlockEmails,
		cfg.IsDevelopment(),
	)
	activityService := service.NewActivityService(
		sessionRepository,
		completionRepository,
		dailyRecordRepository,
		lessonService,
		statsService,
		achievementService,
		emailService,
	)
	exportService := service.NewExportService(exportStorage, statsService, achievementService)

	// Events
	dispatcher := events.NewDispatcher(achievementService, emailService)
	webhookService := service.NewWebhookService(cfg.WebhookSecret, dispatcher)

	var consumer *events.Consumer
	if cfg.EventsEnabled() {
		consumer = events.NewConsumer(events.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
		}, dispatcher)
	}

	evaluationLimiter := middleware.NewRateLimiter(cfg.RateLimitEvaluations, cfg.RateLimitWindow)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		StatsService:       statsService,
		AchievementService: achievementService,
		ActivityService:    activityService,
		LessonService:      lessonService,
		EmailService:       emailService,
		ExportService:      exportService,
		WebhookService:     webhookService,
		Dispatcher:         dispatcher,
		EvaluationLimiter:  evaluationLimiter,
		Consumer:           consumer,
	}, nil
}

func (a *App) Close() error {
	if a.EvaluationLimiter != nil {
		a.EvaluationLimiter.Stop()
	}
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
