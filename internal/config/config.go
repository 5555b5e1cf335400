package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	Port        string
	Timezone    string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret     string // Shared secret of the backend that issues user tokens
	WebhookSecret string // standard-webhooks secret for /webhooks/activity

	// Email (unlock notifications)
	EmailFrom    string
	ResendAPIKey string
	UnlockEmails bool

	// Events (optional Kafka activity stream)
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// Observability (optional)
	SentryDSN string

	// Storage (optional, S3-compatible; enables progress exports)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration

	// Rate limiting for evaluation requests, per user
	RateLimitEvaluations int
	RateLimitWindow      time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Recoverly"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:        envString("PORT", "8090"),
		Timezone:    envString("APP_TIMEZONE", "Local"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/recoverly.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),

		// Security
		JWTSecret:     envRequired("JWT_SECRET"),
		WebhookSecret: envString("WEBHOOK_SECRET", ""),

		// Email
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		UnlockEmails: envBool("UNLOCK_EMAILS", false),

		// Events
		KafkaBrokers: envList("KAFKA_BROKERS"),
		KafkaTopic:   envString("KAFKA_TOPIC", "activity-events"),
		KafkaGroupID: envString("KAFKA_GROUP_ID", "recoverly-achievements"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),

		// Rate limiting
		RateLimitEvaluations: envInt("RATE_LIMIT_EVALUATIONS", 30),
		RateLimitWindow:      envDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures services enabled for production are actually configured.
func validateProduction(cfg *Config) {
	if cfg.UnlockEmails && cfg.ResendAPIKey == "" {
		slog.Error("unlock emails require RESEND_API_KEY in production",
			"hint", "set UNLOCK_EMAILS=false or APP_ENV=development for email log mode")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList splits a comma-separated value, dropping empty items.
func envList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Location is the calendar used for daily records and week boundaries.
// An unknown zone falls back to the server's local time.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("config invalid timezone, using local time", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
