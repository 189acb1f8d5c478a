package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSecretKey     = "dev-secret-key-change-in-production"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	AppEnv string
	Port   string

	// Session
	SecretKey  string
	SessionTTL time.Duration

	// Database
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Media
	UploadRoot  string
	BodyLimitMB int

	// Bootstrap admin
	AdminPassword string

	// Logging
	LogLevel         string
	LogFilePath      string
	LogMaxSizeMB     int
	LogMaxBackups    int
	LogMaxAgeDays    int
	LogRetentionDays int

	SentryDSN string
}

// Load reads the process environment, seeded from .env.<APP_ENV> and .env
// when those files exist. Variables already set in the environment win.
func Load() *Config {
	loadDotEnv()

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "5000"),

		SecretKey:  getEnv("SECRET_KEY", DefaultSecretKey),
		SessionTTL: parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),

		DatabaseURL:    getEnv("DATABASE_URL", "sqlite:///myflat.db"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		UploadRoot:  getEnv("UPLOAD_ROOT", "static"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 64),

		AdminPassword: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFilePath:      getEnv("LOG_FILE_PATH", ""),
		LogMaxSizeMB:     getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:    getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:    getEnvInt("LOG_MAX_AGE_DAYS", 30),
		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Warn logs the insecure fallbacks that are still in effect.
func (c *Config) Warn() {
	if c.SecretKey == DefaultSecretKey {
		slog.Warn("SECRET_KEY is using the built-in default; set a strong secret in production")
	}
	if c.AdminPassword == DefaultAdminPassword {
		slog.Warn("ADMIN_PASSWORD is using the built-in default; change it before exposing the app")
	}
}

func loadDotEnv() {
	files := []string{".env"}
	if env := os.Getenv("APP_ENV"); env != "" {
		files = append([]string{".env." + env}, files...)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
