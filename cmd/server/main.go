package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/database"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/logging"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/media"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/server"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout, optional rotating file)
	logger := logging.Setup(cfg)
	defer logger.Close()
	cfg.Warn()

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// System log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db, 5*time.Second)
	logger.Attach(dbLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Bootstrap admin
	authService := services.NewAuthService(db, session.NewManager(cfg))
	if _, err := authService.EnsureAdmin(context.Background(), cfg.AdminPassword); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	store, err := media.NewStore(cfg.UploadRoot)
	if err != nil {
		slog.Error("upload directory setup failed", "root", cfg.UploadRoot, "error", err)
		os.Exit(1)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, db, store)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
