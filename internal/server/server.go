// Package server assembles the fiber application from its dependencies.
package server

import (
	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/media"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/routes"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/views"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// New builds the HTTP application. The caller owns db and store.
func New(cfg *config.Config, db *gorm.DB, store *media.Store) *fiber.App {
	sessions := session.NewManager(cfg)

	// Services
	authService := services.NewAuthService(db, sessions)
	listingService := services.NewListingService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	listingHandler := handlers.NewListingHandler(listingService, store)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "myflat",
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(cfg),
		Views:        views.NewEngine(),
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.EncryptCookies(cfg.SecretKey))
	app.Use(middleware.SessionLoader(sessions, authService))

	routes.Setup(app, store.Root(), authHandler, listingHandler, healthHandler)
	return app
}
