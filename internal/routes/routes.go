package routes

import (
	"github.com/ahmetcoskunkizilkaya/myflat/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	uploadRoot string,
	authHandler *handlers.AuthHandler,
	listingHandler *handlers.ListingHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/healthz", healthHandler.Check)

	// Uploaded media, read-only
	app.Static("/media", uploadRoot, fiber.Static{Browse: false})

	// Public
	app.Get("/", listingHandler.Index)
	app.Get("/search", listingHandler.Search)
	app.Get("/register", authHandler.ShowRegister)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)

	// Session required
	requireAuth := middleware.RequireAuth()
	app.Get("/logout", requireAuth, authHandler.Logout)
	app.Get("/post_flat", requireAuth, listingHandler.ShowPostFlat)
	app.Post("/post_flat", requireAuth, listingHandler.PostFlat)

	// Admin
	app.Get("/admin", requireAuth, middleware.RequireAdmin(), listingHandler.Admin)
}
