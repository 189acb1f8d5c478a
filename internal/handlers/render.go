package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/flash"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/views"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// render executes a page inside the base layout with the current user and
// any pending notices.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = session.CurrentUser(c)
	data["Flashes"] = flash.Pop(c)
	return c.Render(name, data, views.Layout)
}

// ErrorHandler renders failures as the error page. Details of 5xx errors
// are logged, not shown.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= 500 {
			slog.Error("unhandled server error",
				"method", c.Method(),
				"path", c.Path(),
				"trace_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"error", err.Error(),
			)
			if hub := sentryfiber.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
			message = "Internal server error"
			if !cfg.IsProduction() {
				message = err.Error()
			}
		}

		c.Status(code)
		rerr := c.Render("error", fiber.Map{
			"Status":     code,
			"StatusText": http.StatusText(code),
			"Message":    message,
			"User":       session.CurrentUser(c),
		}, views.Layout)
		if rerr != nil {
			slog.Error("failed to render error page", "error", rerr)
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
