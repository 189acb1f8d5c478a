package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/flash"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	MsgLoginRequired = "Please log in to access this page."
	MsgAdminRequired = "Access denied. Admin privileges required."
)

// SessionLoader resolves the session cookie into the current user. Requests
// with no cookie, a bad token or a deleted user continue anonymously.
func SessionLoader(sessions *session.Manager, authService *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: sessions.SigningKey()},
		TokenLookup: "cookie:" + session.CookieName,
		ContextKey:  session.TokenKey,
		Claims:      &session.Claims{},
		Filter: func(c *fiber.Ctx) bool {
			return c.Cookies(session.CookieName) == ""
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(session.TokenKey).(*jwt.Token)
			if !ok {
				return c.Next()
			}
			claims, ok := token.Claims.(*session.Claims)
			if !ok {
				sessions.ClearCookie(c)
				return c.Next()
			}
			userID, err := claims.UserID()
			if err != nil {
				sessions.ClearCookie(c)
				return c.Next()
			}

			user, err := authService.GetUser(c.UserContext(), userID)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					sessions.ClearCookie(c)
					return c.Next()
				}
				return err
			}
			session.SetUser(c, user)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			sessions.ClearCookie(c)
			return c.Next()
		},
	})
}

// RequireAuth sends anonymous visitors to the login page.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.CurrentUser(c) == nil {
			flash.Add(c, MsgLoginRequired)
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := session.CurrentUser(c)
		if user == nil {
			flash.Add(c, MsgLoginRequired)
			return c.Redirect("/login")
		}
		if !user.IsAdmin {
			flash.Add(c, MsgAdminRequired)
			return c.Redirect("/")
		}
		return c.Next()
	}
}
