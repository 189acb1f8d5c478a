package middleware

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "same-origin")
		return c.Next()
	}
}

// EncryptCookies encrypts every cookie with an AES-256 key derived from secret.
func EncryptCookies(secret string) fiber.Handler {
	return encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(secret),
	})
}

func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte("myflat-cookie:" + secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
