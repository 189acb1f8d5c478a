// Package flash carries one-shot notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

const (
	CookieName = "myflat_flash"
	localsKey  = "flash_messages"
)

// Add queues msg for the next page rendered, in this request or a later one.
func Add(c *fiber.Ctx, msg string) {
	msgs := append(pending(c), msg)
	c.Locals(localsKey, msgs)

	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Pop returns every queued notice and forgets them.
func Pop(c *fiber.Ctx) []string {
	msgs := pending(c)
	c.Locals(localsKey, []string{})
	if len(msgs) > 0 || c.Cookies(CookieName) != "" {
		c.ClearCookie(CookieName)
	}
	return msgs
}

func pending(c *fiber.Ctx) []string {
	if msgs, ok := c.Locals(localsKey).([]string); ok {
		return msgs
	}
	msgs := decode(c.Cookies(CookieName))
	c.Locals(localsKey, msgs)
	return msgs
}

func decode(value string) []string {
	if value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
