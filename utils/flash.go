package utils

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash messages are the toast analog: one-shot notices that survive the
// post/redirect/get hop in a short-lived cookie and are cleared on read.

const flashCookie = "sitelog_flash"

type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func SetFlash(c *fiber.Ctx, kind, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func FlashSuccess(c *fiber.Ctx, message string) { SetFlash(c, "success", message) }
func FlashError(c *fiber.Ctx, message string)   { SetFlash(c, "error", message) }

// TakeFlash returns the pending flash, if any, and expires the cookie.
func TakeFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
