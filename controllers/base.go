package controllers

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sitelog/client"
	"sitelog/forms"
	"sitelog/middleware"
	"sitelog/session"
	"sitelog/utils"
)

// queryOf and formOf adapt fiber's variadic accessors to plain lookups so
// scope resolution can be shared between GET and POST handlers.
func queryOf(c *fiber.Ctx) func(string) string {
	return func(key string) string { return c.Query(key) }
}

func formOf(c *fiber.Ctx) func(string) string {
	return func(key string) string { return c.FormValue(key) }
}

// authOf adapts the request's session to the API client's Auth contract.
func authOf(c *fiber.Ctx, store session.Store) client.Auth {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return nil
	}
	return sess.Credentials(c.Context(), store)
}

// failFlash converts an API or validation failure into a user-visible
// notice and the right navigation. Auth failures force a re-login; nothing
// is retried automatically.
func failFlash(c *fiber.Ctx, err error, redirectTo string) error {
	switch {
	case errors.Is(err, client.ErrAuthExpired), errors.Is(err, client.ErrAuthFailed), errors.Is(err, client.ErrAuthMissing):
		middleware.ClearSessionCookie(c)
		utils.FlashError(c, err.Error())
		return c.Redirect("/login", fiber.StatusSeeOther)
	case forms.IsValidationError(err):
		utils.FlashError(c, err.Error())
		return c.Redirect(redirectTo, fiber.StatusSeeOther)
	case errors.Is(err, client.ErrNetwork), errors.Is(err, client.ErrForbidden):
		utils.FlashError(c, err.Error())
		return c.Redirect(redirectTo, fiber.StatusSeeOther)
	default:
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Status >= 500 {
				sentry.CaptureException(err)
			}
			utils.FlashError(c, apiErr.Error())
			return c.Redirect(redirectTo, fiber.StatusSeeOther)
		}
		logrus.WithError(err).Error("unexpected failure")
		sentry.CaptureException(err)
		utils.FlashError(c, "something went wrong, please try again")
		return c.Redirect(redirectTo, fiber.StatusSeeOther)
	}
}

// viewData assembles the base template context: the authenticated user and
// any pending flash message.
func viewData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"User":  middleware.CurrentUser(c),
		"Flash": utils.TakeFlash(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
