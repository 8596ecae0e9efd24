package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sitelog/client"
	"sitelog/models"
	"sitelog/session"
)

// Locals keys set by Protected.
const (
	LocalSession = "session"
	LocalUser    = "user"
)

// Protected resolves the session before any protected view renders:
// unauthenticated requests are redirected to the login screen, sessions
// whose token already expired are torn down first so the user lands on a
// clean login rather than a cascade of failed API calls.
func Protected(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(session.CookieName)
		if sid == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		sess, err := store.Get(c.Context(), sid)
		if err != nil || sess == nil {
			clearSessionCookie(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		if client.TokenExpired(sess.AccessToken, time.Now()) {
			_ = store.Delete(c.Context(), sess.ID)
			clearSessionCookie(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(LocalSession, sess)
		c.Locals(LocalUser, &sess.User)
		return c.Next()
	}
}

// RedirectAuthenticated keeps logged-in users off the login screen.
func RedirectAuthenticated(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(session.CookieName)
		if sid == "" {
			return c.Next()
		}
		sess, err := store.Get(c.Context(), sid)
		if err != nil || sess == nil {
			return c.Next()
		}
		if client.TokenExpired(sess.AccessToken, time.Now()) {
			_ = store.Delete(c.Context(), sess.ID)
			clearSessionCookie(c)
			return c.Next()
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// CurrentSession returns the session placed by Protected.
func CurrentSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(LocalSession).(*session.Session)
	return sess
}

// CurrentUser returns the user placed by Protected.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}

// SetSessionCookie attaches a fresh session to the browser.
func SetSessionCookie(c *fiber.Ctx, sid string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie on logout.
func ClearSessionCookie(c *fiber.Ctx) {
	clearSessionCookie(c)
}
