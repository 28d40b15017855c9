package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

const (
	// UnauthorizedMsg is the error of every rejected request.
	UnauthorizedMsg = "Unauthorized. Please login first."

	// SessionFailedMsg is returned when the session store can not be read.
	SessionFailedMsg = "Failed to read session"

	localsKey = "session"
)

// RequireAdmin rejects every request without an admin session with 401.
// A session store that can not be read yields 500, the client is still logged in.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := store.Get(c.Cookies(session.CookieName))
		if err != nil {
			return handler.Internal(c, err, SessionFailedMsg)
		}

		if data == nil || !data.IsAdmin {
			return handler.Error(c, fiber.StatusUnauthorized, UnauthorizedMsg)
		}

		c.Locals(localsKey, data)

		return c.Next()
	}
}

// FromContext returns the session stored by RequireAdmin, nil outside admin routes.
func FromContext(c *fiber.Ctx) *session.Data {
	data, _ := c.Locals(localsKey).(*session.Data) //nolint:errcheck // type assertion

	return data
}

// IsAuthenticated reports whether the request carries an admin session.
func IsAuthenticated(c *fiber.Ctx, store *session.Store) bool {
	data, err := store.Get(c.Cookies(session.CookieName))

	return err == nil && data != nil && data.IsAdmin
}
