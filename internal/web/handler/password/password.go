// Package password lets the logged in admin change their password.
package password

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/login"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

const (
	// Path is the password change endpoint.
	Path = handler.APIPath + "/auth/change-password"

	// MsgSuccess is the message of a changed password.
	MsgSuccess = "Password changed successfully"

	msgFailed = "Failed to change password"
)

// Service is the password change handler service.
type Service struct {
	handler.Service
	auth *auth.Service
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.auth = deps.Auth

	app.Post(Path, authmw.RequireAdmin(deps.Sessions), s.Post)

	return nil
}

// Post changes the password of the session's account.
func (s *Service) Post(c *fiber.Ctx) error {
	in, err := schema.ChangePasswordRequest(c.Body())
	if err != nil {
		return handler.Invalid(c, err)
	}

	data := authmw.FromContext(c)
	if data == nil {
		return handler.Error(c, fiber.StatusUnauthorized, authmw.UnauthorizedMsg)
	}

	err = s.auth.ChangePassword(data.UserID, in.CurrentPassword, in.NewPassword)

	switch {
	case err == nil:
		log.Info().Str("username", data.Username).Msg("admin password changed")

		return c.JSON(login.Result{Success: true, Message: MsgSuccess})
	case errors.Is(err, auth.ErrInvalidOldPassword):
		return handler.Error(c, fiber.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, auth.ErrPasswordChangeUnsupported):
		return handler.Error(c, fiber.StatusBadRequest, "Password change is not available for configured credentials")
	case errors.Is(err, auth.ErrUserNotFound):
		// the account was removed while the session was alive
		return handler.Error(c, fiber.StatusUnauthorized, authmw.UnauthorizedMsg)
	default:
		return handler.Internal(c, err, msgFailed)
	}
}
