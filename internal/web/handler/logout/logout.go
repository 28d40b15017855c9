// Package logout ends the admin session.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/login"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

const (
	// Path is the logout endpoint.
	Path = handler.APIPath + "/auth/logout"

	// MsgSuccess is the message of a logout.
	MsgSuccess = "Logged out"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	sessions *session.Store
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.sessions = deps.Sessions

	// outside the admin gate, logging out twice is fine
	app.Post(Path, s.Logout)

	return nil
}

// Logout handles user logout by clearing the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := s.sessions.Destroy(c.Cookies(session.CookieName)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}

	login.SetCookie(c, s.cfg, "", 0)

	return c.JSON(login.Result{Success: true, Message: MsgSuccess})
}
