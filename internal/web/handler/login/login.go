// Package login provides the admin login and the session check.
package login

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

const (
	// Path is the login endpoint.
	Path = handler.APIPath + "/auth/login"
	// CheckPath reports whether the caller is logged in.
	CheckPath = handler.APIPath + "/auth/check"
)

// Result is the body of a successful auth action.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Status is the body of the session check.
type Status struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Service is the login handler service. Limiter, when set, runs before the login handler.
type Service struct {
	handler.Service
	Limiter fiber.Handler

	cfg      *config.Config
	auth     *auth.Service
	sessions *session.Store
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.auth = deps.Auth
	s.sessions = deps.Sessions

	if s.Limiter != nil {
		app.Post(Path, s.Limiter, s.Post)
	} else {
		app.Post(Path, s.Post)
	}
	app.Get(CheckPath, s.Check)

	return nil
}

// Post checks the credentials and starts a new admin session.
func (s *Service) Post(c *fiber.Ctx) error {
	in, err := schema.LoginRequest(c.Body())
	if err != nil {
		var fields schema.Errors
		_ = errors.As(err, &fields)

		return c.Status(fiber.StatusBadRequest).JSON(handler.ErrorBody{Error: MsgInvalidFormat, Fields: fields})
	}

	identity, err := s.auth.Login(in.Username, in.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info().Str("ip", c.IP()).Msg("rejected admin login")

		return handler.Error(c, fiber.StatusUnauthorized, MsgInvalidCredentials)
	}

	if err != nil {
		return handler.Internal(c, err, MsgFailed)
	}

	// a new id on every login, the old one is discarded
	if err = s.sessions.Destroy(c.Cookies(session.CookieName)); err != nil {
		log.Warn().Err(err).Msg("failed to discard previous session")
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		return handler.Internal(c, err, MsgFailed)
	}

	data := &session.Data{UserID: identity.UserID, Username: identity.Username, IsAdmin: true}
	if err = s.sessions.Set(sessionID, data); err != nil {
		return handler.Internal(c, err, MsgFailed)
	}

	SetCookie(c, s.cfg, sessionID, s.sessions.Expiry())

	log.Info().Str("username", identity.Username).Str("ip", c.IP()).Msg("admin logged in")

	return c.JSON(Result{Success: true, Message: MsgSuccess})
}

// Check reports whether the request carries an admin session.
func (s *Service) Check(c *fiber.Ctx) error {
	return c.JSON(Status{IsAuthenticated: authmw.IsAuthenticated(c, s.sessions)})
}

// SetCookie writes the session cookie. A zero maxAge together with an empty value clears it.
func SetCookie(c *fiber.Ctx, cfg *config.Config, value string, maxAge time.Duration) {
	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     handler.RootPath,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   secure(cfg),
	}

	if value == "" {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(maxAge.Seconds())
	}

	c.Cookie(cookie)
}

// secure cookies need https, dev mode and plain http deployments go without.
func secure(cfg *config.Config) bool {
	return !cfg.DevMode && !strings.HasPrefix(cfg.Webserver.URL, "http://")
}
