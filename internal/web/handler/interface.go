package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/media"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New(ErrNilDepsFatalLogMsg)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Sessions *session.Store
	Auth     *auth.Service
	Media    media.Provider
}

// Valid reports whether every dependency is set.
func (d *Deps) Valid() bool {
	return d != nil && d.Cfg != nil && d.DB != nil && d.Sessions != nil && d.Auth != nil && d.Media != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps) error
}
