// Package notice serves the notice board.
package notice

import (
	"github.com/gofiber/fiber/v2"

	noticectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/notice"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

// Path is the notices collection.
const Path = handler.APIPath + "/notices"

// Service is the notice handler service.
type Service struct {
	handler.Service
	handler.Collection[models.Notice]
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.Collection = handler.Collection[models.Notice]{
		Noun:     "notice",
		Plural:   "notices",
		DB:       deps.DB,
		Validate: schema.Notice,
		List:     noticectl.List,
		Create:   noticectl.Create,
		Update:   noticectl.Update,
		Delete:   noticectl.Delete,
	}

	s.Register(app, Path, authmw.RequireAdmin(deps.Sessions))

	return nil
}
