// Package heroslide serves the homepage carousel slides.
package heroslide

import (
	"github.com/gofiber/fiber/v2"

	heroslidectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/heroslide"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

// Path is the hero slides collection.
const Path = handler.APIPath + "/hero-slides"

// Service is the hero slide handler service.
type Service struct {
	handler.Service
	handler.Collection[models.HeroSlide]
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.Collection = handler.Collection[models.HeroSlide]{
		Noun:     "hero slide",
		Plural:   "hero slides",
		DB:       deps.DB,
		Validate: schema.HeroSlide,
		List:     heroslidectl.List,
		Create:   heroslidectl.Create,
		Update:   heroslidectl.Update,
		Delete:   heroslidectl.Delete,
	}

	s.Register(app, Path, authmw.RequireAdmin(deps.Sessions))

	return nil
}
