// Package gallery serves the image and video gallery.
package gallery

import (
	"github.com/gofiber/fiber/v2"

	galleryctl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/gallery"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

// Path is the gallery collection.
const Path = handler.APIPath + "/gallery"

// Service is the gallery handler service.
type Service struct {
	handler.Service
	handler.Collection[models.GalleryImage]
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.Collection = handler.Collection[models.GalleryImage]{
		Noun:     "gallery image",
		Plural:   "gallery images",
		DB:       deps.DB,
		Validate: schema.GalleryImage,
		List:     galleryctl.List,
		Create:   galleryctl.Create,
		Update:   galleryctl.Update,
		Delete:   galleryctl.Delete,
	}

	s.Register(app, Path, authmw.RequireAdmin(deps.Sessions))

	return nil
}
