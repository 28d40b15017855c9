// Package upload relays admin file uploads to the media provider.
package upload

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/media"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

const (
	// Path is the upload endpoint.
	Path = handler.APIPath + "/upload"

	// FormField is the multipart field carrying the file.
	FormField = "file"

	msgNoFile        = "No file uploaded"
	msgNotConfigured = "Media uploads are not configured"
	msgUploadFailed  = "Upload failed"
	msgDeleteFailed  = "Failed to delete media"
)

// Service is the upload handler service.
type Service struct {
	handler.Service
	media media.Provider
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.media = deps.Media

	requireAdmin := authmw.RequireAdmin(deps.Sessions)

	app.Post(Path, requireAdmin, s.Post)
	app.Delete(Path, requireAdmin, s.Delete)

	return nil
}

// Post uploads the multipart file and responds with its public url.
func (s *Service) Post(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, msgNoFile)
	}

	f, err := fh.Open()
	if err != nil {
		return handler.Internal(c, err, msgUploadFailed)
	}
	defer f.Close()

	asset, err := s.media.Upload(c.UserContext(), f, fh.Filename)
	if err != nil {
		return failed(c, err, msgUploadFailed)
	}

	return c.JSON(asset)
}

// Delete removes an uploaded asset.
func (s *Service) Delete(c *fiber.Ctx) error {
	in, err := schema.DestroyAssetRequest(c.Body())
	if err != nil {
		return handler.Invalid(c, err)
	}

	if err = s.media.Destroy(c.UserContext(), in.PublicID, in.ResourceType); err != nil {
		return failed(c, err, msgDeleteFailed)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// failed maps provider errors: 503 without credentials, 502 for a provider failure.
func failed(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, media.ErrNotConfigured) {
		return handler.Error(c, fiber.StatusServiceUnavailable, msgNotConfigured)
	}

	log.Error().Err(err).Interface("request_id", c.Locals("requestid")).Msg(msg)

	return handler.Error(c, fiber.StatusBadGateway, msg)
}
