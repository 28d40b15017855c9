// Package dashboard provides the admin overview of the site content.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryctl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/gallery"
	heroslidectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/heroslide"
	noticectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/notice"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

const (
	// Path is the dashboard endpoint.
	Path = handler.APIPath + "/admin/dashboard"

	msgFailed = "Failed to fetch dashboard data"
)

// Stats is the dashboard body.
type Stats struct {
	Notices       int64          `json:"notices"`
	GalleryItems  int64          `json:"galleryItems"`
	FeaturedItems int64          `json:"featuredItems"`
	HeroSlides    int64          `json:"heroSlides"`
	LatestNotice  *models.Notice `json:"latestNotice"`
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.db = deps.DB

	app.Get(Path, authmw.RequireAdmin(deps.Sessions), s.Get)

	return nil
}

// Get responds with the content counts and the latest notice.
func (s *Service) Get(c *fiber.Ctx) error {
	stats, err := Collect(s.db)
	if err != nil {
		return handler.Internal(c, err, msgFailed)
	}

	return c.JSON(stats)
}

// Collect gathers the dashboard stats.
func Collect(db *gorm.DB) (*Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.Notices, err = noticectl.Count(db); err != nil {
		return nil, err
	}

	if stats.GalleryItems, err = galleryctl.Count(db); err != nil {
		return nil, err
	}

	if stats.FeaturedItems, err = galleryctl.CountFeatured(db); err != nil {
		return nil, err
	}

	if stats.HeroSlides, err = heroslidectl.Count(db); err != nil {
		return nil, err
	}

	if stats.LatestNotice, err = noticectl.Latest(db); err != nil {
		return nil, err
	}

	return &stats, nil
}
