// Package site serves the singleton hero, about and branding content.
package site

import (
	"github.com/gofiber/fiber/v2"

	sitectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/site"
	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	authmw "github.com/mohozompur-madrasa/madrasa-site/internal/web/middleware/auth"
)

const (
	// HeroPath serves the hero section.
	HeroPath = handler.APIPath + "/hero"
	// AboutPath serves the about section.
	AboutPath = handler.APIPath + "/about"
	// BrandingPath serves the branding.
	BrandingPath = handler.APIPath + "/branding"
)

// Service is the singleton content handler service.
type Service struct {
	handler.Service
	hero     handler.Singleton[sitectl.Hero]
	about    handler.Singleton[sitectl.About]
	branding handler.Singleton[sitectl.Branding]
}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.hero = handler.Singleton[sitectl.Hero]{
		Noun: "hero", DB: deps.DB, Validate: schema.Hero, Get: sitectl.GetHero, Save: sitectl.SaveHero,
	}
	s.about = handler.Singleton[sitectl.About]{
		Noun: "about", DB: deps.DB, Validate: schema.About, Get: sitectl.GetAbout, Save: sitectl.SaveAbout,
	}
	s.branding = handler.Singleton[sitectl.Branding]{
		Noun: "branding", DB: deps.DB, Validate: schema.Branding, Get: sitectl.GetBranding, Save: sitectl.SaveBranding,
	}

	requireAdmin := authmw.RequireAdmin(deps.Sessions)

	s.hero.Register(app, HeroPath, requireAdmin)
	s.about.Register(app, AboutPath, requireAdmin)
	s.branding.Register(app, BrandingPath, requireAdmin)

	return nil
}
