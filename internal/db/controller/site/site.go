// Package site reads and writes the singleton site content: hero, about and branding.
// A singleton that was never written reads as its compiled-in default.
package site

import (
	"gorm.io/gorm"

	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/setting"
)

const (
	// KeyHero is the settings name of the hero section.
	KeyHero = "hero"
	// KeyAbout is the settings name of the about section.
	KeyAbout = "about"
	// KeyBranding is the settings name of the branding.
	KeyBranding = "branding"
)

// Hero is the homepage header content.
type Hero struct {
	Name        string `json:"name"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

// About is the about section content.
type About struct {
	Text    string `json:"text"`
	Mission string `json:"mission"`
}

// Branding is the site name and logo.
type Branding struct {
	SiteName string  `json:"siteName"`
	LogoURL  *string `json:"logoUrl,omitempty"`
}

func get[T any](db *gorm.DB, key string, def T) (T, error) {
	var v T

	found, err := setting.Load(db, key, &v)
	if err != nil {
		return def, err
	}

	if !found {
		return def, nil
	}

	return v, nil
}

func save[T any](db *gorm.DB, key string, v T) (T, error) {
	if err := setting.Store(db, key, v); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}

// GetHero returns the stored hero or DefaultHero.
func GetHero(db *gorm.DB) (Hero, error) {
	return get(db, KeyHero, DefaultHero())
}

// SaveHero replaces the hero.
func SaveHero(db *gorm.DB, v Hero) (Hero, error) {
	return save(db, KeyHero, v)
}

// GetAbout returns the stored about section or DefaultAbout.
func GetAbout(db *gorm.DB) (About, error) {
	return get(db, KeyAbout, DefaultAbout())
}

// SaveAbout replaces the about section.
func SaveAbout(db *gorm.DB, v About) (About, error) {
	return save(db, KeyAbout, v)
}

// GetBranding returns the stored branding or DefaultBranding.
func GetBranding(db *gorm.DB) (Branding, error) {
	return get(db, KeyBranding, DefaultBranding())
}

// SaveBranding replaces the branding.
func SaveBranding(db *gorm.DB, v Branding) (Branding, error) {
	return save(db, KeyBranding, v)
}
