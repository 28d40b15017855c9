package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Singleton serves read and replace of one singleton entity.
type Singleton[T any] struct {
	Noun     string
	DB       *gorm.DB
	Validate func(raw []byte) (T, error)
	Get      func(db *gorm.DB) (T, error)
	Save     func(db *gorm.DB, v T) (T, error)
}

// Register mounts GET and POST on path. POST runs requireAdmin first.
func (s *Singleton[T]) Register(app *fiber.App, path string, requireAdmin fiber.Handler) {
	app.Get(path, s.HandleGet)
	app.Post(path, requireAdmin, s.HandleSave)
}

// HandleGet responds with the stored value or its default.
func (s *Singleton[T]) HandleGet(c *fiber.Ctx) error {
	v, err := s.Get(s.DB)
	if err != nil {
		return Internal(c, err, "Failed to fetch "+s.Noun+" data")
	}

	return c.JSON(v)
}

// HandleSave validates the body, replaces the value and responds with it.
func (s *Singleton[T]) HandleSave(c *fiber.Ctx) error {
	in, err := s.Validate(c.Body())
	if err != nil {
		return Invalid(c, err)
	}

	v, err := s.Save(s.DB, in)
	if err != nil {
		return Internal(c, err, "Failed to update "+s.Noun+" data")
	}

	return c.JSON(v)
}
