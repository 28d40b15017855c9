package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Collection serves list, create, update and delete of one entity kind.
// Noun is the lower case singular name used in messages, e.g. "notice".
type Collection[T any] struct {
	Noun     string
	Plural   string
	DB       *gorm.DB
	Validate func(raw []byte) (T, error)
	List     func(db *gorm.DB) ([]T, error)
	Create   func(db *gorm.DB, v T) (*T, error)
	Update   func(db *gorm.DB, id uint64, v T) (*T, error)
	Delete   func(db *gorm.DB, id uint64) (bool, error)
}

// Register mounts the routes under path. Every write route runs requireAdmin first.
func (col *Collection[T]) Register(app *fiber.App, path string, requireAdmin fiber.Handler) {
	app.Route(path, func(router fiber.Router) {
		router.Get(RootPath, col.HandleList)
		router.Post(RootPath, requireAdmin, col.HandleCreate)
		router.Put(IDPath, requireAdmin, col.HandleUpdate)
		router.Delete(IDPath, requireAdmin, col.HandleDelete)
	})
}

func (col *Collection[T]) notFound(c *fiber.Ctx) error {
	noun := col.Noun
	if noun != "" {
		noun = strings.ToUpper(noun[:1]) + noun[1:]
	}

	return Error(c, fiber.StatusNotFound, noun+" not found")
}

// HandleList responds with every row.
func (col *Collection[T]) HandleList(c *fiber.Ctx) error {
	rows, err := col.List(col.DB)
	if err != nil {
		return Internal(c, err, "Failed to fetch "+col.Plural)
	}

	return c.JSON(rows)
}

// HandleCreate validates the body, stores it and responds 201 with the new row.
func (col *Collection[T]) HandleCreate(c *fiber.Ctx) error {
	in, err := col.Validate(c.Body())
	if err != nil {
		return Invalid(c, err)
	}

	row, err := col.Create(col.DB, in)
	if err != nil {
		return Internal(c, err, "Failed to create "+col.Noun)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// HandleUpdate replaces the row with :id and responds with it, 404 if there is none.
func (col *Collection[T]) HandleUpdate(c *fiber.Ctx) error {
	id, ok, err := ParseID(c, col.Noun)
	if !ok {
		return err
	}

	in, err := col.Validate(c.Body())
	if err != nil {
		return Invalid(c, err)
	}

	row, err := col.Update(col.DB, id, in)
	if err != nil {
		return Internal(c, err, "Failed to update "+col.Noun)
	}

	if row == nil {
		return col.notFound(c)
	}

	return c.JSON(row)
}

// HandleDelete removes the row with :id and responds 204, 404 if there is none.
func (col *Collection[T]) HandleDelete(c *fiber.Ctx) error {
	id, ok, err := ParseID(c, col.Noun)
	if !ok {
		return err
	}

	deleted, err := col.Delete(col.DB, id)
	if err != nil {
		return Internal(c, err, "Failed to delete "+col.Noun)
	}

	if !deleted {
		return col.notFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
