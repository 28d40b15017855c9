// Package notice provides CRUD operations for notices.
package notice

import (
	"errors"

	"gorm.io/gorm"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/crud"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// List returns all notices in insertion order. Clients sort by date.
func List(db *gorm.DB) ([]models.Notice, error) {
	return crud.List[models.Notice](db, "id ASC")
}

// Create stores a new notice.
func Create(db *gorm.DB, n models.Notice) (*models.Notice, error) {
	n.ID = 0

	return crud.Create(db, &n)
}

// Update replaces every field of the notice with id. A missing notice yields (nil, nil).
func Update(db *gorm.DB, id uint64, n models.Notice) (*models.Notice, error) {
	return crud.Update(db, id, func(row *models.Notice) {
		row.Title = n.Title
		row.Description = n.Description
		row.Date = n.Date
	})
}

// Delete removes the notice with id and reports whether it existed.
func Delete(db *gorm.DB, id uint64) (bool, error) {
	return crud.Delete[models.Notice](db, id)
}

// Count returns the number of notices.
func Count(db *gorm.DB) (int64, error) {
	return crud.Count[models.Notice](db)
}

// Latest returns the notice with the newest date, nil if there is none.
func Latest(db *gorm.DB) (*models.Notice, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	var n models.Notice

	err := db.Order("date DESC").Order("id DESC").First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil // no notice yet
	}

	if err != nil {
		return nil, database.Unavailable(err)
	}

	return &n, nil
}
