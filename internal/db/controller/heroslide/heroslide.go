// Package heroslide provides CRUD operations for the homepage carousel slides.
package heroslide

import (
	"gorm.io/gorm"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/crud"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// List returns all slides by ascending sort order.
func List(db *gorm.DB) ([]models.HeroSlide, error) {
	return crud.List[models.HeroSlide](db, "sort_order ASC, id ASC")
}

// Create stores a new slide. Its sort order is its row id, and row ids are never reused,
// so a new slide always sorts after every slide created before it.
func Create(db *gorm.DB, s models.HeroSlide) (*models.HeroSlide, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	s.ID = 0
	s.SortOrder = 0
	s.MediaType = s.MediaType.Normalize()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s).Error; err != nil {
			return err
		}

		s.SortOrder = s.ID

		return tx.Model(&s).Update("sort_order", s.SortOrder).Error
	})
	if err != nil {
		return nil, database.Unavailable(err)
	}

	return &s, nil
}

// Update replaces title, media url and media type of the slide with id.
// The sort order is kept. A missing slide yields (nil, nil).
func Update(db *gorm.DB, id uint64, s models.HeroSlide) (*models.HeroSlide, error) {
	return crud.Update(db, id, func(row *models.HeroSlide) {
		row.Title = s.Title
		row.MediaURL = s.MediaURL
		row.MediaType = s.MediaType.Normalize()
	})
}

// Delete removes the slide with id and reports whether it existed.
func Delete(db *gorm.DB, id uint64) (bool, error) {
	return crud.Delete[models.HeroSlide](db, id)
}

// Count returns the number of slides.
func Count(db *gorm.DB) (int64, error) {
	return crud.Count[models.HeroSlide](db)
}
