// Package gallery provides CRUD operations for gallery items.
package gallery

import (
	"gorm.io/gorm"

	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/crud"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// List returns featured items first, each partition in insertion order.
func List(db *gorm.DB) ([]models.GalleryImage, error) {
	return crud.List[models.GalleryImage](db, "is_featured DESC, id ASC")
}

// Create stores a new gallery item.
func Create(db *gorm.DB, img models.GalleryImage) (*models.GalleryImage, error) {
	img.ID = 0
	img.MediaType = img.MediaType.Normalize()

	return crud.Create(db, &img)
}

// Update replaces every field of the item with id. A missing item yields (nil, nil).
func Update(db *gorm.DB, id uint64, img models.GalleryImage) (*models.GalleryImage, error) {
	return crud.Update(db, id, func(row *models.GalleryImage) {
		row.Title = img.Title
		row.ImageURL = img.ImageURL
		row.Caption = img.Caption
		row.MediaType = img.MediaType.Normalize()
		row.IsFeatured = img.IsFeatured
	})
}

// Delete removes the item with id and reports whether it existed.
func Delete(db *gorm.DB, id uint64) (bool, error) {
	return crud.Delete[models.GalleryImage](db, id)
}

// Count returns the number of gallery items.
func Count(db *gorm.DB) (int64, error) {
	return crud.Count[models.GalleryImage](db)
}

// CountFeatured returns the number of featured gallery items.
func CountFeatured(db *gorm.DB) (int64, error) {
	return crud.Count[models.GalleryImage](db, "is_featured = ?", true)
}
