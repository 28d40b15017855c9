// Package crud holds the row operations shared by the collection controllers.
package crud

import (
	"errors"

	"gorm.io/gorm"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
)

// List returns every row of T in the given order.
func List[T any](db *gorm.DB, order string) ([]T, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	out := make([]T, 0)
	if err := db.Order(order).Find(&out).Error; err != nil {
		return nil, database.Unavailable(err)
	}

	return out, nil
}

// Create inserts row and returns it with its generated id.
func Create[T any](db *gorm.DB, row *T) (*T, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	if err := db.Create(row).Error; err != nil {
		return nil, database.Unavailable(err)
	}

	return row, nil
}

// Update loads the row with id, lets apply replace its fields and saves it.
// A missing row yields (nil, nil).
func Update[T any](db *gorm.DB, id uint64, apply func(row *T)) (*T, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	var row T

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}

		apply(&row)

		return tx.Save(&row).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil // absent is not an error
	}

	if err != nil {
		return nil, database.Unavailable(err)
	}

	return &row, nil
}

// Delete removes the row with id and reports whether it existed.
func Delete[T any](db *gorm.DB, id uint64) (bool, error) {
	if db == nil {
		return false, database.ErrDBNil
	}

	result := db.Delete(new(T), id)
	if result.Error != nil {
		return false, database.Unavailable(result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Count counts the rows of T matching the optional condition.
func Count[T any](db *gorm.DB, conds ...any) (int64, error) {
	if db == nil {
		return 0, database.ErrDBNil
	}

	var count int64

	query := db.Model(new(T))
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, database.Unavailable(err)
	}

	return count, nil
}
