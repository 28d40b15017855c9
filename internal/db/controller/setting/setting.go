// Package setting stores keyed JSON documents in the settings table.
package setting

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to read or write a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrSettingValueInvalid is returned when a value is not a JSON document.
	ErrSettingValueInvalid = errors.New("setting value is not valid json")
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, database.Unavailable(result.Error)
	}

	return &setting, nil
}

// Set creates or updates a setting by name in a single statement
// (INSERT .. ON CONFLICT (name) DO UPDATE), so concurrent writers never lose an update
// to a read-then-write gap. The last writer wins.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if db == nil {
		return nil, database.ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	if !json.Valid(value) {
		return nil, ErrSettingValueInvalid
	}

	setting := &models.Setting{
		Name:  name,
		Value: datatypes.JSON(value),
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(setting)
	if result.Error != nil {
		return nil, database.Unavailable(result.Error)
	}

	return setting, nil
}

// Load decodes the named setting into out. It reports false, and leaves out untouched,
// when no such setting exists.
func Load(db *gorm.DB, name string, out any) (bool, error) {
	setting, err := Get(db, name)
	if errors.Is(err, ErrSettingNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(setting.Value, out); err != nil {
		return false, fmt.Errorf("failed to decode setting %q: %w", name, err)
	}

	return true, nil
}

// Store encodes v as JSON and upserts it under name.
func Store(db *gorm.DB, name string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q: %w", name, err)
	}

	_, err = Set(db, name, value)

	return err
}
