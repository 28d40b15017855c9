// Package seed fills a fresh database with the starter content.
package seed

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/setting"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/site"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// Admin is the initial account created in local auth mode.
type Admin struct {
	Username string
	Password string
}

// InitializeDefaults seeds the hero and about rows and the starter notices unless they already exist.
// It is safe to call on every start. A non-nil admin is created when the users table is empty.
func InitializeDefaults(db *gorm.DB, admin *Admin) error {
	if db == nil {
		return database.ErrDBNil
	}

	if err := seedSetting(db, site.KeyHero, site.DefaultHero()); err != nil {
		return err
	}

	if err := seedSetting(db, site.KeyAbout, site.DefaultAbout()); err != nil {
		return err
	}

	if err := seedNotices(db); err != nil {
		return err
	}

	if admin != nil {
		return seedAdmin(db, admin)
	}

	return nil
}

// seedSetting inserts v under name only if the row is missing, leaving edited content alone.
func seedSetting(db *gorm.DB, name string, v any) error {
	_, err := setting.Get(db, name)
	if err == nil {
		return nil
	}

	if !errors.Is(err, setting.ErrSettingNotFound) {
		return err
	}

	if err = setting.Store(db, name, v); err != nil {
		return err
	}

	log.Info().Str("setting", name).Msg("seeded default setting")

	return nil
}

func seedNotices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Notice{}).Count(&count).Error; err != nil {
		return database.Unavailable(err)
	}

	if count > 0 {
		return nil
	}

	notices := site.DefaultNotices()
	if err := db.Create(&notices).Error; err != nil {
		return database.Unavailable(err)
	}

	log.Info().Int("count", len(notices)).Msg("seeded starter notices")

	return nil
}

func seedAdmin(db *gorm.DB, admin *Admin) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return database.Unavailable(err)
	}

	if count > 0 {
		return nil
	}

	hash, err := models.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: admin.Username,
		Password: hash,
		Active:   true,
	}

	// a concurrent start may have created it already
	if err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return database.Unavailable(fmt.Errorf("failed to create admin user: %w", err))
	}

	log.Info().Str("username", admin.Username).Msg("created initial admin user")

	return nil
}
