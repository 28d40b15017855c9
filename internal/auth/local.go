package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

const (
	whereID       = "id = ?"
	whereUsername = "username = ?"
)

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// FindByUsername returns the user, or nil if there is none.
func (p *LocalProvider) FindByUsername(username string) (*models.User, error) {
	var user models.User

	err := p.db.Where(whereUsername, username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil // absent is not an error
	}

	if err != nil {
		return nil, database.Unavailable(err)
	}

	return &user, nil
}

// VerifyPassword returns the active user whose password matches, or nil.
func (p *LocalProvider) VerifyPassword(username, password string) (*models.User, error) {
	user, err := p.FindByUsername(username)
	if err != nil || user == nil {
		return nil, err
	}

	if !user.Active || !user.VerifyPassword(password) {
		return nil, nil //nolint:nilnil // no match
	}

	return user, nil
}

// Authenticate authenticates a user against the local database.
func (p *LocalProvider) Authenticate(username, password string) (*Identity, error) {
	user, err := p.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

// CreateUser creates an active local user. The password is stored as an argon2id hash.
func (p *LocalProvider) CreateUser(username, password string) (*models.User, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Active:   true,
		Username: username,
		Password: hashedPassword,
	}

	result := p.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if result.Error != nil {
		return nil, database.Unavailable(fmt.Errorf("failed to create user: %w", result.Error))
	}

	if result.RowsAffected == 0 {
		return nil, ErrUserExists
	}

	return &user, nil
}

// SetPassword re-hashes and stores a new password for the user with id.
func (p *LocalProvider) SetPassword(userID uint64, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	hashedPassword, err := models.HashPassword(newPassword)
	if err != nil {
		return err
	}

	result := p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("password", hashedPassword)
	if result.Error != nil {
		return database.Unavailable(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ChangePassword changes a user's password after checking the current one.
func (p *LocalProvider) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	var user models.User

	err := p.db.Where(whereID, userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}

	if err != nil {
		return database.Unavailable(err)
	}

	if !user.VerifyPassword(oldPassword) {
		return ErrInvalidOldPassword
	}

	return p.SetPassword(userID, newPassword)
}
