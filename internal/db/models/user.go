package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// User is an admin account of the local auth source.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account may log in.
	Active bool
	// Username is the unique login name.
	Username string `gorm:"unique;size:100;not null"`
	// Password is the password hash. New hashes are argon2id, imported ones may be bcrypt.
	Password string `gorm:"size:255;not null" json:"-"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hashedPassword, nil
}

// VerifyPassword verifies a plaintext password against the stored hash in constant time.
// bcrypt hashes ($2a$, $2b$, $2y$) are accepted so accounts carried over from an older
// deployment keep working until their next password change.
func (u *User) VerifyPassword(password string) bool {
	if strings.HasPrefix(u.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Uint64("user_id", u.ID).Msg("failed to verify password")
		return false
	}

	return match
}
