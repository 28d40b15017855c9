package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dbtest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

func TestStaticLogin(t *testing.T) {
	s := NewService(config.Auth{
		Source:        config.AuthSourceStatic,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}, nil)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "admin123", wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
		{name: "prefix of password", username: "admin", password: "admin", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := s.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", identity.Username)
		})
	}

	assert.Nil(t, s.Local())
	require.ErrorIs(t, s.ChangePassword(0, "admin123", "newpass"), ErrPasswordChangeUnsupported)
}

func TestLocalLogin(t *testing.T) {
	db := dbtest.New(t)
	s := NewService(config.Auth{Source: config.AuthSourceLocal}, db)

	user, err := s.Local().CreateUser("admin", "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", user.Password)

	_, err = s.Local().CreateUser("admin", "other")
	require.ErrorIs(t, err, ErrUserExists)

	_, err = s.Local().CreateUser("editor", "")
	require.ErrorIs(t, err, ErrEmptyPassword)

	disabled, err := s.Local().CreateUser("disabled", "pw123456")
	require.NoError(t, err)
	require.NoError(t, db.Model(disabled).Update("active", false).Error)

	identity, err := s.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)

	for _, creds := range [][2]string{{"admin", "wrong"}, {"nobody", "admin123"}, {"disabled", "pw123456"}} {
		_, err = s.Login(creds[0], creds[1])
		require.ErrorIs(t, err, ErrInvalidCredentials, creds[0])
	}
}

func TestLocalLegacyBcryptHash(t *testing.T) {
	db := dbtest.New(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "old", Password: string(hash), Active: true}).Error)

	p := NewLocalProvider(db)

	user, err := p.VerifyPassword("old", "legacy-pass")
	require.NoError(t, err)
	require.NotNil(t, user)

	// a password change moves the account to argon2id
	require.NoError(t, p.ChangePassword(user.ID, "legacy-pass", "new-pass"))

	found, err := p.FindByUsername("old")
	require.NoError(t, err)
	assert.Contains(t, found.Password, "$argon2id$")
	assert.True(t, found.VerifyPassword("new-pass"))
}

func TestLocalPasswordOperations(t *testing.T) {
	db := dbtest.New(t)
	p := NewLocalProvider(db)

	user, err := p.CreateUser("admin", "admin123")
	require.NoError(t, err)

	found, err := p.FindByUsername("missing")
	require.NoError(t, err)
	assert.Nil(t, found)

	matched, err := p.VerifyPassword("admin", "nope")
	require.NoError(t, err)
	assert.Nil(t, matched)

	require.ErrorIs(t, p.ChangePassword(user.ID, "wrong", "secret1"), ErrInvalidOldPassword)
	require.ErrorIs(t, p.ChangePassword(user.ID+1, "admin123", "secret1"), ErrUserNotFound)
	require.NoError(t, p.ChangePassword(user.ID, "admin123", "secret1"))

	matched, err = p.VerifyPassword("admin", "secret1")
	require.NoError(t, err)
	require.NotNil(t, matched)

	require.NoError(t, p.SetPassword(user.ID, "secret2"))
	require.ErrorIs(t, p.SetPassword(user.ID, ""), ErrEmptyPassword)
	require.ErrorIs(t, p.SetPassword(user.ID+1, "secret3"), ErrUserNotFound)

	matched, err = p.VerifyPassword("admin", "secret2")
	require.NoError(t, err)
	require.NotNil(t, matched)
}

func TestLoginStorageUnavailable(t *testing.T) {
	s := NewService(config.Auth{Source: config.AuthSourceLocal}, dbtest.Closed(t))

	_, err := s.Login("admin", "admin123")
	require.ErrorIs(t, err, database.ErrStorageUnavailable)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
