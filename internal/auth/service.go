package auth

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
)

// Service logs admins in against the configured credential source.
type Service struct {
	provider Provider
	local    *LocalProvider // nil for static credentials
}

// NewService creates the auth service for cfg.Source.
func NewService(cfg config.Auth, db *gorm.DB) *Service {
	if cfg.Source == config.AuthSourceStatic {
		return &Service{provider: NewStaticProvider(cfg.AdminUsername, cfg.AdminPassword)}
	}

	local := NewLocalProvider(db)

	return &Service{provider: local, local: local}
}

// Local returns the local account provider, nil for static credentials.
func (s *Service) Local() *LocalProvider {
	return s.local
}

// Login returns the identity for valid credentials. Any credential failure is ErrInvalidCredentials,
// a storage failure is passed through.
func (s *Service) Login(username, password string) (*Identity, error) {
	identity, err := s.provider.Authenticate(username, password)
	if err == nil {
		return identity, nil
	}

	if errors.Is(err, database.ErrStorageUnavailable) {
		return nil, err
	}

	log.Debug().Err(err).Str("username", username).Msg("login failed")

	return nil, ErrInvalidCredentials
}

// ChangePassword changes the password of a local account.
func (s *Service) ChangePassword(userID uint64, currentPassword, newPassword string) error {
	if s.local == nil {
		return ErrPasswordChangeUnsupported
	}

	return s.local.ChangePassword(userID, currentPassword, newPassword)
}
