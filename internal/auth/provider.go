package auth

import (
	"crypto/subtle"
)

// Identity is the authenticated admin.
type Identity struct {
	UserID   uint64
	Username string
}

// Provider verifies a username and password pair.
type Provider interface {
	Authenticate(username, password string) (*Identity, error)
}

// StaticProvider authenticates against one configured username and password.
type StaticProvider struct {
	username string
	password string
}

// NewStaticProvider creates a provider for the given credentials.
func NewStaticProvider(username, password string) *StaticProvider {
	return &StaticProvider{username: username, password: password}
}

// Authenticate compares both values in constant time.
func (p *StaticProvider) Authenticate(username, password string) (*Identity, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1

	switch {
	case !userOK:
		return nil, ErrUserNotFound
	case !passOK:
		return nil, ErrInvalidPassword
	}

	return &Identity{Username: p.username}, nil
}
