// Package session keeps admin login state in a pluggable fiber.Storage.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session"

// Data represents the session data structure.
type Data struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Store reads and writes session data by session id. It is created once and injected
// into the handlers that need it.
type Store struct {
	storage fiber.Storage
	expiry  time.Duration
}

// New creates a store on top of storage. Entries expire after expiry.
func New(storage fiber.Storage, expiry time.Duration) *Store {
	if storage == nil {
		panic("storage is nil")
	}

	return &Store{storage: storage, expiry: expiry}
}

// NewMemoryStorage returns the in-process storage fiber uses by default.
func NewMemoryStorage() fiber.Storage {
	return fibersession.New().Storage
}

// Expiry returns the lifetime of a session.
func (s *Store) Expiry() time.Duration {
	return s.expiry
}

// Get returns the data of session id, nil if it does not exist or has expired.
func (s *Store) Get(id string) (*Data, error) {
	if id == "" {
		return nil, nil //nolint:nilnil // no session
	}

	raw, err := s.storage.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil //nolint:nilnil // no session
	}

	var data Data
	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &data, nil
}

// Set writes the data of session id.
func (s *Store) Set(id string, data *Data) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err = s.storage.Set(id, out, s.expiry); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// Destroy removes session id.
func (s *Store) Destroy(id string) error {
	if id == "" {
		return nil
	}

	if err := s.storage.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Close releases the underlying storage.
func (s *Store) Close() error {
	return s.storage.Close()
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
