// Package daemon wires configuration, database, sessions, media and the web service together.
package daemon

import (
	"errors"

	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/seed"
	"github.com/mohozompur-madrasa/madrasa-site/internal/media"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// ErrConfigNil is returned by New without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	sessions   *session.Store
	webService *web.Service
}

// Start starts the Daemon's web service. It blocks until the server stops.
func (d *Daemon) Start() error {
	return d.webService.Start(d.cfg.Webserver.Addr())
}

// WaitShutdown blocks until a stop signal, stops the web service and releases all resources.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
	d.Close()
}

// Close releases the session storage and the database pool.
func (d *Daemon) Close() {
	if err := d.sessions.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close session storage")
	}

	if sqlDB, err := d.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// New opens and seeds the database and builds the web service.
func New(cfg *config.Config, opts ...web.Option) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed.InitializeDefaults(db, initialAdmin(cfg)); err != nil {
		return nil, err
	}

	storage, err := NewSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.New(storage, cfg.Webserver.Session.ExpiryTime)

	provider, err := media.New(cfg.Media)
	if err != nil {
		return nil, err
	}

	if !cfg.Media.Configured() {
		log.Warn().Msg("media credentials are not set: uploads are disabled")
	}

	ensureCookieKey(cfg)

	webService, err := web.New(&handler.Deps{
		Cfg:      cfg,
		DB:       db,
		Sessions: sessions,
		Auth:     auth.NewService(cfg.Auth, db),
		Media:    provider,
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		sessions:   sessions,
		webService: webService,
	}, nil
}

// initialAdmin is the account seeded into an empty users table, nil for static credentials.
func initialAdmin(cfg *config.Config) *seed.Admin {
	if cfg.Auth.Source != config.AuthSourceLocal {
		return nil
	}

	if cfg.Auth.AdminUsername == defaultAdminUsername && cfg.Auth.AdminPassword == defaultAdminPassword {
		log.Warn().Msg("the initial admin uses the default credentials, change the password after the first login")
	}

	return &seed.Admin{Username: cfg.Auth.AdminUsername, Password: cfg.Auth.AdminPassword}
}

// ensureCookieKey creates a per process cookie key for in-memory sessions,
// which do not outlive the process anyway.
func ensureCookieKey(cfg *config.Config) {
	if cfg.Webserver.CookieEncryptionKey != "" {
		return
	}

	if cfg.Webserver.Session.Storage != config.SessionStorageMemory {
		log.Warn().Msg("webserver.cookieencryptionkey is not set: session cookies are sent unencrypted")
		return
	}

	cfg.Webserver.CookieEncryptionKey = encryptcookie.GenerateKey()

	log.Info().Msg("using an ephemeral cookie encryption key")
}
