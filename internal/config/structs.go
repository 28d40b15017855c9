package config

import (
	"fmt"
	"time"

	"github.com/mohozompur-madrasa/madrasa-site/internal/logger"
)

const (
	// AuthSourceLocal authenticates against hashed accounts in the users table.
	AuthSourceLocal = "local"
	// AuthSourceStatic authenticates against the configured admin credentials.
	AuthSourceStatic = "static"

	// SessionStorageMemory keeps sessions in process memory.
	SessionStorageMemory = "memory"
	// SessionStorageDB keeps sessions in a table of the configured mysql or postgres database.
	SessionStorageDB = "db"
	// SessionStorageRedis keeps sessions in redis.
	SessionStorageRedis = "redis"
)

// Redis connection settings for the session storage.
type Redis struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// Session settings.
type Session struct {
	ExpiryTime time.Duration
	Storage    string // memory, db or redis
	Table      string // table name for the db storage
	Redis      Redis
}

// Auth settings for the admin login.
type Auth struct {
	Source        string // local or static
	AdminUsername string
	AdminPassword string
}

// Media holds the credentials for the media upload provider.
type Media struct {
	CloudName     string
	APIKey        string
	APISecret     string
	Folder        string
	MaxUploadSize int // bytes
}

// Configured reports whether all provider credentials are present.
func (m Media) Configured() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Media     Media
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	AllowOrigins        string  // comma separated CORS origins, empty disables CORS
	CookieEncryptionKey string  // base64 key for cookie encryption
	LoginRateLimit      int     // login attempts per minute and IP, 0 disables the limiter
	Session             Session // session settings
}

// Addr returns the listen address for the webserver.
func (w Webserver) Addr() string {
	return fmt.Sprintf(":%d", w.Port)
}
