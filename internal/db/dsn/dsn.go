// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

const (
	defaultMySQLExtras = "charset=utf8mb4&parseTime=True&loc=Local"
	defaultSQLitePath  = ":memory:"
)

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(cfg *config.DB) string {
	extras := cfg.Extras
	if extras == "" {
		extras = defaultMySQLExtras
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
		extras,
	)
}

// Postgres builds a key/value pgx DSN.
func Postgres(cfg *config.DB) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		sslMode,
	)

	if cfg.Extras != "" {
		out += " " + cfg.Extras
	}

	return out
}

// PostgresURI builds a postgres:// connection URI, as the session storage expects one.
func PostgresURI(cfg *config.DB) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}

// SQLite returns the database file path, an in-memory database if none is set.
func SQLite(cfg *config.DB) string {
	if cfg.Path == "" {
		return defaultSQLitePath
	}

	return cfg.Path
}
