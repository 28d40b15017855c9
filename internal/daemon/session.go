package daemon

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dsn"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

// ErrSessionStorageEngine is returned when the db session storage is used with an engine it does not support.
var ErrSessionStorageEngine = errors.New("db session storage needs mysql or postgres")

// NewSessionStorage builds the configured session storage.
func NewSessionStorage(cfg *config.Config) (fiber.Storage, error) {
	sess := cfg.Webserver.Session

	switch sess.Storage {
	case config.SessionStorageMemory, "":
		return session.NewMemoryStorage(), nil

	case config.SessionStorageRedis:
		storage, err := session.NewRedisStorage(sess.Redis)
		if err != nil {
			return nil, err
		}

		log.Info().Str("host", sess.Redis.Host).Msg("sessions are stored in redis")

		return storage, nil

	case config.SessionStorageDB:
		table := sess.Table
		if table == "" {
			table = "sessions"
		}

		switch cfg.DB.GormEngine {
		case config.EngineMySQL:
			log.Info().Str("table", table).Msg("sessions are stored in mysql")

			return sessionmysql.New(sessionmysql.Config{
				ConnectionURI: dsn.MySQL(&cfg.DB),
				Table:         table,
			}), nil
		case config.EnginePostgres:
			log.Info().Str("table", table).Msg("sessions are stored in postgres")

			return sessionpostgres.New(sessionpostgres.Config{
				ConnectionURI: dsn.PostgresURI(&cfg.DB),
				Table:         table,
			}), nil
		default:
			return nil, ErrSessionStorageEngine
		}

	default:
		return nil, config.ErrUnknownSessionStorage
	}
}
