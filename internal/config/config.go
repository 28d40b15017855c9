// Package config handles input from etc/main.toml, the environment and .env files.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = "MADRASA_CONFIG_JSON"

	// EnvPrefix is the prefix for single value overrides, e.g. MADRASA_WEBSERVER_PORT.
	EnvPrefix = "MADRASA"

	// FileName is the name of the main configuration file.
	FileName = "main.toml"

	secretMask = "******"

	defaultMaxUploadSize = 50 << 20

	defaultLogMaxSize    = 100 // megabytes
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28 // days
)

// legacyEnv maps config keys to the variable names used by earlier deployments of the site.
var legacyEnv = map[string]string{
	"auth.adminusername":            "ADMIN_USERNAME",
	"auth.adminpassword":            "ADMIN_PASSWORD",
	"media.cloudname":               "CLOUDINARY_CLOUD_NAME",
	"media.apikey":                  "CLOUDINARY_API_KEY",
	"media.apisecret":               "CLOUDINARY_API_SECRET",
	"webserver.cookieencryptionkey": "SESSION_SECRET",
}

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	v.SetConfigFile(filepath.Join(path, FileName))
	v.SetConfigType("toml")

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "Madrasa")
	v.SetDefault("devmode", false)

	v.SetDefault("webserver.port", 8080)
	v.SetDefault("webserver.url", "http://localhost:8080")
	v.SetDefault("webserver.shutdowntime", 5)
	v.SetDefault("webserver.alloworigins", "")
	v.SetDefault("webserver.cookieencryptionkey", "")
	v.SetDefault("webserver.loginratelimit", 0)
	v.SetDefault("webserver.session.expirytime", 24*time.Hour)
	v.SetDefault("webserver.session.storage", SessionStorageMemory)
	v.SetDefault("webserver.session.table", "sessions")
	v.SetDefault("webserver.session.redis.host", "127.0.0.1")
	v.SetDefault("webserver.session.redis.port", 6379)
	v.SetDefault("webserver.session.redis.password", "")
	v.SetDefault("webserver.session.redis.keyprefix", "session:")

	v.SetDefault("db.gormengine", EngineSQLite)
	v.SetDefault("db.path", "./data/madrasa.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "madrasa")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("auth.source", AuthSourceLocal)
	v.SetDefault("auth.adminusername", "admin")
	v.SetDefault("auth.adminpassword", "admin123")

	v.SetDefault("media.cloudname", "")
	v.SetDefault("media.apikey", "")
	v.SetDefault("media.apisecret", "")
	v.SetDefault("media.folder", "madrasa")
	v.SetDefault("media.maxuploadsize", defaultMaxUploadSize)

	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "madrasa-site")
	v.SetDefault("log.servicename", "madrasa-site")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.file.path", "./logs")

	for _, name := range []string{"access", "error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+name+".name", name+".log")
		v.SetDefault("log.file."+name+".maxsize", defaultLogMaxSize)
		v.SetDefault("log.file."+name+".maxbackups", defaultLogMaxBackups)
		v.SetDefault("log.file."+name+".maxage", defaultLogMaxAge)
	}
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		// prefixed variables win over the legacy names
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// Masked returns a copy of the config with all secrets replaced.
func Masked(c *Config) Config {
	out := *c

	mask := func(s *string) {
		if *s != "" {
			*s = secretMask
		}
	}

	mask(&out.DB.Password)
	mask(&out.Auth.AdminPassword)
	mask(&out.Media.APISecret)
	mask(&out.Webserver.CookieEncryptionKey)
	mask(&out.Webserver.Session.Redis.Password)

	return out
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(Masked(c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(Masked(c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the settings the service can not start without.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	switch c.Auth.Source {
	case AuthSourceLocal, AuthSourceStatic:
	default:
		return errors.Wrap(ErrUnknownAuthSource, invalidErrMessage)
	}

	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return errors.Wrap(ErrEmptyAdminCredentials, invalidErrMessage)
	}

	switch c.Webserver.Session.Storage {
	case "":
		c.Webserver.Session.Storage = SessionStorageMemory
	case SessionStorageMemory, SessionStorageRedis:
	case SessionStorageDB:
		if c.DB.GormEngine == EngineSQLite {
			return errors.Wrap(ErrUnknownSessionStorage, "db session storage needs mysql or postgres")
		}
	default:
		return errors.Wrap(ErrUnknownSessionStorage, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 24 * time.Hour //nolint:mnd
	}

	if c.Media.MaxUploadSize == 0 {
		c.Media.MaxUploadSize = defaultMaxUploadSize
	}

	return nil
}
