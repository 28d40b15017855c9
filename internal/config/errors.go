package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.gormengine is not one of the supported engines.
	ErrUnknownDBEngine = errors.New("config db.gormengine must be mysql, postgres or sqlite")

	// ErrUnknownAuthSource error if config auth.source is not local or static.
	ErrUnknownAuthSource = errors.New("config auth.source must be local or static")

	// ErrEmptyAdminCredentials error if the admin credentials are missing.
	ErrEmptyAdminCredentials = errors.New("config auth.adminusername and auth.adminpassword can not be empty")

	// ErrUnknownSessionStorage error if config webserver.session.storage is not supported.
	ErrUnknownSessionStorage = errors.New("config webserver.session.storage must be memory, db or redis")
)
