// Package handlertest wires handlers to an in-memory database, session store and media provider for tests.
package handlertest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dbtest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/media"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

const (
	// AdminUsername is the account created by New.
	AdminUsername = "admin"
	// AdminPassword is the password of AdminUsername.
	AdminPassword = "admin123"
)

// Env is a fiber app with all handler dependencies.
type Env struct {
	App   *fiber.App
	Deps  *handler.Deps
	Media *FakeMedia
	Admin uint64 // user id of AdminUsername
}

// Config returns the configuration used by New.
func Config() *config.Config {
	return &config.Config{
		DevMode: true,
		Webserver: config.Webserver{
			Port:    8080,
			URL:     "http://localhost:8080",
			Session: config.Session{ExpiryTime: time.Hour, Storage: config.SessionStorageMemory},
		},
		Auth: config.Auth{
			Source:        config.AuthSourceLocal,
			AdminUsername: AdminUsername,
			AdminPassword: AdminPassword,
		},
		Media: config.Media{MaxUploadSize: 1 << 20},
	}
}

// New creates the environment and runs init for each service.
func New(t *testing.T, services ...handler.Service) *Env {
	t.Helper()

	return NewWithConfig(t, Config(), services...)
}

// NewWithConfig is New with a custom configuration.
func NewWithConfig(t *testing.T, cfg *config.Config, services ...handler.Service) *Env {
	t.Helper()

	db := dbtest.New(t)
	sessions := session.New(session.NewMemoryStorage(), cfg.Webserver.Session.ExpiryTime)
	fake := &FakeMedia{}

	env := &Env{
		App: fiber.New(fiber.Config{BodyLimit: cfg.Media.MaxUploadSize}),
		Deps: &handler.Deps{
			Cfg:      cfg,
			DB:       db,
			Sessions: sessions,
			Auth:     auth.NewService(cfg.Auth, db),
			Media:    fake,
		},
		Media: fake,
	}

	if local := env.Deps.Auth.Local(); local != nil {
		user, err := local.CreateUser(AdminUsername, AdminPassword)
		require.NoError(t, err)

		env.Admin = user.ID
	}

	for _, s := range services {
		require.NoError(t, s.Init(env.App, env.Deps))
	}

	return env
}

// AdminCookie stores an admin session and returns the Cookie header value for it.
func (e *Env) AdminCookie(t *testing.T) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	require.NoError(t, e.Deps.Sessions.Set(id, &session.Data{UserID: e.Admin, Username: AdminUsername, IsAdmin: true}))

	return session.CookieName + "=" + id
}

// Request is a test request. Body is sent as JSON unless ContentType is set.
type Request struct {
	Method      string
	Path        string
	Body        string
	Cookie      string
	ContentType string
}

// Do runs req against the app and returns the response with its body read.
func (e *Env) Do(t *testing.T, req Request) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	r := httptest.NewRequest(req.Method, req.Path, body)

	switch {
	case req.ContentType != "":
		r.Header.Set(fiber.HeaderContentType, req.ContentType)
	case req.Body != "":
		r.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if req.Cookie != "" {
		r.Header.Set(fiber.HeaderCookie, req.Cookie)
	}

	resp, err := e.App.Test(r, -1)
	require.NoError(t, err)

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, out
}

// FakeMedia records uploads and deletes. Err, when set, fails every call.
type FakeMedia struct {
	mu        sync.Mutex
	Err       error
	Uploaded  []string
	Destroyed []string
}

// Upload implements media.Provider.
func (f *FakeMedia) Upload(_ context.Context, r io.Reader, filename string) (*media.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}

	f.Uploaded = append(f.Uploaded, filename)

	return &media.Asset{
		URL:          "https://cdn.example.org/madrasa/" + filename,
		PublicID:     "madrasa/" + filename,
		ResourceType: "image",
	}, nil
}

// Destroy implements media.Provider.
func (f *FakeMedia) Destroy(_ context.Context, publicID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}

	f.Destroyed = append(f.Destroyed, publicID)

	return nil
}
