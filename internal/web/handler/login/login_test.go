package login

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/handlertest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}

	t.Fatalf("response has no %s cookie", session.CookieName)

	return nil
}

func check(t *testing.T, env *handlertest.Env, cookie string) bool {
	t.Helper()

	resp, out := env.Do(t, handlertest.Request{Method: fiber.MethodGet, Path: CheckPath, Cookie: cookie})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status Status
	require.NoError(t, json.Unmarshal(out, &status))

	return status.IsAuthenticated
}

func login(t *testing.T, env *handlertest.Env, body, cookie string) (*http.Response, []byte) {
	t.Helper()

	return env.Do(t, handlertest.Request{Method: fiber.MethodPost, Path: Path, Body: body, Cookie: cookie})
}

func TestLogin(t *testing.T) {
	env := handlertest.New(t, &Service{})

	assert.False(t, check(t, env, ""))

	resp, out := login(t, env, `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"`+MsgInvalidCredentials+`"}`, string(out))
	assert.Empty(t, resp.Cookies())

	resp, out = login(t, env, `{"username":"admin","password":"admin123"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(out))
	assert.JSONEq(t, `{"success":true,"message":"Login successful"}`, string(out))

	cookie := sessionCookie(t, resp)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "dev mode")
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Len(t, cookie.Value, 64)

	data, err := env.Deps.Sessions.Get(cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.True(t, data.IsAdmin)
	assert.Equal(t, env.Admin, data.UserID)
	assert.Equal(t, handlertest.AdminUsername, data.Username)

	assert.True(t, check(t, env, session.CookieName+"="+cookie.Value))
	assert.False(t, check(t, env, session.CookieName+"=forged"))
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	env := handlertest.New(t, &Service{})

	_, wrongPassword := login(t, env, `{"username":"admin","password":"nope"}`, "")
	resp, unknownUser := login(t, env, `{"username":"nobody","password":"nope"}`, "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestReloginReplacesSession(t *testing.T) {
	env := handlertest.New(t, &Service{})
	old := env.AdminCookie(t)

	resp, _ := login(t, env, `{"username":"admin","password":"admin123"}`, old)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	fresh := sessionCookie(t, resp)
	assert.NotEqual(t, old, session.CookieName+"="+fresh.Value)
	assert.False(t, check(t, env, old), "previous session is discarded")
	assert.True(t, check(t, env, session.CookieName+"="+fresh.Value))
}

func TestLoginInvalidFormat(t *testing.T) {
	env := handlertest.New(t, &Service{})

	for _, body := range []string{`{"username":"admin"}`, `{"username":1,"password":"x"}`, `not json`} {
		t.Run(body, func(t *testing.T) {
			resp, out := login(t, env, body, "")
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var got handler.ErrorBody
			require.NoError(t, json.Unmarshal(out, &got))
			assert.Equal(t, MsgInvalidFormat, got.Error)
			assert.NotEmpty(t, got.Fields)
		})
	}
}

func TestLoginStaticCredentials(t *testing.T) {
	cfg := handlertest.Config()
	cfg.Auth.Source = config.AuthSourceStatic
	cfg.Auth.AdminPassword = "s3cret"

	env := handlertest.NewWithConfig(t, cfg, &Service{})

	resp, _ := login(t, env, `{"username":"admin","password":"admin123"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = login(t, env, `{"username":"admin","password":"s3cret"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSecureCookie(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
		url     string
		want    bool
	}{
		{name: "https", url: "https://madrasa.example.org", want: true},
		{name: "plain http", url: "http://10.0.0.2:8080"},
		{name: "dev mode", devMode: true, url: "https://madrasa.example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DevMode: tt.devMode, Webserver: config.Webserver{URL: tt.url}}
			assert.Equal(t, tt.want, secure(cfg))
		})
	}
}

func TestRateLimiterRunsFirst(t *testing.T) {
	blocked := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTooManyRequests)
	}

	env := handlertest.New(t, &Service{Limiter: blocked})

	resp, _ := login(t, env, `{"username":"admin","password":"admin123"}`, "")
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
