package logout

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/handlertest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/session"
)

func TestLogout(t *testing.T) {
	env := handlertest.New(t, &Service{})
	cookie := env.AdminCookie(t)
	id := cookie[len(session.CookieName)+1:]

	resp, out := env.Do(t, handlertest.Request{Method: fiber.MethodPost, Path: Path, Cookie: cookie})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"message":"Logged out"}`, string(out))

	data, err := env.Deps.Sessions.Get(id)
	require.NoError(t, err)
	assert.Nil(t, data)

	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cleared = c
		}
	}

	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()), "cookie is expired")
}

func TestLogoutWithoutSession(t *testing.T) {
	env := handlertest.New(t, &Service{})

	resp, _ := env.Do(t, handlertest.Request{Method: fiber.MethodPost, Path: Path})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
