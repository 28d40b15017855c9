package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/media"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/handlertest"
)

func multipartBody(t *testing.T, field, filename string) (string, string) {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.String(), w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		cookie     bool
		mediaErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name: "uploaded", field: FormField, cookie: true, wantStatus: fiber.StatusOK,
			wantBody: `{"url":"https://cdn.example.org/madrasa/logo.png","publicId":"madrasa/logo.png","resourceType":"image"}`,
		},
		{name: "no session", field: FormField, wantStatus: fiber.StatusUnauthorized},
		{
			name: "wrong field", field: "image", cookie: true, wantStatus: fiber.StatusBadRequest,
			wantBody: `{"error":"No file uploaded"}`,
		},
		{
			name: "not configured", field: FormField, cookie: true, mediaErr: media.ErrNotConfigured,
			wantStatus: fiber.StatusServiceUnavailable, wantBody: `{"error":"Media uploads are not configured"}`,
		},
		{
			name: "provider failure", field: FormField, cookie: true,
			mediaErr:   errors.Join(media.ErrUploadFailed, errors.New("timeout")),
			wantStatus: fiber.StatusBadGateway, wantBody: `{"error":"Upload failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := handlertest.New(t, &Service{})
			env.Media.Err = tt.mediaErr

			body, contentType := multipartBody(t, tt.field, "logo.png")

			req := handlertest.Request{Method: fiber.MethodPost, Path: Path, Body: body, ContentType: contentType}
			if tt.cookie {
				req.Cookie = env.AdminCookie(t)
			}

			resp, out := env.Do(t, req)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(out))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, string(out))
			}

			if tt.wantStatus != fiber.StatusOK {
				assert.Empty(t, env.Media.Uploaded)
			}
		})
	}
}

func TestUploadNoBody(t *testing.T) {
	env := handlertest.New(t, &Service{})

	resp, _ := env.Do(t, handlertest.Request{Method: fiber.MethodPost, Path: Path, Cookie: env.AdminCookie(t)})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	env := handlertest.New(t, &Service{})
	cookie := env.AdminCookie(t)

	resp, _ := env.Do(t, handlertest.Request{Method: fiber.MethodDelete, Path: Path, Body: `{"publicId":"madrasa/a"}`})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, env.Media.Destroyed)

	resp, _ = env.Do(t, handlertest.Request{Method: fiber.MethodDelete, Path: Path, Body: `{}`, Cookie: cookie})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, out := env.Do(t, handlertest.Request{
		Method: fiber.MethodDelete, Path: Path, Body: `{"publicId":"madrasa/a","resourceType":"video"}`, Cookie: cookie,
	})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, string(out))
	assert.Equal(t, []string{"madrasa/a"}, env.Media.Destroyed)

	env.Media.Err = media.ErrDeleteFailed

	resp, out = env.Do(t, handlertest.Request{
		Method: fiber.MethodDelete, Path: Path, Body: `{"publicId":"madrasa/b"}`, Cookie: cookie,
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to delete media"}`, string(out))
}
