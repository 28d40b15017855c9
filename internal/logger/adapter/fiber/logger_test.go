package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/logger"
	adapter "github.com/mohozompur-madrasa/madrasa-site/internal/logger/adapter/fiber"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	IP        net.IP `json:"IP"`
	Status    int    `json:"status"`
	URI       string `json:"URI"`
	Method    string `json:"method"`
	Host      string `json:"host"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func TestNew(t *testing.T) {
	consoleLog := logger.Log{
		EnableAccessLogToConsole: true,
		Console:                  logger.Console{Enabled: true},
	}

	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *expectedLoggerJSONFormat
	}{
		{
			name:       "get /",
			targetPath: "/",
			config:     adapter.Config{Config: consoleLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "get with params",
			targetPath: "/?test=123",
			config:     adapter.Config{Config: consoleLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "unknown path",
			targetPath: "/no_path//?test=123",
			config:     adapter.Config{Config: consoleLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusNotFound,
				URI:    "/no_path//?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "handler error is logged",
			targetPath: "/fail",
			config:     adapter.Config{Config: consoleLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusInternalServerError,
				URI:    "/fail",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "boom",
			},
		},
		{
			name:       "check alive skipped",
			targetPath: "/checkalive",
			config: adapter.Config{
				Config: logger.Log{
					DisableCheckAlive:        true,
					EnableAccessLogToConsole: true,
					Console:                  logger.Console{Enabled: true},
				},
				CheckAliveURI: "/checkalive",
			},
			want: nil,
		},
		{
			name:       "skipped by next",
			targetPath: "/",
			config: adapter.Config{
				Config: consoleLog,
				Next:   func(*fiber.Ctx) bool { return true },
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testMiddlewareHelper(t, tt.targetPath, tt.config)

			if tt.want == nil {
				assert.Empty(t, output)

				return
			}

			require.NotEmpty(t, output)

			var decoded expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal(output, &decoded))

			assert.Equal(t, tt.want.Host, decoded.Host)
			assert.Equal(t, tt.want.Method, decoded.Method)
			assert.Equal(t, tt.want.Status, decoded.Status)
			assert.Equal(t, tt.want.IP, decoded.IP)
			assert.Equal(t, tt.want.URI, decoded.URI)
			assert.Equal(t, tt.want.Error, decoded.Error)
			assert.NotEmpty(t, decoded.RequestID)
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) []byte {
	t.Helper()

	var buf bytes.Buffer

	adapterConfig.Output = &buf

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(requestid.New())
	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	app.Get("/fail", func(*fiber.Ctx) error {
		return errors.New("boom") //nolint:err113
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return bytes.TrimSpace(buf.Bytes())
}
