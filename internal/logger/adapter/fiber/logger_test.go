package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/earg-org/earg-api/internal/logger/adapter/fiber"
)

// accessLine is the json format of one access log entry.
type accessLine struct {
	IP           string  `json:"IP"`
	Status       int     `json:"status"`
	XPerformance float64 `json:"X-Performance"`
	URI          string  `json:"URI"`
	Method       string  `json:"method"`
	Host         string  `json:"host"`
	RequestID    string  `json:"requestID"`
	Error        string  `json:"error"`
}

func newApp(cfg adapter.Config) *fiber.App {
	app := fiber.New(fiber.Config{CaseSensitive: true})

	app.Use(requestid.New())
	app.Use(adapter.New(cfg))

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("hello test")
	})
	app.Get("/checkalive", func(c fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/fail", func(fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "category already exists")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		status     int
		uri        string
		err        string
	}{
		{name: "get root", targetPath: "/", status: 200, uri: "/"},
		{name: "query kept", targetPath: "/?test=123", status: 200, uri: "/?test=123"},
		{name: "unknown path", targetPath: "/no_path?test=123", status: 404, uri: "/no_path?test=123", err: fiber.ErrNotFound.Message},
		{name: "handler error", targetPath: "/fail", status: 409, uri: "/fail", err: "category already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			app := newApp(adapter.Config{Output: &out})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.targetPath, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(adapter.HeaderPerformance))

			var line accessLine
			require.NoError(t, json.Unmarshal(out.Bytes(), &line))

			assert.Equal(t, tt.status, line.Status)
			assert.Equal(t, tt.uri, line.URI)
			assert.Equal(t, fiber.MethodGet, line.Method)
			assert.Equal(t, "example.com", line.Host)
			assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), line.RequestID)

			if tt.err != "" {
				assert.Contains(t, line.Error, tt.err)
			}
		})
	}
}

func TestNewSkipsCheckAlive(t *testing.T) {
	var out bytes.Buffer

	cfg := adapter.Config{Output: &out, CheckAliveURI: "/checkalive"}
	cfg.Config.DisableCheckAlive = true

	resp, err := newApp(cfg).Test(httptest.NewRequest(fiber.MethodGet, "/checkalive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out.String())
}

func TestNewNext(t *testing.T) {
	var out bytes.Buffer

	cfg := adapter.Config{
		Output: &out,
		Next:   func(c fiber.Ctx) bool { return c.Path() == "/" },
	}

	resp, err := newApp(cfg).Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out.String())
	assert.Empty(t, resp.Header.Get(adapter.HeaderPerformance))
}

func TestNewWithoutWriters(t *testing.T) {
	resp, err := newApp(adapter.Config{}).Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
