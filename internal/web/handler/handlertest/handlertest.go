// Package handlertest runs api handlers against a sqlite database in tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/dbtest"
	"github.com/earg-org/earg-api/internal/web/handler"
	authmiddleware "github.com/earg-org/earg-api/internal/web/middleware/auth"
)

// Env is a fiber app with the api error handler and a migrated database.
type Env struct {
	App *fiber.App
	DB  *gorm.DB
	Cfg *config.Config
}

// New returns an Env and initializes svc on it with an open guard.
func New(t *testing.T, svc handler.Service) *Env {
	t.Helper()

	env := &Env{
		App: fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler}),
		DB:  dbtest.Open(t),
		Cfg: &config.Config{},
	}

	require.NoError(t, svc.Init(env.App, env.Cfg, env.DB, authmiddleware.Allow))

	return env
}

// Do sends a request with an optional json body and returns status and body.
// A string body is sent verbatim, anything else is json encoded.
func (e *Env) Do(t *testing.T, method, target string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		r = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := e.App.Test(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, out
}

// Decode unmarshals a response body into T.
func Decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))

	return v
}
