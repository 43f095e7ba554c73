package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/controller/adminuser"
	"github.com/earg-org/earg-api/internal/db/dbtest"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/session"
)

// newAdmin creates the initial admin account and returns it.
func newAdmin(t *testing.T, db *gorm.DB) models.AdminUser {
	t.Helper()

	_, err := adminuser.EnsureInitial(db, "admin", "s3cret-pass")
	require.NoError(t, err)

	u, err := adminuser.GetByUsername(db, "admin")
	require.NoError(t, err)

	return *u
}

func get(t *testing.T, app *fiber.App, token string) int {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	_ = resp.Body.Close()

	return resp.StatusCode
}

func newApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()

	app.Get("/admin", guard, func(c fiber.Ctx) error {
		user, ok := CurrentAdmin(c)
		if !ok {
			return c.SendString("anonymous")
		}

		return c.SendString(user.Username)
	})

	return app
}

func TestRequireAdmin(t *testing.T) {
	db := dbtest.Open(t)
	store := session.New(memory.New(), time.Hour)

	token, err := store.Create(newAdmin(t, db))
	require.NoError(t, err)

	orphan, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, store.Write(orphan, &session.Data{}))

	app := newApp(RequireAdmin(store, db))

	testCases := []struct {
		name     string
		header   string
		cookie   string
		status   int
		username string
	}{
		{name: "no credentials", status: fiber.StatusUnauthorized},
		{name: "bearer token", header: "Bearer " + token, status: fiber.StatusOK, username: "admin"},
		{name: "session cookie", cookie: token, status: fiber.StatusOK, username: "admin"},
		{name: "unknown token", header: "Bearer deadbeef", status: fiber.StatusUnauthorized},
		{name: "session without user", cookie: orphan, status: fiber.StatusUnauthorized},
		{name: "bearer wins over cookie", header: "Bearer deadbeef", cookie: token, status: fiber.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}

			if tc.cookie != "" {
				req.Header.Set(fiber.HeaderCookie, session.CookieName+"="+tc.cookie)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			if tc.username != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tc.username, string(body))
			}
		})
	}
}

func TestNewDisabled(t *testing.T) {
	app := newApp(New(&config.Config{}, nil, nil))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminChecksAccount(t *testing.T) {
	testCases := []struct {
		name   string
		change func(t *testing.T, db *gorm.DB, u models.AdminUser)
	}{
		{
			name: "account disabled",
			change: func(t *testing.T, db *gorm.DB, u models.AdminUser) {
				t.Helper()
				require.NoError(t, db.Model(&models.AdminUser{}).Where("id = ?", u.ID).Update("active", false).Error)
			},
		},
		{
			name: "password reset",
			change: func(t *testing.T, db *gorm.DB, u models.AdminUser) {
				t.Helper()
				require.NoError(t, adminuser.SetPassword(db, u.Username, "another-pass"))
			},
		},
		{
			name: "account removed",
			change: func(t *testing.T, db *gorm.DB, u models.AdminUser) {
				t.Helper()
				require.NoError(t, db.Delete(&models.AdminUser{}, u.ID).Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := dbtest.Open(t)
			store := session.New(memory.New(), time.Hour)
			app := newApp(RequireAdmin(store, db))

			u := newAdmin(t, db)

			token, err := store.Create(u)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, get(t, app, token))

			tc.change(t, db, u)

			assert.Equal(t, fiber.StatusUnauthorized, get(t, app, token))

			_, err = store.Read(token)
			require.ErrorIs(t, err, session.ErrNotFound)
		})
	}
}

func TestRequireAdminNewLoginAfterReset(t *testing.T) {
	db := dbtest.Open(t)
	store := session.New(memory.New(), time.Hour)
	app := newApp(RequireAdmin(store, db))

	u := newAdmin(t, db)
	require.NoError(t, adminuser.SetPassword(db, u.Username, "another-pass"))

	fresh, err := adminuser.GetByUsername(db, u.Username)
	require.NoError(t, err)

	token, err := store.Create(*fresh)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, get(t, app, token))
}
