package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/controller/adminuser"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/session"
)

const (
	localsAdmin  = "admin"
	bearerPrefix = "Bearer "
)

// New returns the guard for admin routes. With admin auth disabled in cfg
// every request passes.
func New(cfg *config.Config, store *session.Store, db *gorm.DB) fiber.Handler {
	if cfg == nil || !cfg.Admin.Enabled {
		log.Warn().Msg("admin authentication disabled, admin routes are public")
		return Allow
	}

	return RequireAdmin(store, db)
}

// Allow passes every request.
func Allow(c fiber.Ctx) error {
	return c.Next()
}

// RequireAdmin creates middleware that requires a valid admin session.
// The account is loaded on every request: a session ends as soon as its
// admin is disabled or changed (e.g. a password reset) after the login.
func RequireAdmin(store *session.Store, db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		sessionID := SessionID(c)
		if sessionID == "" {
			return unauthorized(c)
		}

		data, err := store.Read(sessionID)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Error().Err(err).Msg("failed to read session")
			}

			return unauthorized(c)
		}

		if data.User.ID == 0 {
			log.Error().Msg("invalid session data")
			return unauthorized(c)
		}

		user, err := adminuser.GetByID(db, data.User.ID)

		switch {
		case errors.Is(err, adminuser.ErrUserNotFound):
			return revoke(c, store, sessionID, "admin account removed")
		case err != nil:
			log.Error().Err(err).Msg("failed to load session admin")
			return err
		case !user.Active:
			return revoke(c, store, sessionID, "admin account disabled")
		case user.UpdatedAt.After(data.CreatedAt):
			return revoke(c, store, sessionID, "admin account changed after login")
		}

		c.Locals(localsAdmin, *user)

		return c.Next()
	}
}

// SessionID returns the session id of the request, the Bearer token wins
// over the cookie.
func SessionID(c fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}

	return c.Cookies(session.CookieName)
}

// CurrentAdmin returns the admin RequireAdmin stored for the request.
func CurrentAdmin(c fiber.Ctx) (models.AdminUser, bool) {
	u, ok := c.Locals(localsAdmin).(models.AdminUser)
	return u, ok
}

// revoke deletes a session that no longer matches its admin and answers 401.
func revoke(c fiber.Ctx, store *session.Store, sessionID, reason string) error {
	log.Info().Str("reason", reason).Msg("admin session revoked")

	if err := store.Delete(sessionID); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}

	return unauthorized(c)
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
