// Package admin provides the login, logout and whoami endpoints of the admin API.
package admin

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/auth"
	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/web/handler"
	authmiddleware "github.com/earg-org/earg-api/internal/web/middleware/auth"
	"github.com/earg-org/earg-api/internal/web/session"
)

const (
	// Path is the route group of the admin api.
	Path = handler.APIPath + "/admin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service is the admin handler service.
type Service struct {
	cfg      *config.Config
	store    *session.Store
	provider *auth.LocalProvider
}

// New returns the admin handler keeping sessions in store.
func New(store *session.Store) *Service {
	return &Service{store: store}
}

// Init registers the admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	if s.store == nil {
		return ErrStoreNil
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)

	app.Route(Path, func(router fiber.Router) {
		router.Post("/login", s.Login)
		router.Post("/logout", s.Logout)
		router.Get("/me", guard, s.Me)
	})

	return nil
}

// Login checks the submitted credentials and starts a session. The session
// id is both set as cookie and returned as bearer token.
func (s *Service) Login(c fiber.Ctx) error {
	req := new(loginRequest)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, ErrMissingCredentials.Error())
	}

	user, err := s.provider.Authenticate(req.Username, req.Password)

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Info().Str("username", req.Username).Str("ip", c.IP()).Msg("admin login failed")
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUserAccountDisabled):
		log.Info().Str("username", req.Username).Msg("login of disabled admin refused")
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case err != nil:
		return err
	}

	sessionID, err := s.store.Create(*user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")
		return err
	}

	expiry := s.store.Expiry()

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(expiry.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("username", user.Username).Msg("admin logged in")

	return c.JSON(loginResponse{Token: sessionID, ExpiresAt: time.Now().UTC().Add(expiry)})
}

// Logout ends the session of the request, if any, and clears the cookie.
func (s *Service) Logout(c fiber.Ctx) error {
	if sessionID := authmiddleware.SessionID(c); sessionID != "" {
		if err := s.store.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.ClearCookie(session.CookieName)

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me answers the admin of the current session.
func (s *Service) Me(c fiber.Ctx) error {
	user, ok := authmiddleware.CurrentAdmin(c)
	if !ok {
		return c.JSON(fiber.Map{"admin": nil})
	}

	return c.JSON(fiber.Map{"admin": user})
}
