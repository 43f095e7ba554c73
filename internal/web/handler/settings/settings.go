// Package settings serves the settings key value api.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/controller/setting"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// Path is the route group of the settings api.
const Path = handler.APIPath + "/settings"

// Service is the settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, guard, s.List)
		router.Get("/:key", s.Get)
		router.Post("/:key", guard, s.Post)
	})

	return nil
}

// List answers every stored setting as one object.
func (s *Service) List(c fiber.Ctx) error {
	all, err := setting.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(all)
}

// Get answers the stored value of :key, JSON null for unknown keys.
func (s *Service) Get(c fiber.Ctx) error {
	value, err := setting.Get(s.db, c.Params("key"))
	if err != nil {
		return err
	}

	if value == nil {
		return sendJSON(c, jsonNull)
	}

	return sendJSON(c, value)
}

// Post stores the normalized body under :key, overwriting the old value,
// and answers the stored value.
func (s *Service) Post(c fiber.Ctx) error {
	key := c.Params("key")

	value, err := Normalize(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stored, err := setting.Upsert(s.db, key, value, setting.Overwrite)

	switch {
	case errors.Is(err, setting.ErrSettingKeyEmpty), errors.Is(err, setting.ErrInvalidValue):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	log.Info().Str("key", key).Msg("setting updated")

	return sendJSON(c, stored)
}

func sendJSON(c fiber.Ctx, raw []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
