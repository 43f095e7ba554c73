// Package wishlist serves the guest wishlist api.
package wishlist

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	controller "github.com/earg-org/earg-api/internal/db/controller/wishlist"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// Path is the route group of the wishlist api.
const Path = handler.APIPath + "/wishlist"

type request struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
}

// Service is the wishlist handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the wishlist handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the wishlist routes. The guest session id is the only
// credential, every route is public.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get("/:session_id", s.List)
		router.Post(handler.RootPath, s.Add)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List answers the wishlist of a session joined with the products.
func (s *Service) List(c fiber.Ctx) error {
	entries, err := controller.List(s.db, c.Params("session_id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "success", "data": entries})
}

// Add puts a product on a wishlist. A duplicate answers data null.
func (s *Service) Add(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	item, err := controller.Add(s.db, req.SessionID, req.ProductID)

	switch {
	case errors.Is(err, controller.ErrSessionEmpty):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "data": item})
}

// Delete removes wishlist entry :id.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "success"})
}
