// Package product serves the storefront product api.
package product

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	controller "github.com/earg-org/earg-api/internal/db/controller/product"
	"github.com/earg-org/earg-api/internal/web/handler"
)

const (
	// Path is the route group of the product api.
	Path = handler.APIPath + "/products"

	notFound = "Product not found"
)

// Service is the product handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the product handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the product routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:id", s.Get)
		router.Post(handler.RootPath, guard, s.Create)
		router.Put("/:id", guard, s.Update)
		router.Delete("/:id", guard, s.Delete)
	})

	return nil
}

// List answers all products.
func (s *Service) List(c fiber.Ctx) error {
	products, err := controller.List(s.db)
	if err != nil {
		return err
	}

	return c.JSON(products)
}

// Get answers one product.
func (s *Service) Get(c fiber.Ctx) error {
	p, err := controller.Get(s.db, c.Params("id"))
	if err != nil {
		return handler.StoreError(err, notFound)
	}

	return c.JSON(p)
}

// Create stores a new product and answers it with 201.
func (s *Service) Create(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if errs := req.validate(); errs != nil {
		return handler.ValidationFailed(c, errs)
	}

	p := req.model()
	if err := controller.Create(s.db, p); err != nil {
		return err
	}

	log.Info().Str("id", p.ID).Msg("product created")

	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update replaces the product :id. The id of the body is ignored.
func (s *Service) Update(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if errs := req.validate(); errs != nil {
		return handler.ValidationFailed(c, errs)
	}

	id := c.Params("id")

	p := req.model()
	p.ID = id

	updated, err := controller.Update(s.db, id, p)
	if err != nil {
		return handler.StoreError(err, notFound)
	}

	return c.JSON(updated)
}

// Delete removes the product :id.
func (s *Service) Delete(c fiber.Ctx) error {
	if err := controller.Delete(s.db, c.Params("id")); err != nil {
		return err
	}

	return handler.Deleted(c)
}
