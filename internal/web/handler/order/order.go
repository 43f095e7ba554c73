// Package order serves the order api of the checkout.
package order

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	controller "github.com/earg-org/earg-api/internal/db/controller/order"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/validation"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// Path is the route group of the order api.
const Path = handler.APIPath + "/orders"

type request struct {
	Items        json.RawMessage `json:"items"        validate:"required"`
	Total        json.Number     `json:"total"        validate:"required,price"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
}

var messages = validation.Messages{ //nolint:gochecknoglobals
	"Items.required": "Order items are required",
	"Total.required": "Valid total is required",
	"Total.price":    "Valid total is required",
}

// Service is the order handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the order handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the order routes. Listing all orders is an admin route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RootPath, s.Create)
		router.Get(handler.RootPath, guard, s.List)
		router.Get("/:id", s.Get)
	})

	return nil
}

// Create stores an order and answers it with 201.
func (s *Service) Create(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if errs := validation.Check(req, messages); errs != nil {
		return handler.ValidationFailed(c, errs)
	}

	o := &models.Order{
		Items:        datatypes.JSON(req.Items),
		CustomerInfo: datatypes.JSON(req.CustomerInfo),
	}
	o.Total, _ = req.Total.Float64() //nolint:errcheck // validated

	if err := controller.Create(s.db, o); err != nil {
		return err
	}

	log.Info().Uint64("id", o.ID).Float64("total", o.Total).Msg("order placed")

	return c.Status(fiber.StatusCreated).JSON(o)
}

// Get answers order :id.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Order not found")
	}

	o, err := controller.Get(s.db, id)
	if err != nil {
		return handler.StoreError(err, "Order not found")
	}

	return c.JSON(o)
}

// List answers all orders, newest first.
func (s *Service) List(c fiber.Ctx) error {
	list, err := controller.List(s.db)
	if err != nil {
		return err
	}

	return c.JSON(list)
}
