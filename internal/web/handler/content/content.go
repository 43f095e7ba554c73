// Package content serves the server side helpers of the admin content
// editor: the category set, the featured home products and the page
// sections merged over their defaults.
package content

import (
	"errors"
	"net/url"
	"slices"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	contentsync "github.com/earg-org/earg-api/internal/content"
	"github.com/earg-org/earg-api/internal/db/controller/product"
	"github.com/earg-org/earg-api/internal/web/handler"
)

const (
	// CategoriesPath is the route group of the category api.
	CategoriesPath = handler.APIPath + "/categories"
	// HomeProductsPath is the route group of the featured products api.
	HomeProductsPath = handler.APIPath + "/home-products"
	// SectionsPath is the route group of the section api.
	SectionsPath = handler.APIPath + "/content"
)

type categoryRequest struct {
	Name string `json:"name"`
}

// Service is the content handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the content handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the category, home product and section routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(CategoriesPath, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Categories)
		router.Post(handler.RootPath, guard, s.AddCategory)
		router.Put("/:name", guard, s.RenameCategory)
		router.Delete("/:name", guard, s.DeleteCategory)
	})

	app.Route(HomeProductsPath, func(router fiber.Router) {
		router.Get(handler.RootPath, s.HomeProducts)
		router.Post("/:id/toggle", guard, s.ToggleHomeProduct)
	})

	app.Get(SectionsPath+"/:key", s.Section)

	return nil
}

// Categories answers the category set.
func (s *Service) Categories(c fiber.Ctx) error {
	list, err := contentsync.Categories(s.db)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// AddCategory appends a category and answers the new set with 201.
func (s *Service) AddCategory(c fiber.Ctx) error {
	req := new(categoryRequest)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	list, err := contentsync.AddCategory(s.db, req.Name)
	if err != nil {
		return categoryError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(list)
}

// RenameCategory renames category :name. Products keep the old name.
func (s *Service) RenameCategory(c fiber.Ctx) error {
	oldName, err := nameParam(c)
	if err != nil {
		return err
	}

	req := new(categoryRequest)
	if err = handler.BindJSON(c, req); err != nil {
		return err
	}

	list, err := contentsync.RenameCategory(s.db, oldName, req.Name)
	if err != nil {
		return categoryError(err)
	}

	log.Info().Str("from", oldName).Str("to", req.Name).Msg("category renamed, products not updated")

	return c.JSON(list)
}

// DeleteCategory removes category :name.
func (s *Service) DeleteCategory(c fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}

	list, err := contentsync.DeleteCategory(s.db, name)
	if err != nil {
		return categoryError(err)
	}

	return c.JSON(list)
}

// HomeProducts answers the ids of the featured products.
func (s *Service) HomeProducts(c fiber.Ctx) error {
	ids, err := contentsync.HomeProductIDs(s.db)
	if err != nil {
		return err
	}

	return c.JSON(ids)
}

// ToggleHomeProduct features product :id or stops featuring it.
// Only existing products can be featured, unknown ids can still be removed.
func (s *Service) ToggleHomeProduct(c fiber.Ctx) error {
	id := c.Params("id")

	ids, err := contentsync.HomeProductIDs(s.db)
	if err != nil {
		return err
	}

	if !slices.Contains(ids, id) {
		if _, err = product.Get(s.db, id); err != nil {
			return handler.StoreError(err, "Product not found")
		}
	}

	ids, featured, err := contentsync.ToggleHomeProduct(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"ids": ids, "featured": featured})
}

// Section answers the section :key prepared for editing.
func (s *Service) Section(c fiber.Ctx) error {
	value, err := contentsync.Section(s.db, c.Params("key"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(value)
}

func nameParam(c fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid category name")
	}

	return name, nil
}

func categoryError(err error) error {
	switch {
	case errors.Is(err, contentsync.ErrCategoryEmpty):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, contentsync.ErrCategoryExists):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, contentsync.ErrCategoryNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}
