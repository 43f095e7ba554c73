// Package review serves product reviews and their moderation.
package review

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	controller "github.com/earg-org/earg-api/internal/db/controller/review"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/validation"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// Path is the route group of the review api.
const Path = handler.APIPath + "/reviews"

type request struct {
	ProductID string `json:"productId" validate:"notblank"`
	Rating    int    `json:"rating"    validate:"min=1,max=5"`
	Comment   string `json:"comment"   validate:"max=5000"`
	Author    string `json:"author"    validate:"max=100"`
}

var messages = validation.Messages{ //nolint:gochecknoglobals
	"ProductID.notblank": "Product is required",
	"Rating.min":         "Rating must be between 1 and 5",
	"Rating.max":         "Rating must be between 1 and 5",
	"Comment.max":        "Comment is too long (max 5000 characters)",
	"Author.max":         "Name is too long",
}

// Service is the review handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the review handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the review routes. Reading approved reviews and
// submitting a review are public.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get("/product/:productId", s.ListApproved)
		router.Get("/pending", guard, s.ListPending)
		router.Post(handler.RootPath, s.Create)
		router.Put("/:id/approve", guard, s.Approve)
		router.Delete("/:id", guard, s.Delete)
	})

	return nil
}

// ListApproved answers the approved reviews of a product.
func (s *Service) ListApproved(c fiber.Ctx) error {
	list, err := controller.ListApproved(s.db, c.Params("productId"))
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// ListPending answers the reviews waiting for moderation.
func (s *Service) ListPending(c fiber.Ctx) error {
	list, err := controller.ListPending(s.db)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// Create stores a pending review with its text escaped.
func (s *Service) Create(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if errs := validation.Check(req, messages); errs != nil {
		return handler.ValidationFailed(c, errs)
	}

	r := &models.Review{
		ProductID: strings.TrimSpace(req.ProductID),
		Rating:    req.Rating,
		Comment:   validation.Sanitize(req.Comment),
		Author:    validation.Sanitize(req.Author),
	}

	if err := controller.Create(s.db, r); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

// Approve releases review :id.
func (s *Service) Approve(c fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	r, err := controller.Approve(s.db, id)
	if err != nil {
		return handler.StoreError(err, "Review not found")
	}

	return c.JSON(r)
}

// Delete removes review :id.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = controller.Delete(s.db, id); err != nil {
		return err
	}

	return handler.Deleted(c)
}
