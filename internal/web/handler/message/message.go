// Package message serves the contact form api.
package message

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	controller "github.com/earg-org/earg-api/internal/db/controller/message"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/validation"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// Path is the route group of the message api.
const Path = handler.APIPath + "/messages"

type request struct {
	Name    string `json:"name"    validate:"notblank,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"notblank,max=5000"`
}

var messages = validation.Messages{ //nolint:gochecknoglobals
	"Name.notblank":    "Name is required",
	"Name.max":         "Name is too long",
	"Email.required":   "Valid email is required",
	"Email.email":      "Valid email is required",
	"Message.notblank": "Message is required",
	"Message.max":      "Message is too long (max 5000 characters)",
}

type readRequest struct {
	Read bool `json:"read"`
}

// Service is the message handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the message handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the message routes. Only sending a message is public.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RootPath, s.Create)
		router.Get(handler.RootPath, guard, s.List)
		router.Put("/:id/read", guard, s.MarkRead)
		router.Delete("/:id", guard, s.Delete)
	})

	return nil
}

// Create stores a contact form submission with its text escaped.
func (s *Service) Create(c fiber.Ctx) error {
	req := new(request)
	if err := handler.BindJSON(c, req); err != nil {
		return err
	}

	if errs := validation.Check(req, messages); errs != nil {
		return handler.ValidationFailed(c, errs)
	}

	m := &models.Message{
		Name:    validation.Sanitize(req.Name),
		Email:   validation.Sanitize(req.Email),
		Message: validation.Sanitize(req.Message),
	}

	if err := controller.Create(s.db, m); err != nil {
		return err
	}

	log.Info().Uint64("id", m.ID).Msg("contact message received")

	return c.Status(fiber.StatusCreated).JSON(m)
}

// List answers all messages, newest first.
func (s *Service) List(c fiber.Ctx) error {
	list, err := controller.List(s.db)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// MarkRead sets the read flag of message :id.
func (s *Service) MarkRead(c fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	req := new(readRequest)
	if err = handler.BindJSON(c, req); err != nil {
		return err
	}

	m, err := controller.MarkRead(s.db, id, req.Read)
	if err != nil {
		return handler.StoreError(err, "Message not found")
	}

	return c.JSON(m)
}

// Delete removes message :id.
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
