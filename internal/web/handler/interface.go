package handler

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
)

// Service is the interface for a web handler service.
// Guard protects the admin routes the service registers.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error
}
