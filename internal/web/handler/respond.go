// Package handler holds what the api handler packages share: the service
// interface, the json error format and request helpers.
package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
)

// ErrNilInit is returned by Init when app, cfg or db is nil.
var ErrNilInit = errors.New(ErrNilACDFatalLogMsg)

// ErrorHandler answers every error as {"error": message}. Errors that are
// not a *fiber.Error are storage failures and answered with 500.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// StoreError turns collection.ErrNotFound into a 404 with msg.
func StoreError(err error, msg string) error {
	if errors.Is(err, collection.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}

	return err
}

// ParseID reads the numeric :id route parameter.
func ParseID(c fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	return id, nil
}

// BindJSON decodes the request body into out. Numbers are kept as
// json.Number when out asks for them.
func BindJSON(c fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	return nil
}

// ValidationFailed answers 400 with the validation messages.
func ValidationFailed(c fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"errors": errs,
	})
}

// Deleted answers the confirmation of a delete.
func Deleted(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Deleted"})
}
