package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Validation and not-found errors carry their rule message; anything else
// is a persistence failure surfaced with the raw error text appended.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	}
	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apiError(c, fiber.StatusNotFound, notFoundErr.Message)
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "something went wrong: "+err.Error())
}
