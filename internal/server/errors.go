package server

import (
	"errors"

	"blogapp/internal/middleware"
	"blogapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusOf maps an error to the HTTP status it is reported with.
func statusOf(err error) int {
	switch {
	case models.IsNotFound(err):
		return fiber.StatusNotFound
	case models.IsValidation(err):
		return fiber.StatusBadRequest
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler is the single place where handler errors become HTTP responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return models.RespondWithError(c, status, err)
}
