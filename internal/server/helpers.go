package server

import (
	"strconv"

	"blogapp/internal/models"
	"blogapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter by name as a positive uint.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewFieldValidationError(models.FieldError{
			Field:   param,
			Message: "must be a positive number",
		})
	}
	return uint(id), nil
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewFieldValidationError(models.FieldError{
			Field:   key,
			Message: "must be a number",
		})
	}
	return n, nil
}

// parsePageQuery reads pageNumber, pageSize, sortBy and sortDir with their listing defaults.
func parsePageQuery(c *fiber.Ctx) (service.PageQuery, error) {
	pageNumber, err := queryInt(c, "pageNumber", service.DefaultPageNumber)
	if err != nil {
		return service.PageQuery{}, err
	}
	pageSize, err := queryInt(c, "pageSize", service.DefaultPageSize)
	if err != nil {
		return service.PageQuery{}, err
	}
	return service.PageQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     c.Query("sortBy", service.DefaultSortBy),
		SortDir:    c.Query("sortDir", service.DefaultSortDir),
	}, nil
}

// parseBody decodes the request body into out.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}
