package server

import (
	"fmt"

	"blogapp/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory handles POST /api/category/createCategory
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryDTO true "Category"
// @Success 201 {object} dto.CategoryDTO
// @Failure 400 {object} models.ExceptionResponse
// @Router /category/createCategory [post]
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	category, err := s.categoryService.CreateCategory(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /api/category/updateCategory/:id
// @Summary Update category
// @Description Writes categoryTitle and categoryDescription. With LEGACY_CATEGORY_UPDATE=true the stored title is set from categoryDescription instead.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryDTO true "Category"
// @Success 200 {object} dto.CategoryDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /category/updateCategory/{id} [put]
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in dto.CategoryDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	category, err := s.categoryService.UpdateCategory(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// DeleteCategory handles DELETE /api/category/deleteCategory/:id
// @Summary Delete category with its posts
// @Tags categories
// @Produce plain
// @Param id path int true "Category ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /category/deleteCategory/{id} [delete]
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.categoryService.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Category with Id %d deleted successfully!", id))
}

// GetCategory handles GET /api/category/getCategory/:id
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryDTO
// @Failure 404 {string} string
// @Router /category/getCategory/{id} [get]
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	category, err := s.categoryService.GetCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// GetAllCategories handles GET /api/category/getAllCategories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Router /category/getAllCategories [get]
func (s *Server) GetAllCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}
