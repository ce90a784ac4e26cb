package server

import (
	"fmt"

	"blogapp/internal/dto"
	"blogapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users/addUser
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserDTO true "User"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} models.ExceptionResponse
// @Router /users/addUser [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in dto.UserDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := s.userService.CreateUser(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /api/users/updateUser/:id
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UserDTO true "User"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} models.ExceptionResponse
// @Failure 404 {string} string
// @Router /users/updateUser/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in dto.UserDTO
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := s.userService.UpdateUser(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// GetUserByID handles GET /api/users/getUserById/:id
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserDTO
// @Failure 404 {string} string
// @Router /users/getUserById/{id} [get]
func (s *Server) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// GetAllUsers handles GET /api/users/getAllUsers
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Router /users/getAllUsers [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetUsersByEmail handles GET /api/users/getUsersByEmail/:email
// @Summary Find users by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Param pageNumber query int false "Zero-based page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.UserPage
// @Failure 400 {object} models.ExceptionResponse
// @Router /users/getUsersByEmail/{email} [get]
func (s *Server) GetUsersByEmail(c *fiber.Ctx) error {
	pageNumber, err := queryInt(c, "pageNumber", service.DefaultPageNumber)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "pageSize", service.DefaultPageSize)
	if err != nil {
		return err
	}

	page, err := s.userService.GetUsersByEmail(c.UserContext(), c.Params("email"), pageNumber, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// DeleteUser handles DELETE /api/users/deleteUser/:id
// @Summary Delete user with its posts
// @Tags users
// @Produce plain
// @Param id path int true "User ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /users/deleteUser/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("User with id %d deleted successfully!!", id))
}
