package handler

import (
	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserByID returns a single user by ID
// GET /users/user/:id/user
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, "Found!", h.userService.ConvertUserToDto(user))
}

// CreateUser handles user creation
// POST /users/add
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return response.OK(c, "Create user successfully!", h.userService.ConvertUserToDto(user))
}

// UpdateUser handles user update
// PUT /users/:id/update
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.UserContext(), &req, userID)
	if err != nil {
		return err
	}
	return response.OK(c, "Update user successfully!", h.userService.ConvertUserToDto(user))
}

// DeleteUser handles user deletion
// DELETE /users/:id/delete
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.UserContext(), userID); err != nil {
		return err
	}
	return response.OK(c, "Delete user successfully!", nil)
}
