package handler

import (
	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetAllCategories
// GET /categories/all
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return response.OK(c, "Found!", categories)
}

// AddCategory
// POST /categories/add
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.service.AddCategory(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return response.OK(c, "Success", category)
}

// GetCategoryByID
// GET /categories/category/:id/category
func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.OK(c, "Found", category)
}

// GetCategoryByName
// GET /categories/category/:name/name
func (h *CategoryHandler) GetCategoryByName(c *fiber.Ctx) error {
	category, found, err := h.service.GetCategoryByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("Category not found!")
	}
	return response.OK(c, "Found", category)
}

// UpdateCategory
// PUT /categories/category/:id/update
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.service.UpdateCategory(c.UserContext(), &req, id)
	if err != nil {
		return err
	}
	return response.OK(c, "Update success!", category)
}

// DeleteCategory
// DELETE /categories/category/:id/delete
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return response.OK(c, "Category deleted!", nil)
}
