package handler

import (
	"errors"
	"log"
	"strconv"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is installed as fiber.Config.ErrorHandler. Handlers return
// service errors unchanged and this is the only place they become status
// codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrAlreadyExists):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrInvalid):
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrUnauthorized):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return response.Error(c, fiberErr.Code, fiberErr.Message)
	}

	log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return response.Error(c, fiber.StatusInternalServerError, "Error: "+err.Error())
}

// Helper untuk parse ID dari path
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	return nil
}
