package response

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope wrapped around every non-binary reply
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a 200 envelope
func OK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{Message: message, Data: data})
}

// Error writes an envelope with the given status and no data
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Message: message, Data: nil})
}
