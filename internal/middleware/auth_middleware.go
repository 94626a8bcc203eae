package middleware

import (
	"strings"

	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, jwt.ErrMissingToken.Error())
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
		}

		// Validate token and the session it belongs to
		user, err := authService.ValidateToken(c.UserContext(), parts[1])
		if err != nil {
			return err
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)

		return c.Next()
	}
}
