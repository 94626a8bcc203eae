package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/handler"
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/jwt"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	service.AuthService
	valid string
}

func (s stubAuth) ValidateToken(_ context.Context, token string) (*model.User, error) {
	if token != s.valid {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	return &model.User{BaseModel: model.BaseModel{ID: 7}, Email: "ada@example.com"}, nil
}

func TestRequireAuth(t *testing.T) {
	app := handler.NewApp("test", 0)
	app.Get("/me", RequireAuth(stubAuth{valid: "good"}), func(c *fiber.Ctx) error {
		assert.Equal(t, uint(7), c.Locals("user_id"))
		return c.SendString(c.Locals("user_email").(string))
	})

	cases := []struct {
		header string
		status int
	}{
		{"", fiber.StatusUnauthorized},
		{"Token good", fiber.StatusUnauthorized},
		{"Bearer bad", fiber.StatusUnauthorized},
		{"Bearer good", fiber.StatusOK},
		{"bearer good", fiber.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set(fiber.HeaderAuthorization, tc.header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.header)
	}
}

func TestRequireAuthMissingHeaderMessage(t *testing.T) {
	app := handler.NewApp("test", 0)
	app.Get("/me", RequireAuth(stubAuth{valid: "good"}), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	var env response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, jwt.ErrMissingToken.Error(), env.Message)
}
