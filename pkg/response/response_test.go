package response

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, "Found!", fiber.Map{"id": 1}) })
	app.Get("/err", func(c *fiber.Ctx) error { return Error(c, fiber.StatusConflict, "taken") })

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/ok", fiber.StatusOK, `{"message":"Found!","data":{"id":1}}`},
		{"/err", fiber.StatusConflict, `{"message":"taken","data":null}`},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode)
		assert.JSONEq(t, tc.body, string(body))
	}
}
