package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rendyseptch/Login-app/internal/middleware"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("propagates the inbound id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-id-123")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "client-id-123", resp.Header.Get(middleware.RequestIDHeader))
	})
}

func TestLogging_PassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID(), middleware.Logging())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
