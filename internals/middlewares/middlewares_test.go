package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "devcamper_backend/internals/helpers"
)

func TestRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(50 * time.Millisecond))
	app.Get("/", func(c *fiber.Ctx) error {
		dl, ok := c.UserContext().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), dl, 50*time.Millisecond)
		return c.SendString(c.Locals("requestid").(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.NotEmpty(t, string(body))
	assert.Equal(t, string(body), resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "given-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given-id", resp.Header.Get("X-Request-ID"))
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":false`)
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(RequestContext(time.Second))
	app.Use(RecoveryMiddleware())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"success":false,"error":"Server Error"}`, string(body))
}
