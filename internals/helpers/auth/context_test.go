package helper

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcamper_backend/internals/constants"
)

func TestCurrentUser(t *testing.T) {
	p := &Principal{ID: uuid.New(), Name: "Ann", Role: constants.RoleAdmin}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, CurrentUser(c))
		SetCurrentUser(c, p)
		assert.Same(t, p, CurrentUser(c))
		assert.Same(t, p, UserFromContext(c.UserContext()))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Nil(t, UserFromContext(context.Background()))
}
