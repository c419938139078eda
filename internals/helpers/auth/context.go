package helper

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devcamper_backend/internals/constants"
)

// Principal is the authenticated user as seen by handlers.
type Principal struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  constants.Role `json:"role"`
}

type principalKey struct{}

// SetCurrentUser stores p on the request (Locals) and on its user context.
func SetCurrentUser(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey{}, p)
	c.SetUserContext(WithPrincipal(c.UserContext(), p))
}

// CurrentUser returns nil on routes that did not run Protect.
func CurrentUser(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(principalKey{}).(*Principal)
	return p
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func UserFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
