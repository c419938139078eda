package auth

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/constants"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

// Authorize runs after Protect and lets only the listed roles through.
func Authorize(roles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := helperAuth.CurrentUser(c)
		if p == nil {
			return helper.Unauthorized()
		}
		if !slices.Contains(roles, p.Role) {
			return helper.Forbidden(constants.RoleErrorNotAuthorized(p.Role))
		}
		return c.Next()
	}
}
