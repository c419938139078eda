package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const TokenCookie = "token"

// GetRawAccessToken reads "Authorization: Bearer <token>" first, then the
// token cookie. Returns "" when neither carries a value.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	if h := c.Get(fiber.HeaderAuthorization); len(h) > len(p) && strings.EqualFold(h[:len(p)], p) {
		if v := strings.TrimSpace(h[len(p):]); v != "" {
			return v
		}
	}
	return strings.TrimSpace(c.Cookies(TokenCookie))
}
