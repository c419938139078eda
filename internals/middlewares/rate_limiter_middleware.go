package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "devcamper_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: every /api route
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, 10*time.Minute, "Too many requests, please try again later")
}

func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Too many login attempts, please try again in a minute")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "Too many registrations from this address, please wait a few minutes")
}

func ForgotPasswordRateLimiter() fiber.Handler {
	return newLimiter(2, 10*time.Minute, "Too many password reset requests, please try again in 10 minutes")
}
