package auth

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

// UserLoader resolves a token subject. It must return gorm.ErrRecordNotFound
// for unknown or soft-deleted users.
type UserLoader interface {
	FindPrincipal(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, error)
}

type ProtectConfig struct {
	Secret string
	Users  UserLoader
	Cache  UserCache // nil = no cache
}

// Protect authenticates the request from the bearer header or the token
// cookie. Every failure is the same 401.
func Protect(cfg ProtectConfig) fiber.Handler {
	if cfg.Cache == nil {
		cfg.Cache = NopCache{}
	}
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.Unauthorized()
		}

		_, userID, err := helperAuth.ParseToken(cfg.Secret, raw)
		if err != nil {
			return helper.Unauthorized()
		}

		p, err := resolvePrincipal(c.UserContext(), cfg, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Unauthorized()
		}
		if err != nil {
			return helper.Internal(err)
		}

		helperAuth.SetCurrentUser(c, p)
		return c.Next()
	}
}

func resolvePrincipal(ctx context.Context, cfg ProtectConfig, id uuid.UUID) (*helperAuth.Principal, error) {
	if p, ok := cfg.Cache.Get(ctx, id); ok {
		return p, nil
	}
	p, err := cfg.Users.FindPrincipal(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cfg.Cache.Set(ctx, p); err != nil {
		log.Printf("[WARN] user cache set %s: %v", id, err)
	}
	return p, nil
}
