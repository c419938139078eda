package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"devcamper_backend/internals/configs"
	bootcampRoute "devcamper_backend/internals/features/bootcamps/bootcamp/route"
	courseRoute "devcamper_backend/internals/features/bootcamps/course/route"
	reviewRoute "devcamper_backend/internals/features/bootcamps/review/route"
	authRoute "devcamper_backend/internals/features/users/auth/route"
	userRepo "devcamper_backend/internals/features/users/user/repository"
	userRoute "devcamper_backend/internals/features/users/user/route"
	"devcamper_backend/internals/helpers/events"
	"devcamper_backend/internals/helpers/storage"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps are the process-wide resources the handlers share.
type Deps struct {
	Config    configs.Config
	DB        *gorm.DB
	Redis     *redis.Client // nil = no user cache
	Publisher events.Publisher
	Storage   storage.Storage
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()
	cfg := deps.Config

	BaseRoutes(app, deps)

	users := userRepo.New(deps.DB)
	cache := authMiddleware.NewUserCache(deps.Redis, cfg.UserCacheTTL)
	protect := authMiddleware.Protect(authMiddleware.ProtectConfig{
		Secret: cfg.JWTSecret,
		Users:  users,
		Cache:  cache,
	})

	api := app.Group("/api/v1", middlewares.GlobalRateLimiter())

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, users, deps.Publisher, cache, cfg, protect)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, deps.DB, protect, cache)

	// ===================== BOOTCAMPS =====================
	log.Println("[INFO] Mounting Bootcamp routes...")
	bootcampRoute.BootcampRoutes(api, deps.DB, protect, deps.Storage, cfg)

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseRoutes(api, deps.DB, protect)

	log.Println("[INFO] Mounting Review routes...")
	reviewRoute.ReviewRoutes(api, deps.DB, protect)
}
