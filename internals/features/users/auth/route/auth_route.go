package route

import (
	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/features/users/auth/controller"
	"devcamper_backend/internals/features/users/auth/service"
	userRepo "devcamper_backend/internals/features/users/user/repository"
	"devcamper_backend/internals/helpers/events"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under router (/api/v1).
func AuthRoutes(
	router fiber.Router,
	users userRepo.Repository,
	publisher events.Publisher,
	cache authMiddleware.UserCache,
	cfg configs.Config,
	protect fiber.Handler,
) {
	svc := service.NewAuthService(users, publisher, cache, cfg)
	ctrl := controller.NewAuthController(svc, cfg)

	auth := router.Group("/auth")

	// 🔓 Public
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/logout", ctrl.Logout)
	auth.Post("/forgotpassword", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Put("/resetpassword/:resettoken", ctrl.ResetPassword)

	// 🔐 Protected
	auth.Get("/me", protect, ctrl.GetMe)
	auth.Put("/updatedetails", protect, ctrl.UpdateDetails)
	auth.Put("/updatepassword", protect, ctrl.UpdatePassword)
}
