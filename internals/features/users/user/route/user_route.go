package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/users/user/controller"
	"devcamper_backend/internals/features/users/user/model"
	"devcamper_backend/internals/features/users/user/repository"
	"devcamper_backend/internals/features/users/user/service"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// UserRoutes mounts the admin users API under router (/api/v1).
func UserRoutes(router fiber.Router, db *gorm.DB, protect fiber.Handler, cache authMiddleware.UserCache) {
	svc := service.NewUserService(repository.New(db), cache)
	ctrl := controller.NewUserController(svc)

	users := router.Group("/users", protect, authMiddleware.Authorize(constants.AdminOnly...))
	users.Get("/", middlewares.AdvancedResults[model.UserModel](db, middlewares.Options{}), ctrl.GetUsers)
	users.Post("/", ctrl.CreateUser)
	users.Get("/:id", ctrl.GetUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
