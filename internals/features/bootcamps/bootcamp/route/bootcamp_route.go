package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/bootcamp/controller"
	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
	"devcamper_backend/internals/features/bootcamps/bootcamp/repository"
	"devcamper_backend/internals/features/bootcamps/bootcamp/service"
	"devcamper_backend/internals/helpers/storage"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// BootcampRoutes mounts /bootcamps under router (/api/v1).
func BootcampRoutes(router fiber.Router, db *gorm.DB, protect fiber.Handler, store storage.Storage, cfg configs.Config) {
	svc := service.NewBootcampService(repository.New(db), store, cfg.MaxFileUpload, cfg.MaxImageDimension)
	ctrl := controller.NewBootcampController(svc)
	publisherOrAdmin := authMiddleware.Authorize(constants.PublisherAndAdmin...)

	bootcamps := router.Group("/bootcamps")

	// 🔓 Public
	bootcamps.Get("/", middlewares.AdvancedResults[model.BootcampModel](db, middlewares.Options{Preload: "Courses"}), ctrl.GetBootcamps)
	bootcamps.Get("/:id", ctrl.GetBootcamp)

	// 🔐 Publisher / admin
	bootcamps.Post("/", protect, publisherOrAdmin, ctrl.CreateBootcamp)
	bootcamps.Put("/:id", protect, publisherOrAdmin, ctrl.UpdateBootcamp)
	bootcamps.Delete("/:id", protect, publisherOrAdmin, ctrl.DeleteBootcamp)
	bootcamps.Put("/:id/photo", protect, publisherOrAdmin, ctrl.UploadPhoto)
}
