package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/course/controller"
	"devcamper_backend/internals/features/bootcamps/course/model"
	"devcamper_backend/internals/features/bootcamps/course/repository"
	"devcamper_backend/internals/features/bootcamps/course/service"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// CourseRoutes mounts /courses and /bootcamps/:bootcampId/courses.
func CourseRoutes(router fiber.Router, db *gorm.DB, protect fiber.Handler) {
	svc := service.NewCourseService(repository.New(db), db)
	ctrl := controller.NewCourseController(svc)
	publisherOrAdmin := authMiddleware.Authorize(constants.PublisherAndAdmin...)

	listOpts := middlewares.Options{Preload: "Bootcamp", PreloadSelect: repository.BootcampRefColumns}

	nested := router.Group("/bootcamps/:bootcampId/courses")
	nested.Get("/", ctrl.GetBootcampCourses)
	nested.Post("/", protect, publisherOrAdmin, ctrl.AddCourse)

	courses := router.Group("/courses")
	courses.Get("/", middlewares.AdvancedResults[model.CourseModel](db, listOpts), ctrl.GetCourses)
	courses.Get("/:id", ctrl.GetCourse)
	courses.Put("/:id", protect, publisherOrAdmin, ctrl.UpdateCourse)
	courses.Delete("/:id", protect, publisherOrAdmin, ctrl.DeleteCourse)
}
