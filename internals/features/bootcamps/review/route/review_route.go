package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/review/controller"
	"devcamper_backend/internals/features/bootcamps/review/model"
	"devcamper_backend/internals/features/bootcamps/review/repository"
	"devcamper_backend/internals/features/bootcamps/review/service"
	"devcamper_backend/internals/middlewares"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// ReviewRoutes mounts /reviews and /courses/:courseId/reviews.
func ReviewRoutes(router fiber.Router, db *gorm.DB, protect fiber.Handler) {
	svc := service.NewReviewService(repository.New(db), db)
	ctrl := controller.NewReviewController(svc)
	reviewer := authMiddleware.Authorize(constants.ReviewerAndAdmin...)

	listOpts := middlewares.Options{Preload: "Course", PreloadSelect: repository.CourseRefColumns}

	// 🔓 public reads
	nested := router.Group("/courses/:courseId/reviews")
	nested.Get("/", ctrl.GetCourseReviews)
	// 🔐 user/admin
	nested.Post("/", protect, reviewer, ctrl.AddReview)

	reviews := router.Group("/reviews")
	reviews.Get("/", middlewares.AdvancedResults[model.ReviewModel](db, listOpts), ctrl.GetReviews)
	reviews.Get("/:id", ctrl.GetReview)
	reviews.Put("/:id", protect, reviewer, ctrl.UpdateReview)
	reviews.Delete("/:id", protect, reviewer, ctrl.DeleteReview)
}
