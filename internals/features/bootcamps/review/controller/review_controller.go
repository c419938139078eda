package controller

import (
	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/features/bootcamps/review/dto"
	"devcamper_backend/internals/features/bootcamps/review/service"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/middlewares"
)

type ReviewController struct {
	svc *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

// GET /api/v1/reviews
func (ctrl *ReviewController) GetReviews(c *fiber.Ctx) error {
	return middlewares.GetAdvancedResults(c).Send(c)
}

// GET /api/v1/courses/:courseId/reviews
func (ctrl *ReviewController) GetCourseReviews(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return err
	}
	reviews, err := ctrl.svc.ListByCourse(c.UserContext(), courseID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, reviews, len(reviews))
}

// GET /api/v1/reviews/:id
func (ctrl *ReviewController) GetReview(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	review, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, review)
}

// POST /api/v1/courses/:courseId/reviews
func (ctrl *ReviewController) AddReview(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return err
	}
	var req dto.CreateReviewRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	review, err := ctrl.svc.Create(c.UserContext(), helperAuth.CurrentUser(c), courseID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, review)
}

// PUT /api/v1/reviews/:id
func (ctrl *ReviewController) UpdateReview(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateReviewRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	review, err := ctrl.svc.Update(c.UserContext(), helperAuth.CurrentUser(c), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, review)
}

// DELETE /api/v1/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.svc.Delete(c.UserContext(), helperAuth.CurrentUser(c), id); err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{})
}
