package controller

import (
	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/features/bootcamps/course/dto"
	"devcamper_backend/internals/features/bootcamps/course/service"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/middlewares"
)

type CourseController struct {
	svc *service.CourseService
}

func NewCourseController(svc *service.CourseService) *CourseController {
	return &CourseController{svc: svc}
}

// GET /api/v1/courses
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	return middlewares.GetAdvancedResults(c).Send(c)
}

// GET /api/v1/bootcamps/:bootcampId/courses
func (ctrl *CourseController) GetBootcampCourses(c *fiber.Ctx) error {
	bootcampID, err := helper.ParseUUIDParam(c, "bootcampId")
	if err != nil {
		return err
	}
	courses, err := ctrl.svc.ListByBootcamp(c.UserContext(), bootcampID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, courses, len(courses))
}

// GET /api/v1/courses/:id
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	course, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, course)
}

// POST /api/v1/bootcamps/:bootcampId/courses
func (ctrl *CourseController) AddCourse(c *fiber.Ctx) error {
	bootcampID, err := helper.ParseUUIDParam(c, "bootcampId")
	if err != nil {
		return err
	}
	var req dto.CreateCourseRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	course, err := ctrl.svc.Create(c.UserContext(), helperAuth.CurrentUser(c), bootcampID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, course)
}

// PUT /api/v1/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCourseRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	course, err := ctrl.svc.Update(c.UserContext(), helperAuth.CurrentUser(c), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, course)
}

// DELETE /api/v1/courses/:id
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.svc.Delete(c.UserContext(), helperAuth.CurrentUser(c), id); err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{})
}
