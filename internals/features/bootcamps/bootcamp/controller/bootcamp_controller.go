package controller

import (
	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/features/bootcamps/bootcamp/dto"
	"devcamper_backend/internals/features/bootcamps/bootcamp/service"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/middlewares"
)

type BootcampController struct {
	svc *service.BootcampService
}

func NewBootcampController(svc *service.BootcampService) *BootcampController {
	return &BootcampController{svc: svc}
}

// GET /api/v1/bootcamps
func (ctrl *BootcampController) GetBootcamps(c *fiber.Ctx) error {
	return middlewares.GetAdvancedResults(c).Send(c)
}

// GET /api/v1/bootcamps/:id
func (ctrl *BootcampController) GetBootcamp(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	b, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, b)
}

// POST /api/v1/bootcamps
func (ctrl *BootcampController) CreateBootcamp(c *fiber.Ctx) error {
	var req dto.CreateBootcampRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	b, err := ctrl.svc.Create(c.UserContext(), helperAuth.CurrentUser(c), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, b)
}

// PUT /api/v1/bootcamps/:id
func (ctrl *BootcampController) UpdateBootcamp(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateBootcampRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	b, err := ctrl.svc.Update(c.UserContext(), helperAuth.CurrentUser(c), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, b)
}

// DELETE /api/v1/bootcamps/:id
func (ctrl *BootcampController) DeleteBootcamp(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.svc.Delete(c.UserContext(), helperAuth.CurrentUser(c), id); err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{})
}

// PUT /api/v1/bootcamps/:id/photo
func (ctrl *BootcampController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	fh, _ := c.FormFile("file") // missing file is reported by the service
	photo, err := ctrl.svc.UploadPhoto(c.UserContext(), helperAuth.CurrentUser(c), id, fh)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, photo)
}
