package controller

import (
	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/features/users/user/dto"
	"devcamper_backend/internals/features/users/user/service"
	helper "devcamper_backend/internals/helpers"
	"devcamper_backend/internals/middlewares"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /api/v1/users
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	return middlewares.GetAdvancedResults(c).Send(c)
}

// GET /api/v1/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	u, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, u)
}

// POST /api/v1/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, u)
}

// PUT /api/v1/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, u)
}

// DELETE /api/v1/users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{})
}
