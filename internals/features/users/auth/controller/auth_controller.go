package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/features/users/auth/dto"
	"devcamper_backend/internals/features/users/auth/service"
	userModel "devcamper_backend/internals/features/users/user/model"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

type AuthController struct {
	svc       *service.AuthService
	cookieTTL time.Duration
	secure    bool
}

func NewAuthController(svc *service.AuthService, cfg configs.Config) *AuthController {
	return &AuthController{svc: svc, cookieTTL: cfg.JWTCookieExpire, secure: cfg.IsProduction()}
}

// sendTokenResponse signs u in: the token goes in the body and in an
// HttpOnly cookie.
func (ctrl *AuthController) sendTokenResponse(c *fiber.Ctx, u *userModel.UserModel, status int) error {
	token, err := ctrl.svc.SignedToken(u)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(ctrl.cookieTTL),
		HTTPOnly: true,
		Secure:   ctrl.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(status).JSON(dto.TokenResponse{Success: true, Token: token})
}

// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return ctrl.sendTokenResponse(c, u, fiber.StatusOK)
}

// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return ctrl.sendTokenResponse(c, u, fiber.StatusOK)
}

// GET /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.TokenCookie,
		Value:    "none",
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
		Secure:   ctrl.secure,
	})
	return helper.JsonOK(c, fiber.Map{})
}

// GET /api/v1/auth/me
func (ctrl *AuthController) GetMe(c *fiber.Ctx) error {
	me := helperAuth.CurrentUser(c)
	if me == nil {
		return helper.Unauthorized()
	}
	u, err := ctrl.svc.Me(c.UserContext(), me.ID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, u)
}

// PUT /api/v1/auth/updatedetails
func (ctrl *AuthController) UpdateDetails(c *fiber.Ctx) error {
	me := helperAuth.CurrentUser(c)
	if me == nil {
		return helper.Unauthorized()
	}
	var req dto.UpdateDetailsRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.UpdateDetails(c.UserContext(), me.ID, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, u)
}

// PUT /api/v1/auth/updatepassword
func (ctrl *AuthController) UpdatePassword(c *fiber.Ctx) error {
	me := helperAuth.CurrentUser(c)
	if me == nil {
		return helper.Unauthorized()
	}
	var req dto.UpdatePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.UpdatePassword(c.UserContext(), me.ID, req)
	if err != nil {
		return err
	}
	return ctrl.sendTokenResponse(c, u, fiber.StatusOK)
}

// POST /api/v1/auth/forgotpassword
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resetBase := c.BaseURL() + "/api/v1/auth/resetpassword"
	if err := ctrl.svc.ForgotPassword(c.UserContext(), req, resetBase); err != nil {
		return err
	}
	return helper.JsonOK(c, "Email sent")
}

// PUT /api/v1/auth/resetpassword/:resettoken
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	u, err := ctrl.svc.ResetPassword(c.UserContext(), c.Params("resettoken"), req)
	if err != nil {
		return err
	}
	return ctrl.sendTokenResponse(c, u, fiber.StatusOK)
}
