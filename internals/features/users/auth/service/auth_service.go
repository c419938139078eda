package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/features/users/auth/dto"
	userModel "devcamper_backend/internals/features/users/user/model"
	userRepo "devcamper_backend/internals/features/users/user/repository"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/helpers/events"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

/* ==========================
   Messages
========================== */

const (
	MsgMissingCredentials = "Please provide an email and password"
	MsgInvalidCredentials = "Invalid credentials"
	MsgPasswordIncorrect  = "Password is incorrect"
	MsgNoUserWithEmail    = "There is no user with that email"
	MsgInvalidResetToken  = "Invalid token"
	MsgEmailNotSent       = "Email could not be sent"
)

type AuthService struct {
	users     userRepo.Repository
	publisher events.Publisher
	cache     authMiddleware.UserCache

	secret   string
	tokenTTL time.Duration
	resetTTL time.Duration
	now      func() time.Time
}

func NewAuthService(users userRepo.Repository, publisher events.Publisher, cache authMiddleware.UserCache, cfg configs.Config) *AuthService {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	if cache == nil {
		cache = authMiddleware.NopCache{}
	}
	return &AuthService{
		users:     users,
		publisher: publisher,
		cache:     cache,
		secret:    cfg.JWTSecret,
		tokenTTL:  cfg.JWTExpire,
		resetTTL:  cfg.ResetTokenExpire,
		now:       time.Now,
	}
}

// SignedToken issues the access token of u.
func (s *AuthService) SignedToken(u *userModel.UserModel) (string, error) {
	tok, err := helperAuth.IssueToken(s.secret, u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return "", helper.Internal(err)
	}
	return tok, nil
}

/* ==========================
   Register / Login
========================== */

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := req.ToModel()
	if err != nil {
		return nil, helper.Internal(err)
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("[INFO] user registered id=%s role=%s", u.ID, u.Role)
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*userModel.UserModel, error) {
	if !req.Complete() {
		return nil, helper.BadRequest(MsgMissingCredentials)
	}
	u, err := s.users.FindByEmail(ctx, req.Email)
	if userRepo.IsNotFound(err) {
		return nil, helper.NewAppError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !u.MatchPassword(req.Password) {
		return nil, helper.NewAppError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	return u, nil
}

/* ==========================
   Current user
========================== */

func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	u, err := s.users.FindByID(ctx, id)
	if userRepo.IsNotFound(err) {
		return nil, helper.Unauthorized()
	}
	return u, err
}

func (s *AuthService) UpdateDetails(ctx context.Context, id uuid.UUID, req dto.UpdateDetailsRequest) (*userModel.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.Me(ctx, id)
	if err != nil {
		return nil, err
	}
	cols := req.Apply(u)
	if len(cols) == 0 {
		return u, nil
	}
	if err := s.users.Update(ctx, u, cols...); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return u, nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, id uuid.UUID, req dto.UpdatePasswordRequest) (*userModel.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.Me(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.MatchPassword(req.CurrentPassword) {
		return nil, helper.NewAppError(fiber.StatusUnauthorized, MsgPasswordIncorrect)
	}
	if err := u.SetPassword(req.NewPassword); err != nil {
		return nil, helper.Internal(err)
	}
	if err := s.users.Update(ctx, u, "password"); err != nil {
		return nil, err
	}
	return u, nil
}

/* ==========================
   Password reset
========================== */

// ForgotPassword stores a hashed reset token and publishes the reset link
// built from resetBase. When publishing fails the token is withdrawn.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest, resetBase string) error {
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	u, err := s.users.FindByEmail(ctx, req.Email)
	if userRepo.IsNotFound(err) {
		return helper.NotFound(MsgNoUserWithEmail)
	}
	if err != nil {
		return err
	}

	raw, err := u.NewResetToken(s.resetTTL)
	if err != nil {
		return helper.Internal(err)
	}
	if err := s.users.Update(ctx, u, "reset_password_token", "reset_password_expire"); err != nil {
		return err
	}

	evt := events.PasswordResetRequested{
		UserID:    u.ID,
		Email:     u.Email,
		ResetURL:  strings.TrimRight(resetBase, "/") + "/" + raw,
		ExpiresAt: *u.ResetPasswordExpire,
	}
	if err := s.publisher.PublishPasswordReset(ctx, evt); err != nil {
		log.Printf("[ERROR] publish password reset user=%s: %v", u.ID, err)
		u.ClearResetToken()
		if uerr := s.users.Update(ctx, u, "reset_password_token", "reset_password_expire"); uerr != nil {
			log.Printf("[ERROR] withdraw reset token user=%s: %v", u.ID, uerr)
		}
		return helper.NewAppError(fiber.StatusInternalServerError, MsgEmailNotSent)
	}
	return nil
}

// ResetPassword consumes a raw reset token.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken string, req dto.ResetPasswordRequest) (*userModel.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.users.FindByResetToken(ctx, userModel.HashResetToken(rawToken), s.now())
	if userRepo.IsNotFound(err) {
		return nil, helper.BadRequest(MsgInvalidResetToken)
	}
	if err != nil {
		return nil, err
	}
	if err := u.SetPassword(req.Password); err != nil {
		return nil, helper.Internal(err)
	}
	u.ClearResetToken()
	if err := s.users.Update(ctx, u, "password", "reset_password_token", "reset_password_expire"); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Printf("[WARN] user cache invalidate %s: %v", id, err)
	}
}
