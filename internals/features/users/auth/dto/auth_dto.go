package dto

import (
	"strings"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/users/user/model"
)

// RegisterRequest only accepts the self-service roles.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher"`
}

func (r RegisterRequest) ToModel() (*model.UserModel, error) {
	u := &model.UserModel{
		Name:  r.Name,
		Email: r.Email,
		Role:  constants.Role(r.Role),
	}
	u.Normalize()
	if err := u.SetPassword(r.Password); err != nil {
		return nil, err
	}
	return u, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Complete() bool {
	return strings.TrimSpace(r.Email) != "" && r.Password != ""
}

// UpdateDetailsRequest changes name and email only.
type UpdateDetailsRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func (r UpdateDetailsRequest) Apply(u *model.UserModel) []string {
	var cols []string
	if r.Name != nil {
		u.Name = strings.TrimSpace(*r.Name)
		cols = append(cols, "name")
	}
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
		cols = append(cols, "email")
	}
	return cols
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse is the body of every endpoint that signs the user in.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
