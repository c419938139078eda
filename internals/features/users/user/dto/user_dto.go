package dto

import (
	"strings"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/users/user/model"
)

// CreateUserRequest is the admin create payload; role defaults to user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

func (r CreateUserRequest) ToModel() (*model.UserModel, error) {
	u := &model.UserModel{
		Name:  r.Name,
		Email: r.Email,
		Role:  constants.Role(strings.ToLower(r.Role)),
	}
	u.Normalize()
	if err := u.SetPassword(r.Password); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

// Apply copies the set fields onto u and returns the touched columns.
func (r UpdateUserRequest) Apply(u *model.UserModel) ([]string, error) {
	var cols []string
	if r.Name != nil {
		u.Name = strings.TrimSpace(*r.Name)
		cols = append(cols, "name")
	}
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
		cols = append(cols, "email")
	}
	if r.Role != nil {
		u.Role = constants.Role(strings.ToLower(*r.Role))
		cols = append(cols, "role")
	}
	if r.Password != nil {
		if err := u.SetPassword(*r.Password); err != nil {
			return nil, err
		}
		cols = append(cols, "password")
	}
	return cols, nil
}
