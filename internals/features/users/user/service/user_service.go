package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"devcamper_backend/internals/features/users/user/dto"
	"devcamper_backend/internals/features/users/user/model"
	"devcamper_backend/internals/features/users/user/repository"
	helper "devcamper_backend/internals/helpers"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

// UserService backs the admin users API.
type UserService struct {
	repo  repository.Repository
	cache authMiddleware.UserCache
}

func NewUserService(repo repository.Repository, cache authMiddleware.UserCache) *UserService {
	if cache == nil {
		cache = authMiddleware.NopCache{}
	}
	return &UserService{repo: repo, cache: cache}
}

func notFound(id uuid.UUID) error {
	return helper.NotFound(fmt.Sprintf("No user with the id of %s", id))
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	u, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := req.ToModel()
	if err != nil {
		return nil, helper.Internal(err)
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("[INFO] user %s created by admin", u.ID)
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cols, err := req.Apply(u)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if len(cols) == 0 {
		return u, nil
	}
	if err := s.repo.Update(ctx, u, cols...); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return u, nil
}

// Delete soft-deletes; tokens of the user stop resolving immediately.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.SoftDelete(ctx, id)
	if repository.IsNotFound(err) {
		return notFound(id)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Printf("[WARN] user cache invalidate %s: %v", id, err)
	}
}
