package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/users/user/dto"
	"devcamper_backend/internals/features/users/user/model"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

type fakeRepo struct {
	users   map[uuid.UUID]*model.UserModel
	updated []string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{users: map[uuid.UUID]*model.UserModel{}} }

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmail(context.Context, string) (*model.UserModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByResetToken(context.Context, string, time.Time) (*model.UserModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindPrincipal(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, error) {
	u, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Principal(), nil
}

func (f *fakeRepo) Create(_ context.Context, u *model.UserModel) error {
	u.ID = uuid.New()
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) Update(_ context.Context, u *model.UserModel, cols ...string) error {
	f.updated = cols
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) ClearExpiredResetTokens(context.Context, time.Time) (int64, error) { return 0, nil }

type spyCache struct{ invalidated []uuid.UUID }

func (s *spyCache) Get(context.Context, uuid.UUID) (*helperAuth.Principal, bool) { return nil, false }
func (s *spyCache) Set(context.Context, *helperAuth.Principal) error { return nil }
func (s *spyCache) Invalidate(_ context.Context, id uuid.UUID) error {
	s.invalidated = append(s.invalidated, id)
	return nil
}

func statusOf(err error) int {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

func TestUserService_CreateAndGet(t *testing.T) {
	svc := NewUserService(newFakeRepo(), nil)
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.CreateUserRequest{Name: "Admin", Email: "A@x.io", Password: "123456", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, u.Role)
	assert.NotEqual(t, "123456", u.Password)

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", got.Email)

	_, err = svc.Get(ctx, uuid.New())
	assert.Equal(t, 404, statusOf(err))
}

func TestUserService_CreateValidation(t *testing.T) {
	svc := NewUserService(newFakeRepo(), nil)
	_, err := svc.Create(context.Background(), dto.CreateUserRequest{Email: "a@x.io", Password: "123456"})
	assert.Equal(t, 400, statusOf(err))
}

func TestUserService_UpdateInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	cache := &spyCache{}
	svc := NewUserService(repo, cache)
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.CreateUserRequest{Name: "Jo", Email: "jo@x.io", Password: "123456"})
	require.NoError(t, err)

	role := "publisher"
	updated, err := svc.Update(ctx, u.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, constants.RolePublisher, updated.Role)
	assert.Equal(t, []string{"role"}, repo.updated)
	assert.Equal(t, []uuid.UUID{u.ID}, cache.invalidated)
}

func TestUserService_Delete(t *testing.T) {
	repo := newFakeRepo()
	cache := &spyCache{}
	svc := NewUserService(repo, cache)
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.CreateUserRequest{Name: "Jo", Email: "jo@x.io", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))
	assert.Len(t, cache.invalidated, 1)
	assert.Equal(t, 404, statusOf(svc.Delete(ctx, u.ID)))
}
