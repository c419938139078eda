package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devcamper_backend/internals/features/users/user/model"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

// Repository is the persistence boundary of users. Lookups of missing or
// soft-deleted users return gorm.ErrRecordNotFound.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	FindByResetToken(ctx context.Context, hashed string, now time.Time) (*model.UserModel, error)
	FindPrincipal(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, error)
	Create(ctx context.Context, u *model.UserModel) error
	Update(ctx context.Context, u *model.UserModel, cols ...string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

/* ====================== READ ====================== */

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByResetToken matches the stored hash and only while it is unexpired.
func (r *GormRepository) FindByResetToken(ctx context.Context, hashed string, now time.Time) (*model.UserModel, error) {
	var u model.UserModel
	err := r.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expire > ?", hashed, now).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindPrincipal loads the columns the auth middleware needs.
func (r *GormRepository) FindPrincipal(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, error) {
	var u model.UserModel
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "role").
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return u.Principal(), nil
}

/* ====================== WRITE ====================== */

func (r *GormRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Update writes only cols (updated_at is always refreshed). Without cols
// the whole row is saved.
func (r *GormRepository) Update(ctx context.Context, u *model.UserModel, cols ...string) error {
	if len(cols) == 0 {
		return r.db.WithContext(ctx).Save(u).Error
	}
	return r.db.WithContext(ctx).Model(u).Select(cols).Updates(u).Error
}

func (r *GormRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("reset_password_expire IS NOT NULL AND reset_password_expire < ?", now).
		Updates(map[string]any{
			"reset_password_token":  nil,
			"reset_password_expire": nil,
		})
	return res.RowsAffected, res.Error
}

// IsNotFound is a shorthand used by the services.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
