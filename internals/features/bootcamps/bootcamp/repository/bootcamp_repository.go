package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
	courseModel "devcamper_backend/internals/features/bootcamps/course/model"
	reviewModel "devcamper_backend/internals/features/bootcamps/review/model"
	helper "devcamper_backend/internals/helpers"
)

// CourseSummaryColumns are the course columns embedded in a single
// bootcamp response.
var CourseSummaryColumns = []string{"id", "bootcamp_id", "title", "description", "minimum_skill"}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.BootcampModel, error)
	FindWithCourses(ctx context.Context, id uuid.UUID) (*model.BootcampModel, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
	UniqueSlug(ctx context.Context, name string, excludeID uuid.UUID) (string, error)
	Create(ctx context.Context, b *model.BootcampModel) error
	Update(ctx context.Context, b *model.BootcampModel, cols ...string) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	WithOwnerLock(ctx context.Context, userID uuid.UUID, fn func(Repository) error) error
}

type GormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BootcampModel, error) {
	var b model.BootcampModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) FindWithCourses(ctx context.Context, id uuid.UUID) (*model.BootcampModel, error) {
	var b model.BootcampModel
	err := r.db.WithContext(ctx).
		Preload("Courses", func(tx *gorm.DB) *gorm.DB {
			return tx.Select(CourseSummaryColumns).Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BootcampModel{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *GormRepository) UniqueSlug(ctx context.Context, name string, excludeID uuid.UUID) (string, error) {
	return helper.EnsureUniqueSlug(ctx, r.db, "bootcamps", "slug", helper.Slugify(name), excludeID)
}

func (r *GormRepository) Create(ctx context.Context, b *model.BootcampModel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *GormRepository) Update(ctx context.Context, b *model.BootcampModel, cols ...string) error {
	return r.db.WithContext(ctx).Model(b).Select(cols).Omit(clause.Associations).Updates(b).Error
}

// DeleteCascade removes the bootcamp with its courses and their reviews in
// one transaction.
func (r *GormRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courseIDs := tx.Model(&courseModel.CourseModel{}).Select("id").Where("bootcamp_id = ?", id)
		if err := tx.Where("course_id IN (?)", courseIDs).Delete(&reviewModel.ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bootcamp_id = ?", id).Delete(&courseModel.CourseModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.BootcampModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// WithOwnerLock runs fn in a transaction holding a per-owner advisory
// lock, so concurrent creates by the same user are serialized.
func (r *GormRepository) WithOwnerLock(ctx context.Context, userID uuid.UUID, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID.String()).Error; err != nil {
			return err
		}
		return fn(New(tx))
	})
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
