package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devcamper_backend/internals/features/bootcamps/review/model"
)

var CourseRefColumns = []string{"id", "title", "description"}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReviewModel, error)
	FindDetailed(ctx context.Context, id uuid.UUID) (*model.ReviewModel, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ReviewModel, error)
	CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.ReviewModel) error
	Update(ctx context.Context, m *model.ReviewModel, cols ...string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ReviewModel, error) {
	var m model.ReviewModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindDetailed loads the review with its course summary.
func (r *GormRepository) FindDetailed(ctx context.Context, id uuid.UUID) (*model.ReviewModel, error) {
	var m model.ReviewModel
	err := r.db.WithContext(ctx).
		Preload("Course", func(tx *gorm.DB) *gorm.DB { return tx.Select(CourseRefColumns) }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ReviewModel, error) {
	out := make([]model.ReviewModel, 0)
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *GormRepository) CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.CourseRef{}).
		Where("id = ?", courseID).
		Count(&n).Error
	return n > 0, err
}

func (r *GormRepository) Create(ctx context.Context, m *model.ReviewModel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *GormRepository) Update(ctx context.Context, m *model.ReviewModel, cols ...string) error {
	return r.db.WithContext(ctx).Model(m).Select(cols).Omit(clause.Associations).Updates(m).Error
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
