package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devcamper_backend/internals/features/bootcamps/course/model"
	reviewModel "devcamper_backend/internals/features/bootcamps/review/model"
)

// ErrBootcampNotFound is returned when a course is attached to an unknown
// bootcamp.
var ErrBootcampNotFound = errors.New("bootcamp not found")

var (
	BootcampRefColumns = []string{"id", "name", "description"}
	ReviewColumns      = []string{"id", "course_id", "title", "text", "rating", "user_id", "created_at"}
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error)
	FindDetailed(ctx context.Context, id uuid.UUID) (*model.CourseModel, error)
	ListByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]model.CourseModel, error)
	BootcampOwner(ctx context.Context, bootcampID uuid.UUID) (uuid.UUID, error)
	Create(ctx context.Context, c *model.CourseModel) error
	Update(ctx context.Context, c *model.CourseModel, cols ...string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	var c model.CourseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindDetailed loads the course with its bootcamp summary and reviews.
func (r *GormRepository) FindDetailed(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	var c model.CourseModel
	err := r.db.WithContext(ctx).
		Preload("Bootcamp", func(tx *gorm.DB) *gorm.DB { return tx.Select(BootcampRefColumns) }).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Select(ReviewColumns).Order("created_at ASC") }).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepository) ListByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]model.CourseModel, error) {
	out := make([]model.CourseModel, 0)
	err := r.db.WithContext(ctx).
		Where("bootcamp_id = ?", bootcampID).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *GormRepository) BootcampOwner(ctx context.Context, bootcampID uuid.UUID) (uuid.UUID, error) {
	var row struct{ UserID uuid.UUID }
	err := r.db.WithContext(ctx).
		Table("bootcamps").
		Select("user_id").
		Where("id = ?", bootcampID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrBootcampNotFound
	}
	return row.UserID, err
}

func (r *GormRepository) Create(ctx context.Context, c *model.CourseModel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *GormRepository) Update(ctx context.Context, c *model.CourseModel, cols ...string) error {
	return r.db.WithContext(ctx).Model(c).Select(cols).Omit(clause.Associations).Updates(c).Error
}

// Delete removes the course and its reviews.
func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&reviewModel.ReviewModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.CourseModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
