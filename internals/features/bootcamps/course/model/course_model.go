package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	reviewModel "devcamper_backend/internals/features/bootcamps/review/model"
)

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// BootcampRef is the slice of a bootcamp shown next to its courses.
type BootcampRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (BootcampRef) TableName() string {
	return "bootcamps"
}

type CourseModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title                string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description          string    `gorm:"not null" json:"description" validate:"required"`
	Weeks                string    `gorm:"size:20;not null" json:"weeks" validate:"required,max=20"`
	Tuition              float64   `gorm:"not null" json:"tuition" validate:"gte=0"`
	MinimumSkill         string    `gorm:"size:20;not null" json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool      `gorm:"not null" json:"scholarshipAvailable"`
	AverageRating        *float64  `json:"averageRating"`
	BootcampID           uuid.UUID `gorm:"type:uuid;not null" json:"bootcampId"`
	UserID               uuid.UUID `gorm:"type:uuid;not null" json:"user"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Bootcamp *BootcampRef              `gorm:"foreignKey:BootcampID" json:"bootcamp,omitempty"`
	Reviews  []reviewModel.ReviewModel `gorm:"foreignKey:CourseID" json:"reviews,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Weeks = strings.TrimSpace(c.Weeks)
	c.MinimumSkill = strings.ToLower(strings.TrimSpace(c.MinimumSkill))
}
