package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseRef is the slice of a course shown next to its reviews.
type CourseRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func (CourseRef) TableName() string {
	return "courses"
}

// ReviewModel maps the reviews table. One review per (course, user).
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title" validate:"required,max=100"`
	Text      string    `gorm:"not null" json:"text" validate:"required"`
	Rating    int       `gorm:"not null" json:"rating" validate:"required,gte=1,lte=10"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"courseId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Course *CourseRef `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
