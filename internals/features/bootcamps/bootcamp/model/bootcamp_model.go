package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	courseModel "devcamper_backend/internals/features/bootcamps/course/model"
)

const DefaultPhoto = "no-photo.jpg"

var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// Location is stored as jsonb; the client supplies it.
type Location struct {
	Type             string    `json:"type,omitempty"`
	Coordinates      []float64 `json:"coordinates,omitempty"`
	FormattedAddress string    `json:"formattedAddress,omitempty"`
	Street           string    `json:"street,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty"`
}

type BootcampModel struct {
	ID            uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string                       `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50"`
	Slug          string                       `gorm:"size:80;not null;uniqueIndex" json:"slug"`
	Description   string                       `gorm:"size:500;not null" json:"description" validate:"required,max=500"`
	Website       string                       `json:"website" validate:"omitempty,http_url"`
	Phone         string                       `gorm:"size:20" json:"phone" validate:"omitempty,max=20"`
	Email         string                       `gorm:"size:255;not null" json:"email" validate:"required,email,max=255"`
	Address       string                       `gorm:"not null" json:"address" validate:"required"`
	Location      datatypes.JSONType[Location] `gorm:"type:jsonb" json:"location"`
	Careers       pq.StringArray               `gorm:"type:text[];not null" json:"careers" validate:"required,min=1,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'"`
	AverageRating *float64                     `json:"averageRating"`
	AverageCost   *float64                     `json:"averageCost"`
	Photo         string                       `gorm:"not null" json:"photo"`
	Housing       bool                         `gorm:"not null" json:"housing"`
	JobAssistance bool                         `gorm:"not null" json:"jobAssistance"`
	JobGuarantee  bool                         `gorm:"not null" json:"jobGuarantee"`
	AcceptGi      bool                         `gorm:"not null" json:"acceptGi"`
	UserID        uuid.UUID                    `gorm:"type:uuid;not null" json:"user"`
	CreatedAt     time.Time                    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`

	Courses []courseModel.CourseModel `gorm:"foreignKey:BootcampID" json:"courses,omitempty"`
}

func (BootcampModel) TableName() string {
	return "bootcamps"
}

func (b *BootcampModel) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Website = strings.TrimSpace(b.Website)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.Address = strings.TrimSpace(b.Address)
	if b.Photo == "" {
		b.Photo = DefaultPhoto
	}
}
