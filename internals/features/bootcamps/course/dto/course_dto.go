package dto

import (
	"github.com/google/uuid"

	"devcamper_backend/internals/features/bootcamps/course/model"
)

type CreateCourseRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Weeks                string   `json:"weeks"`
	Tuition              *float64 `json:"tuition" validate:"required"`
	MinimumSkill         string   `json:"minimumSkill"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable"`
}

func (r CreateCourseRequest) ToModel(bootcampID, userID uuid.UUID) *model.CourseModel {
	c := &model.CourseModel{
		Title:                r.Title,
		Description:          r.Description,
		Weeks:                r.Weeks,
		MinimumSkill:         r.MinimumSkill,
		ScholarshipAvailable: r.ScholarshipAvailable,
		BootcampID:           bootcampID,
		UserID:               userID,
	}
	if r.Tuition != nil {
		c.Tuition = *r.Tuition
	}
	c.Normalize()
	return c
}

type UpdateCourseRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *string  `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimumSkill"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

func (r UpdateCourseRequest) Apply(c *model.CourseModel) []string {
	var cols []string
	if r.Title != nil {
		c.Title = *r.Title
		cols = append(cols, "title")
	}
	if r.Description != nil {
		c.Description = *r.Description
		cols = append(cols, "description")
	}
	if r.Weeks != nil {
		c.Weeks = *r.Weeks
		cols = append(cols, "weeks")
	}
	if r.Tuition != nil {
		c.Tuition = *r.Tuition
		cols = append(cols, "tuition")
	}
	if r.MinimumSkill != nil {
		c.MinimumSkill = *r.MinimumSkill
		cols = append(cols, "minimum_skill")
	}
	if r.ScholarshipAvailable != nil {
		c.ScholarshipAvailable = *r.ScholarshipAvailable
		cols = append(cols, "scholarship_available")
	}
	c.Normalize()
	return cols
}

// TuitionChanged reports whether the update can move the bootcamp's
// average cost.
func (r UpdateCourseRequest) TuitionChanged() bool {
	return r.Tuition != nil
}
