package dto

import (
	"strings"

	"github.com/google/uuid"

	"devcamper_backend/internals/features/bootcamps/review/model"
)

type CreateReviewRequest struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func (r CreateReviewRequest) ToModel(courseID, userID uuid.UUID) *model.ReviewModel {
	return &model.ReviewModel{
		Title:    strings.TrimSpace(r.Title),
		Text:     r.Text,
		Rating:   r.Rating,
		CourseID: courseID,
		UserID:   userID,
	}
}

type UpdateReviewRequest struct {
	Title  *string `json:"title"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// Apply copies the set fields onto m and returns the changed columns.
func (r UpdateReviewRequest) Apply(m *model.ReviewModel) []string {
	var cols []string
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
		cols = append(cols, "title")
	}
	if r.Text != nil {
		m.Text = *r.Text
		cols = append(cols, "text")
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
		cols = append(cols, "rating")
	}
	return cols
}

// RatingChanged reports whether the update can move the course average.
func (r UpdateReviewRequest) RatingChanged() bool {
	return r.Rating != nil
}
