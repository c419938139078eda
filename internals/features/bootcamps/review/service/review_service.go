package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/review/dto"
	"devcamper_backend/internals/features/bootcamps/review/model"
	"devcamper_backend/internals/features/bootcamps/review/repository"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

const (
	MsgAlreadyReviewed = "User has already reviewed this course"
	uniqueReviewIndex  = "uq_reviews_course_user"
)

type ReviewService struct {
	repo repository.Repository

	// refresh recomputes the course and bootcamp ratings after a write.
	refresh func(ctx context.Context, courseID uuid.UUID)
}

func NewReviewService(repo repository.Repository, db *gorm.DB) *ReviewService {
	return &ReviewService{
		repo: repo,
		refresh: func(ctx context.Context, courseID uuid.UUID) {
			if _, err := RecomputeAverageRating(ctx, db, courseID); err != nil {
				log.Printf("[ERROR] recompute average rating: %v", err)
			}
		},
	}
}

func notFound(id uuid.UUID) error {
	return helper.NotFound(fmt.Sprintf("No review found with the id of %s", id))
}

func (s *ReviewService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.ReviewModel, error) {
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*model.ReviewModel, error) {
	m, err := s.repo.FindDetailed(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	return m, err
}

func (s *ReviewService) Create(ctx context.Context, me *helperAuth.Principal, courseID uuid.UUID, req dto.CreateReviewRequest) (*model.ReviewModel, error) {
	ok, err := s.repo.CourseExists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.NotFound(fmt.Sprintf("No course with the id of %s", courseID))
	}

	m := req.ToModel(courseID, me.ID)
	if err := helper.ValidateStruct(m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			if c := helper.UniqueConstraint(err); c == "" || c == uniqueReviewIndex {
				return nil, helper.BadRequest(MsgAlreadyReviewed)
			}
		}
		return nil, err
	}
	s.refresh(ctx, courseID)
	return m, nil
}

func (s *ReviewService) load(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, action string) (*model.ReviewModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	if !helperAuth.CanModify(me.ID, m.UserID, me.Role) {
		return nil, helper.Forbidden(constants.OwnerError(me.ID.String(), action, "review"))
	}
	return m, nil
}

func (s *ReviewService) Update(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, req dto.UpdateReviewRequest) (*model.ReviewModel, error) {
	m, err := s.load(ctx, me, id, "update")
	if err != nil {
		return nil, err
	}
	cols := req.Apply(m)
	if len(cols) == 0 {
		return m, nil
	}
	if err := helper.ValidateStruct(m); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m, cols...); err != nil {
		return nil, err
	}
	if req.RatingChanged() {
		s.refresh(ctx, m.CourseID)
	}
	return m, nil
}

func (s *ReviewService) Delete(ctx context.Context, me *helperAuth.Principal, id uuid.UUID) error {
	m, err := s.load(ctx, me, id, "delete")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notFound(id)
		}
		return err
	}
	s.refresh(ctx, m.CourseID)
	return nil
}
