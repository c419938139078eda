package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/course/dto"
	"devcamper_backend/internals/features/bootcamps/course/model"
	"devcamper_backend/internals/features/bootcamps/course/repository"
	reviewService "devcamper_backend/internals/features/bootcamps/review/service"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

type CourseService struct {
	repo repository.Repository

	// refresh recomputes the bootcamp's denormalized fields after a write.
	refresh func(ctx context.Context, bootcampID uuid.UUID)
}

func NewCourseService(repo repository.Repository, db *gorm.DB) *CourseService {
	return &CourseService{
		repo: repo,
		refresh: func(ctx context.Context, bootcampID uuid.UUID) {
			RefreshBootcamp(ctx, db, bootcampID)
		},
	}
}

// RefreshBootcamp recomputes average cost and rating. Failures are logged
// only; the triggering write has already succeeded.
func RefreshBootcamp(ctx context.Context, db *gorm.DB, bootcampID uuid.UUID) {
	if _, err := RecomputeAverageCost(ctx, db, bootcampID); err != nil {
		log.Printf("[ERROR] recompute average cost: %v", err)
	}
	if _, err := reviewService.RecomputeBootcampRating(ctx, db, bootcampID); err != nil {
		log.Printf("[ERROR] recompute bootcamp rating: %v", err)
	}
}

func notFound(id uuid.UUID) error {
	return helper.NotFound(fmt.Sprintf("No course with the id of %s", id))
}

func (s *CourseService) ListByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]model.CourseModel, error) {
	return s.repo.ListByBootcamp(ctx, bootcampID)
}

func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	c, err := s.repo.FindDetailed(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	return c, err
}

// Create adds a course to a bootcamp owned by me (or any bootcamp for an
// admin).
func (s *CourseService) Create(ctx context.Context, me *helperAuth.Principal, bootcampID uuid.UUID, req dto.CreateCourseRequest) (*model.CourseModel, error) {
	owner, err := s.repo.BootcampOwner(ctx, bootcampID)
	if errors.Is(err, repository.ErrBootcampNotFound) {
		return nil, helper.NotFound(fmt.Sprintf("No bootcamp with the id of %s", bootcampID))
	}
	if err != nil {
		return nil, err
	}
	if !helperAuth.CanModify(me.ID, owner, me.Role) {
		return nil, helper.Forbidden(constants.OwnerError(me.ID.String(), "add a course to", "bootcamp"))
	}

	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	c := req.ToModel(bootcampID, me.ID)
	if err := helper.ValidateStruct(c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.refresh(ctx, bootcampID)
	return c, nil
}

func (s *CourseService) load(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, action string) (*model.CourseModel, error) {
	c, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	if !helperAuth.CanModify(me.ID, c.UserID, me.Role) {
		return nil, helper.Forbidden(constants.OwnerError(me.ID.String(), action, "course"))
	}
	return c, nil
}

func (s *CourseService) Update(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, error) {
	c, err := s.load(ctx, me, id, "update")
	if err != nil {
		return nil, err
	}
	cols := req.Apply(c)
	if len(cols) == 0 {
		return c, nil
	}
	if err := helper.ValidateStruct(c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c, cols...); err != nil {
		return nil, err
	}
	if req.TuitionChanged() {
		s.refresh(ctx, c.BootcampID)
	}
	return c, nil
}

func (s *CourseService) Delete(ctx context.Context, me *helperAuth.Principal, id uuid.UUID) error {
	c, err := s.load(ctx, me, id, "delete")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notFound(id)
		}
		return err
	}
	s.refresh(ctx, c.BootcampID)
	return nil
}
