package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/course/dto"
	"devcamper_backend/internals/features/bootcamps/course/model"
	"devcamper_backend/internals/features/bootcamps/course/repository"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

type memCourses struct {
	bootcamps map[uuid.UUID]uuid.UUID // bootcamp id -> owner
	rows      map[uuid.UUID]*model.CourseModel
}

func (m *memCourses) FindByID(_ context.Context, id uuid.UUID) (*model.CourseModel, error) {
	if c, ok := m.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memCourses) FindDetailed(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	return m.FindByID(ctx, id)
}

func (m *memCourses) ListByBootcamp(_ context.Context, bootcampID uuid.UUID) ([]model.CourseModel, error) {
	out := make([]model.CourseModel, 0)
	for _, c := range m.rows {
		if c.BootcampID == bootcampID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCourses) BootcampOwner(_ context.Context, bootcampID uuid.UUID) (uuid.UUID, error) {
	if owner, ok := m.bootcamps[bootcampID]; ok {
		return owner, nil
	}
	return uuid.Nil, repository.ErrBootcampNotFound
}

func (m *memCourses) Create(_ context.Context, c *model.CourseModel) error {
	c.ID = uuid.New()
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCourses) Update(_ context.Context, c *model.CourseModel, _ ...string) error {
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCourses) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

type fixture struct {
	svc       *CourseService
	repo      *memCourses
	refreshed []uuid.UUID
	owner     *helperAuth.Principal
	bootcamp  uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		owner:    &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher},
		bootcamp: uuid.New(),
	}
	f.repo = &memCourses{
		bootcamps: map[uuid.UUID]uuid.UUID{f.bootcamp: f.owner.ID},
		rows:      map[uuid.UUID]*model.CourseModel{},
	}
	f.svc = &CourseService{repo: f.repo, refresh: func(_ context.Context, id uuid.UUID) {
		f.refreshed = append(f.refreshed, id)
	}}
	return f
}

func statusOf(err error) int {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

func courseReq(tuition float64) dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Title:        "Front End Web Development",
		Description:  "HTML, CSS and JavaScript",
		Weeks:        "8",
		Tuition:      &tuition,
		MinimumSkill: "Beginner",
	}
}

func TestCreateCourse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.owner, f.bootcamp, courseReq(8000))
	require.NoError(t, err)
	assert.Equal(t, f.bootcamp, c.BootcampID)
	assert.Equal(t, f.owner.ID, c.UserID)
	assert.Equal(t, model.SkillBeginner, c.MinimumSkill)
	assert.Equal(t, []uuid.UUID{f.bootcamp}, f.refreshed)

	free, err := f.svc.Create(ctx, f.owner, f.bootcamp, courseReq(0))
	require.NoError(t, err)
	assert.Zero(t, free.Tuition)
}

func TestCreateCourse_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.owner, uuid.New(), courseReq(100))
	assert.Equal(t, 404, statusOf(err))

	stranger := &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher}
	_, err = f.svc.Create(ctx, stranger, f.bootcamp, courseReq(100))
	assert.Equal(t, 403, statusOf(err))

	admin := &helperAuth.Principal{ID: uuid.New(), Role: constants.RoleAdmin}
	_, err = f.svc.Create(ctx, admin, f.bootcamp, courseReq(100))
	assert.NoError(t, err)

	req := courseReq(100)
	req.Tuition = nil
	_, err = f.svc.Create(ctx, f.owner, f.bootcamp, req)
	assert.Equal(t, 400, statusOf(err))

	req = courseReq(100)
	req.MinimumSkill = "expert"
	_, err = f.svc.Create(ctx, f.owner, f.bootcamp, req)
	assert.Equal(t, 400, statusOf(err))

	_, err = f.svc.Create(ctx, f.owner, f.bootcamp, courseReq(-1))
	assert.Equal(t, 400, statusOf(err))
}

func TestUpdateCourse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.svc.Create(ctx, f.owner, f.bootcamp, courseReq(8000))
	require.NoError(t, err)
	f.refreshed = nil

	title := "Full Stack"
	updated, err := f.svc.Update(ctx, f.owner, c.ID, dto.UpdateCourseRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Full Stack", updated.Title)
	assert.Empty(t, f.refreshed, "title change leaves the cost alone")

	tuition := 12000.0
	_, err = f.svc.Update(ctx, f.owner, c.ID, dto.UpdateCourseRequest{Tuition: &tuition})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.bootcamp}, f.refreshed)

	other := &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher}
	_, err = f.svc.Update(ctx, other, c.ID, dto.UpdateCourseRequest{Title: &title})
	assert.Equal(t, 403, statusOf(err))

	_, err = f.svc.Update(ctx, f.owner, uuid.New(), dto.UpdateCourseRequest{Title: &title})
	assert.Equal(t, 404, statusOf(err))
}

func TestDeleteCourse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.svc.Create(ctx, f.owner, f.bootcamp, courseReq(8000))
	require.NoError(t, err)
	f.refreshed = nil

	other := &helperAuth.Principal{ID: uuid.New(), Role: constants.RoleUser}
	assert.Equal(t, 403, statusOf(f.svc.Delete(ctx, other, c.ID)))

	require.NoError(t, f.svc.Delete(ctx, f.owner, c.ID))
	assert.Equal(t, []uuid.UUID{f.bootcamp}, f.refreshed)
	assert.Equal(t, 404, statusOf(f.svc.Delete(ctx, f.owner, c.ID)))

	list, err := f.svc.ListByBootcamp(ctx, f.bootcamp)
	require.NoError(t, err)
	assert.Empty(t, list)
}
