package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devcamper_backend/internals/features/bootcamps/review/model"
	helper "devcamper_backend/internals/helpers"
)

func newMockRepo(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return New(db), mock
}

func TestCourseExists(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "courses" WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.CourseExists(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateReview(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_reviews_course_user"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.ReviewModel{
		Title: "t", Text: "x", Rating: 5, CourseID: uuid.New(), UserID: uuid.New(),
	})
	assert.True(t, helper.IsUniqueViolation(err))
	assert.Equal(t, "uq_reviews_course_user", helper.UniqueConstraint(err))
}

func TestFindDetailed_PreloadsCourse(t *testing.T) {
	repo, mock := newMockRepo(t)
	id, courseID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "rating", "course_id"}).
			AddRow(id.String(), "Great", 9, courseID.String()))
	mock.ExpectQuery(`SELECT "id","title","description" FROM "courses" WHERE "courses"."id" = \$1`).
		WithArgs(courseID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}).
			AddRow(courseID.String(), "Full Stack", "desc"))

	m, err := repo.FindDetailed(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, m.Course)
	assert.Equal(t, "Full Stack", m.Course.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Missing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reviews" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.True(t, IsNotFound(repo.Delete(context.Background(), uuid.New())))
	assert.NoError(t, mock.ExpectationsWereMet())
}
