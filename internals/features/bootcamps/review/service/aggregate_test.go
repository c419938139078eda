package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, mock
}

func expectCourseRating(mock sqlmock.Sqlmock, courseID uuid.UUID, avg any, count int64) {
	mock.ExpectQuery(`SELECT AVG\(rating\)::float8 AS avg, COUNT\(\*\) AS count FROM reviews WHERE course_id = \$1`).
		WithArgs(courseID).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(avg, count))
	mock.ExpectExec(`UPDATE courses SET average_rating = \$1 WHERE id = \$2`).
		WithArgs(avg, courseID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func expectBootcampRating(mock sqlmock.Sqlmock, courseID, bootcampID uuid.UUID, avg any, count int64) {
	mock.ExpectQuery(`SELECT bootcamp_id FROM courses WHERE id = \$1`).
		WithArgs(courseID).
		WillReturnRows(sqlmock.NewRows([]string{"bootcamp_id"}).AddRow(bootcampID.String()))
	mock.ExpectQuery(`SELECT AVG\(r.rating\)::float8 AS avg, COUNT\(r.id\) AS count\s+FROM reviews r\s+JOIN courses c ON c.id = r.course_id\s+WHERE c.bootcamp_id = \$1`).
		WithArgs(bootcampID).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(avg, count))
	mock.ExpectExec(`UPDATE bootcamps SET average_rating = \$1 WHERE id = \$2`).
		WithArgs(avg, bootcampID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestRecomputeAverageRating(t *testing.T) {
	db, mock := newMockGorm(t)
	courseID, bootcampID := uuid.New(), uuid.New()

	expectCourseRating(mock, courseID, 7.5, 2)
	expectBootcampRating(mock, courseID, bootcampID, 6.0, 5)

	r, err := RecomputeAverageRating(context.Background(), db, courseID)
	require.NoError(t, err)
	require.NotNil(t, r.Average)
	assert.Equal(t, 7.5, *r.Average)
	assert.Equal(t, int64(2), r.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAverageRating_NoReviewsStoresNull(t *testing.T) {
	db, mock := newMockGorm(t)
	courseID, bootcampID := uuid.New(), uuid.New()

	expectCourseRating(mock, courseID, nil, 0)
	expectBootcampRating(mock, courseID, bootcampID, nil, 0)

	r, err := RecomputeAverageRating(context.Background(), db, courseID)
	require.NoError(t, err)
	assert.Nil(t, r.Average)
	assert.Zero(t, r.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAverageRating_Idempotent(t *testing.T) {
	db, mock := newMockGorm(t)
	courseID, bootcampID := uuid.New(), uuid.New()

	for i := 0; i < 2; i++ {
		expectCourseRating(mock, courseID, 8.0, 3)
		expectBootcampRating(mock, courseID, bootcampID, 8.0, 3)
	}

	first, err := RecomputeAverageRating(context.Background(), db, courseID)
	require.NoError(t, err)
	second, err := RecomputeAverageRating(context.Background(), db, courseID)
	require.NoError(t, err)
	assert.Equal(t, *first.Average, *second.Average)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAverageRating_CourseGone(t *testing.T) {
	db, mock := newMockGorm(t)
	courseID := uuid.New()

	expectCourseRating(mock, courseID, nil, 0)
	mock.ExpectQuery(`SELECT bootcamp_id FROM courses WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"bootcamp_id"}))

	_, err := RecomputeAverageRating(context.Background(), db, courseID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
