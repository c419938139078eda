package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is the outcome of an aggregation. Average is nil when there are
// no reviews left; the stored column is then NULL as well.
type Rating struct {
	Average *float64
	Count   int64
}

type ratingRow struct {
	Avg   *float64
	Count int64
}

// RecomputeAverageRating stores the mean rating of the course, then the
// mean over every review of the owning bootcamp. Running it twice yields
// the same values.
func RecomputeAverageRating(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (Rating, error) {
	tx := db.WithContext(ctx)

	var row ratingRow
	if err := tx.Raw(
		`SELECT AVG(rating)::float8 AS avg, COUNT(*) AS count FROM reviews WHERE course_id = ?`,
		courseID,
	).Scan(&row).Error; err != nil {
		return Rating{}, fmt.Errorf("aggregate course %s: %w", courseID, err)
	}
	if err := tx.Exec(`UPDATE courses SET average_rating = ? WHERE id = ?`, row.Avg, courseID).Error; err != nil {
		return Rating{}, fmt.Errorf("store course %s rating: %w", courseID, err)
	}

	var parent struct{ BootcampID uuid.UUID }
	res := tx.Raw(`SELECT bootcamp_id FROM courses WHERE id = ?`, courseID).Scan(&parent)
	switch {
	case res.Error != nil:
		return Rating{}, fmt.Errorf("load course %s: %w", courseID, res.Error)
	case res.RowsAffected == 0:
		// course removed concurrently; nothing to roll up
	default:
		if _, err := RecomputeBootcampRating(ctx, db, parent.BootcampID); err != nil {
			return Rating{}, err
		}
	}
	return Rating{Average: row.Avg, Count: row.Count}, nil
}

// RecomputeBootcampRating stores the mean over all reviews of all courses
// of the bootcamp.
func RecomputeBootcampRating(ctx context.Context, db *gorm.DB, bootcampID uuid.UUID) (Rating, error) {
	tx := db.WithContext(ctx)

	var row ratingRow
	if err := tx.Raw(
		`SELECT AVG(r.rating)::float8 AS avg, COUNT(r.id) AS count
		   FROM reviews r
		   JOIN courses c ON c.id = r.course_id
		  WHERE c.bootcamp_id = ?`,
		bootcampID,
	).Scan(&row).Error; err != nil {
		return Rating{}, fmt.Errorf("aggregate bootcamp %s: %w", bootcampID, err)
	}
	if err := tx.Exec(`UPDATE bootcamps SET average_rating = ? WHERE id = ?`, row.Avg, bootcampID).Error; err != nil {
		return Rating{}, fmt.Errorf("store bootcamp %s rating: %w", bootcampID, err)
	}
	return Rating{Average: row.Avg, Count: row.Count}, nil
}
