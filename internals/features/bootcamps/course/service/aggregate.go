package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecomputeAverageCost stores the mean course tuition of the bootcamp,
// rounded up to the next multiple of 10 (NULL without courses).
func RecomputeAverageCost(ctx context.Context, db *gorm.DB, bootcampID uuid.UUID) (*float64, error) {
	tx := db.WithContext(ctx)

	var row struct{ Avg *float64 }
	if err := tx.Raw(
		`SELECT AVG(tuition)::float8 AS avg FROM courses WHERE bootcamp_id = ?`,
		bootcampID,
	).Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("aggregate cost of bootcamp %s: %w", bootcampID, err)
	}

	var cost *float64
	if row.Avg != nil {
		v := math.Ceil(*row.Avg/10) * 10
		cost = &v
	}
	if err := tx.Exec(`UPDATE bootcamps SET average_cost = ? WHERE id = ?`, cost, bootcampID).Error; err != nil {
		return nil, fmt.Errorf("store cost of bootcamp %s: %w", bootcampID, err)
	}
	return cost, nil
}
