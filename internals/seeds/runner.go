package seeds

import (
	"context"
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"devcamper_backend/internals/seeds/bootcamps"
	"devcamper_backend/internals/seeds/users"
)

// RunAllSeeds imports the sample data under dir (users first, the
// bootcamps reference them).
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string) error {
	//* Users
	if err := users.SeedUsersFromJSON(db.WithContext(ctx), filepath.Join(dir, "users", "data_users.json")); err != nil {
		return err
	}

	//* Bootcamps, courses, reviews
	return bootcamps.SeedFromJSON(ctx, db, filepath.Join(dir, "bootcamps"))
}

// DestroyAll wipes every table the seeder writes, users included.
func DestroyAll(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"reviews", "courses", "bootcamps", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		log.Println("🗑️ all data destroyed")
	}
	return err
}
