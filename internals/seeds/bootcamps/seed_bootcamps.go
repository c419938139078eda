package bootcamps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bootcampModel "devcamper_backend/internals/features/bootcamps/bootcamp/model"
	courseModel "devcamper_backend/internals/features/bootcamps/course/model"
	courseService "devcamper_backend/internals/features/bootcamps/course/service"
	reviewModel "devcamper_backend/internals/features/bootcamps/review/model"
	reviewService "devcamper_backend/internals/features/bootcamps/review/service"
	helper "devcamper_backend/internals/helpers"
)

// Data is one consistent set of bootcamps, their courses and reviews.
type Data struct {
	Bootcamps []bootcampModel.BootcampModel
	Courses   []courseModel.CourseModel
	Reviews   []reviewModel.ReviewModel
}

func readJSON(path string, dst any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(file, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Load reads data_bootcamps.json, data_courses.json and data_reviews.json
// from dir and normalizes every row the way the API would.
func Load(dir string) (*Data, error) {
	var d Data
	if err := readJSON(filepath.Join(dir, "data_bootcamps.json"), &d.Bootcamps); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "data_courses.json"), &d.Courses); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "data_reviews.json"), &d.Reviews); err != nil {
		return nil, err
	}

	for i := range d.Bootcamps {
		b := &d.Bootcamps[i]
		b.Normalize()
		b.Slug = helper.Slugify(b.Name)
		b.AverageCost, b.AverageRating = nil, nil
	}
	for i := range d.Courses {
		d.Courses[i].Normalize()
		d.Courses[i].AverageRating = nil
	}
	return &d, nil
}

// Validate checks every row and every reference inside the set.
func (d *Data) Validate() error {
	bootcamps := map[uuid.UUID]bool{}
	for i := range d.Bootcamps {
		if err := helper.ValidateStruct(&d.Bootcamps[i]); err != nil {
			return fmt.Errorf("bootcamp %s: %w", d.Bootcamps[i].Name, err)
		}
		bootcamps[d.Bootcamps[i].ID] = true
	}

	courses := map[uuid.UUID]bool{}
	for i := range d.Courses {
		c := &d.Courses[i]
		if err := helper.ValidateStruct(c); err != nil {
			return fmt.Errorf("course %s: %w", c.Title, err)
		}
		if !bootcamps[c.BootcampID] {
			return fmt.Errorf("course %s: unknown bootcamp %s", c.Title, c.BootcampID)
		}
		courses[c.ID] = true
	}

	type pair struct{ course, user uuid.UUID }
	seen := map[pair]bool{}
	for i := range d.Reviews {
		r := &d.Reviews[i]
		if err := helper.ValidateStruct(r); err != nil {
			return fmt.Errorf("review %s: %w", r.Title, err)
		}
		if !courses[r.CourseID] {
			return fmt.Errorf("review %s: unknown course %s", r.Title, r.CourseID)
		}
		key := pair{r.CourseID, r.UserID}
		if seen[key] {
			return fmt.Errorf("review %s: user %s reviewed course %s twice", r.Title, r.UserID, r.CourseID)
		}
		seen[key] = true
	}
	return nil
}

// SeedFromJSON inserts the set (existing ids are skipped) and recomputes
// the denormalized averages of every seeded bootcamp.
func SeedFromJSON(ctx context.Context, db *gorm.DB, dir string) error {
	log.Println("📥 Reading bootcamp data:", dir)

	d, err := Load(dir)
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Session(&gorm.Session{})
		if len(d.Bootcamps) > 0 {
			if err := insert.Create(&d.Bootcamps).Error; err != nil {
				return fmt.Errorf("insert bootcamps: %w", err)
			}
		}
		if len(d.Courses) > 0 {
			if err := insert.Create(&d.Courses).Error; err != nil {
				return fmt.Errorf("insert courses: %w", err)
			}
		}
		if len(d.Reviews) > 0 {
			if err := insert.Create(&d.Reviews).Error; err != nil {
				return fmt.Errorf("insert reviews: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, c := range d.Courses {
		if _, err := reviewService.RecomputeAverageRating(ctx, db, c.ID); err != nil {
			return err
		}
	}
	for _, b := range d.Bootcamps {
		if _, err := courseService.RecomputeAverageCost(ctx, db, b.ID); err != nil {
			return err
		}
	}
	log.Printf("✅ seeded %d bootcamps, %d courses, %d reviews", len(d.Bootcamps), len(d.Courses), len(d.Reviews))
	return nil
}
