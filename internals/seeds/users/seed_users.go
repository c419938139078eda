package users

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/users/user/model"
)

type UserSeed struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     string    `json:"role"`
}

func LoadUsers(filePath string) ([]UserSeed, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return inputs, nil
}

// ToModel hashes the password; ids are kept so the other seed files can
// reference the user.
func (s UserSeed) ToModel() (*model.UserModel, error) {
	role, ok := constants.ParseRole(s.Role)
	if !ok {
		return nil, fmt.Errorf("user %s: unknown role %q", s.Email, s.Role)
	}
	u := &model.UserModel{ID: s.ID, Name: s.Name, Email: s.Email, Role: role}
	u.Normalize()
	if err := u.SetPassword(s.Password); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedUsersFromJSON inserts every user of the file; existing ids are left
// untouched.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading users:", filePath)

	inputs, err := LoadUsers(filePath)
	if err != nil {
		return err
	}

	for _, data := range inputs {
		u, err := data.ToModel()
		if err != nil {
			return err
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(u)
		if res.Error != nil {
			return fmt.Errorf("insert user %s: %w", data.Email, res.Error)
		}
		if res.RowsAffected == 0 {
			log.Printf("ℹ️ user '%s' already exists, skipped", data.Email)
			continue
		}
		log.Printf("✅ inserted user '%s'", data.Email)
	}
	return nil
}
