package model

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devcamper_backend/internals/constants"
	helperAuth "devcamper_backend/internals/helpers/auth"
)

// UserModel maps the users table. Password and reset fields never leave
// the API.
type UserModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string         `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email               string         `gorm:"size:255;not null" json:"email" validate:"required,email,max=255"`
	Password            string         `gorm:"not null" json:"-"`
	Role                constants.Role `gorm:"type:varchar(20);not null;default:'user'" json:"role" validate:"required,oneof=user publisher admin"`
	ResetPasswordToken  *string        `gorm:"size:64" json:"-"`
	ResetPasswordExpire *time.Time     `json:"-"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// Normalize trims input and lower-cases the email.
func (u *UserModel) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

// SetPassword stores the bcrypt hash of plain.
func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *UserModel) MatchPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// NewResetToken returns a random token for the reset link and keeps only
// its sha256 on the user, valid for ttl.
func (u *UserModel) NewResetToken(ttl time.Duration) (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(buf)
	hashed := HashResetToken(raw)
	exp := time.Now().Add(ttl)
	u.ResetPasswordToken = &hashed
	u.ResetPasswordExpire = &exp
	return raw, nil
}

func (u *UserModel) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordExpire = nil
}

func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Principal is the request-scoped view of the user.
func (u *UserModel) Principal() *helperAuth.Principal {
	return &helperAuth.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
