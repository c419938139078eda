package events

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// PasswordResetRequested is consumed by the mailer, which sends ResetURL
// to Email.
type PasswordResetRequested struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	ResetURL  string    `json:"resetUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Publisher interface {
	PublishPasswordReset(ctx context.Context, evt PasswordResetRequested) error
	Close() error
}

// LogPublisher is used when KAFKA_BROKERS is empty.
type LogPublisher struct{}

func (LogPublisher) PublishPasswordReset(_ context.Context, evt PasswordResetRequested) error {
	log.Printf("[INFO] password reset requested user=%s email=%s url=%s", evt.UserID, evt.Email, evt.ResetURL)
	return nil
}

func (LogPublisher) Close() error { return nil }
