package helper

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	MsgNotAuthorized = "Not authorized to access this route"
	MsgDuplicate     = "Duplicate field value entered"
	MsgServerError   = "Server Error"
)

// AppError carries the HTTP status a failure should be reported with.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func Unauthorized() *AppError {
	return NewAppError(fiber.StatusUnauthorized, MsgNotAuthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(fiber.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

// Internal hides err from the client; it is still logged by ErrorHandler.
func Internal(err error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: MsgServerError, Err: err}
}

// Classify maps any error returned by a handler to a status and a client
// message.
func Classify(err error) (int, string) {
	var (
		ae *AppError
		fe *fiber.Error
		ve validator.ValidationErrors
	)
	switch {
	case err == nil:
		return fiber.StatusOK, ""
	case errors.As(err, &ae):
		// a wrapped cause is never shown to the client
		if ae.Status >= fiber.StatusInternalServerError && ae.Err != nil {
			return ae.Status, MsgServerError
		}
		return ae.Status, ae.Message
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, FormatValidationErrors(ve)
	case IsUniqueViolation(err):
		return fiber.StatusBadRequest, MsgDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "Resource not found"
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	default:
		return fiber.StatusInternalServerError, MsgServerError
	}
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := Classify(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] rid=%v %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	}
	return JsonError(c, status, msg)
}
