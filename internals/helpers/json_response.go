package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelopes
=================================*/

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JsonError writes {success:false, error}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: message})
}

// JsonOK: GET detail, PUT, DELETE
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonCreated: POST
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonList: plain (non paginated) list
func JsonList(c *fiber.Ctx, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// JsonPaged: list with total + next/prev
func JsonPaged(c *fiber.Ctx, data any, count int, total int64, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"count":      count,
		"total":      total,
		"pagination": p,
		"data":       data,
	})
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusUnauthorized:
		return MsgNotAuthorized
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Resource not found"
	default:
		return MsgServerError
	}
}
