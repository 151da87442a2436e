// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/constants"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Details []string `json:"details,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// StatusToErrorCode picks a numeric code for errors that did not carry one.
func StatusToErrorCode(status int) int {
	switch status {
	case fiber.StatusUnauthorized, fiber.StatusForbidden:
		return constants.CodeAccessDenied
	case fiber.StatusNotFound:
		return constants.CodeUserNotFound
	case fiber.StatusConflict:
		return constants.CodeDuplicateRecord
	default:
		if status >= 500 {
			return constants.CodeServerError
		}
		return constants.CodeMissingData
	}
}

// JsonError: error generic
func JsonError(c *fiber.Ctx, status, code int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{Error: message, Code: code})
}

// JsonAppError renders an AppError; stack is only attached when non-empty.
func JsonAppError(c *fiber.Ctx, e *AppError, stack string) error {
	return c.Status(e.Status).JSON(ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
		Stack:   stack,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK: resource-shaped body
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, extra fiber.Map) error {
	return JsonMessage(c, fiber.StatusCreated, message, extra)
}

// JsonMessage: {message, ...extra}
func JsonMessage(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
