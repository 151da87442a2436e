package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/constants"
)

// AppError is the single domain error type. Handlers return it and the
// central error handler renders it as {error, code, details}.
type AppError struct {
	Status  int
	Code    int
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode is the HTTP status the error renders with.
func (e *AppError) StatusCode() int { return e.Status }

func NewAppError(status, code int, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// WithDetails returns a copy carrying the given details.
func (e *AppError) WithDetails(details ...string) *AppError {
	cp := *e
	cp.Details = append([]string(nil), details...)
	return &cp
}

/* ===============================
   Constructors
=================================*/

func BadRequest(code int, message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, code, message)
}

func Unauthorized(code int, message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, code, message)
}

func Forbidden(code int, message string) *AppError {
	return NewAppError(fiber.StatusForbidden, code, message)
}

func NotFound(code int, message string) *AppError {
	return NewAppError(fiber.StatusNotFound, code, message)
}

func Conflict(code int, message string) *AppError {
	return NewAppError(fiber.StatusConflict, code, message)
}

// MissingData is the accumulated-validation failure.
func MissingData(message string, details ...string) *AppError {
	e := BadRequest(constants.CodeMissingData, message)
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

func InvalidEmail() *AppError {
	return BadRequest(constants.CodeInvalidEmail, "El formato del correo electrónico no es válido")
}

func InvalidPassword() *AppError {
	return BadRequest(constants.CodeInvalidPassword, "La contraseña debe tener al menos 6 caracteres, una letra mayúscula y un número")
}

func EmailExists() *AppError {
	return BadRequest(constants.CodeEmailExists, "El correo electrónico ya está registrado")
}

func CodeExists() *AppError {
	return BadRequest(constants.CodeCodeExists, "El código ya está registrado")
}

func NotEvaluator() *AppError {
	return BadRequest(constants.CodeNotEvaluator, "No tienes permisos de evaluador para realizar esta acción.")
}

func Internal(err error) *AppError {
	return &AppError{
		Status:  fiber.StatusInternalServerError,
		Code:    constants.CodeServerError,
		Message: "Ha ocurrido un error en el servidor",
		Err:     err,
	}
}
