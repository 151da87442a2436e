package middlewares

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/constants"
	helper "priming_backend/internals/helpers"
)

func call(t *testing.T, isProduction bool, h fiber.Handler) (int, helper.ErrorResponse) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(isProduction)})
	app.Use(RecoveryMiddleware())
	app.Get("/x", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body helper.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	status, body := call(t, false, func(c *fiber.Ctx) error {
		return helper.MissingData("Datos incompletos o inválidos", "El nombre es obligatorio")
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constants.CodeMissingData, body.Code)
	assert.Equal(t, []string{"El nombre es obligatorio"}, body.Details)
	assert.Empty(t, body.Stack)
}

func TestErrorHandlerTranslatesUniqueViolation(t *testing.T) {
	status, body := call(t, false, func(c *fiber.Ctx) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: helper.ConstraintUserEmail}
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constants.CodeEmailExists, body.Code)
}

func TestErrorHandlerUnknownErrorStackOnlyOutsideProduction(t *testing.T) {
	boom := func(c *fiber.Ctx) error { return errors.New("boom") }

	status, body := call(t, false, boom)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, constants.CodeServerError, body.Code)
	assert.NotEmpty(t, body.Stack)

	status, body = call(t, true, boom)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, constants.CodeServerError, body.Code)
	assert.Empty(t, body.Stack)
}

func TestErrorHandlerFiberError(t *testing.T) {
	status, body := call(t, true, func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, constants.CodeUserNotFound, body.Code)
}

func TestPanicBecomesServerError(t *testing.T) {
	status, body := call(t, true, func(c *fiber.Ctx) error {
		panic("kaboom")
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, constants.CodeServerError, body.Code)
}
