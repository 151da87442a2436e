package helper

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"priming_backend/internals/constants"
)

func TestTranslateDBError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		status   int
	}{
		{
			name:     "email constraint",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: ConstraintUserEmail},
			wantCode: constants.CodeEmailExists,
			status:   fiber.StatusBadRequest,
		},
		{
			name:     "evaluator code by detail",
			err:      &pgconn.PgError{Code: "23505", Detail: "Ya existe la llave (codigo)=(DOC001)."},
			wantCode: constants.CodeCodeExists,
			status:   fiber.StatusBadRequest,
		},
		{
			name:     "other unique",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "progreso_juego_usuario_juego_nivel_key"},
			wantCode: constants.CodeDuplicateRecord,
			status:   fiber.StatusConflict,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var appErr *AppError
			require.ErrorAs(t, TranslateDBError(tc.err), &appErr)
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.status, appErr.Status)
		})
	}
}

func TestTranslateDBErrorPassThrough(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, TranslateDBError(plain))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(fk), TranslateDBError(fk))

	app := NotEvaluator()
	assert.Same(t, app, TranslateDBError(app))
}

func TestWithTxRollsBackAndTranslates(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO evaluadores`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintEvaluatorCode})
	mock.ExpectRollback()

	err = WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO evaluadores (codigo) VALUES (?)`, "DOC001").Error
	})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, constants.CodeCodeExists, appErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxCommits(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE encuestas`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Exec(`UPDATE encuestas SET num_intentos = num_intentos + 1 WHERE id = ?`, 3).Error
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

type sampleBody struct {
	Nombre string `json:"nombre" validate:"required"`
	Edad   *int   `json:"edad" validate:"required,min=5,max=7"`
}

func TestValidateStructAccumulatesInFieldOrder(t *testing.T) {
	msgs := map[string]string{
		"nombre": "El nombre es obligatorio",
		"edad":   "La edad debe estar entre 5 y 7 años",
	}
	nine := 9
	details := ValidateStruct(sampleBody{Edad: &nine}, msgs)
	assert.Equal(t, []string{"El nombre es obligatorio", "La edad debe estar entre 5 y 7 años"}, details)

	six := 6
	assert.Empty(t, ValidateStruct(sampleBody{Nombre: "Ana", Edad: &six}, msgs))
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/x/:id", func(c *fiber.Ctx) error {
		id, err := ParamID(c, "id")
		if err != nil {
			var appErr *AppError
			if errors.As(err, &appErr) {
				return JsonAppError(c, appErr, "")
			}
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x/12", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/x/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
