package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"priming_backend/internals/constants"
)

const pgUniqueViolation = "23505"

// Unique constraints named by the initial migration.
const (
	ConstraintUserEmail     = "usuarios_correo_electronico_key"
	ConstraintEvaluatorCode = "evaluadores_codigo_key"
)

// TranslateDBError maps unique violations on the user email and evaluator
// code to their domain errors. AppErrors and unrelated errors pass through.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	switch {
	case pgErr.ConstraintName == ConstraintUserEmail || strings.Contains(pgErr.Detail, "(correo_electronico)="):
		return EmailExists()
	case pgErr.ConstraintName == ConstraintEvaluatorCode || strings.Contains(pgErr.Detail, "(codigo)="):
		e := CodeExists()
		if pgErr.Detail != "" {
			e = e.WithDetails(pgErr.Detail)
		}
		return e
	default:
		return Conflict(constants.CodeDuplicateRecord, "El registro ya existe")
	}
}
