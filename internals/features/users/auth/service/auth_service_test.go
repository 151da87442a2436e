package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/users/auth/dto"
	authHelper "priming_backend/internals/features/users/auth/helper"
	userDto "priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
	"priming_backend/internals/helpers/dbtest"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	db, mock := dbtest.New(t)
	svc := NewAuthService(db,
		authHelper.NewPasswordHasher(4),
		authHelper.NewTokenService("test-secret", time.Hour))
	return svc, mock
}

func appErr(t *testing.T, err error) *helper.AppError {
	t.Helper()
	var e *helper.AppError
	require.ErrorAs(t, err, &e)
	return e
}

func intPtr(i int) *int { return &i }

func evaluatorRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		RegisterBase: dto.RegisterBase{
			Name:     "Marta Ruiz",
			Email:    "marta@uni.edu.co",
			Password: "Clave123",
			Role:     constants.RoleEvaluator,
		},
		EvaluatorFields: userDto.EvaluatorFields{
			Code:         "EV-001",
			Kind:         constants.EvaluatorDocente,
			DocumentType: "CC",
		},
	}
}

func childRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		RegisterBase: dto.RegisterBase{
			Name:     "Tomás",
			Email:    "tomas@colegio.co",
			Password: "Juego123",
			Role:     constants.RoleChild,
		},
		ChildFields: userDto.ChildFields{
			Age:    intPtr(6),
			Grade:  intPtr(0),
			School: "San José",
			Shift:  constants.ShiftMorning,
		},
	}
}

func TestRegisterExistingEmailNeverInserts(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(true))

	_, err := svc.Register(context.Background(), childRequest())
	e := appErr(t, err)
	assert.Equal(t, constants.CodeEmailExists, e.Code)
	assert.Equal(t, 400, e.Status)
}

func TestRegisterDuplicateCodeRollsBackUser(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM evaluadores`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(11))
	mock.ExpectQuery(`INSERT INTO "evaluadores"`).WillReturnError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: helper.ConstraintEvaluatorCode,
		Detail:         "Ya existe la llave (codigo)=(EV-001).",
	})
	mock.ExpectRollback()

	_, err := svc.Register(context.Background(), evaluatorRequest())
	e := appErr(t, err)
	assert.Equal(t, constants.CodeCodeExists, e.Code)
	assert.Equal(t, []string{"Ya existe la llave (codigo)=(EV-001)."}, e.Details)
}

func TestRegisterDuplicateCodePrecheck(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM evaluadores`).WillReturnRows(dbtest.Exists(true))

	_, err := svc.Register(context.Background(), evaluatorRequest())
	assert.Equal(t, constants.CodeCodeExists, appErr(t, err).Code)
}

func TestRegisterChildCommits(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(8))
	mock.ExpectQuery(`INSERT INTO "ninos"`).WillReturnRows(dbtest.ID(3))
	mock.ExpectCommit()

	id, err := svc.Register(context.Background(), childRequest())
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := childRequest()
	req.Email = "sin-arroba"
	_, err := svc.Register(ctx, req)
	assert.Equal(t, constants.CodeInvalidEmail, appErr(t, err).Code)

	req = childRequest()
	req.Password = "debil"
	_, err = svc.Register(ctx, req)
	assert.Equal(t, constants.CodeInvalidPassword, appErr(t, err).Code)

	// presence and range problems are reported together
	req = childRequest()
	req.ChildFields = userDto.ChildFields{Age: intPtr(9), Shift: "noche"}
	_, err = svc.Register(ctx, req)
	e := appErr(t, err)
	assert.Equal(t, constants.CodeMissingData, e.Code)
	assert.Len(t, e.Details, 4)

	req = evaluatorRequest()
	req.Role = "invitado"
	_, err = svc.Register(ctx, req)
	e = appErr(t, err)
	assert.Equal(t, constants.CodeMissingData, e.Code)
	assert.Equal(t, []string{userDto.FieldMessages["tipo_usuario"]}, e.Details)
}

func loginRows(t *testing.T, svc *AuthService, password, role string) *sqlmock.Rows {
	hash, err := svc.Hasher.Hash(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "nombre", "correo_electronico", "contrasena", "tipo_usuario"}).
		AddRow(5, "Marta", "marta@uni.edu.co", hash, role)
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(loginRows(t, svc, "Clave123", constants.RoleEvaluator))

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "marta@uni.edu.co", Password: "Clave123"})
	require.NoError(t, err)
	assert.Equal(t, 5, res.User.ID)

	claims, err := svc.Tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, 5, claims.ID)
	assert.Equal(t, constants.RoleEvaluator, claims.Role)
}

func TestLoginLegacyAdminRole(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(loginRows(t, svc, "Clave123", "administrador"))

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "marta@uni.edu.co", Password: "Clave123"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, res.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(loginRows(t, svc, "Clave123", constants.RoleEvaluator))

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "marta@uni.edu.co", Password: "Otra4567"})
	assert.Nil(t, res)
	e := appErr(t, err)
	assert.Equal(t, constants.CodeWrongPassword, e.Code)
	assert.Equal(t, 401, e.Status)
}

func TestLoginUnknownAndMissing(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.co", Password: "Clave123"})
	e := appErr(t, err)
	assert.Equal(t, constants.CodeUserNotFound, e.Code)
	assert.Equal(t, 401, e.Status)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "  "})
	e = appErr(t, err)
	assert.Equal(t, constants.CodeMissingCredentials, e.Code)
	assert.Equal(t, 400, e.Status)
}
