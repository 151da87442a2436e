package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/evaluations/evaluator/dto"
	authHelper "priming_backend/internals/features/users/auth/helper"
	userDto "priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
	"priming_backend/internals/helpers/dbtest"
)

const assignedSQL = `SELECT n.usuario_id\s+FROM encuestas e`

func newService(t *testing.T) (*EvaluatorService, sqlmock.Sqlmock) {
	db, mock := dbtest.New(t)
	return NewEvaluatorService(db, authHelper.NewPasswordHasher(4)), mock
}

func appErr(t *testing.T, err error) *helper.AppError {
	t.Helper()
	var e *helper.AppError
	require.ErrorAs(t, err, &e)
	return e
}

func intPtr(i int) *int        { return &i }
func strPtr(s string) *string { return &s }

func assignRequest() dto.AssignChildRequest {
	return dto.AssignChildRequest{
		Name:     " Sofía Gómez ",
		Email:    "sofia@colegio.co",
		Password: "Juego123",
		ChildFields: userDto.ChildFields{
			Age:    intPtr(6),
			Grade:  intPtr(0),
			School: "San José",
			Shift:  "mañana",
		},
	}
}

func expectEvaluator(mock sqlmock.Sqlmock, found bool) {
	rows := sqlmock.NewRows([]string{"id", "usuario_id", "codigo", "tipo", "tipo_documento", "nombre"})
	if found {
		rows.AddRow(3, 2, "EV-01", "Docente", "CC", "Laura")
	}
	mock.ExpectQuery(`SELECT \* FROM "evaluadores" WHERE usuario_id = `).WillReturnRows(rows)
}

func TestAssignChildCreatesUserProfileAndSurvey(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(12))
	mock.ExpectQuery(`INSERT INTO "ninos"`).WillReturnRows(dbtest.ID(5))
	expectEvaluator(mock, true)
	mock.ExpectQuery(`INSERT INTO "encuestas"`).WillReturnRows(dbtest.ID(40))
	mock.ExpectCommit()

	surveyID, err := svc.AssignChild(context.Background(), 2, assignRequest())
	require.NoError(t, err)
	assert.Equal(t, 40, surveyID)
}

func TestAssignChildWithoutEvaluatorRowRollsBack(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(12))
	mock.ExpectQuery(`INSERT INTO "ninos"`).WillReturnRows(dbtest.ID(5))
	expectEvaluator(mock, false)
	mock.ExpectRollback()

	_, err := svc.AssignChild(context.Background(), 1, assignRequest())
	assert.Equal(t, constants.CodeNotEvaluator, appErr(t, err).Code)
}

func TestAssignChildExistingEmail(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(true))

	_, err := svc.AssignChild(context.Background(), 2, assignRequest())
	assert.Equal(t, constants.CodeEmailExists, appErr(t, err).Code)
}

func TestAssignChildValidation(t *testing.T) {
	svc, _ := newService(t)

	req := assignRequest()
	req.Email = "sofia@"
	_, err := svc.AssignChild(context.Background(), 2, req)
	assert.Equal(t, constants.CodeInvalidEmail, appErr(t, err).Code)

	req = assignRequest()
	req.Password = "juego"
	_, err = svc.AssignChild(context.Background(), 2, req)
	assert.Equal(t, constants.CodeInvalidPassword, appErr(t, err).Code)

	req = assignRequest()
	req.Age = intPtr(9)
	req.Shift = "noche"
	_, err = svc.AssignChild(context.Background(), 2, req)
	e := appErr(t, err)
	assert.Equal(t, constants.CodeMissingData, e.Code)
	assert.Equal(t, []string{
		userDto.FieldMessages["edad"],
		userDto.FieldMessages["jornada"],
	}, e.Details)
}

func TestChildResultsOfUnassignedChild(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}))

	_, err := svc.ChildResults(context.Background(), 2, 5)
	e := appErr(t, err)
	assert.Equal(t, 403, e.Status)
	assert.Equal(t, constants.CodeAccessDenied, e.Code)
}

func TestChildResultsAssemblesChildSurveysProgress(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}).AddRow(12))
	mock.ExpectQuery(`FROM ninos n\s+JOIN usuarios u`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "nombre", "correo_electronico", "edad", "grado", "colegio", "jornada"}).
			AddRow(5, "Sofía", "sofia@colegio.co", 6, 0, "San José", "mañana"))
	mock.ExpectQuery(`SELECT e.id, e.fecha`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "num_intentos"}).AddRow(40, 2))
	mock.ExpectQuery(`FROM progreso_juego AS pg JOIN ninos n`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "juego_id", "nivel_id", "completado"}).AddRow(1, 1, 1, true))

	out, err := svc.ChildResults(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "Sofía", out.Child.Name)
	require.Len(t, out.Surveys, 1)
	assert.Equal(t, 2, out.Surveys[0].Attempts)
	require.Len(t, out.Progress, 1)
	assert.True(t, out.Progress[0].Completed)
}

func TestEditChildPatchesUserAndProfile(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}).AddRow(12))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios WHERE correo_electronico = .* AND id <> `).
		WillReturnRows(dbtest.Exists(false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "usuarios" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "ninos" SET "grado"=`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.EditChild(context.Background(), 2, 5, dto.EditChildRequest{
		Email: strPtr(" nueva@colegio.co "),
		Grade: intPtr(-1),
	})
	require.NoError(t, err)
}

func TestEditChildEmailTaken(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}).AddRow(12))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM usuarios`).WillReturnRows(dbtest.Exists(true))

	err := svc.EditChild(context.Background(), 2, 5, dto.EditChildRequest{Email: strPtr("otro@colegio.co")})
	assert.Equal(t, constants.CodeEmailExists, appErr(t, err).Code)
}

func TestEditChildRejectsOutOfRangeGrade(t *testing.T) {
	svc, _ := newService(t)

	err := svc.EditChild(context.Background(), 2, 5, dto.EditChildRequest{Grade: intPtr(3)})
	e := appErr(t, err)
	assert.Equal(t, constants.CodeMissingData, e.Code)
	assert.Equal(t, []string{userDto.FieldMessages["grado"]}, e.Details)
}

func TestChangeChildPassword(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}).AddRow(12))
	mock.ExpectExec(`UPDATE "usuarios" SET "contrasena"=`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.ChangeChildPassword(context.Background(), 2, 5, userDto.ChangePasswordRequest{Password: "Nueva123"})
	require.NoError(t, err)
}

func TestChangeChildPasswordOfUnassignedChild(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(assignedSQL).WillReturnRows(sqlmock.NewRows([]string{"usuario_id"}))

	err := svc.ChangeChildPassword(context.Background(), 2, 5, userDto.ChangePasswordRequest{Password: "Nueva123"})
	assert.Equal(t, 403, appErr(t, err).Status)
}

func TestStatistics(t *testing.T) {
	svc, mock := newService(t)

	expectEvaluator(mock, true)
	mock.ExpectQuery(`COUNT\(DISTINCT nino_id\) AS total_ninos`).WillReturnRows(
		sqlmock.NewRows([]string{"total_ninos", "total_encuestas"}).AddRow(3, 5))
	mock.ExpectQuery(`GROUP BY n.edad`).WillReturnRows(
		sqlmock.NewRows([]string{"edad", "cantidad"}).AddRow(5, 2).AddRow(6, 3))
	mock.ExpectQuery(`GROUP BY n.grado`).WillReturnRows(
		sqlmock.NewRows([]string{"grado", "cantidad"}).AddRow(0, 5))
	mock.ExpectQuery(`GROUP BY n.colegio\s+ORDER BY cantidad DESC`).WillReturnRows(
		sqlmock.NewRows([]string{"colegio", "cantidad"}).AddRow("San José", 4).AddRow("La Salle", 1))

	out, err := svc.Statistics(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalChildren)
	assert.Equal(t, int64(5), out.TotalSurveys)
	assert.Len(t, out.Ages, 2)
	assert.Equal(t, "San José", out.Schools[0].School)
}

func TestStatisticsForAdminWithoutEvaluatorRow(t *testing.T) {
	svc, mock := newService(t)

	expectEvaluator(mock, false)

	_, err := svc.Statistics(context.Background(), 1)
	assert.Equal(t, constants.CodeNotEvaluator, appErr(t, err).Code)
}
