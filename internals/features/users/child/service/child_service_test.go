package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/constants"
	progressService "priming_backend/internals/features/games/progress/service"
	helper "priming_backend/internals/helpers"
	"priming_backend/internals/helpers/dbtest"
)

func newService(t *testing.T) (*ChildService, sqlmock.Sqlmock) {
	db, mock := dbtest.New(t)
	return NewChildService(db, progressService.NewProgressService(db)), mock
}

func expectUser(mock sqlmock.Sqlmock, role string) {
	mock.ExpectQuery(`SELECT \* FROM "usuarios"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "nombre", "correo_electronico", "tipo_usuario"}).
			AddRow(9, "Sofía", "sofia@x.com", role))
}

func TestProfileJoinsChildRow(t *testing.T) {
	svc, mock := newService(t)

	expectUser(mock, constants.RoleChild)
	mock.ExpectQuery(`SELECT \* FROM "ninos"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "usuario_id", "edad", "grado", "colegio", "jornada"}).
			AddRow(4, 9, 6, 1, "San José", "mañana"))

	profile, err := svc.Profile(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, profile.ChildData)
	assert.Equal(t, 4, profile.ChildID)
	assert.Equal(t, "San José", profile.School)
	assert.Nil(t, profile.EvaluatorData)
}

func TestProfileWithoutChildRow(t *testing.T) {
	svc, mock := newService(t)

	expectUser(mock, constants.RoleChild)
	mock.ExpectQuery(`SELECT \* FROM "ninos"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Profile(context.Background(), 9)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, constants.CodeUserNotFound, appErr.Code)
}

func TestOverviewEmptyProgressIsArray(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(`SELECT .* FROM "juegos"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "nombre", "descripcion"}).AddRow(1, "Sonidos", nil))
	mock.ExpectQuery(`FROM "niveles"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "juego_id", "nombre"}).AddRow(1, 1, "Nivel 1").AddRow(2, 1, "Nivel 2"))
	mock.ExpectQuery(`FROM "progreso_juego"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	out, err := svc.Overview(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, out.Games, 1)
	assert.Len(t, out.Levels, 2)
	assert.NotNil(t, out.Progress)
	assert.Empty(t, out.Progress)
}

func TestStatisticsAggregates(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()

	mock.ExpectQuery(`FROM usuarios u\s+JOIN ninos n`).WillReturnRows(
		sqlmock.NewRows([]string{"nombre", "edad", "grado", "colegio", "jornada"}).
			AddRow("Sofía", 6, 1, "San José", "mañana"))
	mock.ExpectQuery(`AS total_juegos`).WillReturnRows(
		sqlmock.NewRows([]string{"total_juegos", "total_niveles", "niveles_completados",
			"puntuacion_total", "tiempo_total_minutos", "total_aciertos", "total_fallos"}).
			AddRow(2, 3, 2, 240, 4, 20, 5))
	mock.ExpectQuery(`LEFT JOIN progreso_juego pg`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "nombre", "niveles_jugados", "niveles_completados",
			"total_niveles", "puntuacion_total", "tiempo_total_minutos"}).
			AddRow(1, "Sonidos", 2, 2, 3, 160, 3).
			AddRow(2, "Palabras", 0, 0, 4, 0, 0))
	mock.ExpectQuery(`ORDER BY pg.fecha_actualizacion DESC\s+LIMIT`).WillReturnRows(
		sqlmock.NewRows([]string{"juego", "nivel", "puntuacion", "aciertos", "fallos", "tiempo", "completado", "fecha_actualizacion"}).
			AddRow("Sonidos", "Nivel 2", 80, 8, 2, 95, true, now))
	mock.ExpectQuery(`MIN\(e.fecha\) AS fecha_asignacion`).WillReturnRows(
		sqlmock.NewRows([]string{"evaluador_nombre", "evaluador_tipo", "fecha_asignacion"}).
			AddRow("Laura", "fonoaudiologo", now))

	out, err := svc.Statistics(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Sofía", out.Child.Name)
	assert.Equal(t, int64(2), out.Totals.CompletedLevels)
	assert.Equal(t, int64(4), out.Totals.TotalMinutes)
	require.Len(t, out.GameProgress, 2)
	assert.Equal(t, int64(0), out.GameProgress[1].LevelsPlayed)
	require.Len(t, out.RecentSessions, 1)
	assert.True(t, out.RecentSessions[0].Completed)
	require.Len(t, out.Evaluators, 1)
	assert.Equal(t, "Laura", out.Evaluators[0].Name)
}

func TestStatisticsWithoutChildRow(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(`FROM usuarios u\s+JOIN ninos n`).WillReturnRows(
		sqlmock.NewRows([]string{"nombre", "edad", "grado", "colegio", "jornada"}))

	_, err := svc.Statistics(context.Background(), 9)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}
