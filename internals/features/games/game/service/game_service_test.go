package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/constants"
	helper "priming_backend/internals/helpers"
	"priming_backend/internals/helpers/dbtest"
)

var levelCols = []string{"id", "juego_id", "nombre", "dificultad", "tiempo_maximo", "contenido"}

func TestListGamesNestsLevels(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := NewGameService(db)

	mock.ExpectQuery(`SELECT \* FROM "juegos" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).
			AddRow(1, "Cognados").
			AddRow(2, "Pares Mínimos"))
	mock.ExpectQuery(`SELECT \* FROM "niveles" WHERE "niveles"."juego_id" IN`).
		WillReturnRows(sqlmock.NewRows(levelCols).
			AddRow(1, 1, "Fácil", "facil", 180, []byte(`{}`)).
			AddRow(2, 1, "Medio", "medio", 150, []byte(`{}`)).
			AddRow(4, 2, "Fácil", "facil", 180, []byte(`{}`)))

	games, err := svc.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Len(t, games[0].Levels, 2)
	assert.Len(t, games[1].Levels, 1)
	assert.Equal(t, 4, games[1].Levels[0].ID)
}

func TestGetLevelFlattensContent(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := NewGameService(db)

	content := `{"indicadores":[{"id":1,"nombre":"Cocodrilo","imagen":"/img/c.png","audio":"/a/c.mp3"}],
		"seleccionables":[{"id":1,"palabra":"Tomato","correcto":true,"indicador_id":1}]}`
	mock.ExpectQuery(`FROM "niveles" WHERE id = .* AND juego_id = `).
		WillReturnRows(sqlmock.NewRows(levelCols).AddRow(1, 1, "Fácil", "facil", 180, []byte(content)))

	level, err := svc.GetLevel(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, level.Indicators, 1)
	assert.Equal(t, "Cocodrilo", level.Indicators[0].Name)
	require.Len(t, level.Selectables, 1)
	assert.True(t, level.Selectables[0].Correct)
	assert.Equal(t, 180, *level.MaxTime)
}

func TestGetLevelOfOtherGame(t *testing.T) {
	db, mock := dbtest.New(t)
	svc := NewGameService(db)
	mock.ExpectQuery(`FROM "niveles"`).WillReturnRows(sqlmock.NewRows(levelCols))

	_, err := svc.GetLevel(context.Background(), 2, 1)
	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, constants.CodeMissingData, appErr.Code)
}
