package seeds

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"priming_backend/internals/constants"
	authHelper "priming_backend/internals/features/users/auth/helper"
	"priming_backend/internals/helpers/dbtest"
)

func count(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func smallData() *Data {
	return &Data{
		Passwords: map[string]string{
			constants.RoleAdmin:     "Admin123",
			constants.RoleEvaluator: "Evaluador123",
			constants.RoleChild:     "Nino123",
		},
		Admin:      UserSeed{Name: "Administrador", Email: "admin@priming.com"},
		Evaluators: []EvaluatorSeed{{UserSeed: UserSeed{Name: "Docente", Email: "docente@priming.com"}, Code: "DOC001", Kind: "Docente"}},
		Children: []ChildSeed{
			{UserSeed: UserSeed{Name: "Juan", Email: "juan@priming.com"}, Age: 5, Grade: -1},
			{UserSeed: UserSeed{Name: "María", Email: "maria@priming.com"}, Age: 6, Grade: 1},
		},
		Games:       []GameSeed{{Name: "Pares Mínimos", Levels: []LevelSeed{{Difficulty: "fácil", MaxTime: 180}}}},
		SurveyNotes: "Encuesta inicial de prueba",
	}
}

func TestEmbeddedDataDecodes(t *testing.T) {
	data, err := LoadData()
	require.NoError(t, err)

	assert.Equal(t, "admin@priming.com", data.Admin.Email)
	assert.Len(t, data.Evaluators, 3)
	assert.Len(t, data.Children, 3)
	require.Len(t, data.Games, 2)
	for _, g := range data.Games {
		require.Len(t, g.Levels, 3)
		for _, l := range g.Levels {
			assert.NotEmpty(t, l.Content.Indicators)
			assert.NotEmpty(t, l.Content.Selectables)
		}
	}
	assert.Contains(t, data.Passwords, constants.RoleChild)
}

func TestSeedInsertsEverythingInOneTransaction(t *testing.T) {
	db, mock := dbtest.New(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "usuarios"`).WillReturnRows(count(0))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(2))
	mock.ExpectQuery(`INSERT INTO "evaluadores"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(3))
	mock.ExpectQuery(`INSERT INTO "ninos"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(4))
	mock.ExpectQuery(`INSERT INTO "ninos"`).WillReturnRows(dbtest.ID(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "juegos"`).WillReturnRows(count(0))
	mock.ExpectQuery(`INSERT INTO "juegos"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "niveles"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "encuestas"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`INSERT INTO "encuestas"`).WillReturnRows(dbtest.ID(2))
	mock.ExpectCommit()

	err := Seed(context.Background(), db, authHelper.NewPasswordHasher(4), zap.NewNop(), smallData())
	require.NoError(t, err)
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db, mock := dbtest.New(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "usuarios"`).WillReturnRows(count(4))
	mock.ExpectRollback()

	err := Seed(context.Background(), db, authHelper.NewPasswordHasher(4), zap.NewNop(), smallData())
	require.NoError(t, err)
}

func TestSeedKeepsExistingGames(t *testing.T) {
	db, mock := dbtest.New(t)
	data := smallData()
	data.Evaluators = nil
	data.Children = nil

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "usuarios"`).WillReturnRows(count(0))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnRows(dbtest.ID(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "juegos"`).WillReturnRows(count(2))
	mock.ExpectCommit()

	require.NoError(t, Seed(context.Background(), db, authHelper.NewPasswordHasher(4), zap.NewNop(), data))
}

func TestSeedRollsBackOnInsertFailure(t *testing.T) {
	db, mock := dbtest.New(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "usuarios"`).WillReturnRows(count(0))
	mock.ExpectQuery(`INSERT INTO "usuarios"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := Seed(context.Background(), db, authHelper.NewPasswordHasher(4), zap.NewNop(), smallData())
	require.ErrorIs(t, err, assert.AnError)
}
