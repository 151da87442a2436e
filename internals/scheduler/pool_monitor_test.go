package scheduler

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStartPoolMonitorRejectsBadSpec(t *testing.T) {
	_, err := StartPoolMonitor(&gorm.DB{}, "every now and then", zap.NewNop())
	assert.Error(t, err)
}

func TestCheckPoolPings(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectPing()
	CheckPool(db, zap.NewNop())
	assert.NoError(t, mock.ExpectationsWereMet())
}
