// Package dbtest opens GORM on top of go-sqlmock for service tests.
package dbtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a postgres-dialect *gorm.DB backed by sqlmock. Unmet
// expectations fail the test at cleanup.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		_ = sqlDB.Close()
	})
	return db, mock
}

// Exists is the single-column row set returned by SELECT EXISTS(...).
func Exists(v bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(v)
}

// ID is the RETURNING "id" row set of a GORM Create.
func ID(id int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}
