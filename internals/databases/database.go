package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"priming_backend/internals/configs"
)

// ConnectDB opens the pool. The handle is owned by main and injected everywhere else.
func ConnectDB(cfg *configs.Config, log *zap.Logger) (*gorm.DB, error) {
	log.Info("🔌 connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:                 configs.NewGormLogger(log, cfg.DBSlowThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := TunePool(db, cfg); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, cfg *configs.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ServerTime runs SELECT NOW(); used by the check-db command.
func ServerTime(ctx context.Context, db *gorm.DB) (time.Time, error) {
	var now time.Time
	err := db.WithContext(ctx).Raw("SELECT NOW()").Scan(&now).Error
	return now, err
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
