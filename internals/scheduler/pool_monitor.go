package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	database "priming_backend/internals/databases"
	"priming_backend/internals/metrics"
)

const pingTimeout = 3 * time.Second

// StartPoolMonitor pings the database on the cron schedule and exports pool
// stats. The caller stops the returned scheduler on shutdown.
func StartPoolMonitor(db *gorm.DB, spec string, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(spec, func() { CheckPool(db, log) }); err != nil {
		return nil, fmt.Errorf("pool monitor schedule %q: %w", spec, err)
	}
	log.Info("[POOL-MONITOR] started", zap.String("schedule", spec))
	c.Start()
	return c, nil
}

// CheckPool runs one monitor tick.
func CheckPool(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("[POOL-MONITOR] no sql.DB", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	pingErr := database.Ping(ctx, db)

	stats := sqlDB.Stats()
	metrics.ObservePool(stats, pingErr)

	if pingErr != nil {
		log.Warn("[POOL-MONITOR] ping failed", zap.Error(pingErr))
		return
	}
	log.Debug("[POOL-MONITOR] ok",
		zap.Int("open", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int64("wait_count", stats.WaitCount),
	)
}
