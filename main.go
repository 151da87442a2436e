package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/configs"
	database "priming_backend/internals/databases"
	authHelper "priming_backend/internals/features/users/auth/helper"
	"priming_backend/internals/middlewares"
	routes "priming_backend/internals/route"
	routeDetails "priming_backend/internals/route/details"
	"priming_backend/internals/scheduler"
	"priming_backend/internals/seeds"
)

const usage = "usage: priming_backend [serve|migrate|seed|check-db]"

func main() {
	if configs.LoadEnv() {
		log.Println("📄 .env loaded")
	}
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	logger, err := configs.InitLogger(cfg.AppEnv, cfg.LogFile)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		err = serve(cfg, logger)
	case "migrate":
		err = withDB(cfg, logger, func(db *gorm.DB) error {
			return database.Migrate(db, logger)
		})
	case "seed":
		err = withDB(cfg, logger, func(db *gorm.DB) error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			return seeds.Run(ctx, db, authHelper.NewPasswordHasher(cfg.BcryptSaltRounds), logger)
		})
	case "check-db":
		err = withDB(cfg, logger, func(db *gorm.DB) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			now, err := database.ServerTime(ctx, db)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Conexión exitosa. Hora del servidor: %s\n", now.Format(time.RFC3339))
			return nil
		})
	default:
		err = fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	if err != nil {
		logger.Error("❌ command failed", zap.String("command", cmd), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// withDB opens the pool for a one-shot command and closes it afterwards.
func withDB(cfg *configs.Config, logger *zap.Logger, fn func(db *gorm.DB) error) error {
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	return fn(db)
}

func serve(cfg *configs.Config, logger *zap.Logger) error {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler(cfg.IsProduction()),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})
	middlewares.SetupMiddlewares(app, cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db, logger); err != nil {
			return err
		}
	}

	monitor, err := scheduler.StartPoolMonitor(db, cfg.PoolMonitorSpec, logger)
	if err != nil {
		return err
	}
	defer monitor.Stop()

	routes.SetupRoutes(app, cfg, routeDetails.Deps{
		DB:     db,
		Hasher: authHelper.NewPasswordHasher(cfg.BcryptSaltRounds),
		Tokens: authHelper.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("✅ listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		logger.Info("🛑 shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
