package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"priming_backend/internals/configs"
	database "priming_backend/internals/databases"
	"priming_backend/internals/metrics"
)

const healthTimeout = 3 * time.Second

func BaseRoutes(app *fiber.App, cfg *configs.Config, db *gorm.DB) {
	app.Get("/api/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "Servidor PRIMING funcionando correctamente",
			"cors_origin": cfg.CorsOrigin,
			"environment": cfg.AppEnv,
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		serverTime, err := database.ServerTime(ctx, db)
		if err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
			serverTime = time.Now()
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    serverTime.Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    cfg.AppEnv,
		})
	})

	app.Get("/metrics", metrics.Handler())
}
