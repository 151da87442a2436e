package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"priming_backend/internals/configs"
	"priming_backend/internals/metrics"
	"priming_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain in order.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(metrics.Middleware())
	app.Use(CorsMiddleware(cfg.CorsOrigin))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
}
