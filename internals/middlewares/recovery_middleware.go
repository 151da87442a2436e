package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a panic into an error for ErrorHandler (500 SERVER_ERROR).
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			zap.L().Error("panic recovered", zap.String("path", c.Path()), zap.Any("panic", e), zap.Stack("stack"))
		},
	})
}
