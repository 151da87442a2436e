package middlewares

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "priming_backend/internals/helpers"
)

// ErrorHandler is installed as fiber.Config.ErrorHandler. Every error
// returned by a handler or middleware ends up here.
func ErrorHandler(isProduction bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *helper.AppError
		var fiberErr *fiber.Error

		switch {
		case errors.As(helper.TranslateDBError(err), &appErr):
		case errors.As(err, &fiberErr):
			appErr = helper.NewAppError(fiberErr.Code, helper.StatusToErrorCode(fiberErr.Code), fiberErr.Message)
		default:
			appErr = helper.Internal(err)
		}

		stack := ""
		if appErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Any("request_id", c.Locals("reqid")),
				zap.Error(err),
			)
			if !isProduction {
				stack = err.Error() + "\n" + string(debug.Stack())
			}
		}
		return helper.JsonAppError(c, appErr, stack)
	}
}
