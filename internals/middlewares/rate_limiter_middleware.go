package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"priming_backend/internals/constants"
	helper "priming_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, constants.CodeAccessDenied, message)
		},
	})
}

// GlobalRateLimiter covers every /api route.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, 1*time.Minute, "Demasiadas solicitudes. Intenta de nuevo más tarde.")
}

// LoginRateLimiter is stricter: 10 attempts per minute per IP.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(10, 1*time.Minute, "Demasiados intentos de inicio de sesión. Intenta en unos minutos.")
}

// RegisterRateLimiter throttles self-registration.
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, "Demasiados registros desde esta dirección. Espera unos minutos.")
}
