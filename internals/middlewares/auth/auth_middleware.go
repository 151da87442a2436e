// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"priming_backend/internals/constants"
	authHelper "priming_backend/internals/features/users/auth/helper"
	helper "priming_backend/internals/helpers"
)

// TokenVerifier is satisfied by *authHelper.TokenService.
type TokenVerifier interface {
	Verify(raw string) (*authHelper.Claims, error)
}

// AuthMiddleware: no token → 401 ACCESS_DENIED, bad or expired token → 400 INVALID_TOKEN.
func AuthMiddleware(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return helper.Unauthorized(constants.CodeAccessDenied, "Acceso denegado. Token no proporcionado.")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			zap.L().Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return helper.BadRequest(constants.CodeInvalidToken, "Token inválido o expirado")
		}

		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
