package auth

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/constants"
	helper "priming_backend/internals/helpers"
)

// OnlyRolesSlice lets the request through when the token role is in allowedRoles;
// otherwise 403 with the given code.
func OnlyRolesSlice(code int, message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocalUserRole).(string)
		if !ok || role == "" {
			return helper.Unauthorized(constants.CodeAccessDenied, "Acceso denegado. Token no proporcionado.")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.Forbidden(code, message)
	}
}
