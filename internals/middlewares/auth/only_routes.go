package auth

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/constants"
)

// Capability gates. Each runs once, after AuthMiddleware and before the handler.

func IsAdmin() fiber.Handler {
	return OnlyRolesSlice(constants.CodeAccessDenied,
		constants.RoleErrorAdmin("esta función"), constants.AdminOnly)
}

func IsEvaluatorOrAdmin() fiber.Handler {
	return OnlyRolesSlice(constants.CodeNotEvaluator,
		constants.RoleErrorEvaluator("esta función"), constants.EvaluatorAndAbove)
}

func IsChild() fiber.Handler {
	return OnlyRolesSlice(constants.CodeAccessDenied,
		constants.RoleErrorChild("perfil de juego"), constants.ChildOnly)
}

func IsChildOrEvaluatorOrAdmin() fiber.Handler {
	return OnlyRolesSlice(constants.CodeAccessDenied,
		constants.RoleErrorAny("los juegos"), constants.AllRoles)
}
