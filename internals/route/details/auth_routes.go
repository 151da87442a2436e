package details

import (
	"github.com/gofiber/fiber/v2"

	authController "priming_backend/internals/features/users/auth/controller"
	authRoute "priming_backend/internals/features/users/auth/route"
	authService "priming_backend/internals/features/users/auth/service"
)

func newAuthController(d Deps) *authController.AuthController {
	return authController.NewAuthController(authService.NewAuthService(d.DB, d.Hasher, d.Tokens))
}

// AuthPublicRoutes must be mounted before any authenticated /api group.
func AuthPublicRoutes(api fiber.Router, d Deps) {
	authRoute.AuthPublicRoutes(api, newAuthController(d))
}

func AuthProtectedRoutes(protected fiber.Router, d Deps) {
	authRoute.AuthProtectedRoutes(protected, newAuthController(d))
}
