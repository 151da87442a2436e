package route

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/auth/controller"
	rateLimiter "priming_backend/internals/middlewares"
)

// AuthPublicRoutes: /api/register and /api/login, no token.
func AuthPublicRoutes(r fiber.Router, ctrl *controller.AuthController) {
	r.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
}

// AuthProtectedRoutes expects r to already run the auth middleware.
func AuthProtectedRoutes(r fiber.Router, ctrl *controller.AuthController) {
	r.Get("/verify-token", ctrl.VerifyToken)
}
